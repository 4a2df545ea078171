package model

import "time"

// Session - серверная сессия игрока. В RefreshToken лежит хэш,
// а не сам токен: токен живет только у клиента
type Session struct {
	ID           string
	UserID       int
	RefreshToken string
	ExpiresAt    time.Time
}
