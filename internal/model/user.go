package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID        int
	Username  string
	Email     string
	Password  string
	Balance   int64
	CreatedAt time.Time
}

type UserClaims struct {
	jwt.RegisteredClaims
}
