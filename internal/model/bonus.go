package model

import "time"

// DailyBonusRecord - запись об успешном получении ежедневного бонуса.
// Последняя запись пользователя определяет право на следующее получение
type DailyBonusRecord struct {
	ID         int64
	UserID     int
	ClaimedAt  time.Time
	StreakDays int
	Reward     int64
}

type BonusClaimResult struct {
	BonusAmount int64
	StreakDays  int
	NewBalance  int64
}
