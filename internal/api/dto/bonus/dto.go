package bonus

type ClaimResponse struct {
	BonusAmount int64 `json:"bonus_amount"` // Начисленная награда
	StreakDays  int   `json:"streak_days"`  // Длина серии после получения
	NewBalance  int64 `json:"new_balance"`  // Баланс после начисления
}
