package leaderboard

type Response struct {
	Period   string  `json:"period"` // daily | weekly | all-time
	Entries  []Entry `json:"entries"`
	CacheHit bool    `json:"cache_hit"` // Ответ отдан из кэша
}

type Entry struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	TotalWin int64  `json:"total_win"` // Сумма выплат за окно периода
	Rank     int    `json:"rank"`      // Позиция, начиная с 1
}
