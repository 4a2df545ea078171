package model

type LeaderboardPeriod string

const (
	PeriodDaily   LeaderboardPeriod = "daily"
	PeriodWeekly  LeaderboardPeriod = "weekly"
	PeriodAllTime LeaderboardPeriod = "all-time"
)

// LeaderboardEntry - производная запись, пересчитывается из журнала ставок.
// Не является источником истины
type LeaderboardEntry struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	TotalWin int64  `json:"total_win"`
	Rank     int    `json:"rank"`
}

type LeaderboardResult struct {
	Period   LeaderboardPeriod
	Entries  []LeaderboardEntry
	CacheHit bool
}
