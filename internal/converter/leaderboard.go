package converter

import (
	"arcade_backend/internal/api/dto/leaderboard"
	"arcade_backend/internal/model"
)

func ToLeaderboardResponse(res model.LeaderboardResult) leaderboard.Response {
	return leaderboard.Response{
		Period:   string(res.Period),
		Entries:  toLeaderboardEntries(res.Entries),
		CacheHit: res.CacheHit,
	}
}

func toLeaderboardEntries(entries []model.LeaderboardEntry) []leaderboard.Entry {
	result := make([]leaderboard.Entry, len(entries))
	for i, e := range entries {
		result[i] = leaderboard.Entry{
			UserID:   e.UserID,
			Username: e.Username,
			TotalWin: e.TotalWin,
			Rank:     e.Rank,
		}
	}
	return result
}
