package leaderboard

import (
	"time"

	"arcade_backend/internal/config"
	"arcade_backend/internal/repository"
	"arcade_backend/internal/service"
)

type serv struct {
	lbCfg     config.LeaderboardConfig
	wagerRepo repository.WagerRepository
	cache     repository.LeaderboardCache
	now       func() time.Time
}

func NewLeaderboardService(
	lbCfg config.LeaderboardConfig,
	wagerRepo repository.WagerRepository,
	cache repository.LeaderboardCache,
) service.LeaderboardService {
	return &serv{
		lbCfg:     lbCfg,
		wagerRepo: wagerRepo,
		cache:     cache,
		now:       time.Now,
	}
}
