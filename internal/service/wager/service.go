package wager

import (
	"time"

	"arcade_backend/internal/config"
	"arcade_backend/internal/games"
	"arcade_backend/internal/repository"
	"arcade_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	gamesCfg  config.GamesConfig
	userRepo  repository.UserRepository
	wagerRepo repository.WagerRepository
	rng       games.RNG
	txManager trm.Manager
	now       func() time.Time
}

func NewWagerService(
	gamesCfg config.GamesConfig,
	userRepo repository.UserRepository,
	wagerRepo repository.WagerRepository,
	rng games.RNG,
	txManager trm.Manager,
) service.WagerService {
	return &serv{
		gamesCfg:  gamesCfg,
		userRepo:  userRepo,
		wagerRepo: wagerRepo,
		rng:       rng,
		txManager: txManager,
		now:       time.Now,
	}
}
