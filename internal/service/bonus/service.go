package bonus

import (
	"time"

	"arcade_backend/internal/config"
	"arcade_backend/internal/repository"
	"arcade_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	bonusCfg  config.BonusConfig
	userRepo  repository.UserRepository
	bonusRepo repository.BonusRepository
	txManager trm.Manager
	now       func() time.Time
}

func NewBonusService(
	bonusCfg config.BonusConfig,
	userRepo repository.UserRepository,
	bonusRepo repository.BonusRepository,
	txManager trm.Manager,
) service.BonusService {
	return &serv{
		bonusCfg:  bonusCfg,
		userRepo:  userRepo,
		bonusRepo: bonusRepo,
		txManager: txManager,
		now:       time.Now,
	}
}
