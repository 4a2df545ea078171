package service

import (
	"context"

	"arcade_backend/internal/model"
)

type WagerService interface {
	// Place - атомарный раунд: списание ставки, розыгрыш, начисление
	// выигрыша и запись в журнал как одно целое
	Place(ctx context.Context, req model.WagerRequest) (*model.WagerResult, error)
	Deposit(ctx context.Context, amount int64) (newBalance int64, err error)
	CheckData(ctx context.Context) (*model.Data, error)
}

type BonusService interface {
	Claim(ctx context.Context) (*model.BonusClaimResult, error)
}

type LeaderboardService interface {
	Get(ctx context.Context, period model.LeaderboardPeriod) (*model.LeaderboardResult, error)
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, email, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}
