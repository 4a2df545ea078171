package wager

import (
	"context"
	"errors"
	"fmt"

	"arcade_backend/internal/apperr"
	"arcade_backend/internal/middleware"
	"arcade_backend/internal/model"
)

// Deposit начисляет игровые токены на баланс. Идет через тот же
// compare-and-set, что и ставки, чтобы не гоняться с ними
func (s *serv) Deposit(ctx context.Context, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: deposit must be positive", apperr.ErrInvalidStake)
	}

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return 0, errors.New("user id not found in context")
	}

	for attempt := 0; attempt < casRetries; attempt++ {
		balance, err := s.userRepo.GetBalance(ctx, userID)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", apperr.ErrStoreUnavailable, err)
		}

		newBalance := balance + amount
		ok, err := s.userRepo.CompareAndSetBalance(ctx, userID, balance, newBalance)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", apperr.ErrStoreUnavailable, err)
		}
		if ok {
			return newBalance, nil
		}
	}

	return 0, apperr.ErrStoreConflict
}

// CheckData - текущее состояние кошелька
func (s *serv) CheckData(ctx context.Context) (*model.Data, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	balance, err := s.userRepo.GetBalance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrStoreUnavailable, err)
	}

	return &model.Data{Balance: balance}, nil
}
