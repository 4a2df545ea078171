package bonus

import (
	"context"
	"errors"
	"fmt"

	"arcade_backend/internal/apperr"
	"arcade_backend/internal/middleware"
	"arcade_backend/internal/model"

	"github.com/sirupsen/logrus"
)

const casRetries = 3

var errCASConflict = errors.New("balance cas conflict")

// Claim выдает ежедневный бонус. Окна считаются по дельтам настенных
// часов от последнего получения, а не по календарным суткам: получение
// в 23:59 и попытка в 00:01 следующего дня отклоняется как слишком ранняя
func (s *serv) Claim(ctx context.Context) (*model.BonusClaimResult, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	for attempt := 0; attempt < casRetries; attempt++ {
		res, err := s.claimOnce(ctx, userID)
		if errors.Is(err, errCASConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return res, nil
	}

	logrus.WithField("user_id", userID).Warn("bonus claim dropped after cas retries exhausted")

	return nil, apperr.ErrStoreConflict
}

// claimOnce - одна попытка: проверка окна, начисление и запись
// в журнал бонусов в одной транзакции
func (s *serv) claimOnce(ctx context.Context, userID int) (*model.BonusClaimResult, error) {
	var res *model.BonusClaimResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		last, err := s.bonusRepo.GetLatestBonusRecord(txCtx, userID)
		if err != nil {
			return fmt.Errorf("%w: %v", apperr.ErrStoreUnavailable, err)
		}

		now := s.now()
		if last != nil && now.Sub(last.ClaimedAt) < s.bonusCfg.ClaimCooldown() {
			return apperr.ErrAlreadyClaimed
		}

		// Серия продолжается, пока разрыв меньше окна серии,
		// иначе (или при первом получении) сбрасывается на 1.
		// Сам счетчик не ограничен, потолок только у награды
		streak := 1
		if last != nil && now.Sub(last.ClaimedAt) < s.bonusCfg.StreakWindow() {
			streak = last.StreakDays + 1
		}

		reward := s.rewardFor(streak)

		balance, err := s.userRepo.GetBalance(txCtx, userID)
		if err != nil {
			return fmt.Errorf("%w: %v", apperr.ErrStoreUnavailable, err)
		}

		newBalance := balance + reward
		ok, err := s.userRepo.CompareAndSetBalance(txCtx, userID, balance, newBalance)
		if err != nil {
			return fmt.Errorf("%w: %v", apperr.ErrStoreUnavailable, err)
		}
		if !ok {
			return errCASConflict
		}

		record := &model.DailyBonusRecord{
			UserID:     userID,
			ClaimedAt:  now,
			StreakDays: streak,
			Reward:     reward,
		}

		// Вставка условная: если конкурирующее получение успело закоммитить
		// запись между нашим чтением последней записи и этим моментом,
		// rowsAffected = 0. Тогда вся транзакция откатывается вместе с
		// начислением, а повторная попытка увидит чужую запись и вернет
		// ErrAlreadyClaimed
		inserted, err := s.bonusRepo.AppendBonusRecord(txCtx, record, now.Add(-s.bonusCfg.ClaimCooldown()))
		if err != nil {
			return fmt.Errorf("%w: %v", apperr.ErrStoreUnavailable, err)
		}
		if !inserted {
			return errCASConflict
		}

		res = &model.BonusClaimResult{
			BonusAmount: reward,
			StreakDays:  streak,
			NewBalance:  newBalance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// rewardFor - награда растет до потолка серии, дальше не меняется
func (s *serv) rewardFor(streak int) int64 {
	capped := streak
	if capped > s.bonusCfg.StreakCap() {
		capped = s.bonusCfg.StreakCap()
	}
	return s.bonusCfg.BaseReward() + int64(capped-1)*s.bonusCfg.StepReward()
}
