package leaderboard

import (
	"context"
	"fmt"
	"time"

	"arcade_backend/internal/apperr"
	"arcade_backend/internal/model"

	"github.com/sirupsen/logrus"
)

// Get - сквозное чтение лидерборда. Попадание в кэш возвращает
// значение как есть: устаревание в пределах TTL допустимо.
// Кэш не источник истины, при промахе список пересчитывается
// из журнала ставок
func (s *serv) Get(ctx context.Context, period model.LeaderboardPeriod) (*model.LeaderboardResult, error) {
	since, err := s.windowStart(period)
	if err != nil {
		return nil, err
	}

	key := cacheKey(period)

	entries, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		// Сбой кэша не фатален - пересчитываем из хранилища
		logrus.WithField("period", period).WithError(err).Warn("leaderboard cache read failed")
	}
	if hit {
		return &model.LeaderboardResult{
			Period:   period,
			Entries:  entries,
			CacheHit: true,
		}, nil
	}

	entries, err = s.wagerRepo.AggregatePayouts(ctx, since, s.lbCfg.Limit())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrStoreUnavailable, err)
	}

	if err := s.cache.Put(ctx, key, entries, s.lbCfg.TTL()); err != nil {
		logrus.WithField("period", period).WithError(err).Warn("leaderboard cache write failed")
	}

	return &model.LeaderboardResult{
		Period:   period,
		Entries:  entries,
		CacheHit: false,
	}, nil
}

// windowStart - начало окна периода. Нулевое время - без фильтра
func (s *serv) windowStart(period model.LeaderboardPeriod) (time.Time, error) {
	switch period {
	case model.PeriodDaily:
		return s.now().Add(-24 * time.Hour), nil
	case model.PeriodWeekly:
		return s.now().Add(-7 * 24 * time.Hour), nil
	case model.PeriodAllTime:
		return time.Time{}, nil
	default:
		return time.Time{}, fmt.Errorf("%w: unknown period %q", apperr.ErrInvalidBet, period)
	}
}

func cacheKey(period model.LeaderboardPeriod) string {
	return "leaderboard:" + string(period)
}
