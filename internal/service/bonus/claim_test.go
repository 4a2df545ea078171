package bonus

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arcade_backend/internal/apperr"
	"arcade_backend/internal/middleware"
	"arcade_backend/internal/model"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeUserRepo struct {
	balances map[int]int64
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *model.User) (int, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUserRepo) GetBalance(ctx context.Context, id int) (int64, error) {
	return f.balances[id], nil
}

func (f *fakeUserRepo) CompareAndSetBalance(ctx context.Context, id int, expectedOld, newValue int64) (bool, error) {
	if f.balances[id] != expectedOld {
		return false, nil
	}
	f.balances[id] = newValue
	return true, nil
}

type fakeBonusRepo struct {
	records []model.DailyBonusRecord

	// afterGet вызывается после чтения последней записи - имитирует
	// конкурирующее получение, закоммиченное между чтением и вставкой
	afterGet func(f *fakeBonusRepo)
}

func (f *fakeBonusRepo) GetLatestBonusRecord(ctx context.Context, userID int) (*model.DailyBonusRecord, error) {
	var latest *model.DailyBonusRecord
	for i := len(f.records) - 1; i >= 0; i-- {
		if f.records[i].UserID == userID {
			r := f.records[i]
			latest = &r
			break
		}
	}

	if f.afterGet != nil {
		hook := f.afterGet
		f.afterGet = nil
		hook(f)
	}

	return latest, nil
}

func (f *fakeBonusRepo) AppendBonusRecord(ctx context.Context, record *model.DailyBonusRecord, notClaimedSince time.Time) (bool, error) {
	// Та же условная семантика, что у INSERT ... WHERE NOT EXISTS
	for _, r := range f.records {
		if r.UserID == record.UserID && r.ClaimedAt.After(notClaimedSince) {
			return false, nil
		}
	}
	f.records = append(f.records, *record)
	return true, nil
}

type fakeBonusCfg struct{}

func (fakeBonusCfg) BaseReward() int64            { return 100 }
func (fakeBonusCfg) StepReward() int64            { return 50 }
func (fakeBonusCfg) StreakCap() int               { return 7 }
func (fakeBonusCfg) ClaimCooldown() time.Duration { return 24 * time.Hour }
func (fakeBonusCfg) StreakWindow() time.Duration  { return 48 * time.Hour }

func newTestService(users *fakeUserRepo, bonuses *fakeBonusRepo, clock *time.Time) *serv {
	return &serv{
		bonusCfg:  fakeBonusCfg{},
		userRepo:  users,
		bonusRepo: bonuses,
		txManager: fakeTxManager{},
		now:       func() time.Time { return *clock },
	}
}

func userCtx(id int) context.Context {
	return middleware.WithUserID(context.Background(), id)
}

func TestClaimFirstTime(t *testing.T) {
	users := &fakeUserRepo{balances: map[int]int64{1: 500}}
	bonuses := &fakeBonusRepo{}
	clock := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s := newTestService(users, bonuses, &clock)

	res, err := s.Claim(userCtx(1))
	require.NoError(t, err)

	assert.Equal(t, 1, res.StreakDays)
	assert.Equal(t, int64(100), res.BonusAmount)
	assert.Equal(t, int64(600), res.NewBalance)

	require.Len(t, bonuses.records, 1)
	assert.Equal(t, clock, bonuses.records[0].ClaimedAt)
	assert.Equal(t, int64(600), users.balances[1])
}

func TestClaimContinuesStreak(t *testing.T) {
	users := &fakeUserRepo{balances: map[int]int64{1: 0}}
	bonuses := &fakeBonusRepo{}
	clock := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s := newTestService(users, bonuses, &clock)

	_, err := s.Claim(userCtx(1))
	require.NoError(t, err)

	// Через 30 часов: кулдаун прошел, окно серии еще нет
	clock = clock.Add(30 * time.Hour)
	res, err := s.Claim(userCtx(1))
	require.NoError(t, err)

	assert.Equal(t, 2, res.StreakDays)
	assert.Equal(t, int64(150), res.BonusAmount)
}

func TestClaimStreakResetsAfterGap(t *testing.T) {
	users := &fakeUserRepo{balances: map[int]int64{1: 0}}
	bonuses := &fakeBonusRepo{}
	clock := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s := newTestService(users, bonuses, &clock)

	_, err := s.Claim(userCtx(1))
	require.NoError(t, err)

	clock = clock.Add(30 * time.Hour)
	_, err = s.Claim(userCtx(1))
	require.NoError(t, err)

	// Разрыв 50 часов выходит за окно серии: счетчик начинается заново
	clock = clock.Add(50 * time.Hour)
	res, err := s.Claim(userCtx(1))
	require.NoError(t, err)

	assert.Equal(t, 1, res.StreakDays)
	assert.Equal(t, int64(100), res.BonusAmount)
}

func TestClaimTooEarly(t *testing.T) {
	users := &fakeUserRepo{balances: map[int]int64{1: 500}}
	bonuses := &fakeBonusRepo{}
	clock := time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC)
	s := newTestService(users, bonuses, &clock)

	_, err := s.Claim(userCtx(1))
	require.NoError(t, err)

	// Настенные часы, а не календарные сутки: 00:01 следующего дня - рано
	clock = clock.Add(2 * time.Minute)
	_, err = s.Claim(userCtx(1))
	require.ErrorIs(t, err, apperr.ErrAlreadyClaimed)

	// Состояние не изменилось
	assert.Len(t, bonuses.records, 1)
	assert.Equal(t, int64(600), users.balances[1])
}

func TestClaimConcurrentWithinWindowSuppressed(t *testing.T) {
	// Конкурирующее получение коммитится между чтением последней записи
	// и вставкой: условная вставка возвращает false, попытка уходит на
	// повтор и видит чужую запись - второй награды внутри окна не бывает
	users := &fakeUserRepo{balances: map[int]int64{1: 0}}
	clock := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	bonuses := &fakeBonusRepo{}
	bonuses.afterGet = func(f *fakeBonusRepo) {
		f.records = append(f.records, model.DailyBonusRecord{
			UserID:     1,
			ClaimedAt:  clock,
			StreakDays: 1,
			Reward:     100,
		})
	}
	s := newTestService(users, bonuses, &clock)

	_, err := s.Claim(userCtx(1))
	require.ErrorIs(t, err, apperr.ErrAlreadyClaimed)

	// В журнале только запись конкурента, своей записи сервис не добавил
	require.Len(t, bonuses.records, 1)
	assert.Equal(t, 1, bonuses.records[0].StreakDays)
}

func TestClaimRewardCapped(t *testing.T) {
	users := &fakeUserRepo{balances: map[int]int64{1: 0}}
	clock := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	bonuses := &fakeBonusRepo{records: []model.DailyBonusRecord{
		{UserID: 1, ClaimedAt: clock.Add(-25 * time.Hour), StreakDays: 9, Reward: 400},
	}}
	s := newTestService(users, bonuses, &clock)

	res, err := s.Claim(userCtx(1))
	require.NoError(t, err)

	// Счетчик серии растет дальше, награда упирается в потолок:
	// 100 + (7-1)*50
	assert.Equal(t, 10, res.StreakDays)
	assert.Equal(t, int64(400), res.BonusAmount)
}
