package wager

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arcade_backend/internal/apperr"
	"arcade_backend/internal/middleware"
	"arcade_backend/internal/model"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// --- фейки ---

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeUserRepo - потокобезопасный in-memory баланс с честным compare-and-set
type fakeUserRepo struct {
	mu       sync.Mutex
	balances map[int]int64

	failCAS bool // всегда возвращать конфликт
}

func newFakeUserRepo(balances map[int]int64) *fakeUserRepo {
	return &fakeUserRepo{balances: balances}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *model.User) (int, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUserRepo) GetBalance(ctx context.Context, id int) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.balances[id]
	if !ok {
		return 0, errors.New("user not found")
	}
	return b, nil
}

func (f *fakeUserRepo) CompareAndSetBalance(ctx context.Context, id int, expectedOld, newValue int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failCAS {
		return false, nil
	}
	if f.balances[id] != expectedOld {
		return false, nil
	}
	f.balances[id] = newValue
	return true, nil
}

type fakeWagerRepo struct {
	mu         sync.Mutex
	events     []model.WagerEvent
	failAppend bool
}

func (f *fakeWagerRepo) AppendWagerEvent(ctx context.Context, event *model.WagerEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failAppend {
		return errors.New("insert failed")
	}
	f.events = append(f.events, *event)
	return nil
}

func (f *fakeWagerRepo) AggregatePayouts(ctx context.Context, since time.Time, limit int) ([]model.LeaderboardEntry, error) {
	return nil, nil
}

type fakeGamesCfg struct{}

func (fakeGamesCfg) MinStake() int64         { return 2 }
func (fakeGamesCfg) MaxStake() int64         { return 100000 }
func (fakeGamesCfg) SlotsSymbols() int       { return 7 }
func (fakeGamesCfg) MaxFishingCasts() int    { return 200 }
func (fakeGamesCfg) MaxPowerMultiplier() int { return 100 }
func (fakeGamesCfg) FishTable() []model.FishSpecies {
	return []model.FishSpecies{
		{Type: "minnow", Value: 1, Probability: 0.5},
		{Type: "carp", Value: 5, Probability: 0.5},
	}
}

// pairRNG - каждый спин слотов выпадает парой (1,1,2): выплата 2x
type pairRNG struct{ i int }

func (p *pairRNG) Intn(n int) (int, error) {
	seq := [3]int{0, 0, 1}
	v := seq[p.i%3]
	p.i++
	if v >= n {
		v = n - 1
	}
	return v, nil
}

func (p *pairRNG) Float64() (float64, error) { return 0, nil }

// constRNG - потокобезопасный источник без состояния
type constRNG struct{}

func (constRNG) Intn(n int) (int, error)   { return 0, nil }
func (constRNG) Float64() (float64, error) { return 0, nil }

func newTestService(users *fakeUserRepo, wagers *fakeWagerRepo, rng interface {
	Intn(int) (int, error)
	Float64() (float64, error)
}) *serv {
	return &serv{
		gamesCfg:  fakeGamesCfg{},
		userRepo:  users,
		wagerRepo: wagers,
		rng:       rng,
		txManager: fakeTxManager{},
		now:       func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func userCtx(id int) context.Context {
	return middleware.WithUserID(context.Background(), id)
}

// --- тесты ---

func TestPlaceInvalidStake(t *testing.T) {
	users := newFakeUserRepo(map[int]int64{1: 100})
	wagers := &fakeWagerRepo{}
	s := newTestService(users, wagers, &pairRNG{})

	_, err := s.Place(userCtx(1), model.WagerRequest{GameType: model.GameSlots, Stake: 1})
	require.ErrorIs(t, err, apperr.ErrInvalidStake)

	_, err = s.Place(userCtx(1), model.WagerRequest{GameType: model.GameSlots, Stake: 200000})
	require.ErrorIs(t, err, apperr.ErrInvalidStake)

	// Баланс не тронут, журнал пуст
	balance, _ := users.GetBalance(context.Background(), 1)
	assert.Equal(t, int64(100), balance)
	assert.Empty(t, wagers.events)
}

func TestPlaceInsufficientFunds(t *testing.T) {
	users := newFakeUserRepo(map[int]int64{1: 50})
	wagers := &fakeWagerRepo{}
	s := newTestService(users, wagers, &pairRNG{})

	_, err := s.Place(userCtx(1), model.WagerRequest{GameType: model.GameSlots, Stake: 60})
	require.ErrorIs(t, err, apperr.ErrInsufficientFunds)

	balance, _ := users.GetBalance(context.Background(), 1)
	assert.Equal(t, int64(50), balance)
	assert.Empty(t, wagers.events)
}

func TestPlaceConservation(t *testing.T) {
	users := newFakeUserRepo(map[int]int64{1: 100})
	wagers := &fakeWagerRepo{}
	// Пара в слотах: выплата 2x
	s := newTestService(users, wagers, &pairRNG{})

	res, err := s.Place(userCtx(1), model.WagerRequest{GameType: model.GameSlots, Stake: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(10), res.Stake)
	assert.Equal(t, int64(20), res.Payout)
	// newBalance == oldBalance - stake + payout, точно
	assert.Equal(t, int64(110), res.NewBalance)

	balance, _ := users.GetBalance(context.Background(), 1)
	assert.Equal(t, int64(110), balance)

	require.Len(t, wagers.events, 1)
	event := wagers.events[0]
	assert.Equal(t, 1, event.UserID)
	assert.Equal(t, model.GameSlots, event.GameType)
	assert.Equal(t, int64(10), event.Stake)
	assert.Equal(t, int64(20), event.Payout)
	assert.NotEmpty(t, event.Outcome)
	assert.False(t, event.CreatedAt.IsZero())
}

func TestPlaceConcurrentSingleWinner(t *testing.T) {
	// N параллельных ставок на весь баланс: ровно одна проходит,
	// остальные получают InsufficientFunds. Рыбалка с одним забросом
	// дает детерминированную выплату 10 при ставке 100, так что после
	// выигравшей ставки денег на вторую не остается
	const workers = 8

	users := newFakeUserRepo(map[int]int64{1: 100})
	wagers := &fakeWagerRepo{}
	s := newTestService(users, wagers, constRNG{})

	req := model.WagerRequest{
		GameType: model.GameFishing,
		Stake:    100,
		Fishing:  []model.FishingCast{{PowerMultiplier: 1}},
	}

	var (
		wg           sync.WaitGroup
		successes    atomic.Int64
		insufficient atomic.Int64
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Place(userCtx(1), req)
			switch {
			case err == nil:
				successes.Add(1)
			case errors.Is(err, apperr.ErrInsufficientFunds):
				insufficient.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), successes.Load())
	assert.Equal(t, int64(workers-1), insufficient.Load())

	// Итог: стартовый баланс минус единственная ставка плюс ее выплата
	require.Len(t, wagers.events, 1)
	assert.Equal(t, int64(10), wagers.events[0].Payout)
	balance, _ := users.GetBalance(context.Background(), 1)
	assert.Equal(t, int64(10), balance)
}

func TestPlaceRouletteEmptyBetsIsNoOp(t *testing.T) {
	users := newFakeUserRepo(map[int]int64{1: 100})
	wagers := &fakeWagerRepo{}
	s := newTestService(users, wagers, &pairRNG{})

	res, err := s.Place(userCtx(1), model.WagerRequest{GameType: model.GameRoulette})
	require.NoError(t, err)

	assert.Equal(t, int64(0), res.Payout)
	assert.Equal(t, int64(100), res.NewBalance)
	// Никаких записей кроме чтения баланса
	assert.Empty(t, wagers.events)

	balance, _ := users.GetBalance(context.Background(), 1)
	assert.Equal(t, int64(100), balance)
}

func TestPlaceRouletteStakeIsBetTotal(t *testing.T) {
	users := newFakeUserRepo(map[int]int64{1: 100})
	wagers := &fakeWagerRepo{}
	s := newTestService(users, wagers, &pairRNG{})

	res, err := s.Place(userCtx(1), model.WagerRequest{
		GameType: model.GameRoulette,
		Roulette: []model.RouletteBet{
			{Kind: model.BetRed, Amount: 10},
			{Kind: model.BetOdd, Amount: 15},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(25), res.Stake)
}

func TestPlaceFishingPowerMultiplierBounded(t *testing.T) {
	// Гигантский множитель силы переполнил бы расчет выплаты
	// и записал бы отрицательный баланс - отклоняется на валидации
	users := newFakeUserRepo(map[int]int64{1: 100})
	wagers := &fakeWagerRepo{}
	s := newTestService(users, wagers, constRNG{})

	_, err := s.Place(userCtx(1), model.WagerRequest{
		GameType: model.GameFishing,
		Stake:    10,
		Fishing:  []model.FishingCast{{PowerMultiplier: 1 << 62}},
	})
	require.ErrorIs(t, err, apperr.ErrInvalidBet)

	// Баланс не тронут, журнал пуст
	balance, _ := users.GetBalance(context.Background(), 1)
	assert.Equal(t, int64(100), balance)
	assert.Empty(t, wagers.events)
}

func TestPlaceRejectsNegativeComputedBalance(t *testing.T) {
	// Страховка на случай переполнения, проскочившего валидацию:
	// отрицательная выплата не доходит до compare-and-set
	users := newFakeUserRepo(map[int]int64{1: 100})
	wagers := &fakeWagerRepo{}
	s := newTestService(users, wagers, constRNG{})

	res, err := s.placeOnce(userCtx(1), 1, model.WagerRequest{
		GameType: model.GameFishing,
		Stake:    10,
		Fishing:  []model.FishingCast{{PowerMultiplier: 1 << 62}},
	}, 10)
	require.ErrorIs(t, err, apperr.ErrInvalidBet)
	assert.Nil(t, res)

	balance, _ := users.GetBalance(context.Background(), 1)
	assert.Equal(t, int64(100), balance)
	assert.Empty(t, wagers.events)
}

func TestPlaceAppendFailureReturnsInfraError(t *testing.T) {
	users := newFakeUserRepo(map[int]int64{1: 100})
	wagers := &fakeWagerRepo{failAppend: true}
	s := newTestService(users, wagers, &pairRNG{})

	res, err := s.Place(userCtx(1), model.WagerRequest{GameType: model.GameSlots, Stake: 10})
	require.ErrorIs(t, err, apperr.ErrStoreUnavailable)
	assert.Nil(t, res)
	assert.False(t, apperr.IsDomain(err))
	assert.Empty(t, wagers.events)
}

func TestPlaceCASConflictExhaustsRetries(t *testing.T) {
	users := newFakeUserRepo(map[int]int64{1: 100})
	users.failCAS = true
	wagers := &fakeWagerRepo{}
	s := newTestService(users, wagers, &pairRNG{})

	_, err := s.Place(userCtx(1), model.WagerRequest{GameType: model.GameSlots, Stake: 10})
	require.ErrorIs(t, err, apperr.ErrStoreConflict)
	assert.Empty(t, wagers.events)
}

func TestDeposit(t *testing.T) {
	users := newFakeUserRepo(map[int]int64{1: 100})
	s := newTestService(users, &fakeWagerRepo{}, &pairRNG{})

	newBalance, err := s.Deposit(userCtx(1), 500)
	require.NoError(t, err)
	assert.Equal(t, int64(600), newBalance)

	_, err = s.Deposit(userCtx(1), 0)
	require.ErrorIs(t, err, apperr.ErrInvalidStake)
}
