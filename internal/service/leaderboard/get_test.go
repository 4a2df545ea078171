package leaderboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arcade_backend/internal/apperr"
	"arcade_backend/internal/model"
)

// fakeCache - кэш с TTL на инжектированных часах
type fakeCache struct {
	clock   *time.Time
	entries map[string][]model.LeaderboardEntry
	expires map[string]time.Time

	failGet bool
}

func newFakeCache(clock *time.Time) *fakeCache {
	return &fakeCache{
		clock:   clock,
		entries: map[string][]model.LeaderboardEntry{},
		expires: map[string]time.Time{},
	}
}

func (f *fakeCache) Get(ctx context.Context, key string) ([]model.LeaderboardEntry, bool, error) {
	if f.failGet {
		return nil, false, errors.New("cache down")
	}
	deadline, ok := f.expires[key]
	if !ok || !f.clock.Before(deadline) {
		return nil, false, nil
	}
	return f.entries[key], true, nil
}

func (f *fakeCache) Put(ctx context.Context, key string, entries []model.LeaderboardEntry, ttl time.Duration) error {
	f.entries[key] = entries
	f.expires[key] = f.clock.Add(ttl)
	return nil
}

type fakeWagerRepo struct {
	entries []model.LeaderboardEntry
	calls   int
	fail    bool

	lastSince time.Time
}

func (f *fakeWagerRepo) AppendWagerEvent(ctx context.Context, event *model.WagerEvent) error {
	return errors.New("not implemented")
}

func (f *fakeWagerRepo) AggregatePayouts(ctx context.Context, since time.Time, limit int) ([]model.LeaderboardEntry, error) {
	f.calls++
	f.lastSince = since
	if f.fail {
		return nil, errors.New("db down")
	}
	return f.entries, nil
}

type fakeLeaderboardCfg struct{}

func (fakeLeaderboardCfg) TTL() time.Duration { return 5 * time.Minute }
func (fakeLeaderboardCfg) Limit() int         { return 100 }

func newTestService(repo *fakeWagerRepo, cache *fakeCache, clock *time.Time) *serv {
	return &serv{
		lbCfg:     fakeLeaderboardCfg{},
		wagerRepo: repo,
		cache:     cache,
		now:       func() time.Time { return *clock },
	}
}

func fixture() []model.LeaderboardEntry {
	return []model.LeaderboardEntry{
		{UserID: 1, Username: "alice", TotalWin: 900, Rank: 1},
		{UserID: 2, Username: "bob", TotalWin: 400, Rank: 2},
	}
}

func TestGetMissThenHit(t *testing.T) {
	clock := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	cache := newFakeCache(&clock)
	repo := &fakeWagerRepo{entries: fixture()}
	s := newTestService(repo, cache, &clock)

	// Первый запрос: промах, пересчет из журнала
	res, err := s.Get(context.Background(), model.PeriodAllTime)
	require.NoError(t, err)
	assert.False(t, res.CacheHit)
	assert.Equal(t, fixture(), res.Entries)
	assert.Equal(t, 1, repo.calls)

	// Повтор в пределах TTL: отдается кэш, журнал не трогаем
	repo.entries = nil
	res, err = s.Get(context.Background(), model.PeriodAllTime)
	require.NoError(t, err)
	assert.True(t, res.CacheHit)
	assert.Equal(t, fixture(), res.Entries)
	assert.Equal(t, 1, repo.calls)
}

func TestGetRecomputesAfterTTL(t *testing.T) {
	clock := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	cache := newFakeCache(&clock)
	repo := &fakeWagerRepo{entries: fixture()}
	s := newTestService(repo, cache, &clock)

	_, err := s.Get(context.Background(), model.PeriodAllTime)
	require.NoError(t, err)

	clock = clock.Add(6 * time.Minute)
	res, err := s.Get(context.Background(), model.PeriodAllTime)
	require.NoError(t, err)
	assert.False(t, res.CacheHit)
	assert.Equal(t, 2, repo.calls)
}

func TestGetPeriodWindows(t *testing.T) {
	clock := time.Date(2024, 6, 8, 12, 0, 0, 0, time.UTC)
	repo := &fakeWagerRepo{entries: fixture()}
	s := newTestService(repo, newFakeCache(&clock), &clock)

	_, err := s.Get(context.Background(), model.PeriodDaily)
	require.NoError(t, err)
	assert.Equal(t, clock.Add(-24*time.Hour), repo.lastSince)

	_, err = s.Get(context.Background(), model.PeriodWeekly)
	require.NoError(t, err)
	assert.Equal(t, clock.Add(-7*24*time.Hour), repo.lastSince)

	_, err = s.Get(context.Background(), model.PeriodAllTime)
	require.NoError(t, err)
	assert.True(t, repo.lastSince.IsZero())

	_, err = s.Get(context.Background(), "monthly")
	require.ErrorIs(t, err, apperr.ErrInvalidBet)
}

func TestGetCacheFailureFallsBackToStore(t *testing.T) {
	clock := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	cache := newFakeCache(&clock)
	cache.failGet = true
	repo := &fakeWagerRepo{entries: fixture()}
	s := newTestService(repo, cache, &clock)

	res, err := s.Get(context.Background(), model.PeriodAllTime)
	require.NoError(t, err)
	assert.False(t, res.CacheHit)
	assert.Equal(t, fixture(), res.Entries)
}

func TestGetStoreFailure(t *testing.T) {
	clock := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeWagerRepo{fail: true}
	s := newTestService(repo, newFakeCache(&clock), &clock)

	_, err := s.Get(context.Background(), model.PeriodAllTime)
	require.ErrorIs(t, err, apperr.ErrStoreUnavailable)
}
