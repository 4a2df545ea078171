package repository

import (
	"context"
	"time"

	"arcade_backend/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)

	GetBalance(ctx context.Context, id int) (int64, error)
	// CompareAndSetBalance - условная запись баланса: обновление проходит
	// только если текущее значение в БД равно expectedOld.
	// Возвращает false при проигранной гонке
	CompareAndSetBalance(ctx context.Context, id int, expectedOld, newValue int64) (bool, error)
}

type WagerRepository interface {
	AppendWagerEvent(ctx context.Context, event *model.WagerEvent) error
	// AggregatePayouts - SUM(payout) по пользователям за окно периода,
	// по убыванию, не больше limit строк
	AggregatePayouts(ctx context.Context, since time.Time, limit int) ([]model.LeaderboardEntry, error)
}

type BonusRepository interface {
	// GetLatestBonusRecord возвращает nil, nil если записей нет
	GetLatestBonusRecord(ctx context.Context, userID int) (*model.DailyBonusRecord, error)
	// AppendBonusRecord - условная вставка: запись добавляется только если
	// у пользователя нет записи новее notClaimedSince. Возвращает false,
	// если конкурирующее получение успело вставить такую запись
	AppendBonusRecord(ctx context.Context, record *model.DailyBonusRecord, notClaimedSince time.Time) (bool, error)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type LeaderboardCache interface {
	// Get возвращает ok=false при промахе или истекшем TTL
	Get(ctx context.Context, key string) (entries []model.LeaderboardEntry, ok bool, err error)
	Put(ctx context.Context, key string, entries []model.LeaderboardEntry, ttl time.Duration) error
}
