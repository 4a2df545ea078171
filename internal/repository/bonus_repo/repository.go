package bonus_repo

import (
	"context"
	"errors"
	"time"

	"arcade_backend/internal/model"
	"arcade_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table         = "bonus_claims"
	colID         = "id"
	colUserID     = "user_id"
	colClaimedAt  = "claimed_at"
	colStreakDays = "streak_days"
	colReward     = "reward"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewBonusRepository(dbc *pgxpool.Pool) repository.BonusRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// GetLatestBonusRecord - последняя запись о бонусе пользователя.
// Именно она определяет право на следующее получение.
// Возвращает nil, nil если записей еще нет
func (r *repo) GetLatestBonusRecord(ctx context.Context, userID int) (*model.DailyBonusRecord, error) {
	// Формируем запрос
	query := sq.Select(colID, colUserID, colClaimedAt, colStreakDays, colReward).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colClaimedAt + " DESC").
		Limit(1).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var rec model.DailyBonusRecord
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&rec.ID, &rec.UserID, &rec.ClaimedAt, &rec.StreakDays, &rec.Reward)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &rec, nil
}

// AppendBonusRecord - условная вставка новой записи о бонусе.
// INSERT проходит только если у пользователя нет записи новее
// notClaimedSince: проверка выполняется тем же запросом, что и вставка,
// поэтому конкурирующее получение внутри окна дает rowsAffected = 0.
// Записи не изменяются и не удаляются
func (r *repo) AppendBonusRecord(ctx context.Context, record *model.DailyBonusRecord, notClaimedSince time.Time) (bool, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colUserID, colClaimedAt, colStreakDays, colReward).
		Select(sq.Select().
			Column(sq.Expr("?, ?, ?, ?", record.UserID, record.ClaimedAt, record.StreakDays, record.Reward)).
			Where(sq.Expr(
				"NOT EXISTS (SELECT 1 FROM "+table+" WHERE "+colUserID+" = ? AND "+colClaimedAt+" > ?)",
				record.UserID, notClaimedSince))).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return false, err
	}

	return res.RowsAffected() == 1, nil
}
