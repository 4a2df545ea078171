package wager_repo

import (
	"context"
	"time"

	"arcade_backend/internal/model"
	"arcade_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "wager_events"
	colID        = "id"
	colUserID    = "user_id"
	colGameType  = "game_type"
	colStake     = "stake"
	colPayout    = "payout"
	colOutcome   = "outcome"
	colCreatedAt = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewWagerRepository(dbc *pgxpool.Pool) repository.WagerRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// AppendWagerEvent - вставка записи в журнал ставок.
// Журнал только дописывается, записи не изменяются
func (r *repo) AppendWagerEvent(ctx context.Context, event *model.WagerEvent) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colUserID, colGameType, colStake, colPayout, colOutcome, colCreatedAt).
		Values(event.UserID, string(event.GameType), event.Stake, event.Payout, event.Outcome, event.CreatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// AggregatePayouts - сумма выплат по пользователям начиная с since
// (нулевое since - за все время), по убыванию, не больше limit строк
func (r *repo) AggregatePayouts(ctx context.Context, since time.Time, limit int) ([]model.LeaderboardEntry, error) {
	// Формируем запрос
	query := sq.Select("w."+colUserID, "u.username", "SUM(w."+colPayout+") AS total_win").
		From(table + " w").
		Join("users u ON u.id = w." + colUserID).
		GroupBy("w."+colUserID, "u.username").
		OrderBy("total_win DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	if !since.IsZero() {
		query = query.Where(sq.GtOrEq{"w." + colCreatedAt: since})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.LeaderboardEntry
	for rows.Next() {
		var e model.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Username, &e.TotalWin); err != nil {
			return nil, err
		}
		e.Rank = len(entries) + 1
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
