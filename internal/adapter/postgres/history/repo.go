// Package history implements the append-only search-history repository.
// Rows are never updated or deleted here; retrieval is newest-first.
package history

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/wordvault-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordvault-backend/internal/domain"
)

const table = "search_history"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides search-history persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new search-history repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Append inserts one history row for the word and returns it with the
// assigned id and timestamp. The word does not need to exist in words.
func (r *Repo) Append(ctx context.Context, word string) (*domain.HistoryItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Insert(table).
		Columns("word").
		Values(word).
		Suffix("RETURNING id, word, searched_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build append query: %w", err)
	}

	var item domain.HistoryItem
	if err := pgxscan.Get(ctx, q, &item, sql, args...); err != nil {
		return nil, postgres.MapError(err, "search_history", word)
	}

	return &item, nil
}

// ListRecent returns up to limit rows ordered by (searched_at DESC, id DESC).
// The id tiebreak keeps same-instant rows in insertion order, newest first.
// A non-positive limit returns no rows; the uint64 conversion for the SQL
// builder must never see a negative value.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]domain.HistoryItem, error) {
	if limit <= 0 {
		return []domain.HistoryItem{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select("id", "word", "searched_at").
		From(table).
		OrderBy("searched_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	items := []domain.HistoryItem{}
	if err := pgxscan.Select(ctx, q, &items, sql, args...); err != nil {
		return nil, postgres.MapError(err, "search_history", "")
	}

	return items, nil
}
