// Package word implements the saved-words repository using PostgreSQL.
// The normalized word is the primary key; nested entry content lives in
// jsonb columns and is (un)marshalled by the pgx json codec.
package word

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/wordvault-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordvault-backend/internal/domain"
)

const table = "words"

var columns = []string{"word", "ipa", "meanings", "phrases", "origin_details", "translation", "ts"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides saved-word persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new saved-words repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByWord returns the entry for a normalized word.
// Returns domain.ErrNotFound if no entry exists.
func (r *Repo) GetByWord(ctx context.Context, word string) (*domain.WordEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"word": word}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	var entry domain.WordEntry
	if err := pgxscan.Get(ctx, q, &entry, sql, args...); err != nil {
		return nil, postgres.MapError(err, "word", word)
	}

	return &entry, nil
}

// ListAll returns every saved entry ordered by last write, newest first.
func (r *Repo) ListAll(ctx context.Context) ([]domain.WordEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select(columns...).
		From(table).
		OrderBy("ts DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	entries := []domain.WordEntry{}
	if err := pgxscan.Select(ctx, q, &entries, sql, args...); err != nil {
		return nil, postgres.MapError(err, "words", "")
	}

	return entries, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert inserts the entry or, when the word already exists, replaces all
// non-key fields. The ts column is refreshed to now() either way. This is a
// single conditional statement, so concurrent upserts for the same word
// cannot interleave partial field writes.
func (r *Repo) Upsert(ctx context.Context, entry *domain.WordEntry) (*domain.WordEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Insert(table).
		Columns("word", "ipa", "meanings", "phrases", "origin_details", "translation").
		Values(entry.Word, entry.IPA, entry.Meanings, entry.Phrases, entry.OriginDetails, entry.Translation).
		Suffix(`ON CONFLICT (word) DO UPDATE SET
			ipa = EXCLUDED.ipa,
			meanings = EXCLUDED.meanings,
			phrases = EXCLUDED.phrases,
			origin_details = EXCLUDED.origin_details,
			translation = EXCLUDED.translation,
			ts = now()
		RETURNING ` + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert query: %w", err)
	}

	var saved domain.WordEntry
	if err := pgxscan.Get(ctx, q, &saved, sql, args...); err != nil {
		return nil, postgres.MapError(err, "word", entry.Word)
	}

	return &saved, nil
}

// Delete removes an entry. Deleting an absent word is not an error at this
// layer; the service decides whether absence is a 404.
func (r *Repo) Delete(ctx context.Context, word string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Delete(table).
		Where(sq.Eq{"word": word}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "word", word)
	}

	return nil
}
