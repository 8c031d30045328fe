package dictionary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wordvault-backend/internal/domain"
)

// LookupResult carries the resolved entry and whether it came from the store.
type LookupResult struct {
	Entry     *domain.WordEntry
	FromCache bool
}

// Lookup resolves a word: normalize, check the store, on miss synthesize an
// entry via the generative provider, validate it, and upsert under the
// normalized key. A history row is appended for every attempt; its failure
// is logged and never aborts the lookup.
//
// Two concurrent lookups of the same unseen word may both reach the
// provider; the later upsert wins. That race is accepted: the store's
// single conditional upsert keeps every outcome internally consistent.
func (s *Service) Lookup(ctx context.Context, rawWord string) (*LookupResult, error) {
	normalized := domain.NormalizeWord(rawWord)
	if normalized == "" {
		return nil, domain.NewValidationError("word", "Word is required")
	}

	s.appendHistory(ctx, normalized)

	// 1. Cache check.
	existing, err := s.words.GetByWord(ctx, normalized)
	if err == nil {
		return &LookupResult{Entry: existing, FromCache: true}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get word %q: %w", normalized, err)
	}

	// 2. Miss: ask the generative provider (outside any transaction).
	payload, err := s.provider.Lookup(ctx, normalized)
	if err != nil {
		s.log.ErrorContext(ctx, "generative lookup failed",
			slog.String("word", normalized),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("generate entry: %w", err)
	}

	// 3. Validate untrusted provider JSON into a total entry.
	entry, err := ParseEntryPayload(payload)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("word %q: %w", normalized, domain.ErrNotFound)
		}
		s.log.WarnContext(ctx, "provider payload failed validation",
			slog.String("word", normalized),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	// A structurally valid entry with no meanings is still "nothing found";
	// negative results are never persisted.
	if len(entry.Meanings) == 0 {
		return nil, fmt.Errorf("word %q: %w", normalized, domain.ErrNotFound)
	}

	// 4. Persist under the normalized key, never the provider's casing.
	entry.Word = normalized

	var saved *domain.WordEntry
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var upsertErr error
		saved, upsertErr = s.words.Upsert(txCtx, entry)
		return upsertErr
	})
	if txErr != nil {
		return nil, fmt.Errorf("save entry %q: %w", normalized, txErr)
	}

	s.log.InfoContext(ctx, "entry generated and saved",
		slog.String("word", normalized),
		slog.Int("meanings", len(saved.Meanings)),
	)

	return &LookupResult{Entry: saved, FromCache: false}, nil
}

// appendHistory records the lookup attempt. Best effort: a history failure
// must not turn a successful lookup into an error.
func (s *Service) appendHistory(ctx context.Context, word string) {
	if _, err := s.history.Append(ctx, word); err != nil {
		s.log.WarnContext(ctx, "append search history failed",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
	}
}
