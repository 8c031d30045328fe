package dictionary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wordvault-backend/internal/domain"
)

// SaveWord validates a full client draft and upserts it under the
// normalized key. Saving an existing word replaces all non-key fields and
// refreshes the timestamp.
func (s *Service) SaveWord(ctx context.Context, payload map[string]any) (*domain.WordEntry, error) {
	entry, err := ParseEntryPayload(payload)
	if err != nil {
		// An explicit save with an empty flat definition is a client
		// mistake, not a missing word.
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("definition", "Definition is required")
		}
		return nil, err
	}

	// The flat variant parses without a word; an explicit save still
	// needs the key.
	entry.Word = domain.NormalizeWord(entry.Word)
	if entry.Word == "" {
		return nil, domain.NewValidationError("word", "Word is required")
	}

	var saved *domain.WordEntry
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var upsertErr error
		saved, upsertErr = s.words.Upsert(txCtx, entry)
		return upsertErr
	})
	if txErr != nil {
		return nil, fmt.Errorf("save word %q: %w", entry.Word, txErr)
	}

	s.log.InfoContext(ctx, "word saved", slog.String("word", saved.Word))
	return saved, nil
}

// GetWord returns a saved entry by its (normalized) word.
func (s *Service) GetWord(ctx context.Context, rawWord string) (*domain.WordEntry, error) {
	normalized := domain.NormalizeWord(rawWord)
	if normalized == "" {
		return nil, domain.NewValidationError("word", "Word is required")
	}
	return s.words.GetByWord(ctx, normalized)
}

// ListWords returns all saved entries, most recently written first.
func (s *Service) ListWords(ctx context.Context) ([]domain.WordEntry, error) {
	return s.words.ListAll(ctx)
}

// DeleteWord removes a saved entry. Unlike the store's idempotent delete,
// absence here is a not-found error so the client gets a meaningful 404.
func (s *Service) DeleteWord(ctx context.Context, rawWord string) error {
	normalized := domain.NormalizeWord(rawWord)
	if normalized == "" {
		return domain.NewValidationError("word", "Word is required")
	}

	if _, err := s.words.GetByWord(ctx, normalized); err != nil {
		return err
	}

	if err := s.words.Delete(ctx, normalized); err != nil {
		return fmt.Errorf("delete word %q: %w", normalized, err)
	}

	s.log.InfoContext(ctx, "word deleted", slog.String("word", normalized))
	return nil
}
