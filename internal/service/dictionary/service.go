// Package dictionary implements the lookup-cache-and-normalize pipeline:
// cache check, generative fetch on miss, payload validation, idempotent
// upsert, and the saved-words CRUD surface on top of the same store.
package dictionary

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/wordvault-backend/internal/domain"
)

type wordRepo interface {
	GetByWord(ctx context.Context, word string) (*domain.WordEntry, error)
	ListAll(ctx context.Context) ([]domain.WordEntry, error)
	Upsert(ctx context.Context, entry *domain.WordEntry) (*domain.WordEntry, error)
	Delete(ctx context.Context, word string) error
}

type historyRepo interface {
	Append(ctx context.Context, word string) (*domain.HistoryItem, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type lookupProvider interface {
	Lookup(ctx context.Context, word string) (map[string]any, error)
}

// Service implements dictionary operations: lookup-or-fetch and saved-word CRUD.
type Service struct {
	log      *slog.Logger
	words    wordRepo
	history  historyRepo
	tx       txManager
	provider lookupProvider
}

// NewService creates a new dictionary service.
func NewService(
	logger *slog.Logger,
	words wordRepo,
	history historyRepo,
	tx txManager,
	provider lookupProvider,
) *Service {
	return &Service{
		log:      logger.With("service", "dictionary"),
		words:    words,
		history:  history,
		tx:       tx,
		provider: provider,
	}
}
