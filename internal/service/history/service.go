// Package history implements the search-history operations: best-effort
// append on lookups, explicit record requests, and the recent-searches list.
package history

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wordvault-backend/internal/config"
	"github.com/heartmarshall/wordvault-backend/internal/domain"
)

type historyRepo interface {
	Append(ctx context.Context, word string) (*domain.HistoryItem, error)
	ListRecent(ctx context.Context, limit int) ([]domain.HistoryItem, error)
}

// Service implements search-history operations.
type Service struct {
	log     *slog.Logger
	history historyRepo
	cfg     config.HistoryConfig
}

// NewService creates a new history service.
func NewService(logger *slog.Logger, history historyRepo, cfg config.HistoryConfig) *Service {
	return &Service{
		log:     logger.With("service", "history"),
		history: history,
		cfg:     cfg,
	}
}

// AddSearch records a search for the given word. The word is normalized
// before it is stored so history rows share keys with the words table.
func (s *Service) AddSearch(ctx context.Context, raw string) (*domain.HistoryItem, error) {
	word := domain.NormalizeWord(raw)
	if word == "" {
		return nil, domain.NewValidationError("word", "Word is required")
	}

	item, err := s.history.Append(ctx, word)
	if err != nil {
		return nil, fmt.Errorf("append search history: %w", err)
	}

	return item, nil
}

// ListRecent returns the most recent searches, newest first. A non-positive
// limit falls back to the configured default; anything above the configured
// maximum is clamped down to it.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]domain.HistoryItem, error) {
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}
	if limit > s.cfg.MaxLimit {
		limit = s.cfg.MaxLimit
	}

	items, err := s.history.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent searches: %w", err)
	}

	return items, nil
}
