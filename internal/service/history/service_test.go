package history

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordvault-backend/internal/config"
	"github.com/heartmarshall/wordvault-backend/internal/domain"
)

type mockHistoryRepo struct {
	AppendFunc     func(ctx context.Context, word string) (*domain.HistoryItem, error)
	ListRecentFunc func(ctx context.Context, limit int) ([]domain.HistoryItem, error)
}

func (m *mockHistoryRepo) Append(ctx context.Context, word string) (*domain.HistoryItem, error) {
	return m.AppendFunc(ctx, word)
}

func (m *mockHistoryRepo) ListRecent(ctx context.Context, limit int) ([]domain.HistoryItem, error) {
	return m.ListRecentFunc(ctx, limit)
}

func newTestService(repo *mockHistoryRepo) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(logger, repo, config.HistoryConfig{DefaultLimit: 5, MaxLimit: 50})
}

func TestService_AddSearch_Normalizes(t *testing.T) {
	t.Parallel()

	repo := &mockHistoryRepo{
		AppendFunc: func(_ context.Context, word string) (*domain.HistoryItem, error) {
			assert.Equal(t, "scoop", word)
			return &domain.HistoryItem{ID: 7, Word: word, SearchedAt: time.Now()}, nil
		},
	}

	svc := newTestService(repo)
	item, err := svc.AddSearch(context.Background(), "  Scoop ")

	require.NoError(t, err)
	assert.Equal(t, int64(7), item.ID)
	assert.Equal(t, "scoop", item.Word)
}

func TestService_AddSearch_EmptyWord(t *testing.T) {
	t.Parallel()

	svc := newTestService(&mockHistoryRepo{})
	_, err := svc.AddSearch(context.Background(), "   ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_ListRecent_LimitClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{name: "zero falls back to default", requested: 0, want: 5},
		{name: "negative falls back to default", requested: -3, want: 5},
		{name: "in range passes through", requested: 12, want: 12},
		{name: "above max clamps", requested: 500, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotLimit int
			repo := &mockHistoryRepo{
				ListRecentFunc: func(_ context.Context, limit int) ([]domain.HistoryItem, error) {
					gotLimit = limit
					return []domain.HistoryItem{}, nil
				},
			}

			svc := newTestService(repo)
			_, err := svc.ListRecent(context.Background(), tt.requested)

			require.NoError(t, err)
			assert.Equal(t, tt.want, gotLimit)
		})
	}
}

func TestService_ListRecent_RepoError(t *testing.T) {
	t.Parallel()

	repo := &mockHistoryRepo{
		ListRecentFunc: func(_ context.Context, _ int) ([]domain.HistoryItem, error) {
			return nil, domain.ErrStorage
		},
	}

	svc := newTestService(repo)
	_, err := svc.ListRecent(context.Background(), 10)

	assert.ErrorIs(t, err, domain.ErrStorage)
}
