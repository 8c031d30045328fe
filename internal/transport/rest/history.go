package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/wordvault-backend/internal/domain"
)

// historyService defines the minimal interface needed by HistoryHandler.
type historyService interface {
	AddSearch(ctx context.Context, word string) (*domain.HistoryItem, error)
	ListRecent(ctx context.Context, limit int) ([]domain.HistoryItem, error)
}

// HistoryHandler serves search-history REST endpoints.
type HistoryHandler struct {
	svc historyService
	log *slog.Logger
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(svc historyService, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{svc: svc, log: logger.With("handler", "history")}
}

type addSearchRequest struct {
	Word string `json:"word"`
}

// ListRecent handles GET /api/search-history?limit=N.
// A missing or malformed limit falls back to the configured default.
func (h *HistoryHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			limit = n
		}
	}

	items, err := h.svc.ListRecent(r.Context(), limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if items == nil {
		items = []domain.HistoryItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

// AddSearch handles POST /api/search-history.
func (h *HistoryHandler) AddSearch(w http.ResponseWriter, r *http.Request) {
	var req addSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.svc.AddSearch(r.Context(), req.Word)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}
