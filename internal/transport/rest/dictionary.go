package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordvault-backend/internal/domain"
	"github.com/heartmarshall/wordvault-backend/internal/service/dictionary"
)

// dictionaryService defines the minimal interface needed by DictionaryHandler.
type dictionaryService interface {
	Lookup(ctx context.Context, word string) (*dictionary.LookupResult, error)
	SaveWord(ctx context.Context, payload map[string]any) (*domain.WordEntry, error)
	GetWord(ctx context.Context, word string) (*domain.WordEntry, error)
	ListWords(ctx context.Context) ([]domain.WordEntry, error)
	DeleteWord(ctx context.Context, word string) error
}

// DictionaryHandler serves lookup and saved-word REST endpoints.
type DictionaryHandler struct {
	svc dictionaryService
	log *slog.Logger
}

// NewDictionaryHandler creates a DictionaryHandler.
func NewDictionaryHandler(svc dictionaryService, logger *slog.Logger) *DictionaryHandler {
	return &DictionaryHandler{svc: svc, log: logger.With("handler", "dictionary")}
}

type lookupRequest struct {
	Word string `json:"word"`
}

type lookupResponse struct {
	Result    *domain.WordEntry `json:"result"`
	FromCache bool              `json:"fromCache"`
}

// Lookup handles POST /api/dictionary/lookup.
func (h *DictionaryHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	var req lookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.svc.Lookup(r.Context(), req.Word)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, lookupResponse{
		Result:    result.Entry,
		FromCache: result.FromCache,
	})
}

// ListWords handles GET /api/words.
func (h *DictionaryHandler) ListWords(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ListWords(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if entries == nil {
		entries = []domain.WordEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// GetWord handles GET /api/words/{word}.
func (h *DictionaryHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.GetWord(r.Context(), r.PathValue("word"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// SaveWord handles POST /api/words.
func (h *DictionaryHandler) SaveWord(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := h.svc.SaveWord(r.Context(), payload)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// DeleteWord handles DELETE /api/words/{word}.
func (h *DictionaryHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteWord(r.Context(), r.PathValue("word")); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
