package rest

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"
)

// speechService defines the minimal interface needed by TTSHandler.
type speechService interface {
	Speak(ctx context.Context, text string) ([]byte, string, error)
}

// TTSHandler serves the text-to-speech REST endpoint.
type TTSHandler struct {
	svc        speechService
	maxTextLen int
	log        *slog.Logger
}

// NewTTSHandler creates a TTSHandler.
func NewTTSHandler(svc speechService, maxTextLen int, logger *slog.Logger) *TTSHandler {
	return &TTSHandler{
		svc:        svc,
		maxTextLen: maxTextLen,
		log:        logger.With("handler", "tts"),
	}
}

type ttsRequest struct {
	Text string `json:"text"`
}

type ttsResponse struct {
	AudioBase64 string `json:"audioBase64"`
	ContentType string `json:"contentType"`
}

// Speak handles POST /api/tts.
func (h *TTSHandler) Speak(w http.ResponseWriter, r *http.Request) {
	var req ttsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		writeFieldError(w, http.StatusBadRequest, "Text is required", "text")
		return
	}
	if utf8.RuneCountInString(text) > h.maxTextLen {
		writeFieldError(w, http.StatusBadRequest, "Text is too long", "text")
		return
	}

	audio, contentType, err := h.svc.Speak(r.Context(), text)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ttsResponse{
		AudioBase64: base64.StdEncoding.EncodeToString(audio),
		ContentType: contentType,
	})
}
