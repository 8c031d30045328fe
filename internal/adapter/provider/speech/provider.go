// Package speech synthesizes pronunciation audio through an
// OpenAI-compatible audio/speech endpoint.
package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/wordvault-backend/internal/config"
	"github.com/heartmarshall/wordvault-backend/internal/domain"
)

const defaultContentType = "audio/mpeg"

// Provider requests synthesized speech for short strings.
type Provider struct {
	baseURL    string
	apiKey     string
	model      string
	voice      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from TTSConfig.
func NewProvider(cfg config.TTSConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		voice:      cfg.Voice,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "speech"),
	}
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		model:      "tts-1",
		voice:      "alloy",
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "speech"),
	}
}

type speechRequest struct {
	Model string `json:"model"`
	Voice string `json:"voice"`
	Input string `json:"input"`
}

// Speak synthesizes audio for the text and returns raw bytes plus the
// response MIME type. An empty audio payload is an error.
func (p *Provider) Speak(ctx context.Context, text string) ([]byte, string, error) {
	body, err := json.Marshal(speechRequest{Model: p.model, Voice: p.voice, Input: text})
	if err != nil {
		return nil, "", fmt.Errorf("speech: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/audio/speech", bytes.NewReader(body))
	if err != nil {
		return nil, "", fmt.Errorf("speech: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "speech request failed", slog.String("error", err.Error()))
		return nil, "", fmt.Errorf("speech: %w: request failed", domain.ErrProvider)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		p.log.ErrorContext(ctx, "speech unexpected status", slog.Int("status", resp.StatusCode))
		return nil, "", fmt.Errorf("speech: %w: status %d", domain.ErrProvider, resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("speech: %w: read body", domain.ErrProvider)
	}
	if len(audio) == 0 {
		return nil, "", fmt.Errorf("speech: %w: empty audio payload", domain.ErrProvider)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultContentType
	}

	p.log.DebugContext(ctx, "speech synthesized",
		slog.Int("bytes", len(audio)),
		slog.String("content_type", contentType),
	)

	return audio, contentType, nil
}
