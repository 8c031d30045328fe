// Package claude wraps the Anthropic Messages API as the generative
// dictionary provider. The model's free-text answer is reduced to one raw
// JSON object; all trust decisions happen later, in the service validator.
package claude

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/wordvault-backend/internal/config"
	"github.com/heartmarshall/wordvault-backend/internal/domain"
)

// Provider calls Claude for structured dictionary entries.
type Provider struct {
	client  anthropic.Client
	model   string
	timeout time.Duration
	log     *slog.Logger
}

// NewProvider creates a Provider from ProviderConfig.
func NewProvider(cfg config.ProviderConfig, logger *slog.Logger) *Provider {
	return &Provider{
		client:  anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:   cfg.Model,
		timeout: cfg.Timeout,
		log:     logger.With("adapter", "claude"),
	}
}

// Lookup requests a structured lexical entry for the word and returns the
// decoded JSON object. No retry here: a failed generation is a failed
// lookup, the caller decides what to surface.
func (p *Provider) Lookup(ctx context.Context, word string) (map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: 4096,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildLookupPrompt(word))),
		},
	})
	if err != nil {
		p.log.ErrorContext(ctx, "lookup request failed",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("lookup %q: %w: %s", word, domain.ErrProvider, "request failed")
	}

	if len(msg.Content) == 0 {
		return nil, fmt.Errorf("lookup %q: %w: empty response", word, domain.ErrProvider)
	}

	responseText := msg.Content[0].Text

	// Extract JSON from the response (between first { and last }).
	jsonStr, err := extractJSON(responseText)
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w: %v", word, domain.ErrProvider, err)
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		return nil, fmt.Errorf("lookup %q: %w: response is not valid JSON", word, domain.ErrProvider)
	}

	p.log.DebugContext(ctx, "lookup response parsed",
		slog.String("word", word),
		slog.Int("keys", len(payload)),
	)

	return payload, nil
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
