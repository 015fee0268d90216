// Package suggestion asks a generative-language API for troubleshooting
// steps for a maintenance problem. Every failure degrades to an unavailable
// result; nothing here returns an error to the caller.
package suggestion

import (
	"context"
	"io"
	"log/slog"
	"time"
)

const (
	// DefaultBaseURL is Gemini's OpenAI-compatible endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	// DefaultModel is the chat model asked for suggestions.
	DefaultModel = "gemini-2.5-flash"
	// DefaultTimeout bounds a single suggestion request.
	DefaultTimeout = 20 * time.Second
)

// Result is the outcome of a suggestion request. When Available is false
// Suggestions is empty and the caller should show that the feature is off or
// failed.
type Result struct {
	Suggestions []string `json:"suggestions"`
	Available   bool     `json:"available"`
}

// Unavailable is the result returned for any failure or when the gateway is
// disabled.
func Unavailable() Result {
	return Result{Suggestions: []string{}}
}

// Gateway produces troubleshooting suggestions for a problem description.
type Gateway interface {
	Suggest(ctx context.Context, problem string) Result
}

// Config configures the gateway. An empty APIKey disables it.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// New resolves the credential once and returns the matching gateway.
func New(cfg Config, logger *slog.Logger) Gateway {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.APIKey == "" {
		logger.Info("suggestion gateway disabled: no API key configured")
		return disabled{}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return newOpenAIGateway(cfg, logger)
}

type disabled struct{}

func (disabled) Suggest(context.Context, string) Result {
	return Unavailable()
}

// Enabled reports whether g can ever return suggestions.
func Enabled(g Gateway) bool {
	switch v := g.(type) {
	case disabled:
		return false
	case *observed:
		return Enabled(v.next)
	default:
		return true
	}
}
