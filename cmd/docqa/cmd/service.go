package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mfenderov/docqa/internal/config"
	"github.com/mfenderov/docqa/internal/events"
	"github.com/mfenderov/docqa/internal/gemini"
	"github.com/mfenderov/docqa/internal/research"
)

// newService wires the Gemini gateway into a research service.
func newService(cfg config.Config) (*research.Service, error) {
	client, err := gemini.New(gemini.Config{
		APIKey:          cfg.Gemini.APIKey,
		BaseURL:         cfg.Gemini.BaseURL,
		Model:           cfg.Gemini.Model,
		Temperature:     cfg.Gemini.Temperature,
		TopK:            cfg.Gemini.TopK,
		TopP:            cfg.Gemini.TopP,
		MaxOutputTokens: cfg.Gemini.MaxOutputTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	opts := research.Options{
		Seed:            cfg.Research.Seed,
		MaxParallel:     cfg.Research.MaxParallel,
		MaxContentChars: cfg.Research.MaxContentChars,
	}
	if verbose {
		opts.Observer = logEvent
	}

	return research.New(client, opts), nil
}

func logEvent(e events.Event) {
	attrs := []any{"request_id", e.RequestID, "kind", e.Kind, "state", e.State}
	if e.DocumentID != "" {
		attrs = append(attrs, "document_id", e.DocumentID)
	}
	if e.Err != nil {
		attrs = append(attrs, "error", e.Err)
	}
	if e.State == events.StateResult {
		attrs = append(attrs, "fallback", e.Fallback, "duration", e.Duration)
	}
	slog.Debug("request state", attrs...)
}

// withTimeout bounds one model request by the configured Gemini timeout.
func withTimeout(ctx context.Context, cfg config.Config) (context.Context, context.CancelFunc) {
	if cfg.Gemini.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, cfg.Gemini.Timeout)
}
