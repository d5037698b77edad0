package data

import (
	"context"
	"log/slog"

	"github.com/flowstate-live/flowstate/internal/biz/repo"
	"github.com/flowstate-live/flowstate/internal/infra/openai"
)

// completionRepo implements the completion repository over an OpenAI-compatible endpoint
type completionRepo struct {
	client *openai.Client
	logger *slog.Logger
}

// NewCompletionRepo creates a completion repository.
// A nil client returns nil, which disables every AI-backed feature.
func NewCompletionRepo(client *openai.Client) repo.CompletionRepo {
	if client == nil {
		return nil
	}
	return &completionRepo{
		client: client,
		logger: slog.With("component", "completion", "model", client.Model()),
	}
}

// Complete sends prompt with the per-call timeout applied
func (r *completionRepo) Complete(ctx context.Context, prompt string, opts repo.CompletionOptions) (string, bool) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	text, err := r.client.Complete(ctx, prompt, opts.Temperature, opts.MaxTokens)
	if err != nil {
		r.logger.Debug("completion failed", "error", err)
		return "", false
	}
	if text == "" {
		return "", false
	}
	return text, true
}
