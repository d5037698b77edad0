package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/flowstate-live/flowstate/internal/biz/repo"
)

// SpamEscalator asks the completion service about messages the heuristics are unsure of
type SpamEscalator struct {
	completion repo.CompletionRepo
	prompts    PromptConfig
}

// NewSpamEscalator creates a new escalator. A nil completion repo disables escalation.
func NewSpamEscalator(completion repo.CompletionRepo, prompts PromptConfig) *SpamEscalator {
	return &SpamEscalator{
		completion: completion,
		prompts:    prompts.withDefaults(),
	}
}

// IsEnabled returns whether escalation is enabled
func (uc *SpamEscalator) IsEnabled() bool {
	return uc.completion != nil
}

// IsSpam returns true only when the model answered yes.
// Timeouts and failures keep the message.
func (uc *SpamEscalator) IsSpam(ctx context.Context, text string) bool {
	if uc.completion == nil {
		return false
	}

	answer, ok := uc.completion.Complete(ctx, renderMessagePrompt(uc.prompts.SpamCheckTemplate, text), repo.CompletionOptions{
		Temperature: 0,
		MaxTokens:   uc.prompts.MaxTokens,
		Timeout:     uc.prompts.SpamCheckTimeout,
	})
	if !ok {
		slog.Debug("spam check unavailable, keeping message", "component", "escalation")
		return false
	}
	return strings.Contains(strings.ToLower(answer), "yes")
}
