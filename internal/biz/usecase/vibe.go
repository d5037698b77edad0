package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/flowstate-live/flowstate/internal/biz/domain"
	"github.com/flowstate-live/flowstate/internal/biz/repo"
)

// VibeClassifier labels recent messages as funny or uplifting
type VibeClassifier struct {
	completion repo.CompletionRepo
	prompts    PromptConfig
	batchSize  int
}

// NewVibeClassifier creates a classifier that looks at the batchSize most recent messages per pass
func NewVibeClassifier(completion repo.CompletionRepo, prompts PromptConfig, batchSize int) *VibeClassifier {
	if batchSize <= 0 {
		batchSize = domain.DefaultSessionConfig().VibeBatchSize
	}
	return &VibeClassifier{
		completion: completion,
		prompts:    prompts.withDefaults(),
		batchSize:  batchSize,
	}
}

// IsEnabled returns whether vibe classification is enabled
func (uc *VibeClassifier) IsEnabled() bool {
	return uc.completion != nil
}

// Classify sends the most recent messages of batch to the model concurrently and
// returns copies of the ones labelled funny or uplifting, in batch order.
func (uc *VibeClassifier) Classify(ctx context.Context, batch []*domain.ClassifiedMessage) []*domain.ClassifiedMessage {
	if uc.completion == nil || len(batch) == 0 {
		return nil
	}
	if len(batch) > uc.batchSize {
		batch = batch[len(batch)-uc.batchSize:]
	}

	vibes := make([]domain.Vibe, len(batch))
	var wg sync.WaitGroup
	for i, msg := range batch {
		wg.Add(1)
		go func(i int, text string) {
			defer wg.Done()
			vibes[i] = uc.ClassifyOne(ctx, text)
		}(i, msg.Text)
	}
	wg.Wait()

	var out []*domain.ClassifiedMessage
	for i, msg := range batch {
		if vibes[i] != domain.VibeNone {
			out = append(out, msg.WithVibe(vibes[i]))
		}
	}
	return out
}

// ClassifyOne asks the model for the vibe of one message
func (uc *VibeClassifier) ClassifyOne(ctx context.Context, text string) domain.Vibe {
	if uc.completion == nil {
		return domain.VibeNone
	}
	answer, ok := uc.completion.Complete(ctx, renderMessagePrompt(uc.prompts.VibeTemplate, text), repo.CompletionOptions{
		Temperature: 0,
		MaxTokens:   uc.prompts.MaxTokens,
		Timeout:     uc.prompts.VibeTimeout,
	})
	if !ok {
		return domain.VibeNone
	}
	return ParseVibe(answer)
}

// ParseVibe maps a free-text model answer to a vibe
func ParseVibe(answer string) domain.Vibe {
	answer = strings.ToLower(answer)
	switch {
	case strings.Contains(answer, "funny"):
		return domain.VibeFunny
	case strings.Contains(answer, "uplifting"):
		return domain.VibeUplifting
	default:
		return domain.VibeNone
	}
}
