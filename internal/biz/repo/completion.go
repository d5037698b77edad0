package repo

import (
	"context"
	"time"
)

// CompletionOptions tunes a single completion call
type CompletionOptions struct {
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// CompletionRepo is the text completion service interface
type CompletionRepo interface {
	// Complete sends a single-turn prompt and returns the reply text.
	// ok is false when the call timed out or failed; callers treat that as "no answer".
	Complete(ctx context.Context, prompt string, opts CompletionOptions) (text string, ok bool)
}
