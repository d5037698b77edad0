package usecase

import (
	"context"
	"sync"

	"github.com/flowstate-live/flowstate/internal/biz/repo"
)

// MockCompletionRepo implements repo.CompletionRepo for testing
type MockCompletionRepo struct {
	mu      sync.Mutex
	reply   func(prompt string) (string, bool)
	prompts []string
	opts    []repo.CompletionOptions
}

func (m *MockCompletionRepo) Complete(ctx context.Context, prompt string, opts repo.CompletionOptions) (string, bool) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.opts = append(m.opts, opts)
	m.mu.Unlock()

	if m.reply == nil {
		return "", false
	}
	return m.reply(prompt)
}

func (m *MockCompletionRepo) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

func fixedReply(text string) func(string) (string, bool) {
	return func(string) (string, bool) { return text, true }
}
