package usecase

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestSpamEscalator_IsSpam(t *testing.T) {
	tests := []struct {
		name  string
		reply func(string) (string, bool)
		want  bool
	}{
		{"yes", fixedReply("Yes."), true},
		{"no", fixedReply("no"), false},
		{"failure keeps message", func(string) (string, bool) { return "", false }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockCompletionRepo{reply: tt.reply}
			uc := NewSpamEscalator(mock, PromptConfig{})

			if got := uc.IsSpam(context.Background(), "FREE SHARES HERE"); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
			if !strings.Contains(mock.prompts[0], `Message: "FREE SHARES HERE"`) {
				t.Errorf("Expected message quoted in prompt, got %q", mock.prompts[0])
			}
			if mock.opts[0].Temperature != 0 || mock.opts[0].Timeout != 3*time.Second {
				t.Errorf("Unexpected completion options %+v", mock.opts[0])
			}
		})
	}
}

func TestSpamEscalator_Disabled(t *testing.T) {
	uc := NewSpamEscalator(nil, PromptConfig{})
	if uc.IsEnabled() {
		t.Error("Expected escalator without completion repo to be disabled")
	}
	if uc.IsSpam(context.Background(), "anything") {
		t.Error("Expected disabled escalator to keep messages")
	}
}
