package data

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/flowstate-live/flowstate/internal/biz/repo"
	"github.com/flowstate-live/flowstate/internal/infra/openai"
)

func TestNewCompletionRepo_NilClient(t *testing.T) {
	if r := NewCompletionRepo(nil); r != nil {
		t.Errorf("Expected nil repo for nil client, got %v", r)
	}
}

func TestCompletionRepo_Complete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"yes"}}]}`))
	}))
	defer srv.Close()

	r := NewCompletionRepo(openai.NewClient(srv.URL, "key", "model"))
	text, ok := r.Complete(context.Background(), "spam?", repo.CompletionOptions{Timeout: time.Second})
	if !ok || text != "yes" {
		t.Errorf("Expected ok 'yes', got %q %v", text, ok)
	}
}

func TestCompletionRepo_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	r := NewCompletionRepo(openai.NewClient(srv.URL, "key", "model"))
	start := time.Now()
	text, ok := r.Complete(context.Background(), "slow", repo.CompletionOptions{Timeout: 50 * time.Millisecond})
	if ok || text != "" {
		t.Errorf("Expected absent answer on timeout, got %q %v", text, ok)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("Expected timeout to bound the call, took %v", elapsed)
	}
}
