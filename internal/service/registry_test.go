package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/flowstate-live/flowstate/internal/biz/domain"
	"github.com/flowstate-live/flowstate/internal/biz/usecase"
)

// fakeRunner blocks until cancelled or stopped, polling the registry like a pipeline
type fakeRunner struct {
	registry  *Registry
	sessionID string
	token     uint64
	stop      chan struct{}
	cancelled atomic.Bool
	exited    chan struct{}
}

func (r *fakeRunner) Run(ctx context.Context) {
	defer close(r.exited)
	ticker := time.NewTicker(5 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			r.cancelled.Store(true)
			return
		case <-r.stop:
			return
		case <-ticker.C:
			if !r.registry.Continue(r.sessionID, r.token) {
				return
			}
		}
	}
}

func (r *fakeRunner) State() domain.PipelineState { return domain.StateRunning }
func (r *fakeRunner) Stats() domain.SessionStats  { return domain.SessionStats{Received: 7} }

type runnerLog struct {
	mu      sync.Mutex
	runners []*fakeRunner
}

func (l *runnerLog) all() []*fakeRunner {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]*fakeRunner(nil), l.runners...)
}

func newTestRegistry() (*Registry, *runnerLog) {
	log := &runnerLog{}
	var reg *Registry
	reg = NewRegistry(func(sessionID string, token uint64) Runner {
		r := &fakeRunner{registry: reg, sessionID: sessionID, token: token, stop: make(chan struct{}), exited: make(chan struct{})}
		log.mu.Lock()
		log.runners = append(log.runners, r)
		log.mu.Unlock()
		return r
	})
	return reg, log
}

func TestRegistry_SubscribeInvalidInput(t *testing.T) {
	reg, log := newTestRegistry()

	_, err := reg.Subscribe(context.Background(), "https://example.com/nothing", newFakeSubscriber("a"))
	if !errors.Is(err, usecase.ErrInvalidSessionID) {
		t.Fatalf("Expected ErrInvalidSessionID, got %v", err)
	}
	if len(reg.Sessions()) != 0 || len(log.all()) != 0 {
		t.Error("Expected no session for invalid input")
	}
}

func TestRegistry_OnePipelinePerSession(t *testing.T) {
	reg, log := newTestRegistry()
	defer reg.Shutdown(context.Background())

	a, b := newFakeSubscriber("a"), newFakeSubscriber("b")
	first, err := reg.Subscribe(context.Background(), "https://youtu.be/dQw4w9WgXcQ", a)
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	second, err := reg.Subscribe(context.Background(), "dQw4w9WgXcQ", b)
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	if first.SessionID != "dQw4w9WgXcQ" || !first.Started {
		t.Errorf("Expected first subscribe to start the session, got %+v", first)
	}
	if second.Started {
		t.Error("Expected second subscribe to join the running session")
	}
	if n := len(log.all()); n != 1 {
		t.Errorf("Expected exactly 1 pipeline, got %d", n)
	}
	if subs := reg.Subscribers("dQw4w9WgXcQ"); len(subs) != 2 || subs[0].ID() != "a" || subs[1].ID() != "b" {
		t.Errorf("Expected subscribers [a b], got %v", subs)
	}

	sessions := reg.Sessions()
	if len(sessions) != 1 || sessions[0].Subscribers != 2 || sessions[0].Stats.Received != 7 {
		t.Errorf("Unexpected session info: %+v", sessions)
	}
}

func TestRegistry_SingleFocus(t *testing.T) {
	reg, _ := newTestRegistry()
	defer reg.Shutdown(context.Background())

	a := newFakeSubscriber("a")
	_, _ = reg.Subscribe(context.Background(), "videoAAAAAA", a)
	_, _ = reg.Subscribe(context.Background(), "videoBBBBBB", a)

	if subs := reg.Subscribers("videoAAAAAA"); len(subs) != 0 {
		t.Errorf("Expected subscriber to leave the first session, got %v", subs)
	}
	if subs := reg.Subscribers("videoBBBBBB"); len(subs) != 1 {
		t.Errorf("Expected subscriber on the second session, got %v", subs)
	}
	if id, ok := reg.SessionOf(a); !ok || id != "videoBBBBBB" {
		t.Errorf("Expected focus on videoBBBBBB, got %q %v", id, ok)
	}
}

func TestRegistry_IdleSweepEvicts(t *testing.T) {
	reg, log := newTestRegistry()
	defer reg.Shutdown(context.Background())

	a := newFakeSubscriber("a")
	_, _ = reg.Subscribe(context.Background(), "vid", a)

	if id, ok := reg.Unsubscribe(a); !ok || id != "vid" {
		t.Fatalf("Expected unsubscribe from vid, got %q %v", id, ok)
	}
	if _, ok := reg.Unsubscribe(a); ok {
		t.Error("Expected second unsubscribe to be a no-op")
	}

	runner := log.all()[0]
	select {
	case <-runner.exited:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected pipeline to stop once idle")
	}
	eventually(t, func() bool { return len(reg.Sessions()) == 0 }, "session evicted")
}

func TestRegistry_ResubscribeWhileDraining(t *testing.T) {
	reg, log := newTestRegistry()
	defer reg.Shutdown(context.Background())

	a := newFakeSubscriber("a")
	_, _ = reg.Subscribe(context.Background(), "vid", a)
	reg.Unsubscribe(a)

	// Mark the entry draining without letting the old runner exit yet
	first := log.all()[0]
	if reg.Continue("vid", first.token) {
		t.Fatal("Expected Continue to report idle")
	}

	res, err := reg.Subscribe(context.Background(), "vid", a)
	if err != nil || !res.Started {
		t.Fatalf("Expected a fresh pipeline, got %+v (%v)", res, err)
	}
	if n := len(log.all()); n != 2 {
		t.Fatalf("Expected 2 pipelines, got %d", n)
	}

	<-first.exited
	if reg.Continue("vid", first.token) {
		t.Error("Expected stale token to be refused")
	}

	// The old pipeline's exit must not evict the new entry
	time.Sleep(20 * time.Millisecond)
	if subs := reg.Subscribers("vid"); len(subs) != 1 {
		t.Errorf("Expected new entry to survive old pipeline exit, got %v", subs)
	}
}

func TestRegistry_EvictClearsFocus(t *testing.T) {
	reg, log := newTestRegistry()
	defer reg.Shutdown(context.Background())

	a := newFakeSubscriber("a")
	_, _ = reg.Subscribe(context.Background(), "vid", a)

	runner := log.all()[0]
	close(runner.stop)
	<-runner.exited

	eventually(t, func() bool {
		_, ok := reg.SessionOf(a)
		return !ok
	}, "subscriber focus cleared on eviction")
}

func TestRegistry_Shutdown(t *testing.T) {
	reg, log := newTestRegistry()

	_, _ = reg.Subscribe(context.Background(), "video1", newFakeSubscriber("a"))
	_, _ = reg.Subscribe(context.Background(), "video2", newFakeSubscriber("b"))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := reg.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}

	for _, r := range log.all() {
		if !r.cancelled.Load() {
			t.Errorf("Expected pipeline %s to be cancelled", r.sessionID)
		}
	}

	if _, err := reg.Subscribe(context.Background(), "video3", newFakeSubscriber("c")); !errors.Is(err, ErrRegistryClosed) {
		t.Errorf("Expected ErrRegistryClosed, got %v", err)
	}
}
