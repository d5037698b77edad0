package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/flowstate-live/flowstate/internal/biz/domain"
	"github.com/flowstate-live/flowstate/internal/biz/repo"
	"github.com/flowstate-live/flowstate/internal/biz/usecase"
)

// ============ Subscriber ============

// fakeSubscriber records every event it receives
type fakeSubscriber struct {
	id     string
	events chan *domain.Event
	fail   bool
	block  bool
}

func newFakeSubscriber(id string) *fakeSubscriber {
	return &fakeSubscriber{id: id, events: make(chan *domain.Event, 256)}
}

func (s *fakeSubscriber) ID() string { return s.id }

func (s *fakeSubscriber) Send(ctx context.Context, event *domain.Event) error {
	if s.fail {
		return errors.New("connection reset")
	}
	if s.block {
		<-ctx.Done()
		return ctx.Err()
	}
	select {
	case s.events <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// waitFor returns the first event of type t, skipping others
func (s *fakeSubscriber) waitFor(tb testing.TB, t domain.EventType) *domain.Event {
	tb.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev := <-s.events:
			if ev.Type == t {
				return ev
			}
		case <-deadline:
			tb.Fatalf("subscriber %s: timed out waiting for %s event", s.id, t)
			return nil
		}
	}
}

// waitForAll collects the first event of each type, in any arrival order
func (s *fakeSubscriber) waitForAll(tb testing.TB, types ...domain.EventType) map[domain.EventType]*domain.Event {
	tb.Helper()
	got := make(map[domain.EventType]*domain.Event)
	want := make(map[domain.EventType]bool)
	for _, t := range types {
		want[t] = true
	}
	deadline := time.After(2 * time.Second)
	for len(got) < len(want) {
		select {
		case ev := <-s.events:
			if want[ev.Type] && got[ev.Type] == nil {
				got[ev.Type] = ev
			}
		case <-deadline:
			tb.Fatalf("subscriber %s: timed out waiting for %v, got %d", s.id, types, len(got))
			return nil
		}
	}
	return got
}

// drain returns every event received so far
func (s *fakeSubscriber) drain() []*domain.Event {
	var out []*domain.Event
	for {
		select {
		case ev := <-s.events:
			out = append(out, ev)
		default:
			return out
		}
	}
}

// ============ Chat source ============

// fakeChatSource hands out scripted streams
type fakeChatSource struct {
	mu      sync.Mutex
	streams map[string]*fakeStream
	openErr error
	opened  int
}

func newFakeChatSource() *fakeChatSource {
	return &fakeChatSource{streams: make(map[string]*fakeStream)}
}

func (s *fakeChatSource) stream(sessionID string) *fakeStream {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.streams[sessionID]
	if !ok {
		st = &fakeStream{alive: true}
		s.streams[sessionID] = st
	}
	return st
}

func (s *fakeChatSource) openCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opened
}

func (s *fakeChatSource) Open(ctx context.Context, sessionID string) (repo.ChatStream, error) {
	s.mu.Lock()
	s.opened++
	err := s.openErr
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return s.stream(sessionID), nil
}

// fakeStream yields pushed batches one per poll
type fakeStream struct {
	mu      sync.Mutex
	batches [][]*domain.RawMessage
	alive   bool
	endErr  error
	closed  bool
}

func (s *fakeStream) push(msgs ...*domain.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches = append(s.batches, msgs)
}

func (s *fakeStream) end(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.endErr = err
}

func (s *fakeStream) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *fakeStream) Poll(ctx context.Context) ([]*domain.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.batches) > 0 {
		batch := s.batches[0]
		s.batches = s.batches[1:]
		return batch, nil
	}
	if s.endErr != nil {
		return nil, s.endErr
	}
	return nil, nil
}

func (s *fakeStream) Alive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alive
}

func (s *fakeStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// ============ Completion ============

// fakeCompletion answers by prompt kind
type fakeCompletion struct {
	mu       sync.Mutex
	spam     string
	vibe     func(message string) string
	pulse    string
	requests []string
}

func (c *fakeCompletion) Complete(ctx context.Context, prompt string, opts repo.CompletionOptions) (string, bool) {
	c.mu.Lock()
	c.requests = append(c.requests, prompt)
	c.mu.Unlock()

	switch {
	case strings.Contains(prompt, "spam, promotion"):
		return c.spam, c.spam != ""
	case strings.Contains(prompt, "EXACTLY ONE category"):
		if c.vibe == nil {
			return "", false
		}
		i := strings.Index(prompt, `Message: "`)
		return c.vibe(prompt[i:]), true
	case strings.Contains(prompt, "Summarize this YouTube live chat"):
		return c.pulse, c.pulse != ""
	}
	return "", false
}

func (c *fakeCompletion) count(kind string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, p := range c.requests {
		if strings.Contains(p, kind) {
			n++
		}
	}
	return n
}

// ============ Archive ============

type fakeArchive struct {
	mu       sync.Mutex
	nextID   int64
	runs     map[int64]*domain.SessionRun
	pulses   []*domain.PulseSummary
	cleanups []time.Time
}

func newFakeArchive() *fakeArchive {
	return &fakeArchive{runs: make(map[int64]*domain.SessionRun)}
}

func (a *fakeArchive) StartRun(ctx context.Context, sessionID string, startedAt time.Time) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.nextID++
	a.runs[a.nextID] = &domain.SessionRun{ID: a.nextID, SessionID: sessionID, StartedAt: startedAt}
	return a.nextID, nil
}

func (a *fakeArchive) FinishRun(ctx context.Context, runID int64, endedAt time.Time, reason string, stats domain.SessionStats) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	run, ok := a.runs[runID]
	if !ok {
		return fmt.Errorf("unknown run %d", runID)
	}
	run.EndedAt = endedAt
	run.StopReason = reason
	run.Stats = stats
	return nil
}

func (a *fakeArchive) ListRuns(ctx context.Context, limit int) ([]*domain.SessionRun, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	var out []*domain.SessionRun
	for id := a.nextID; id > 0 && len(out) < limit; id-- {
		run := *a.runs[id]
		out = append(out, &run)
	}
	return out, nil
}

func (a *fakeArchive) SavePulse(ctx context.Context, pulse *domain.PulseSummary) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pulses = append(a.pulses, pulse)
	return nil
}

func (a *fakeArchive) ListPulses(ctx context.Context, sessionID string, limit int) ([]*domain.PulseSummary, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	var out []*domain.PulseSummary
	for i := len(a.pulses) - 1; i >= 0 && len(out) < limit; i-- {
		if a.pulses[i].SessionID == sessionID {
			out = append(out, a.pulses[i])
		}
	}
	return out, nil
}

func (a *fakeArchive) Cleanup(ctx context.Context, before time.Time) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cleanups = append(a.cleanups, before)
	return 0, nil
}

func (a *fakeArchive) Close() error { return nil }

func (a *fakeArchive) pulseCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.pulses)
}

func (a *fakeArchive) cleanupCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.cleanups)
}

// ============ Helpers ============

func testHubConfig() HubConfig {
	return HubConfig{
		Session: domain.SessionConfig{
			PollInterval:     5 * time.Millisecond,
			VibeInterval:     20 * time.Millisecond,
			VibeBatchSize:    10,
			PulseInterval:    30 * time.Millisecond,
			PulseMinMessages: 3,
			BufferSize:       100,
		},
		Spam:    usecase.DefaultSpamConfig(),
		Prompts: usecase.DefaultPromptConfig,
	}
}

// eventually polls cond until it holds or the deadline passes
func eventually(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met: %s", msg)
}

func raw(id, author, text string) *domain.RawMessage {
	return &domain.RawMessage{ID: id, Author: author, Text: text}
}
