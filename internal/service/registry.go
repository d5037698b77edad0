package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/flowstate-live/flowstate/internal/biz/domain"
	"github.com/flowstate-live/flowstate/internal/biz/repo"
	"github.com/flowstate-live/flowstate/internal/biz/usecase"
)

// ErrRegistryClosed is returned by Subscribe after Shutdown
var ErrRegistryClosed = errors.New("session registry is shut down")

// Runner is a session pipeline as seen by the registry
type Runner interface {
	Run(ctx context.Context)
	State() domain.PipelineState
	Stats() domain.SessionStats
}

// RunnerFactory builds the pipeline for a session. token identifies the
// registry entry the pipeline belongs to and is passed back to Continue.
type RunnerFactory func(sessionID string, token uint64) Runner

// SubscribeResult describes the outcome of a subscription
type SubscribeResult struct {
	SessionID string
	Started   bool // a new pipeline was started for the session
}

// SessionInfo is a snapshot of one active session
type SessionInfo struct {
	SessionID   string               `json:"session_id"`
	Subscribers int                  `json:"subscribers"`
	State       domain.PipelineState `json:"state"`
	StartedAt   time.Time            `json:"started_at"`
	Stats       domain.SessionStats  `json:"stats"`
}

// sessionEntry is the registry's record of one running pipeline
type sessionEntry struct {
	token       uint64
	subscribers map[string]repo.Subscriber
	runner      Runner
	draining    bool
	startedAt   time.Time
	cancel      context.CancelFunc
}

// Registry tracks which subscriber watches which session and owns the
// pipeline goroutines. A subscriber watches at most one session at a time.
type Registry struct {
	factory RunnerFactory
	logger  *slog.Logger

	mu        sync.Mutex
	sessions  map[string]*sessionEntry
	focus     map[string]string // subscriber id -> session id
	nextToken uint64
	closed    bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRegistry creates a new registry
func NewRegistry(factory RunnerFactory) *Registry {
	ctx, cancel := context.WithCancel(context.Background())
	return &Registry{
		factory:  factory,
		logger:   slog.With("component", "registry"),
		sessions: make(map[string]*sessionEntry),
		focus:    make(map[string]string),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Subscribe resolves input to a session id, moves sub onto that session and
// starts its pipeline if none is running. Malformed input creates nothing.
func (r *Registry) Subscribe(ctx context.Context, input string, sub repo.Subscriber) (SubscribeResult, error) {
	sessionID, err := usecase.ResolveSessionID(input)
	if err != nil {
		return SubscribeResult{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return SubscribeResult{}, ErrRegistryClosed
	}

	if prev, ok := r.focus[sub.ID()]; ok && prev != sessionID {
		r.detachLocked(sub.ID(), prev)
	}

	result := SubscribeResult{SessionID: sessionID}
	entry, ok := r.sessions[sessionID]
	if !ok || entry.draining {
		if ok {
			// The old pipeline is on its way out; it must not deliver to the new entry's subscribers
			entry.cancel()
		}
		entry = r.startLocked(sessionID)
		result.Started = true
	}

	entry.subscribers[sub.ID()] = sub
	r.focus[sub.ID()] = sessionID

	r.logger.Info("subscribed", "session", sessionID, "subscriber", sub.ID(),
		"subscribers", len(entry.subscribers), "started", result.Started)
	return result, nil
}

// startLocked creates an entry and launches its pipeline goroutine
func (r *Registry) startLocked(sessionID string) *sessionEntry {
	r.nextToken++
	token := r.nextToken

	ctx, cancel := context.WithCancel(r.ctx)
	entry := &sessionEntry{
		token:       token,
		subscribers: make(map[string]repo.Subscriber),
		runner:      r.factory(sessionID, token),
		startedAt:   time.Now(),
		cancel:      cancel,
	}
	r.sessions[sessionID] = entry

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer cancel()
		entry.runner.Run(ctx)
		r.evict(sessionID, token)
	}()

	return entry
}

// Unsubscribe removes sub from its session. The pipeline notices on its next
// cycle if it was the last subscriber.
func (r *Registry) Unsubscribe(sub repo.Subscriber) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sessionID, ok := r.focus[sub.ID()]
	if !ok {
		return "", false
	}
	r.detachLocked(sub.ID(), sessionID)
	r.logger.Info("unsubscribed", "session", sessionID, "subscriber", sub.ID())
	return sessionID, true
}

// OnSubscriberDisconnect forgets a subscriber whose connection is gone
func (r *Registry) OnSubscriberDisconnect(sub repo.Subscriber) {
	r.Unsubscribe(sub)
}

func (r *Registry) detachLocked(subID, sessionID string) {
	delete(r.focus, subID)
	if entry, ok := r.sessions[sessionID]; ok {
		delete(entry.subscribers, subID)
	}
}

// Continue is the pipeline's idle sweep. It returns false, and marks the entry
// draining, once the session has no subscribers left or the entry was replaced.
func (r *Registry) Continue(sessionID string, token uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[sessionID]
	if !ok || entry.token != token {
		return false
	}
	if len(entry.subscribers) == 0 {
		entry.draining = true
		return false
	}
	return true
}

// evict removes the session entry after its pipeline exited, unless a newer
// pipeline has already taken the slot
func (r *Registry) evict(sessionID string, token uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[sessionID]
	if !ok || entry.token != token {
		return
	}
	for subID := range entry.subscribers {
		if r.focus[subID] == sessionID {
			delete(r.focus, subID)
		}
	}
	delete(r.sessions, sessionID)
	r.logger.Info("session evicted", "session", sessionID)
}

// Subscribers returns a snapshot of the session's subscribers ordered by id
func (r *Registry) Subscribers(sessionID string) []repo.Subscriber {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[sessionID]
	if !ok {
		return nil
	}
	subs := make([]repo.Subscriber, 0, len(entry.subscribers))
	for _, sub := range entry.subscribers {
		subs = append(subs, sub)
	}
	sort.Slice(subs, func(i, j int) bool { return subs[i].ID() < subs[j].ID() })
	return subs
}

// SessionOf returns the session a subscriber currently watches
func (r *Registry) SessionOf(sub repo.Subscriber) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sessionID, ok := r.focus[sub.ID()]
	return sessionID, ok
}

// Sessions returns a snapshot of all active sessions ordered by id
func (r *Registry) Sessions() []SessionInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	infos := make([]SessionInfo, 0, len(r.sessions))
	for id, entry := range r.sessions {
		state := entry.runner.State()
		if entry.draining && state < domain.StateDraining {
			state = domain.StateDraining
		}
		infos = append(infos, SessionInfo{
			SessionID:   id,
			Subscribers: len(entry.subscribers),
			State:       state,
			StartedAt:   entry.startedAt,
			Stats:       entry.runner.Stats(),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].SessionID < infos[j].SessionID })
	return infos
}

// Shutdown cancels every pipeline and waits for them to stop or for ctx to expire
func (r *Registry) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()

	r.cancel()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
