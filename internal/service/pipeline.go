package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/flowstate-live/flowstate/internal/biz/domain"
	"github.com/flowstate-live/flowstate/internal/biz/repo"
	"github.com/flowstate-live/flowstate/internal/biz/usecase"
)

// Stop reasons recorded on the archived session run
const (
	StopIdle              = "idle"
	StopShutdown          = "shutdown"
	StopSourceUnavailable = "source_unavailable"
	StopStreamEnded       = "stream_ended"
	StopSourceError       = "source_error"
)

const archiveTimeout = 5 * time.Second

// Gate is the registry's idle sweep as seen by a pipeline
type Gate interface {
	Continue(sessionID string, token uint64) bool
}

// PipelineDeps are the collaborators shared by all session pipelines
type PipelineDeps struct {
	Source      repo.ChatSourceRepo
	Classifier  *usecase.ClassifierUsecase
	Escalator   *usecase.SpamEscalator
	Vibe        *usecase.VibeClassifier
	Pulse       *usecase.PulseSummarizer
	Archive     repo.ArchiveRepo // optional
	Broadcaster *Broadcaster
	Gate        Gate
	Config      domain.SessionConfig
}

// Pipeline runs one session: it polls the chat source, classifies and filters
// messages, and emits message, vibe and pulse events to the session's subscribers.
type Pipeline struct {
	sessionID string
	token     uint64
	deps      PipelineDeps
	logger    *slog.Logger
	now       func() time.Time

	state atomic.Int32

	mu    sync.Mutex
	stats domain.SessionStats

	workers   sync.WaitGroup
	vibeBusy  atomic.Bool
	pulseBusy atomic.Bool
}

// NewPipeline creates the pipeline for a session. Zero config fields fall back to the defaults.
func NewPipeline(sessionID string, token uint64, deps PipelineDeps) *Pipeline {
	deps.Config = deps.Config.WithDefaults()
	return &Pipeline{
		sessionID: sessionID,
		token:     token,
		deps:      deps,
		logger:    slog.With("component", "pipeline", "session", sessionID),
		now:       time.Now,
	}
}

// State returns the current lifecycle state
func (p *Pipeline) State() domain.PipelineState {
	return domain.PipelineState(p.state.Load())
}

// Stats returns a copy of the session counters
func (p *Pipeline) Stats() domain.SessionStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}

func (p *Pipeline) setState(s domain.PipelineState) {
	p.state.Store(int32(s))
}

func (p *Pipeline) publishStats(stats domain.SessionStats) {
	p.mu.Lock()
	p.stats = stats
	p.mu.Unlock()
}

// Run drives the pipeline until the session goes idle, the chat source ends
// or ctx is cancelled. It always leaves the pipeline in the stopped state.
func (p *Pipeline) Run(ctx context.Context) {
	p.setState(domain.StateStarting)
	state := domain.NewSessionState(p.sessionID, p.deps.Config)
	runID := p.startRun(ctx)

	// Background enrichment stops broadcasting as soon as the loop exits
	workCtx, cancelWork := context.WithCancel(ctx)
	stream, reason := p.loop(ctx, workCtx, state)

	p.setState(domain.StateDraining)
	cancelWork()
	p.workers.Wait()
	if stream != nil {
		if err := stream.Close(); err != nil {
			p.logger.Warn("failed to close chat stream", "error", err)
		}
	}

	p.publishStats(state.Stats)
	p.finishRun(ctx, runID, reason, state.Stats)
	p.setState(domain.StateStopped)

	p.logger.Info("pipeline stopped", "reason", reason,
		"received", state.Stats.Received, "dropped", state.Stats.Dropped,
		"escalated", state.Stats.Escalated, "broadcast", state.Stats.Broadcast)
}

// loop is the starting and running phase. It returns the opened stream (if any)
// and the stop reason.
func (p *Pipeline) loop(ctx, workCtx context.Context, state *domain.SessionState) (repo.ChatStream, string) {
	stream, err := p.deps.Source.Open(ctx, p.sessionID)
	if err != nil {
		p.logger.Warn("failed to open chat source", "error", err)
		p.broadcastError(ctx, fmt.Sprintf("Could not connect to chat for %s: %v", p.sessionID, err))
		return nil, StopSourceUnavailable
	}

	connected := domain.NewConnectedEvent("Connected to chat for " + p.sessionID)
	connected.VideoID = p.sessionID
	p.deps.Broadcaster.Broadcast(ctx, p.sessionID, connected)
	p.setState(domain.StateRunning)
	p.logger.Info("pipeline running")

	cfg := p.deps.Config
	pollTicker := time.NewTicker(cfg.PollInterval)
	defer pollTicker.Stop()
	vibeTicker := time.NewTicker(cfg.VibeInterval)
	defer vibeTicker.Stop()
	pulseTicker := time.NewTicker(cfg.PulseInterval)
	defer pulseTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return stream, StopShutdown

		case <-pollTicker.C:
			if !p.deps.Gate.Continue(p.sessionID, p.token) {
				p.logger.Info("no subscribers left, draining")
				return stream, StopIdle
			}
			if reason, stop := p.pollOnce(ctx, stream, state); stop {
				return stream, reason
			}
			p.publishStats(state.Stats)

		case <-vibeTicker.C:
			p.startVibe(workCtx, state)

		case <-pulseTicker.C:
			p.startPulse(workCtx, state)
		}
	}
}

// pollOnce fetches and processes one batch. stop is true when the stream is over.
func (p *Pipeline) pollOnce(ctx context.Context, stream repo.ChatStream, state *domain.SessionState) (string, bool) {
	batch, err := stream.Poll(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return StopShutdown, true
		}
		if errors.Is(err, repo.ErrStreamEnded) {
			p.broadcastError(ctx, "Live chat ended for "+p.sessionID)
			return StopStreamEnded, true
		}
		p.logger.Warn("chat source failed", "error", err)
		p.broadcastError(ctx, err.Error())
		return StopSourceError, true
	}

	for _, raw := range batch {
		if ctx.Err() != nil {
			return StopShutdown, true
		}
		p.process(ctx, raw, state)
	}

	if !stream.Alive() {
		p.broadcastError(ctx, "Live chat ended for "+p.sessionID)
		return StopStreamEnded, true
	}
	return "", false
}

// process classifies one raw message and routes it
func (p *Pipeline) process(ctx context.Context, raw *domain.RawMessage, state *domain.SessionState) {
	msg := p.deps.Classifier.Classify(raw, state)
	state.Stats.Received++

	if msg.Spam.IsSpam {
		state.Stats.Dropped++
		p.logger.Debug("spam dropped", "author", msg.Author, "reason", msg.Spam.Reason(), "confidence", msg.Spam.Confidence)
		return
	}

	if p.deps.Escalator.IsEnabled() && p.deps.Classifier.NeedsEscalation(msg) {
		state.Stats.Escalated++
		if p.deps.Escalator.IsSpam(ctx, msg.Text) {
			state.Stats.Dropped++
			p.logger.Debug("spam dropped after escalation", "author", msg.Author)
			return
		}
	}

	state.Buffer.Append(msg)
	if p.deps.Vibe.IsEnabled() {
		state.PendingVibe = append(state.PendingVibe, msg)
		// Only the most recent batch is ever classified
		if limit := p.deps.Config.VibeBatchSize; limit > 0 && len(state.PendingVibe) > limit {
			state.PendingVibe = append([]*domain.ClassifiedMessage(nil), state.PendingVibe[len(state.PendingVibe)-limit:]...)
		}
	}

	if msg.Broadcastable() {
		p.deps.Broadcaster.Broadcast(ctx, p.sessionID, domain.NewMessageEvent(msg))
		state.Stats.Broadcast++
	}
}

// startVibe hands the pending batch to a background vibe pass unless one is in flight
func (p *Pipeline) startVibe(ctx context.Context, state *domain.SessionState) {
	if len(state.PendingVibe) == 0 || !p.deps.Vibe.IsEnabled() {
		return
	}
	if !p.vibeBusy.CompareAndSwap(false, true) {
		return
	}

	batch := state.PendingVibe
	state.PendingVibe = nil
	state.LastVibe = p.now()

	p.workers.Add(1)
	go func() {
		defer p.workers.Done()
		defer p.vibeBusy.Store(false)

		for _, msg := range p.deps.Vibe.Classify(ctx, batch) {
			if ctx.Err() != nil {
				return
			}
			p.deps.Broadcaster.Broadcast(ctx, p.sessionID, domain.NewVibeEvent(msg))
		}
	}()
}

// startPulse summarises and clears the rolling buffer once it holds enough messages
func (p *Pipeline) startPulse(ctx context.Context, state *domain.SessionState) {
	if state.Buffer.Len() < p.deps.Config.PulseMinMessages {
		return
	}
	if !p.pulseBusy.CompareAndSwap(false, true) {
		return
	}

	snapshot := state.Buffer.Snapshot()
	state.Buffer.Clear()
	state.LastPulse = p.now()

	if !p.deps.Pulse.IsEnabled() {
		p.pulseBusy.Store(false)
		return
	}

	p.workers.Add(1)
	go func() {
		defer p.workers.Done()
		defer p.pulseBusy.Store(false)

		pulse := p.deps.Pulse.Summarize(ctx, p.sessionID, snapshot)
		if pulse == nil || ctx.Err() != nil {
			return
		}
		p.logger.Info("pulse", "mood", pulse.Mood, "top_ticker", pulse.TopTicker, "summary", pulse.Summary)
		p.deps.Broadcaster.Broadcast(ctx, p.sessionID, domain.NewPulseEvent(pulse))
		p.savePulse(ctx, pulse)
	}()
}

func (p *Pipeline) broadcastError(ctx context.Context, message string) {
	event := domain.NewErrorEvent(message)
	event.VideoID = p.sessionID
	p.deps.Broadcaster.Broadcast(ctx, p.sessionID, event)
}

func (p *Pipeline) startRun(ctx context.Context) int64 {
	if p.deps.Archive == nil {
		return 0
	}
	ctx, cancel := context.WithTimeout(ctx, archiveTimeout)
	defer cancel()

	id, err := p.deps.Archive.StartRun(ctx, p.sessionID, p.now())
	if err != nil {
		p.logger.Warn("failed to archive run start", "error", err)
		return 0
	}
	return id
}

func (p *Pipeline) finishRun(ctx context.Context, runID int64, reason string, stats domain.SessionStats) {
	if p.deps.Archive == nil || runID == 0 {
		return
	}
	// Record the end even when the pipeline was cancelled
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), archiveTimeout)
	defer cancel()

	if err := p.deps.Archive.FinishRun(ctx, runID, p.now(), reason, stats); err != nil {
		p.logger.Warn("failed to archive run end", "error", err)
	}
}

func (p *Pipeline) savePulse(ctx context.Context, pulse *domain.PulseSummary) {
	if p.deps.Archive == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, archiveTimeout)
	defer cancel()

	if err := p.deps.Archive.SavePulse(ctx, pulse); err != nil {
		p.logger.Warn("failed to archive pulse", "error", err)
	}
}
