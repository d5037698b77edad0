package repo

import (
	"context"
	"time"

	"github.com/flowstate-live/flowstate/internal/biz/domain"
)

// ArchiveRepo stores pulse summaries and session run aggregates.
// Individual chat messages are never stored.
type ArchiveRepo interface {
	// StartRun records a new pipeline run and returns its id
	StartRun(ctx context.Context, sessionID string, startedAt time.Time) (int64, error)

	// FinishRun closes a run with its final counters
	FinishRun(ctx context.Context, runID int64, endedAt time.Time, reason string, stats domain.SessionStats) error

	// ListRuns returns the most recent runs, newest first
	ListRuns(ctx context.Context, limit int) ([]*domain.SessionRun, error)

	// SavePulse archives a pulse summary
	SavePulse(ctx context.Context, pulse *domain.PulseSummary) error

	// ListPulses returns a session's pulses, newest first
	ListPulses(ctx context.Context, sessionID string, limit int) ([]*domain.PulseSummary, error)

	// Cleanup removes pulses and finished runs older than before
	Cleanup(ctx context.Context, before time.Time) (int64, error)

	// Close closes the underlying store
	Close() error
}
