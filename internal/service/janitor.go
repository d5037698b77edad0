package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/flowstate-live/flowstate/internal/biz/repo"
)

// DefaultCleanupInterval is how often the janitor prunes the archive
const DefaultCleanupInterval = 6 * time.Hour

// ArchiveJanitor periodically removes archived pulses and runs past their retention
type ArchiveJanitor struct {
	archive   repo.ArchiveRepo
	retention time.Duration
	interval  time.Duration
	now       func() time.Time
	logger    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewArchiveJanitor creates a new janitor
func NewArchiveJanitor(archive repo.ArchiveRepo, retention, interval time.Duration) *ArchiveJanitor {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}
	return &ArchiveJanitor{
		archive:   archive,
		retention: retention,
		interval:  interval,
		now:       time.Now,
		logger:    slog.With("component", "janitor"),
	}
}

// Start starts the cleanup loop. It runs one cleanup immediately.
func (j *ArchiveJanitor) Start(ctx context.Context) {
	j.ctx, j.cancel = context.WithCancel(ctx)

	j.wg.Add(1)
	go j.cleanupLoop()

	j.logger.Info("started", "retention", j.retention, "interval", j.interval)
}

// Stop stops the janitor
func (j *ArchiveJanitor) Stop() {
	if j.cancel != nil {
		j.cancel()
	}
	j.wg.Wait()
	j.logger.Info("stopped")
}

func (j *ArchiveJanitor) cleanupLoop() {
	defer j.wg.Done()

	j.cleanup()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-j.ctx.Done():
			return
		case <-ticker.C:
			j.cleanup()
		}
	}
}

// cleanup removes rows older than the retention window
func (j *ArchiveJanitor) cleanup() {
	if j.retention <= 0 {
		return
	}

	count, err := j.archive.Cleanup(j.ctx, j.now().Add(-j.retention))
	if err != nil {
		j.logger.Warn("cleanup failed", "error", err)
		return
	}

	if count > 0 {
		j.logger.Info("cleaned up archive", "rows", count)
	}
}
