package service

import (
	"context"
	"testing"
	"time"
)

func TestArchiveJanitor_RunsCleanup(t *testing.T) {
	archive := newFakeArchive()
	now := time.Unix(1_700_000_000, 0)

	j := NewArchiveJanitor(archive, 24*time.Hour, 10*time.Millisecond)
	j.now = func() time.Time { return now }

	j.Start(context.Background())
	eventually(t, func() bool { return archive.cleanupCount() >= 2 }, "periodic cleanup")
	j.Stop()

	archive.mu.Lock()
	cutoff := archive.cleanups[0]
	archive.mu.Unlock()
	if !cutoff.Equal(now.Add(-24 * time.Hour)) {
		t.Errorf("Expected cutoff 24h before now, got %v", cutoff)
	}
}

func TestArchiveJanitor_ZeroRetentionKeepsEverything(t *testing.T) {
	archive := newFakeArchive()
	j := NewArchiveJanitor(archive, 0, time.Hour)

	j.Start(context.Background())
	j.Stop()

	if n := archive.cleanupCount(); n != 0 {
		t.Errorf("Expected no cleanup with zero retention, got %d", n)
	}
}
