package data

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/flowstate-live/flowstate/internal/biz/domain"
	"github.com/flowstate-live/flowstate/internal/biz/repo"
)

func newTestArchive(t *testing.T) repo.ArchiveRepo {
	t.Helper()
	archive, err := NewArchiveRepo(filepath.Join(t.TempDir(), "nested", "archive.db"))
	if err != nil {
		t.Fatalf("NewArchiveRepo failed: %v", err)
	}
	t.Cleanup(func() { archive.Close() })
	return archive
}

func TestArchive_Runs(t *testing.T) {
	ctx := context.Background()
	archive := newTestArchive(t)
	start := time.Unix(1_700_000_000, 0)

	first, err := archive.StartRun(ctx, "vid1", start)
	if err != nil {
		t.Fatalf("StartRun failed: %v", err)
	}
	second, err := archive.StartRun(ctx, "vid2", start.Add(time.Minute))
	if err != nil {
		t.Fatalf("StartRun failed: %v", err)
	}

	stats := domain.SessionStats{Received: 40, Dropped: 5, Escalated: 2, Broadcast: 12}
	if err := archive.FinishRun(ctx, first, start.Add(10*time.Minute), "idle", stats); err != nil {
		t.Fatalf("FinishRun failed: %v", err)
	}

	runs, err := archive.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != second || !runs[0].Running() {
		t.Errorf("Expected newest run %d still running, got %+v", second, runs[0])
	}
	if runs[1].StopReason != "idle" || runs[1].Stats != stats {
		t.Errorf("Expected finished run with stats, got %+v", runs[1])
	}
	if !runs[1].EndedAt.Equal(start.Add(10 * time.Minute)) {
		t.Errorf("Expected ended_at to round-trip, got %v", runs[1].EndedAt)
	}
}

func TestArchive_Pulses(t *testing.T) {
	ctx := context.Background()
	archive := newTestArchive(t)
	base := time.Unix(1_700_000_000, 0)

	for i, summary := range []string{"quiet chat", "NVDA pumping", "chat turns bearish"} {
		err := archive.SavePulse(ctx, &domain.PulseSummary{
			SessionID:    "vid1",
			Summary:      summary,
			Mood:         domain.MoodMixed,
			TopTicker:    "NVDA",
			MessageCount: 10 + i,
			GeneratedAt:  base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("SavePulse failed: %v", err)
		}
	}
	_ = archive.SavePulse(ctx, &domain.PulseSummary{SessionID: "other", Summary: "x", Mood: domain.MoodNeutral, GeneratedAt: base})

	pulses, err := archive.ListPulses(ctx, "vid1", 2)
	if err != nil {
		t.Fatalf("ListPulses failed: %v", err)
	}
	if len(pulses) != 2 {
		t.Fatalf("Expected limit of 2 pulses, got %d", len(pulses))
	}
	if pulses[0].Summary != "chat turns bearish" || pulses[0].MessageCount != 12 {
		t.Errorf("Expected newest pulse first, got %+v", pulses[0])
	}
	if pulses[0].Mood != domain.MoodMixed || pulses[0].TopTicker != "NVDA" {
		t.Errorf("Expected mood and ticker to round-trip, got %+v", pulses[0])
	}
}

func TestArchive_Cleanup(t *testing.T) {
	ctx := context.Background()
	archive := newTestArchive(t)
	old := time.Unix(1_600_000_000, 0)
	recent := time.Unix(1_700_000_000, 0)

	_ = archive.SavePulse(ctx, &domain.PulseSummary{SessionID: "v", Summary: "old", Mood: domain.MoodNeutral, GeneratedAt: old})
	_ = archive.SavePulse(ctx, &domain.PulseSummary{SessionID: "v", Summary: "new", Mood: domain.MoodNeutral, GeneratedAt: recent})

	finished, _ := archive.StartRun(ctx, "v", old)
	_ = archive.FinishRun(ctx, finished, old.Add(time.Hour), "idle", domain.SessionStats{})
	// A run that never finished is kept regardless of age
	_, _ = archive.StartRun(ctx, "v", old)

	removed, err := archive.Cleanup(ctx, recent.Add(-time.Hour))
	if err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}
	if removed != 2 {
		t.Errorf("Expected 2 rows removed, got %d", removed)
	}

	pulses, _ := archive.ListPulses(ctx, "v", 10)
	if len(pulses) != 1 || pulses[0].Summary != "new" {
		t.Errorf("Expected only the recent pulse, got %+v", pulses)
	}
	runs, _ := archive.ListRuns(ctx, 10)
	if len(runs) != 1 || !runs[0].Running() {
		t.Errorf("Expected only the unfinished run, got %+v", runs)
	}
}
