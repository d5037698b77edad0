package api

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/flowstate-live/flowstate/internal/biz/domain"
	"github.com/flowstate-live/flowstate/internal/data"
)

func TestClient_RoundTrip(t *testing.T) {
	archive, err := data.NewArchiveRepo(filepath.Join(t.TempDir(), "archive.db"))
	if err != nil {
		t.Fatalf("NewArchiveRepo failed: %v", err)
	}
	defer archive.Close()

	ctx := context.Background()
	now := time.Now().Truncate(time.Second)
	if err := archive.SavePulse(ctx, &domain.PulseSummary{
		SessionID:    "dQw4w9WgXcQ",
		Summary:      "quiet chat",
		Mood:         domain.MoodNeutral,
		MessageCount: 10,
		GeneratedAt:  now,
	}); err != nil {
		t.Fatalf("SavePulse failed: %v", err)
	}
	runID, _ := archive.StartRun(ctx, "dQw4w9WgXcQ", now)
	_ = archive.FinishRun(ctx, runID, now.Add(time.Minute), "idle", domain.SessionStats{Received: 40, Dropped: 3})

	sessions := staticSessions{{SessionID: "dQw4w9WgXcQ", Subscribers: 1, State: domain.StateDraining, StartedAt: now}}
	srv := httptest.NewServer(NewServer(":0", sessions, archive, nil).Handler())
	defer srv.Close()

	client := NewClient(srv.URL + "/")

	if err := client.Health(ctx); err != nil {
		t.Fatalf("Health failed: %v", err)
	}

	gotSessions, err := client.Sessions(ctx)
	if err != nil {
		t.Fatalf("Sessions failed: %v", err)
	}
	if len(gotSessions) != 1 || gotSessions[0].State != domain.StateDraining {
		t.Errorf("Expected one draining session, got %+v", gotSessions)
	}

	runs, err := client.Runs(ctx, 5)
	if err != nil {
		t.Fatalf("Runs failed: %v", err)
	}
	if len(runs) != 1 || runs[0].StopReason != "idle" || runs[0].Stats.Received != 40 {
		t.Errorf("Unexpected runs: %+v", runs)
	}

	pulses, err := client.Pulses(ctx, "dQw4w9WgXcQ", 5)
	if err != nil {
		t.Fatalf("Pulses failed: %v", err)
	}
	if len(pulses) != 1 || pulses[0].TopTicker != nil || pulses[0].MoodLabel != domain.MoodNeutral {
		t.Errorf("Unexpected pulses: %+v", pulses)
	}
}

func TestClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(NewServer(":0", staticSessions(nil), nil, nil).Handler())
	defer srv.Close()

	_, err := NewClient(srv.URL).Runs(context.Background(), 5)
	if err == nil || !strings.Contains(err.Error(), "HTTP 503") {
		t.Errorf("Expected HTTP 503 error, got %v", err)
	}
}

