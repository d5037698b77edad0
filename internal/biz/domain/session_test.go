package domain

import (
	"fmt"
	"testing"
	"time"
)

func TestRollingBuffer_EvictsOldest(t *testing.T) {
	buf := NewRollingBuffer(3)
	for i := 0; i < 5; i++ {
		buf.Append(&ClassifiedMessage{Text: fmt.Sprintf("msg-%d", i)})
	}

	if buf.Len() != 3 {
		t.Fatalf("Expected 3 buffered messages, got %d", buf.Len())
	}

	snap := buf.Snapshot()
	want := []string{"msg-2", "msg-3", "msg-4"}
	for i, msg := range snap {
		if msg.Text != want[i] {
			t.Errorf("Expected snapshot[%d] = %s, got %s", i, want[i], msg.Text)
		}
	}
}

func TestRollingBuffer_SnapshotIsIndependent(t *testing.T) {
	buf := NewRollingBuffer(10)
	buf.Append(&ClassifiedMessage{Text: "a"})

	snap := buf.Snapshot()
	buf.Clear()

	if len(snap) != 1 {
		t.Errorf("Expected snapshot to survive Clear, got %d items", len(snap))
	}
	if buf.Len() != 0 {
		t.Errorf("Expected empty buffer after Clear, got %d", buf.Len())
	}
}

func TestRollingBuffer_DefaultCapacity(t *testing.T) {
	if got := NewRollingBuffer(0).Cap(); got != 100 {
		t.Errorf("Expected default capacity 100, got %d", got)
	}
}

func TestTickerSet_NilSafe(t *testing.T) {
	var s *TickerSet
	if s.Contains("NVDA") {
		t.Error("Expected nil set to contain nothing")
	}

	s = NewTickerSet()
	s.Add("NVDA")
	if !s.Contains("NVDA") || s.Len() != 1 {
		t.Error("Expected set to contain NVDA")
	}
}

func TestSessionState_HistoryGetOrCreate(t *testing.T) {
	state := NewSessionState("abc", DefaultSessionConfig())

	h1 := state.History("alice")
	h1.Record(time.Now(), 1, 20)
	h2 := state.History("alice")

	if h1 != h2 {
		t.Error("Expected the same history for the same author")
	}
	if h2.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", h2.Len())
	}
}

func TestPipelineState_String(t *testing.T) {
	cases := map[PipelineState]string{
		StateStarting: "starting",
		StateRunning:  "running",
		StateDraining: "draining",
		StateStopped:  "stopped",
	}
	for state, want := range cases {
		if state.String() != want {
			t.Errorf("Expected %s, got %s", want, state.String())
		}

		var decoded PipelineState
		if err := decoded.UnmarshalText([]byte(want)); err != nil || decoded != state {
			t.Errorf("Expected %s to decode to %v, got %v (%v)", want, state, decoded, err)
		}
	}

	var bogus PipelineState
	if err := bogus.UnmarshalText([]byte("exploded")); err == nil {
		t.Error("Expected error for unknown state")
	}
}

func TestControlMessage_Target(t *testing.T) {
	c := &ControlMessage{Type: "subscribe", URL: " https://youtu.be/abc "}
	if c.Normalized() != ControlSubscribe {
		t.Errorf("Expected SUBSCRIBE, got %s", c.Normalized())
	}
	if c.Target() != "https://youtu.be/abc" {
		t.Errorf("Expected trimmed url, got %q", c.Target())
	}

	c = &ControlMessage{Type: ControlSubscribe, VideoID: "vid", URL: "https://youtu.be/other"}
	if c.Target() != "vid" {
		t.Errorf("Expected videoId to take precedence, got %q", c.Target())
	}
}
