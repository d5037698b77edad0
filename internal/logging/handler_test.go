package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestHandler_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, &Options{Level: slog.LevelInfo}))

	logger.Debug("hidden")
	logger.With("session", "abc123").Info("pulse generated", "mood", "neutral", "summary", "chat is calm")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected debug record to be filtered, got %q", out)
	}
	if !strings.Contains(out, "INF [abc123] pulse generated") {
		t.Errorf("Expected level and session tag, got %q", out)
	}
	if !strings.Contains(out, ` mood=neutral`) || !strings.Contains(out, ` summary="chat is calm"`) {
		t.Errorf("Expected inline attrs, got %q", out)
	}
	if strings.Contains(out, "\033[") {
		t.Errorf("Expected no ANSI codes without color, got %q", out)
	}
}

func TestHandler_BlocksAndGroups(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil))

	logger.WithGroup("llm").Warn("completion failed", "model", "qwen", "prompt", "line one\nline two")

	out := buf.String()
	if !strings.Contains(out, "WRN completion failed llm.model=qwen") {
		t.Errorf("Expected grouped key, got %q", out)
	}
	if !strings.Contains(out, "  | line one\n  | line two\n") {
		t.Errorf("Expected prompt rendered as a block, got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
