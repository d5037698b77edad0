package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/flowstate-live/flowstate/internal/biz/domain"
)

func TestFormatMessage(t *testing.T) {
	msg := &domain.ClassifiedMessage{
		Text:       "is NVDA going to moon?",
		Author:     "alice",
		Timestamp:  time.Now(),
		Topic:      "NVDA",
		Sentiment:  domain.SentimentBullish,
		IsQuestion: true,
		Vibe:       domain.VibeFunny,
	}

	out := FormatEvent(domain.NewVibeEvent(msg))
	for _, want := range []string{"$NVDA", "alice:", "is NVDA going to moon?", "[?]", "[funny]"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in %q", want, out)
		}
	}
}

func TestFormatPulse(t *testing.T) {
	p := &domain.PulseSummary{
		Summary:      "Chat is piling into chips.",
		Mood:         domain.MoodStronglyBullish,
		TopTicker:    "AMD",
		MessageCount: 14,
	}

	out := FormatEvent(domain.NewPulseEvent(p))
	for _, want := range []string{"🟢", "14 msgs", "$AMD", "Chat is piling into chips."} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in %q", want, out)
		}
	}
}

func TestFormatEvent_Control(t *testing.T) {
	if out := FormatEvent(domain.NewSubscribedEvent("dQw4w9WgXcQ")); !strings.Contains(out, "subscribed dQw4w9WgXcQ") {
		t.Errorf("Expected subscribed line, got %q", out)
	}
	if out := FormatEvent(domain.NewErrorEvent("Live chat ended")); !strings.Contains(out, "error: Live chat ended") {
		t.Errorf("Expected error line, got %q", out)
	}
	if out := FormatEvent(&domain.Event{Type: domain.EventMessage, Data: "bogus"}); out != "" {
		t.Errorf("Expected empty output for unexpected payload, got %q", out)
	}
}

func TestFormatVerdict(t *testing.T) {
	if out := FormatVerdict(domain.SpamVerdict{}); !strings.Contains(out, "clean") {
		t.Errorf("Expected clean, got %q", out)
	}

	v := domain.SpamVerdict{IsSpam: true, Confidence: 0.95, Reasons: []domain.SpamReason{domain.SpamCryptoScam}}
	out := FormatVerdict(v)
	if !strings.Contains(out, "spam 0.95") || !strings.Contains(out, "crypto_scam") {
		t.Errorf("Unexpected verdict output %q", out)
	}
}
