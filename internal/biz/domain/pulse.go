package domain

import (
	"encoding/json"
	"time"
)

// Mood is the overall sentiment label of a pulse
type Mood string

const (
	MoodStronglyBullish Mood = "strongly_bullish"
	MoodStronglyBearish Mood = "strongly_bearish"
	MoodMixed           Mood = "mixed"
	MoodNeutral         Mood = "neutral"
)

// Glyph returns the indicator shown to clients
func (m Mood) Glyph() string {
	switch m {
	case MoodStronglyBullish:
		return "🟢"
	case MoodStronglyBearish:
		return "🔴"
	case MoodMixed:
		return "🟡"
	default:
		return "⚪"
	}
}

// MoodFromCounts derives the mood from bullish and bearish message counts
func MoodFromCounts(bullish, bearish int) Mood {
	switch {
	case bullish > bearish*2:
		return MoodStronglyBullish
	case bearish > bullish*2:
		return MoodStronglyBearish
	case bullish > 0 || bearish > 0:
		return MoodMixed
	default:
		return MoodNeutral
	}
}

// PulseSummary is a periodic natural-language summary of a session's recent chat
type PulseSummary struct {
	SessionID    string
	Summary      string
	Mood         Mood
	TopTicker    string
	MessageCount int
	GeneratedAt  time.Time
}

type pulseSummaryJSON struct {
	Summary      string    `json:"summary"`
	Mood         string    `json:"mood"`
	MoodLabel    Mood      `json:"mood_label"`
	TopTicker    *string   `json:"top_ticker"`
	MessageCount int       `json:"msg_count"`
	Timestamp    time.Time `json:"timestamp"`
}

// MarshalJSON emits the client wire shape: mood as a glyph, top_ticker null when absent
func (p *PulseSummary) MarshalJSON() ([]byte, error) {
	out := pulseSummaryJSON{
		Summary:      p.Summary,
		Mood:         p.Mood.Glyph(),
		MoodLabel:    p.Mood,
		MessageCount: p.MessageCount,
		Timestamp:    p.GeneratedAt,
	}
	if p.TopTicker != "" {
		ticker := p.TopTicker
		out.TopTicker = &ticker
	}
	return json.Marshal(out)
}
