package domain

import "time"

// Sentiment is the directional market sentiment of a message
type Sentiment string

const (
	SentimentBullish Sentiment = "bullish"
	SentimentBearish Sentiment = "bearish"
	SentimentNeutral Sentiment = "neutral"
)

// Vibe is the LLM-assigned tone of a message. The zero value means unclassified.
type Vibe string

const (
	VibeNone      Vibe = ""
	VibeFunny     Vibe = "funny"
	VibeUplifting Vibe = "uplifting"
)

// RawMessage is one chat message as produced by the chat source
type RawMessage struct {
	ID          string
	Author      string
	IsOwner     bool
	IsModerator bool
	Text        string
	PublishedAt time.Time
}

// Privileged reports whether the author bypasses spam scoring
func (m *RawMessage) Privileged() bool {
	return m.IsOwner || m.IsModerator
}

// ClassifiedMessage is a kept message with its classification signals
type ClassifiedMessage struct {
	ID         string      `json:"id,omitempty"`
	Text       string      `json:"text"`
	Author     string      `json:"author"`
	Timestamp  time.Time   `json:"timestamp"`
	Topic      string      `json:"topic,omitempty"`
	Sentiment  Sentiment   `json:"sentiment"`
	IsQuestion bool        `json:"isQuestion"`
	Vibe       Vibe        `json:"vibe,omitempty"`
	Spam       SpamVerdict `json:"spam"`
}

// Broadcastable reports whether the message is forwarded to subscribers as soon as it is classified
func (m *ClassifiedMessage) Broadcastable() bool {
	return m.Topic != "" || m.IsQuestion
}

// WithVibe returns a copy of the message carrying the given vibe.
// The receiver is left untouched since it may already have been broadcast.
func (m *ClassifiedMessage) WithVibe(v Vibe) *ClassifiedMessage {
	cp := *m
	cp.Spam.Reasons = append([]SpamReason(nil), m.Spam.Reasons...)
	cp.Vibe = v
	return &cp
}
