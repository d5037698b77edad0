package domain

import (
	"fmt"
	"time"
)

// PipelineState is the lifecycle state of a session pipeline
type PipelineState int32

const (
	StateStarting PipelineState = iota
	StateRunning
	StateDraining
	StateStopped
)

func (s PipelineState) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateDraining:
		return "draining"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler
func (s PipelineState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *PipelineState) UnmarshalText(text []byte) error {
	for _, st := range []PipelineState{StateStarting, StateRunning, StateDraining, StateStopped} {
		if st.String() == string(text) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown pipeline state %q", text)
}

// SessionConfig represents pipeline timing configuration (value object)
type SessionConfig struct {
	PollInterval     time.Duration // Idle sleep between chat source polls
	VibeInterval     time.Duration // How often pending messages are sent for vibe classification
	VibeBatchSize    int           // Most recent messages classified per vibe pass
	PulseInterval    time.Duration // How often a pulse is attempted
	PulseMinMessages int           // Minimum buffered messages for a pulse attempt
	BufferSize       int           // Rolling buffer capacity
}

// DefaultSessionConfig returns the local development profile timings
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		PollInterval:     500 * time.Millisecond,
		VibeInterval:     3 * time.Second,
		VibeBatchSize:    10,
		PulseInterval:    120 * time.Second,
		PulseMinMessages: 10,
		BufferSize:       100,
	}
}

// WithDefaults returns a copy with zero or negative fields taken from DefaultSessionConfig
func (c SessionConfig) WithDefaults() SessionConfig {
	def := DefaultSessionConfig()
	if c.PollInterval <= 0 {
		c.PollInterval = def.PollInterval
	}
	if c.VibeInterval <= 0 {
		c.VibeInterval = def.VibeInterval
	}
	if c.VibeBatchSize <= 0 {
		c.VibeBatchSize = def.VibeBatchSize
	}
	if c.PulseInterval <= 0 {
		c.PulseInterval = def.PulseInterval
	}
	if c.PulseMinMessages <= 0 {
		c.PulseMinMessages = def.PulseMinMessages
	}
	if c.BufferSize <= 0 {
		c.BufferSize = def.BufferSize
	}
	return c
}

// SessionStats counts what happened to a session's messages
type SessionStats struct {
	Received  int `json:"received"`
	Dropped   int `json:"dropped"`
	Escalated int `json:"escalated"`
	Broadcast int `json:"broadcast"`
}

// SessionState is the mutable per-session state. It is owned by exactly one
// pipeline goroutine and is never shared.
type SessionState struct {
	SessionID   string
	Histories   map[string]*AuthorHistory
	Discovered  *TickerSet
	Buffer      *RollingBuffer
	PendingVibe []*ClassifiedMessage
	LastVibe    time.Time
	LastPulse   time.Time
	Stats       SessionStats
}

// NewSessionState creates empty state for a session
func NewSessionState(sessionID string, cfg SessionConfig) *SessionState {
	now := time.Now()
	return &SessionState{
		SessionID:  sessionID,
		Histories:  make(map[string]*AuthorHistory),
		Discovered: NewTickerSet(),
		Buffer:     NewRollingBuffer(cfg.BufferSize),
		LastVibe:   now,
		LastPulse:  now,
	}
}

// History returns the author's history, creating it on first use
func (s *SessionState) History(author string) *AuthorHistory {
	h, ok := s.Histories[author]
	if !ok {
		h = &AuthorHistory{}
		s.Histories[author] = h
	}
	return h
}

// SessionRun is the archived record of one pipeline lifetime
type SessionRun struct {
	ID         int64        `json:"id"`
	SessionID  string       `json:"session_id"`
	StartedAt  time.Time    `json:"started_at"`
	EndedAt    time.Time    `json:"ended_at,omitempty"`
	StopReason string       `json:"stop_reason,omitempty"`
	Stats      SessionStats `json:"stats"`
}

// Running reports whether the run has not been closed yet
func (r *SessionRun) Running() bool {
	return r.EndedAt.IsZero()
}
