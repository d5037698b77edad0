package domain

import "strings"

// EventType is the type tag of an outbound event
type EventType string

const (
	EventConnected    EventType = "connected"
	EventSubscribed   EventType = "subscribed"
	EventUnsubscribed EventType = "unsubscribed"
	EventMessage      EventType = "message"
	EventVibe         EventType = "vibe"
	EventPulse        EventType = "pulse"
	EventError        EventType = "error"
)

// Event is one outbound message to a subscriber
type Event struct {
	Type    EventType `json:"type"`
	Data    any       `json:"data,omitempty"`
	Message string    `json:"message,omitempty"`
	VideoID string    `json:"videoId,omitempty"`
}

// NewMessageEvent wraps a freshly classified message
func NewMessageEvent(msg *ClassifiedMessage) *Event {
	return &Event{Type: EventMessage, Data: msg}
}

// NewVibeEvent wraps a vibe-enriched message
func NewVibeEvent(msg *ClassifiedMessage) *Event {
	return &Event{Type: EventVibe, Data: msg}
}

// NewPulseEvent wraps a pulse summary
func NewPulseEvent(p *PulseSummary) *Event {
	return &Event{Type: EventPulse, Data: p}
}

// NewErrorEvent builds an error event with a human-readable message
func NewErrorEvent(message string) *Event {
	return &Event{Type: EventError, Message: message}
}

// NewConnectedEvent builds a connected notice
func NewConnectedEvent(message string) *Event {
	return &Event{Type: EventConnected, Message: message}
}

// NewSubscribedEvent acknowledges a subscription
func NewSubscribedEvent(videoID string) *Event {
	return &Event{Type: EventSubscribed, VideoID: videoID}
}

// NewUnsubscribedEvent acknowledges an unsubscribe
func NewUnsubscribedEvent() *Event {
	return &Event{Type: EventUnsubscribed}
}

// ControlType is the type tag of an inbound control message
type ControlType string

const (
	ControlSubscribe   ControlType = "SUBSCRIBE"
	ControlUnsubscribe ControlType = "UNSUBSCRIBE"
)

// ControlMessage is an inbound request from a subscriber
type ControlMessage struct {
	Type      ControlType `json:"type"`
	VideoID   string      `json:"videoId,omitempty"`
	URL       string      `json:"url,omitempty"`
	SessionID string      `json:"sessionId,omitempty"`
}

// Normalized returns the control type in canonical upper case
func (c *ControlMessage) Normalized() ControlType {
	return ControlType(strings.ToUpper(strings.TrimSpace(string(c.Type))))
}

// Target returns the session id or URL the subscriber asked for
func (c *ControlMessage) Target() string {
	for _, v := range []string{c.VideoID, c.SessionID, c.URL} {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
