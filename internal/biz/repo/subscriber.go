package repo

import (
	"context"

	"github.com/flowstate-live/flowstate/internal/biz/domain"
)

// Subscriber is a real-time client that receives session events
type Subscriber interface {
	// ID uniquely identifies the subscriber for its lifetime
	ID() string

	// Send delivers one event. Delivery is best-effort.
	Send(ctx context.Context, event *domain.Event) error
}
