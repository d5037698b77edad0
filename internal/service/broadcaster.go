package service

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/flowstate-live/flowstate/internal/biz/domain"
	"github.com/flowstate-live/flowstate/internal/biz/repo"
)

// DefaultSendTimeout bounds a single delivery to one subscriber
const DefaultSendTimeout = 5 * time.Second

// SubscriberSource returns the current subscribers of a session
type SubscriberSource interface {
	Subscribers(sessionID string) []repo.Subscriber
}

// Broadcaster fans events out to a session's subscribers
type Broadcaster struct {
	source      SubscriberSource
	sendTimeout time.Duration
	logger      *slog.Logger
}

// NewBroadcaster creates a new broadcaster
func NewBroadcaster(source SubscriberSource, sendTimeout time.Duration) *Broadcaster {
	if sendTimeout <= 0 {
		sendTimeout = DefaultSendTimeout
	}
	return &Broadcaster{
		source:      source,
		sendTimeout: sendTimeout,
		logger:      slog.With("component", "broadcaster"),
	}
}

// Broadcast sends event to every current subscriber of the session concurrently
// and returns how many deliveries succeeded. A failed or slow subscriber never
// blocks the others.
func (b *Broadcaster) Broadcast(ctx context.Context, sessionID string, event *domain.Event) int {
	subs := b.source.Subscribers(sessionID)
	if len(subs) == 0 {
		return 0
	}

	var (
		wg        sync.WaitGroup
		delivered atomic.Int32
	)
	for _, sub := range subs {
		wg.Add(1)
		go func(sub repo.Subscriber) {
			defer wg.Done()
			if err := b.Send(ctx, sub, event); err != nil {
				b.logger.Debug("send failed", "session", sessionID, "subscriber", sub.ID(), "type", event.Type, "error", err)
				return
			}
			delivered.Add(1)
		}(sub)
	}
	wg.Wait()

	return int(delivered.Load())
}

// Send delivers event to a single subscriber under the send timeout
func (b *Broadcaster) Send(ctx context.Context, sub repo.Subscriber, event *domain.Event) error {
	sendCtx, cancel := context.WithTimeout(ctx, b.sendTimeout)
	defer cancel()
	return sub.Send(sendCtx, event)
}
