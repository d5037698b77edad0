package service

import (
	"context"
	"testing"
	"time"

	"github.com/flowstate-live/flowstate/internal/biz/domain"
	"github.com/flowstate-live/flowstate/internal/biz/repo"
)

type staticSource []repo.Subscriber

func (s staticSource) Subscribers(string) []repo.Subscriber { return s }

func TestBroadcaster_IsolatesFailures(t *testing.T) {
	ok1 := newFakeSubscriber("a")
	broken := newFakeSubscriber("b")
	broken.fail = true
	stuck := newFakeSubscriber("c")
	stuck.block = true
	ok2 := newFakeSubscriber("d")

	b := NewBroadcaster(staticSource{ok1, broken, stuck, ok2}, 50*time.Millisecond)

	start := time.Now()
	delivered := b.Broadcast(context.Background(), "vid", domain.NewErrorEvent("boom"))
	elapsed := time.Since(start)

	if delivered != 2 {
		t.Errorf("Expected 2 deliveries, got %d", delivered)
	}
	if elapsed > time.Second {
		t.Errorf("Expected stuck subscriber to be bounded by the send timeout, took %v", elapsed)
	}
	for _, sub := range []*fakeSubscriber{ok1, ok2} {
		if got := sub.drain(); len(got) != 1 || got[0].Message != "boom" {
			t.Errorf("Expected subscriber %s to get the event, got %v", sub.id, got)
		}
	}
}

func TestBroadcaster_NoSubscribers(t *testing.T) {
	b := NewBroadcaster(staticSource{}, 0)
	if n := b.Broadcast(context.Background(), "vid", domain.NewErrorEvent("x")); n != 0 {
		t.Errorf("Expected 0 deliveries, got %d", n)
	}
	if b.sendTimeout != DefaultSendTimeout {
		t.Errorf("Expected default send timeout, got %v", b.sendTimeout)
	}
}
