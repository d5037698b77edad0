package repo

import (
	"context"
	"errors"

	"github.com/flowstate-live/flowstate/internal/biz/domain"
)

// ErrStreamEnded is returned by ChatStream.Poll when the upstream chat has finished normally
var ErrStreamEnded = errors.New("chat stream ended")

// ChatSourceRepo opens live chat streams
type ChatSourceRepo interface {
	// Open attaches to the live chat of a session.
	// An error means the session has no reachable live chat.
	Open(ctx context.Context, sessionID string) (ChatStream, error)
}

// ChatStream is a non-restartable sequence of raw chat messages
type ChatStream interface {
	// Poll returns the messages that became available since the last call.
	// An empty batch with a nil error means nothing new yet.
	Poll(ctx context.Context) ([]*domain.RawMessage, error)

	// Alive reports whether the upstream chat is still live
	Alive() bool

	// Close releases the stream
	Close() error
}
