package data

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/flowstate-live/flowstate/internal/biz/domain"
	"github.com/flowstate-live/flowstate/internal/biz/repo"
	"github.com/flowstate-live/flowstate/internal/infra/youtube"
)

// liveChatAPI is the part of the YouTube client the chat source needs
type liveChatAPI interface {
	LiveChatID(ctx context.Context, videoID string) (string, error)
	Messages(ctx context.Context, liveChatID, pageToken string) (*youtube.ChatPage, error)
}

// youtubeRepo implements the chat source repository
type youtubeRepo struct {
	api liveChatAPI
	now func() time.Time
}

// NewYouTubeRepo creates a chat source backed by the YouTube Data API
func NewYouTubeRepo(client *youtube.Client) repo.ChatSourceRepo {
	return &youtubeRepo{api: client, now: time.Now}
}

// Open resolves the live chat of the video and returns a stream positioned at its start
func (r *youtubeRepo) Open(ctx context.Context, sessionID string) (repo.ChatStream, error) {
	chatID, err := r.api.LiveChatID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &liveChatStream{api: r.api, chatID: chatID, now: r.now, alive: true}, nil
}

// liveChatStream pages through one live chat.
// The API dictates the polling interval, polls arriving earlier return an empty batch.
type liveChatStream struct {
	api    liveChatAPI
	chatID string
	now    func() time.Time

	mu        sync.Mutex
	pageToken string
	nextPoll  time.Time
	alive     bool
}

// Poll fetches the next page when the server-requested interval has passed
func (s *liveChatStream) Poll(ctx context.Context) ([]*domain.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.alive {
		return nil, repo.ErrStreamEnded
	}
	now := s.now()
	if now.Before(s.nextPoll) {
		return nil, nil
	}

	page, err := s.api.Messages(ctx, s.chatID, s.pageToken)
	if err != nil {
		if errors.Is(err, youtube.ErrChatEnded) {
			s.alive = false
			return nil, repo.ErrStreamEnded
		}
		return nil, fmt.Errorf("poll live chat: %w", err)
	}

	s.pageToken = page.NextPageToken
	s.nextPoll = now.Add(page.PollInterval)
	if page.Offline {
		s.alive = false
	}

	msgs := make([]*domain.RawMessage, 0, len(page.Items))
	for _, item := range page.Items {
		msgs = append(msgs, toRawMessage(item))
	}
	return msgs, nil
}

func (s *liveChatStream) Alive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alive
}

func (s *liveChatStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alive = false
	return nil
}

func toRawMessage(item youtube.ChatItem) *domain.RawMessage {
	var published time.Time
	if item.PublishedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, item.PublishedAt); err == nil {
			published = t
		}
	}
	return &domain.RawMessage{
		ID:          item.ID,
		Author:      item.Author,
		IsOwner:     item.IsOwner,
		IsModerator: item.IsModerator,
		Text:        item.Text,
		PublishedAt: published,
	}
}
