package data

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/flowstate-live/flowstate/internal/biz/repo"
	"github.com/flowstate-live/flowstate/internal/infra/youtube"
)

// fakeLiveChat serves scripted pages
type fakeLiveChat struct {
	chatID string
	pages  []*youtube.ChatPage
	errs   []error
	tokens []string
}

func (f *fakeLiveChat) LiveChatID(ctx context.Context, videoID string) (string, error) {
	if f.chatID == "" {
		return "", youtube.ErrNoLiveChat
	}
	return f.chatID, nil
}

func (f *fakeLiveChat) Messages(ctx context.Context, liveChatID, pageToken string) (*youtube.ChatPage, error) {
	f.tokens = append(f.tokens, pageToken)
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return nil, err
		}
	}
	if len(f.pages) == 0 {
		return &youtube.ChatPage{}, nil
	}
	page := f.pages[0]
	f.pages = f.pages[1:]
	return page, nil
}

func TestYouTubeRepo_OpenWithoutLiveChat(t *testing.T) {
	r := &youtubeRepo{api: &fakeLiveChat{}, now: time.Now}
	if _, err := r.Open(context.Background(), "vod"); !errors.Is(err, youtube.ErrNoLiveChat) {
		t.Errorf("Expected ErrNoLiveChat, got %v", err)
	}
}

func TestLiveChatStream_Poll(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	api := &fakeLiveChat{
		chatID: "chat-1",
		pages: []*youtube.ChatPage{
			{
				NextPageToken: "p2",
				PollInterval:  2 * time.Second,
				Items: []youtube.ChatItem{
					{ID: "m1", Author: "alice", Text: "$TSLA", PublishedAt: "2024-05-01T12:00:00.5Z"},
					{ID: "m2", Author: "owner", IsOwner: true, Text: "welcome"},
				},
			},
			{NextPageToken: "p3", Offline: true},
		},
	}
	r := &youtubeRepo{api: api, now: func() time.Time { return now }}

	stream, err := r.Open(context.Background(), "vid")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	msgs, err := stream.Poll(context.Background())
	if err != nil {
		t.Fatalf("Poll failed: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Author != "alice" || msgs[0].PublishedAt.IsZero() {
		t.Errorf("Unexpected first message: %+v", msgs[0])
	}
	if !msgs[1].Privileged() {
		t.Error("Expected owner message to be privileged")
	}

	// Inside the server-requested interval nothing is fetched
	now = now.Add(time.Second)
	if msgs, err := stream.Poll(context.Background()); err != nil || len(msgs) != 0 {
		t.Errorf("Expected empty batch before interval, got %d (%v)", len(msgs), err)
	}
	if len(api.tokens) != 1 {
		t.Errorf("Expected 1 API call so far, got %d", len(api.tokens))
	}

	now = now.Add(2 * time.Second)
	if _, err := stream.Poll(context.Background()); err != nil {
		t.Fatalf("Poll failed: %v", err)
	}
	if api.tokens[1] != "p2" {
		t.Errorf("Expected page token p2, got %q", api.tokens[1])
	}
	if stream.Alive() {
		t.Error("Expected stream to be dead after offline page")
	}
	if _, err := stream.Poll(context.Background()); !errors.Is(err, repo.ErrStreamEnded) {
		t.Errorf("Expected ErrStreamEnded after offline, got %v", err)
	}
}

func TestLiveChatStream_ChatEnded(t *testing.T) {
	api := &fakeLiveChat{chatID: "chat-1", errs: []error{youtube.ErrChatEnded}}
	r := &youtubeRepo{api: api, now: time.Now}

	stream, _ := r.Open(context.Background(), "vid")
	if _, err := stream.Poll(context.Background()); !errors.Is(err, repo.ErrStreamEnded) {
		t.Errorf("Expected ErrStreamEnded, got %v", err)
	}
	if stream.Alive() {
		t.Error("Expected stream to be dead")
	}
}
