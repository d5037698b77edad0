// Package youtube reads live chat through the YouTube Data API v3.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"
)

var (
	// ErrVideoNotFound is returned when the video id does not exist
	ErrVideoNotFound = errors.New("video not found")
	// ErrNoLiveChat is returned when the video has no active live chat
	ErrNoLiveChat = errors.New("video has no active live chat")
	// ErrChatEnded is returned once the live chat has been closed upstream
	ErrChatEnded = errors.New("live chat ended")
)

// ChatItem is one live chat message as returned by the API
type ChatItem struct {
	ID          string
	Author      string
	IsOwner     bool
	IsModerator bool
	Text        string
	PublishedAt string // RFC 3339
}

// ChatPage is one page of live chat messages
type ChatPage struct {
	Items         []ChatItem
	NextPageToken string
	PollInterval  time.Duration // minimum wait the server asks for before the next page
	Offline       bool          // the broadcast went offline
}

// Client is a YouTube Data API client
type Client struct {
	svc *yt.Service
}

// NewClient creates a client authenticated with an API key.
// Extra options (endpoint, http client) are passed through to the service.
func NewClient(ctx context.Context, apiKey string, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := yt.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// LiveChatID returns the active live chat id of a video
func (c *Client) LiveChatID(ctx context.Context, videoID string) (string, error) {
	resp, err := c.svc.Videos.List([]string{"liveStreamingDetails"}).Id(videoID).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to look up video %s: %w", videoID, err)
	}
	if len(resp.Items) == 0 {
		return "", fmt.Errorf("%s: %w", videoID, ErrVideoNotFound)
	}

	details := resp.Items[0].LiveStreamingDetails
	if details == nil || details.ActiveLiveChatId == "" {
		return "", fmt.Errorf("%s: %w", videoID, ErrNoLiveChat)
	}
	return details.ActiveLiveChatId, nil
}

// Messages fetches the page of chat messages after pageToken ("" for the first page)
func (c *Client) Messages(ctx context.Context, liveChatID, pageToken string) (*ChatPage, error) {
	call := c.svc.LiveChatMessages.List(liveChatID, []string{"snippet", "authorDetails"}).Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	resp, err := call.Do()
	if err != nil {
		if isChatEnded(err) {
			return nil, ErrChatEnded
		}
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}

	page := &ChatPage{
		NextPageToken: resp.NextPageToken,
		PollInterval:  time.Duration(resp.PollingIntervalMillis) * time.Millisecond,
		Offline:       resp.OfflineAt != "",
	}
	for _, item := range resp.Items {
		if item.Snippet == nil {
			continue
		}
		text := item.Snippet.DisplayMessage
		if text == "" && item.Snippet.TextMessageDetails != nil {
			text = item.Snippet.TextMessageDetails.MessageText
		}
		if text == "" {
			continue
		}

		ci := ChatItem{
			ID:          item.Id,
			Text:        text,
			PublishedAt: item.Snippet.PublishedAt,
		}
		if a := item.AuthorDetails; a != nil {
			ci.Author = a.DisplayName
			ci.IsOwner = a.IsChatOwner
			ci.IsModerator = a.IsChatModerator
		}
		page.Items = append(page.Items, ci)
	}
	return page, nil
}

// isChatEnded reports whether err means the chat is gone for good
func isChatEnded(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.Code == http.StatusNotFound {
		return true
	}
	for _, e := range apiErr.Errors {
		switch e.Reason {
		case "liveChatEnded", "liveChatDisabled", "liveChatNotFound":
			return true
		}
	}
	return false
}
