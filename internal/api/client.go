package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/flowstate-live/flowstate/internal/biz/domain"
	"github.com/flowstate-live/flowstate/internal/service"
)

// Client is the HTTP client for a running flowstate backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Pulse is an archived pulse as served over HTTP
type Pulse struct {
	Summary      string      `json:"summary"`
	Mood         string      `json:"mood"`
	MoodLabel    domain.Mood `json:"mood_label"`
	TopTicker    *string     `json:"top_ticker"`
	MessageCount int         `json:"msg_count"`
	Timestamp    time.Time   `json:"timestamp"`
}

// Health checks that the backend is up
func (c *Client) Health(ctx context.Context) error {
	return c.get(ctx, "/health", nil)
}

// Sessions lists the sessions with a live pipeline
func (c *Client) Sessions(ctx context.Context) ([]service.SessionInfo, error) {
	var result struct {
		Sessions []service.SessionInfo `json:"sessions"`
	}
	if err := c.get(ctx, "/api/sessions", &result); err != nil {
		return nil, err
	}
	return result.Sessions, nil
}

// Runs lists archived pipeline runs, newest first
func (c *Client) Runs(ctx context.Context, limit int) ([]*domain.SessionRun, error) {
	var result struct {
		Runs []*domain.SessionRun `json:"runs"`
	}
	if err := c.get(ctx, fmt.Sprintf("/api/runs?limit=%d", limit), &result); err != nil {
		return nil, err
	}
	return result.Runs, nil
}

// Pulses lists a session's archived pulses, newest first
func (c *Client) Pulses(ctx context.Context, sessionID string, limit int) ([]Pulse, error) {
	var result struct {
		Pulses []Pulse `json:"pulses"`
	}
	path := fmt.Sprintf("/api/sessions/%s/pulses?limit=%d", url.PathEscape(sessionID), limit)
	if err := c.get(ctx, path, &result); err != nil {
		return nil, err
	}
	return result.Pulses, nil
}

func (c *Client) get(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP GET failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
