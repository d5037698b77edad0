// Package openai wraps an OpenAI-compatible chat completion endpoint (Groq, Ollama).
package openai

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"
)

// ErrEmptyResponse is returned when the endpoint answers without choices
var ErrEmptyResponse = errors.New("no response choices")

// Client is a single-turn chat completion client
type Client struct {
	client *goopenai.Client
	model  string
}

// NewClient creates a client for the endpoint at baseURL
func NewClient(baseURL, apiKey, model string) *Client {
	config := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = strings.TrimRight(baseURL, "/")
	}

	return &Client{
		client: goopenai.NewClientWithConfig(config),
		model:  model,
	}
}

// Model returns the configured model name
func (c *Client) Model() string {
	return c.model
}

// Complete sends prompt as a single user message and returns the first choice.
// The caller's context bounds the request.
func (c *Client) Complete(ctx context.Context, prompt string, temperature float32, maxTokens int) (string, error) {
	// A zero temperature is dropped by omitempty and the server default applies
	if temperature <= 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	req := goopenai.ChatCompletionRequest{
		Model: c.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
