package usecase

import (
	"strings"
	"time"
)

// PromptConfig holds the completion prompt templates and call budgets
type PromptConfig struct {
	SpamCheckTemplate string // placeholders: {{message}}
	VibeTemplate      string // placeholders: {{message}}
	PulseTemplate     string // placeholders: {{tickers}}, {{sentiment}}, {{messages}}

	SpamCheckTimeout time.Duration
	VibeTimeout      time.Duration
	PulseTimeout     time.Duration
	PulseTemperature float32
	PulseSampleSize  int // Number of most recent texts quoted in the pulse prompt
	MaxTokens        int
}

// DefaultPromptConfig is the default prompt configuration
var DefaultPromptConfig = PromptConfig{
	SpamCheckTemplate: `Is this YouTube chat message spam, promotion, or bot-generated?
Message: "{{message}}"
Reply with ONLY: yes or no`,
	VibeTemplate: `Classify this YouTube chat message into EXACTLY ONE category:
- funny: jokes, humor, laughter (lmao, haha, 😂, etc.)
- uplifting: encouragement, positivity, support
- none: neutral, questions, or anything else

Message: "{{message}}"
Reply with ONLY one word: funny, uplifting, or none`,
	PulseTemplate: `Summarize this YouTube live chat in ONE short sentence (under 15 words).
Top tickers: {{tickers}}
Sentiment: {{sentiment}}

Recent messages:
{{messages}}

Summary:`,
	SpamCheckTimeout: 3 * time.Second,
	VibeTimeout:      5 * time.Second,
	PulseTimeout:     10 * time.Second,
	PulseTemperature: 0.7,
	PulseSampleSize:  30,
	MaxTokens:        150,
}

// withDefaults fills zero fields from DefaultPromptConfig
func (c PromptConfig) withDefaults() PromptConfig {
	d := DefaultPromptConfig
	if c.SpamCheckTemplate == "" {
		c.SpamCheckTemplate = d.SpamCheckTemplate
	}
	if c.VibeTemplate == "" {
		c.VibeTemplate = d.VibeTemplate
	}
	if c.PulseTemplate == "" {
		c.PulseTemplate = d.PulseTemplate
	}
	if c.SpamCheckTimeout <= 0 {
		c.SpamCheckTimeout = d.SpamCheckTimeout
	}
	if c.VibeTimeout <= 0 {
		c.VibeTimeout = d.VibeTimeout
	}
	if c.PulseTimeout <= 0 {
		c.PulseTimeout = d.PulseTimeout
	}
	if c.PulseTemperature <= 0 {
		c.PulseTemperature = d.PulseTemperature
	}
	if c.PulseSampleSize <= 0 {
		c.PulseSampleSize = d.PulseSampleSize
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = d.MaxTokens
	}
	return c
}

func renderMessagePrompt(template, message string) string {
	return strings.ReplaceAll(template, "{{message}}", message)
}
