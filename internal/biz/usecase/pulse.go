package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/flowstate-live/flowstate/internal/biz/domain"
	"github.com/flowstate-live/flowstate/internal/biz/repo"
)

const (
	maxSummaryRunes = 80
	summaryEllipsis = "..."
)

// TickerCount is a ticker and how many buffered messages were about it
type TickerCount struct {
	Ticker string
	Count  int
}

// PulseSummarizer turns a buffer snapshot into a one-line summary
type PulseSummarizer struct {
	completion repo.CompletionRepo
	prompts    PromptConfig
	now        func() time.Time
}

// NewPulseSummarizer creates a new summarizer
func NewPulseSummarizer(completion repo.CompletionRepo, prompts PromptConfig) *PulseSummarizer {
	return &PulseSummarizer{
		completion: completion,
		prompts:    prompts.withDefaults(),
		now:        time.Now,
	}
}

// IsEnabled returns whether pulses can be produced
func (uc *PulseSummarizer) IsEnabled() bool {
	return uc.completion != nil
}

// Summarize returns nil when the snapshot is empty or the completion service gave no answer
func (uc *PulseSummarizer) Summarize(ctx context.Context, sessionID string, snapshot []*domain.ClassifiedMessage) *domain.PulseSummary {
	if uc.completion == nil || len(snapshot) == 0 {
		return nil
	}

	top := TopTickers(snapshot, 3)
	bullish, bearish := CountSentiments(snapshot)

	text, ok := uc.completion.Complete(ctx, uc.BuildPrompt(snapshot, top, bullish, bearish), repo.CompletionOptions{
		Temperature: uc.prompts.PulseTemperature,
		MaxTokens:   uc.prompts.MaxTokens,
		Timeout:     uc.prompts.PulseTimeout,
	})
	if !ok {
		return nil
	}

	pulse := &domain.PulseSummary{
		SessionID:    sessionID,
		Summary:      CleanSummary(text),
		Mood:         domain.MoodFromCounts(bullish, bearish),
		MessageCount: len(snapshot),
		GeneratedAt:  uc.now(),
	}
	if len(top) > 0 {
		pulse.TopTicker = top[0].Ticker
	}
	return pulse
}

// BuildPrompt renders the pulse prompt for a snapshot
func (uc *PulseSummarizer) BuildPrompt(snapshot []*domain.ClassifiedMessage, top []TickerCount, bullish, bearish int) string {
	tickers := "none"
	if len(top) > 0 {
		parts := make([]string, len(top))
		for i, tc := range top {
			parts[i] = fmt.Sprintf("%s(%d)", tc.Ticker, tc.Count)
		}
		tickers = strings.Join(parts, ", ")
	}

	sample := snapshot
	if len(sample) > uc.prompts.PulseSampleSize {
		sample = sample[len(sample)-uc.prompts.PulseSampleSize:]
	}
	texts := make([]string, len(sample))
	for i, m := range sample {
		texts[i] = m.Text
	}

	prompt := uc.prompts.PulseTemplate
	prompt = strings.ReplaceAll(prompt, "{{tickers}}", tickers)
	prompt = strings.ReplaceAll(prompt, "{{sentiment}}", fmt.Sprintf("%d bullish, %d bearish", bullish, bearish))
	prompt = strings.ReplaceAll(prompt, "{{messages}}", strings.Join(texts, "\n"))
	return prompt
}

// TopTickers returns up to n tickers by mention count. Ties keep first-mention order.
func TopTickers(messages []*domain.ClassifiedMessage, n int) []TickerCount {
	index := make(map[string]int)
	var counts []TickerCount
	for _, m := range messages {
		if m.Topic == "" {
			continue
		}
		if i, ok := index[m.Topic]; ok {
			counts[i].Count++
			continue
		}
		index[m.Topic] = len(counts)
		counts = append(counts, TickerCount{Ticker: m.Topic, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// CountSentiments counts bullish and bearish messages
func CountSentiments(messages []*domain.ClassifiedMessage) (bullish, bearish int) {
	for _, m := range messages {
		switch m.Sentiment {
		case domain.SentimentBullish:
			bullish++
		case domain.SentimentBearish:
			bearish++
		}
	}
	return bullish, bearish
}

// CleanSummary strips quotes and a leading dash, then truncates to 80 characters
func CleanSummary(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, `"`, ""))
	if strings.HasPrefix(s, "-") {
		s = strings.TrimSpace(s[1:])
	}
	runes := []rune(s)
	if len(runes) > maxSummaryRunes {
		s = string(runes[:maxSummaryRunes-len(summaryEllipsis)]) + summaryEllipsis
	}
	return s
}
