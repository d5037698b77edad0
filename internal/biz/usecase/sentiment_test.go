package usecase

import (
	"testing"

	"github.com/flowstate-live/flowstate/internal/biz/domain"
)

func TestAnalyzeSentiment(t *testing.T) {
	tests := []struct {
		text string
		want domain.Sentiment
	}{
		{"buying calls, this will rip", domain.SentimentBullish},
		{"this is going to crash and dump", domain.SentimentBearish},
		{"buy or sell", domain.SentimentNeutral},
		{"NVDA 🚀", domain.SentimentBullish},
		{"NVDA 💀 but buy", domain.SentimentBearish},
		{"NVDA 🚀📉", domain.SentimentNeutral},
		{"nothing to see here", domain.SentimentNeutral},
	}

	for _, tt := range tests {
		if got := AnalyzeSentiment(tt.text); got != tt.want {
			t.Errorf("AnalyzeSentiment(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestAnalyzeSentiment_WordsCountOnce(t *testing.T) {
	// "dump dump dump" is one bearish word against two bullish ones
	if got := AnalyzeSentiment("dump dump dump, buy calls"); got != domain.SentimentBullish {
		t.Errorf("Expected bullish, got %s", got)
	}
}

func TestIsQuestion(t *testing.T) {
	questions := []string{
		"what's the price target?",
		"thoughts on TSLA",
		"Should I buy now",
		"good entry here",
		"any news on AMD",
		"is it worth buying",
	}
	for _, q := range questions {
		if !IsQuestion(q) {
			t.Errorf("Expected %q to be a question", q)
		}
	}

	statements := []string{
		"TSLA to the moon",
		"lmao nice",
		"bought more shares",
	}
	for _, s := range statements {
		if IsQuestion(s) {
			t.Errorf("Expected %q not to be a question", s)
		}
	}
}
