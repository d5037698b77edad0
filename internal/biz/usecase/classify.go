package usecase

import (
	"time"

	"github.com/flowstate-live/flowstate/internal/biz/domain"
)

// ClassifierUsecase runs the lexical classifiers and the spam heuristics over one message
type ClassifierUsecase struct {
	spam *SpamDetector
	now  func() time.Time
}

// NewClassifierUsecase creates a new classifier usecase
func NewClassifierUsecase(spam *SpamDetector) *ClassifierUsecase {
	return &ClassifierUsecase{spam: spam, now: time.Now}
}

// Spam returns the underlying spam detector
func (uc *ClassifierUsecase) Spam() *SpamDetector {
	return uc.spam
}

// Classify normalizes and classifies a raw message against the session state.
// Privileged authors skip spam scoring and leave no history behind.
func (uc *ClassifierUsecase) Classify(raw *domain.RawMessage, state *domain.SessionState) *domain.ClassifiedMessage {
	now := uc.now()
	text := NormalizeText(raw.Text)

	msg := &domain.ClassifiedMessage{
		ID:        raw.ID,
		Text:      text,
		Author:    raw.Author,
		Timestamp: raw.PublishedAt,
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = now
	}

	if !raw.Privileged() {
		msg.Spam = uc.spam.Score(text, state.History(raw.Author), now)
	}

	msg.Sentiment = domain.SentimentNeutral
	msg.Topic = ExtractTicker(text, state.Discovered)
	if msg.Topic != "" {
		msg.Sentiment = AnalyzeSentiment(text)
	}
	msg.IsQuestion = IsQuestion(text)
	return msg
}

// NeedsEscalation reports whether the message's verdict sits in the uncertain band
func (uc *ClassifierUsecase) NeedsEscalation(msg *domain.ClassifiedMessage) bool {
	return uc.spam.NeedsEscalation(msg.Spam)
}
