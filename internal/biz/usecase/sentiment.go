package usecase

import (
	"regexp"
	"strings"

	"github.com/flowstate-live/flowstate/internal/biz/domain"
)

var (
	bullishGlyphs = []string{"🚀", "📈", "💚", "🟢", "🔥"}
	bearishGlyphs = []string{"📉", "💔", "🔴", "🩸", "💀"}
)

const glyphWeight = 2

var questionRe = regexp.MustCompile(`(?i)` + strings.Join([]string{
	`\?`,
	`^(what|when|where|why|how|is|are|do|does|will|should|can|could|would|any)\b`,
	`\b(what|which|who).*\b(is|are|should|would|do)\b`,
	`\b(thoughts|opinion|think|reckon)\b.*\b(on|about)\b`,
	`\bgood\s+(price|entry|time|level|spot)\b`,
	`\b(should|would)\s+(i|we|you)\b`,
	`\b(buy|sell|hold)\s+(or|now)\b`,
	`\bworth\s+(it|buying|holding)\b`,
	`\bany\s+(news|update|thoughts)\b`,
	`\bentry\s*(point|price|level)?\b`,
	`\btarget\s*(price)?\b.*\bfor\b`,
	`\bpt\b.*\bfor\b`,
}, "|"))

// AnalyzeSentiment scores bullish against bearish vocabulary.
// Each distinct lexicon word counts once, each signal glyph present adds two.
// A tie is neutral.
func AnalyzeSentiment(text string) domain.Sentiment {
	seen := make(map[string]bool)
	bull, bear := 0, 0
	for _, w := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if seen[w] {
			continue
		}
		seen[w] = true
		if bullishWords.has(w) {
			bull++
		}
		if bearishWords.has(w) {
			bear++
		}
	}

	for _, g := range bullishGlyphs {
		if strings.Contains(text, g) {
			bull += glyphWeight
		}
	}
	for _, g := range bearishGlyphs {
		if strings.Contains(text, g) {
			bear += glyphWeight
		}
	}

	switch {
	case bull > bear:
		return domain.SentimentBullish
	case bear > bull:
		return domain.SentimentBearish
	default:
		return domain.SentimentNeutral
	}
}

// IsQuestion reports whether the message reads as a question
func IsQuestion(text string) bool {
	return questionRe.MatchString(text)
}
