package usecase

import (
	"hash/fnv"
	"math"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/flowstate-live/flowstate/internal/biz/domain"
)

var (
	promoLinkRe  = regexp.MustCompile(`(?i)discord\.gg/|t\.me/|bit\.ly/|tinyurl\.com/|telegram\.|join.*group|join.*channel|dm.*me`)
	pumpPromoRe  = regexp.MustCompile(`(?i)guaranteed.*gains|100x|1000x|free.*money|free.*crypto|airdrop|giveaway.*crypto|double.*your|insider.*info|financial.*freedom|limited.*spots|get.*rich|pump.*coming|moon.*guaranteed|subscribe.*my|follow.*my`)
	cryptoScamRe = regexp.MustCompile(`(?i)send.*\d+.*eth|send.*\d+.*btc|wallet.*address|connect.*wallet|validate.*wallet|claim.*reward`)
)

// SpamConfig tunes the spam heuristics
type SpamConfig struct {
	Threshold           float64       // Confidence at or above which a message is spam
	EscalationThreshold float64       // Confidence at or above which a non-spam message goes to the AI check
	HistoryWindow       time.Duration // How long author history is remembered
	HistoryCap          int           // Max remembered messages per author
	RapidFireWindow     time.Duration
	RapidFireCount      int     // Messages inside RapidFireWindow, current one included, that trigger rapid_fire
	RapidFireConfidence float64 // Confidence contributed by rapid_fire
	CapsMinLetters      int
	CapsRatio           float64
	RepeatRun           int
	EmojiLimit          int
	ComboBoost          float64 // Added when several weak rules fire together
	ComboCap            float64 // Upper bound of a boosted confidence
}

// DefaultSpamConfig returns the strict rule set
func DefaultSpamConfig() SpamConfig {
	return SpamConfig{
		Threshold:           0.7,
		EscalationThreshold: 0.5,
		HistoryWindow:       60 * time.Second,
		HistoryCap:          20,
		RapidFireWindow:     10 * time.Second,
		RapidFireCount:      3,
		RapidFireConfidence: domain.SpamRapidFire.Confidence(),
		CapsMinLetters:      10,
		CapsRatio:           0.7,
		RepeatRun:           5,
		EmojiLimit:          10,
		ComboBoost:          0.2,
		ComboCap:            0.75,
	}
}

// SpamDetector scores messages against heuristic spam rules
type SpamDetector struct {
	cfg SpamConfig
}

// NewSpamDetector creates a detector; zero fields fall back to the defaults
func NewSpamDetector(cfg SpamConfig) *SpamDetector {
	def := DefaultSpamConfig()
	if cfg.Threshold <= 0 {
		cfg.Threshold = def.Threshold
	}
	if cfg.EscalationThreshold <= 0 {
		cfg.EscalationThreshold = def.EscalationThreshold
	}
	if cfg.HistoryWindow <= 0 {
		cfg.HistoryWindow = def.HistoryWindow
	}
	if cfg.HistoryCap <= 0 {
		cfg.HistoryCap = def.HistoryCap
	}
	if cfg.RapidFireWindow <= 0 {
		cfg.RapidFireWindow = def.RapidFireWindow
	}
	if cfg.RapidFireCount <= 0 {
		cfg.RapidFireCount = def.RapidFireCount
	}
	if cfg.RapidFireConfidence <= 0 {
		cfg.RapidFireConfidence = def.RapidFireConfidence
	}
	if cfg.CapsMinLetters <= 0 {
		cfg.CapsMinLetters = def.CapsMinLetters
	}
	if cfg.CapsRatio <= 0 {
		cfg.CapsRatio = def.CapsRatio
	}
	if cfg.RepeatRun <= 0 {
		cfg.RepeatRun = def.RepeatRun
	}
	if cfg.EmojiLimit <= 0 {
		cfg.EmojiLimit = def.EmojiLimit
	}
	if cfg.ComboBoost <= 0 {
		cfg.ComboBoost = def.ComboBoost
	}
	if cfg.ComboCap <= 0 {
		cfg.ComboCap = def.ComboCap
	}
	return &SpamDetector{cfg: cfg}
}

// Config returns the effective configuration
func (d *SpamDetector) Config() SpamConfig {
	return d.cfg
}

// Score evaluates text against every rule, then records the message in the author's history.
// Callers must not pass messages from privileged authors.
func (d *SpamDetector) Score(text string, history *domain.AuthorHistory, now time.Time) domain.SpamVerdict {
	fp := Fingerprint(text)
	history.Prune(now, d.cfg.HistoryWindow)

	var reasons []domain.SpamReason
	confidence := 0.0
	fire := func(r domain.SpamReason, c float64) {
		reasons = append(reasons, r)
		confidence = math.Max(confidence, c)
	}

	recent := 0
	duplicate := false
	rapidCutoff := now.Add(-d.cfg.RapidFireWindow)
	for _, e := range history.Entries() {
		if e.Fingerprint == fp {
			duplicate = true
		}
		if e.At.After(rapidCutoff) {
			recent++
		}
	}
	if duplicate {
		fire(domain.SpamDuplicate, domain.SpamDuplicate.Confidence())
	}
	if recent+1 >= d.cfg.RapidFireCount {
		fire(domain.SpamRapidFire, d.cfg.RapidFireConfidence)
	}
	if promoLinkRe.MatchString(text) {
		fire(domain.SpamPromoLink, domain.SpamPromoLink.Confidence())
	}
	if pumpPromoRe.MatchString(text) {
		fire(domain.SpamPumpPromo, domain.SpamPumpPromo.Confidence())
	}
	if cryptoScamRe.MatchString(text) {
		fire(domain.SpamCryptoScam, domain.SpamCryptoScam.Confidence())
	}
	if d.excessiveCaps(text) {
		fire(domain.SpamExcessiveCaps, domain.SpamExcessiveCaps.Confidence())
	}
	if longestRun(text) >= d.cfg.RepeatRun {
		fire(domain.SpamRepetitiveChars, domain.SpamRepetitiveChars.Confidence())
	}
	if CountEmojis(text) > d.cfg.EmojiLimit {
		fire(domain.SpamExcessiveEmojis, domain.SpamExcessiveEmojis.Confidence())
	}

	history.Record(now, fp, d.cfg.HistoryCap)

	if len(reasons) >= 2 && confidence < d.cfg.Threshold {
		confidence = math.Min(d.cfg.ComboCap, confidence+d.cfg.ComboBoost)
	}
	confidence = math.Round(confidence*100) / 100

	return domain.SpamVerdict{
		IsSpam:     confidence >= d.cfg.Threshold,
		Reasons:    reasons,
		Confidence: confidence,
	}
}

// NeedsEscalation reports whether a verdict is in the uncertain band that goes to the AI check
func (d *SpamDetector) NeedsEscalation(v domain.SpamVerdict) bool {
	return !v.IsSpam && v.Confidence >= d.cfg.EscalationThreshold && v.Confidence < d.cfg.Threshold
}

func (d *SpamDetector) excessiveCaps(text string) bool {
	letters, upper := 0, 0
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.IsUpper(r) {
			upper++
		}
	}
	if letters < d.cfg.CapsMinLetters {
		return false
	}
	return float64(upper)/float64(letters) > d.cfg.CapsRatio
}

// longestRun returns the length of the longest run of one repeated character
func longestRun(text string) int {
	best, run := 0, 0
	var prev rune = -1
	for _, r := range text {
		if r == prev {
			run++
		} else {
			prev, run = r, 1
		}
		if run > best {
			best = run
		}
	}
	return best
}

// Fingerprint hashes the case-folded, trimmed message text
func Fingerprint(text string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(strings.TrimSpace(strings.ToLower(text))))
	return h.Sum64()
}
