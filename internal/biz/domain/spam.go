package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// SpamReason is a closed set of heuristic rules that can mark a message as spam
type SpamReason uint8

const (
	SpamDuplicate SpamReason = iota + 1
	SpamRapidFire
	SpamPromoLink
	SpamPumpPromo
	SpamCryptoScam
	SpamExcessiveCaps
	SpamRepetitiveChars
	SpamExcessiveEmojis
)

var spamReasonNames = map[SpamReason]string{
	SpamDuplicate:       "duplicate",
	SpamRapidFire:       "rapid_fire",
	SpamPromoLink:       "promo_link",
	SpamPumpPromo:       "pump_promo",
	SpamCryptoScam:      "crypto_scam",
	SpamExcessiveCaps:   "excessive_caps",
	SpamRepetitiveChars: "repetitive_chars",
	SpamExcessiveEmojis: "excessive_emojis",
}

var spamReasonConfidence = map[SpamReason]float64{
	SpamDuplicate:       0.9,
	SpamRapidFire:       0.8,
	SpamPromoLink:       0.85,
	SpamPumpPromo:       0.8,
	SpamCryptoScam:      0.95,
	SpamExcessiveCaps:   0.5,
	SpamRepetitiveChars: 0.4,
	SpamExcessiveEmojis: 0.5,
}

// AllSpamReasons lists every reason in rule order
func AllSpamReasons() []SpamReason {
	return []SpamReason{
		SpamDuplicate, SpamRapidFire, SpamPromoLink, SpamPumpPromo,
		SpamCryptoScam, SpamExcessiveCaps, SpamRepetitiveChars, SpamExcessiveEmojis,
	}
}

// String returns the wire code of the reason
func (r SpamReason) String() string {
	if name, ok := spamReasonNames[r]; ok {
		return name
	}
	return fmt.Sprintf("SpamReason(%d)", uint8(r))
}

// Confidence returns the default confidence contributed by the reason.
// Rapid-fire may be overridden per deployment profile.
func (r SpamReason) Confidence() float64 {
	return spamReasonConfidence[r]
}

// MarshalText implements encoding.TextMarshaler
func (r SpamReason) MarshalText() ([]byte, error) {
	name, ok := spamReasonNames[r]
	if !ok {
		return nil, fmt.Errorf("unknown spam reason %d", uint8(r))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (r *SpamReason) UnmarshalText(text []byte) error {
	for reason, name := range spamReasonNames {
		if name == string(text) {
			*r = reason
			return nil
		}
	}
	return fmt.Errorf("unknown spam reason %q", text)
}

// SpamVerdict is the result of scoring one message
type SpamVerdict struct {
	IsSpam     bool
	Reasons    []SpamReason
	Confidence float64
}

// Reason returns the first triggered reason, or zero when none fired
func (v SpamVerdict) Reason() SpamReason {
	if len(v.Reasons) == 0 {
		return 0
	}
	return v.Reasons[0]
}

type spamVerdictJSON struct {
	IsSpam     bool         `json:"is_spam"`
	Reason     *SpamReason  `json:"reason"`
	Reasons    []SpamReason `json:"reasons"`
	Confidence float64      `json:"confidence"`
}

// MarshalJSON emits the verdict with the confidence rounded to two decimals
func (v SpamVerdict) MarshalJSON() ([]byte, error) {
	out := spamVerdictJSON{
		IsSpam:     v.IsSpam,
		Reasons:    v.Reasons,
		Confidence: math.Round(v.Confidence*100) / 100,
	}
	if out.Reasons == nil {
		out.Reasons = []SpamReason{}
	}
	if len(v.Reasons) > 0 {
		first := v.Reasons[0]
		out.Reason = &first
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler
func (v *SpamVerdict) UnmarshalJSON(data []byte) error {
	var in spamVerdictJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	v.IsSpam = in.IsSpam
	v.Reasons = in.Reasons
	v.Confidence = in.Confidence
	return nil
}

// HistoryEntry is one remembered message of an author
type HistoryEntry struct {
	At          time.Time
	Fingerprint uint64
}

// AuthorHistory is the recent message history of one author within a session.
// Entries are kept in arrival order.
type AuthorHistory struct {
	entries []HistoryEntry
}

// Prune drops entries older than window relative to now
func (h *AuthorHistory) Prune(now time.Time, window time.Duration) {
	cutoff := now.Add(-window)
	i := 0
	for i < len(h.entries) && h.entries[i].At.Before(cutoff) {
		i++
	}
	if i > 0 {
		h.entries = append(h.entries[:0], h.entries[i:]...)
	}
}

// Record appends an entry and keeps at most limit of the newest entries
func (h *AuthorHistory) Record(at time.Time, fingerprint uint64, limit int) {
	h.entries = append(h.entries, HistoryEntry{At: at, Fingerprint: fingerprint})
	if limit > 0 && len(h.entries) > limit {
		h.entries = append(h.entries[:0], h.entries[len(h.entries)-limit:]...)
	}
}

// Entries returns the entries oldest first. The slice must not be modified.
func (h *AuthorHistory) Entries() []HistoryEntry {
	return h.entries
}

// Len returns the number of remembered entries
func (h *AuthorHistory) Len() int {
	return len(h.entries)
}
