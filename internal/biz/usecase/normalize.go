package usecase

import (
	"regexp"

	"github.com/kyokomi/emoji/v2"
)

// youtubeEmojiCodes are the shortcode spellings YouTube chat uses that differ from the common aliases
var youtubeEmojiCodes = map[string]string{
	":rolling_on_floor_laughing:": "🤣",
	":face_with_tears_of_joy:":    "😂",
	":fire:":                      "🔥",
	":rocket:":                    "🚀",
	":thumbs_up:":                 "👍",
	":thumbs_down:":               "👎",
	":red_heart:":                 "❤️",
	":skull:":                     "💀",
	":money_bag:":                 "💰",
	":chart_increasing:":          "📈",
	":chart_decreasing:":          "📉",
}

var (
	emojiCodeRe  = regexp.MustCompile(`:[a-zA-Z0-9_+\-]+:`)
	aliasEmojis  = emoji.CodeMap()
	emojiRuneSet = buildEmojiRuneSet(aliasEmojis)
)

// buildEmojiRuneSet collects every non-ASCII code point used by a known emoji,
// leaving out joiners and presentation selectors
func buildEmojiRuneSet(codes map[string]string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(codes))
	for _, v := range codes {
		for _, r := range v {
			switch {
			case r < 0x80, r == 0x200D, r == 0xFE0F, r == 0xFE0E, r == 0x20E3:
				continue
			}
			set[r] = struct{}{}
		}
	}
	for _, v := range youtubeEmojiCodes {
		for _, r := range v {
			if r >= 0x80 && r != 0xFE0F {
				set[r] = struct{}{}
			}
		}
	}
	return set
}

// NormalizeText replaces emoji shortcodes with the emoji glyphs.
// Unknown shortcodes are left as written.
func NormalizeText(text string) string {
	return emojiCodeRe.ReplaceAllStringFunc(text, func(code string) string {
		if e, ok := youtubeEmojiCodes[code]; ok {
			return e
		}
		if e, ok := aliasEmojis[code]; ok {
			return e
		}
		return code
	})
}

// CountEmojis returns the number of emoji code points in text
func CountEmojis(text string) int {
	n := 0
	for _, r := range text {
		if _, ok := emojiRuneSet[r]; ok {
			n++
		}
	}
	return n
}
