package usecase

import (
	"regexp"
	"strings"

	"github.com/flowstate-live/flowstate/internal/biz/domain"
)

var (
	dollarTickerRe = regexp.MustCompile(`\$([A-Z]{1,5})\b`)
	tickerWordRe   = regexp.MustCompile(`\b([A-Z]{2,5})\b`)
	wordRe         = regexp.MustCompile(`\w+`)
	companyNameRes = compileCompanyNames()
)

func compileCompanyNames() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(companyNames))
	for i, c := range companyNames {
		res[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(c.name) + `\b`)
	}
	return res
}

// ExtractTicker returns the primary ticker a message is about, or "" when none.
//
// Priority: an explicit $SYMBOL (which also records the symbol in discovered),
// then a company name, then an unambiguous known or discovered symbol, then an
// ambiguous symbol when the message has stock context. Dollar-only symbols are
// never taken from plain text.
func ExtractTicker(text string, discovered *domain.TickerSet) string {
	upper := strings.ToUpper(text)

	for _, m := range dollarTickerRe.FindAllStringSubmatch(upper, -1) {
		symbol := m[1]
		if ignoreWords.has(symbol) {
			continue
		}
		if discovered != nil {
			discovered.Add(symbol)
		}
		return symbol
	}

	if ticker := matchCompanyName(upper); ticker != "" {
		return ticker
	}

	words := tickerWordRe.FindAllString(upper, -1)
	valid := func(w string) bool {
		return knownTickers.has(w) || discovered.Contains(w)
	}

	for _, w := range words {
		if ignoreWords.has(w) || dollarOnlyTickers.has(w) {
			continue
		}
		if valid(w) && !ambiguousTickers.has(w) {
			return w
		}
	}

	if !HasStockContext(text) {
		return ""
	}
	for _, w := range words {
		if ignoreWords.has(w) || dollarOnlyTickers.has(w) {
			continue
		}
		if valid(w) && ambiguousTickers.has(w) {
			return w
		}
	}
	return ""
}

// matchCompanyName returns the ticker of the company name occurring earliest in text
func matchCompanyName(upper string) string {
	best, bestAt := "", -1
	for i, re := range companyNameRes {
		loc := re.FindStringIndex(upper)
		if loc == nil {
			continue
		}
		if bestAt == -1 || loc[0] < bestAt {
			best, bestAt = companyNames[i].ticker, loc[0]
		}
	}
	return best
}

// HasStockContext reports whether the message uses trading vocabulary
func HasStockContext(text string) bool {
	for _, w := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if stockContextWords.has(w) {
			return true
		}
	}
	return false
}
