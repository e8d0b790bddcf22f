// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package patterns holds the process-wide compliance pattern library: compiled
// regular expressions and keyword sets grouped by rule category. The library
// is built once and never mutated; all validator instances share it.
package patterns

import (
	"regexp"
	"strings"
	"sync"
)

// Category names one pattern group in the library.
type Category string

const (
	GuaranteedReturn   Category = "guaranteed_return"
	SpecificPrediction Category = "specific_prediction"
	DisclaimerKeyword  Category = "disclaimer_keyword"
	AdviceIndicator    Category = "advice_indicator"
	LicensingClaim     Category = "licensing_claim"
	UncertaintyMarker  Category = "uncertainty_marker"
	FinancialKeyword   Category = "financial_keyword"
	RiskTerm           Category = "risk_term"
	PriceContext       Category = "price_context"
)

// Set is one category's patterns. Regexes and Keywords are read-only after
// library construction.
type Set struct {
	Regexes  []*regexp.Regexp
	Keywords []string
}

// FindMatch returns the text of the first regex match in the set, if any.
func (s *Set) FindMatch(text string) (string, bool) {
	for _, re := range s.Regexes {
		if m := re.FindString(text); m != "" {
			return m, true
		}
	}
	return "", false
}

// FindAllMatches returns the first match of every regex that fires, capped at
// limit (<=0 means no cap). Duplicate match texts are collapsed.
func (s *Set) FindAllMatches(text string, limit int) []string {
	var matches []string
	seen := make(map[string]bool)
	for _, re := range s.Regexes {
		m := re.FindString(text)
		if m == "" || seen[strings.ToLower(m)] {
			continue
		}
		seen[strings.ToLower(m)] = true
		matches = append(matches, m)
		if limit > 0 && len(matches) >= limit {
			break
		}
	}
	return matches
}

// MatchesAny reports whether any regex in the set matches the text.
func (s *Set) MatchesAny(text string) bool {
	_, ok := s.FindMatch(text)
	return ok
}

// ContainsKeyword reports whether any keyword in the set occurs in the text.
// Matching is a case-insensitive substring test, not a regex.
func (s *Set) ContainsKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range s.Keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// CountKeywords returns the number of distinct keywords present in the text.
func (s *Set) CountKeywords(text string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, kw := range s.Keywords {
		if strings.Contains(lower, kw) {
			count++
		}
	}
	return count
}

var (
	libraryOnce sync.Once
	library     map[Category]*Set
)

// Library returns the shared pattern table, building it on first use.
func Library() map[Category]*Set {
	libraryOnce.Do(buildLibrary)
	return library
}

// Get returns the pattern set for a category. Unknown categories yield an
// empty set rather than nil so checkers parameterized by category name do not
// need a special case.
func Get(category Category) *Set {
	if s, ok := Library()[category]; ok {
		return s
	}
	return &Set{}
}

func compileAll(exprs []string) []*regexp.Regexp {
	regexes := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		regexes = append(regexes, regexp.MustCompile(expr))
	}
	return regexes
}

func buildLibrary() {
	library = map[Category]*Set{
		// Phrases asserting certainty of profit
		GuaranteedReturn: {
			Regexes: compileAll([]string{
				`(?i)\b(guarantee[sd]?|assured|certain|definite|promised)\b.*\b(returns?|profits?|gains?|income)\b`,
				`(?i)\bguarantee[sd]?\b.*\bmake\b.*\b(money|returns?|profits?)\b`,
				`(?i)\b(risk[- ]free|no[- ]risk|zero[- ]risk)\b`,
				`(?i)\bwill\s+(definitely|certainly|surely)\s+.*\b(increase|rise|grow|profit)\b`,
				`(?i)\b100%\s+(safe|secure|guaranteed)\b`,
				`(?i)\bcannot\s+(lose|fail)\b.*\b(money|investment)\b`,
				`(?i)\bsure\s+(thing|bet|profit)\b`,
				`(?i)\bno\s+(chance|risk)\s+of\s+loss\b`,
			}),
		},

		// Concrete price or percentage bound to a timeframe
		SpecificPrediction: {
			Regexes: compileAll([]string{
				`(?i)\b(will|going to)\s+.*\b(hit|reach|be worth)\s+\$[\d,]+\b`,
				`(?i)\b[a-z]{2,6}\s+will\s+(hit|reach)\s+\$[\d,]+\b`,
				`(?i)\bby\s+(next\s+week|next\s+month|\d{1,2}/\d{1,2}/\d{4})\b.*\b(price|value)\b`,
				`(?i)\bexactly\s+\d+%\s+(gain|return|profit)\b`,
				`(?i)\bwill\s+be\s+worth\s+exactly\s+\$[\d,]+\b`,
				`(?i)\b(tomorrow|next\s+week|this\s+month)\s+.*\b(will\s+be|expect)\b`,
				`(?i)\bpredict(ing)?\b.*\$[\d,]+\s+by\b`,
			}),
		},

		// Phrases that satisfy a disclaimer requirement (membership test)
		DisclaimerKeyword: {
			Keywords: []string{
				"not financial advice", "not investment advice", "consult", "professional",
				"do your own research", "past performance", "risk", "disclaimer",
				"opinion only", "educational purposes", "seek advice", "qualified advisor",
				"investment professional", "financial planner", "due diligence",
			},
		},

		// Directive advice phrasing
		AdviceIndicator: {
			Regexes: compileAll([]string{
				`(?i)\b(should|must|recommend|suggest)\s+(buy|sell|invest|trade)\b`,
				`(?i)\b(best|top|perfect)\s+(stock|investment|strategy)\b`,
				`(?i)\b(my\s+advice|i\s+recommend|you\s+should)\b`,
				`(?i)\b(time\s+to\s+buy|now\s+is\s+the\s+time)\b`,
				`(?i)\b(buy\s+now|sell\s+now|act\s+fast)\b`,
				`(?i)\b(strong\s+buy|strong\s+sell)\b`,
			}),
		},

		// Professional credential claims
		LicensingClaim: {
			Regexes: compileAll([]string{
				`(?i)\bas\s+a\s+financial\s+advisor\b`,
				`(?i)\bi\s+am\s+a\s+licensed\b`,
				`(?i)\bmy\s+professional\s+opinion\b`,
				`(?i)\bfiduciary\s+(advice|duty)\b`,
				`(?i)\bcertified\s+financial\s+planner\b`,
				`(?i)\bregistered\s+investment\s+advisor\b`,
			}),
		},

		// Hedging words exempting a prediction from being flagged
		UncertaintyMarker: {
			Keywords: []string{
				"might", "could", "may", "possibly", "perhaps", "likely", "potentially",
			},
		},

		// Financial-domain keywords for topic detection
		FinancialKeyword: {
			Keywords: []string{
				"invest", "investment", "portfolio", "stock", "stocks", "bond", "bonds",
				"etf", "mutual fund", "401k", "ira", "retirement", "dividend", "yield",
				"trade", "trading", "buy", "sell", "broker", "market", "exchange",
				"bull market", "bear market", "volatility", "risk", "return", "roi",
				"financial advice", "investment advice", "recommend", "suggestion",
				"strategy", "allocation", "diversification", "asset", "wealth",
				"crypto", "cryptocurrency", "bitcoin", "real estate", "commodities",
				"securities", "equity", "debt", "capital", "finance", "financial",
				"money", "profit", "profits", "earnings", "income", "gains", "returns",
				"rich", "wealthy", "millionaire", "fortune", "cash", "savings",
				"insider", "tips", "secret", "guaranteed", "risk-free", "sure thing",
			},
		},

		// High-risk phrasing flagged by the deep analysis pass
		RiskTerm: {
			Regexes: compileAll([]string{
				`(?i)\bguaranteed?\s+\w*\s*(profits?|returns?|money)\b`,
				`(?i)\brisk[-\s]?free\b`,
				`(?i)\b(no|zero)\s+risk\b`,
				`(?i)\b(quick|fast)\s+(money|profit|rich)\b`,
				`(?i)\b(secret|insider)\s+(tip|tips|information)\b`,
				`(?i)\b(cannot|can'?t)\s+(lose|fail)\b`,
			}),
		},

		// Price plus ticker/stock context for topic detection. Ticker tokens
		// are matched case-sensitively against the original text.
		PriceContext: {
			Regexes: compileAll([]string{
				`\b[A-Z]{2,6}\s+will\s+(hit|reach|be\s+worth)\s+\$[\d,]+`,
				`(?i)\b(stock|share|price)\s+will\s+(hit|reach)\s+\$[\d,]+`,
				`\b(buy|sell|trade|hold)\b[^.!?]{0,40}\b[A-Z]{2,6}\b\s+(stock|shares?|calls?|puts?)`,
				`\b[A-Z]{2,6}\b[^.!?]{0,40}\$[\d,]+`,
				`(?i)\$[\d,]+[^.!?]{0,40}\b(profit|loss|gain|return|target|forecast)s?\b`,
			}),
		},
	}
}
