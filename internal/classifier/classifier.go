// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package classifier decides whether a text passage is financial content.
// An optional caller-injected callback is consulted first; pattern heuristics
// are the fallback when the callback is absent or has no opinion.
package classifier

import (
	"context"
	"strings"

	"finguard/internal/detector"
	"finguard/internal/patterns"
)

const (
	// keywordThreshold is the number of distinct financial keywords that
	// marks text as financial on its own.
	keywordThreshold = 2

	// adviceThreshold is the number of advice-indicator matches that marks
	// text as financial on its own.
	adviceThreshold = 1
)

// Classifier gates the validation pipeline on topic detection.
type Classifier struct {
	keywords *patterns.Set
	advice   *patterns.Set
	price    *patterns.Set
	callback detector.Classifier
}

// New creates a classifier. callback may be nil; the classifier then relies
// on pattern heuristics alone. The callback is fixed at construction time.
func New(callback detector.Classifier) *Classifier {
	return &Classifier{
		keywords: patterns.Get(patterns.FinancialKeyword),
		advice:   patterns.Get(patterns.AdviceIndicator),
		price:    patterns.Get(patterns.PriceContext),
		callback: callback,
	}
}

// IsFinancial reports whether the text is financial content. Empty input is
// never financial. A definite callback answer wins; otherwise any one of the
// three heuristic signals crossing its threshold marks the text financial.
func (c *Classifier) IsFinancial(ctx context.Context, text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	if c.callback != nil {
		switch c.callback.Classify(ctx, text) {
		case detector.ClassificationFinancial:
			return true
		case detector.ClassificationNonFinancial:
			return false
		}
		// ClassificationUnknown falls through to heuristics
	}

	if c.keywords.CountKeywords(text) >= keywordThreshold {
		return true
	}

	adviceMatches := 0
	for _, re := range c.advice.Regexes {
		if re.MatchString(text) {
			adviceMatches++
			if adviceMatches >= adviceThreshold {
				return true
			}
		}
	}

	return c.price.MatchesAny(text)
}
