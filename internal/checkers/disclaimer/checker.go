// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package disclaimer

import (
	"finguard/internal/detector"
	"finguard/internal/patterns"
)

// Checker implements the detector.Checker interface for the disclaimer
// requirement on directive financial advice.
type Checker struct {
	advice      *patterns.Set
	disclaimers *patterns.Set
	strict      bool
}

// NewChecker returns a checker bound to the shared advice-indicator and
// disclaimer-keyword sets. In strict mode the advice gate is removed: any
// financial text without a disclaimer is flagged, not just directive advice.
func NewChecker(strict bool) *Checker {
	return &Checker{
		advice:      patterns.Get(patterns.AdviceIndicator),
		disclaimers: patterns.Get(patterns.DisclaimerKeyword),
		strict:      strict,
	}
}

// Check only runs the disclaimer test when an advice indicator matches
// (always, in strict mode). A present disclaimer keyword satisfies it.
func (c *Checker) Check(text string) []detector.Issue {
	match, hasAdvice := c.advice.FindMatch(text)
	if !hasAdvice && !c.strict {
		return nil
	}
	if c.disclaimers.ContainsKeyword(text) {
		return nil
	}
	return []detector.Issue{{
		Category: detector.CategoryDisclaimer,
		Message:  "Financial advice provided without required disclaimers",
		Matched:  match,
	}}
}
