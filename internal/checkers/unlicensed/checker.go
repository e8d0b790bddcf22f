// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package unlicensed

import (
	"strings"

	"finguard/internal/detector"
	"finguard/internal/patterns"
)

// Phrases that neutralize a licensing claim. Substring membership test, like
// the disclaimer keywords.
var licensingDisclaimers = []string{
	"not a licensed", "not a financial advisor", "not professional advice",
}

// Checker implements the detector.Checker interface for unlicensed-advice
// signals: a professional credential claim combined with directive advice.
type Checker struct {
	licensing *patterns.Set
	advice    *patterns.Set
}

// NewChecker returns a checker bound to the shared licensing-claim and
// advice-indicator sets.
func NewChecker() *Checker {
	return &Checker{
		licensing: patterns.Get(patterns.LicensingClaim),
		advice:    patterns.Get(patterns.AdviceIndicator),
	}
}

// Check fires only when both a licensing claim and an advice indicator match
// and no explicit "not a licensed" style disclaimer is present.
func (c *Checker) Check(text string) []detector.Issue {
	match, hasClaim := c.licensing.FindMatch(text)
	if !hasClaim || !c.advice.MatchesAny(text) {
		return nil
	}

	lower := strings.ToLower(text)
	for _, phrase := range licensingDisclaimers {
		if strings.Contains(lower, phrase) {
			return nil
		}
	}

	return []detector.Issue{{
		Category: detector.CategoryUnlicensedAdvice,
		Message:  "Potential unlicensed financial advice - verify credentials",
		Matched:  match,
	}}
}
