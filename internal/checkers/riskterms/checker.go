// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package riskterms

import (
	"fmt"
	"strings"

	"finguard/internal/detector"
	"finguard/internal/patterns"
)

// maxReportedTerms caps how many trigger phrases one issue names.
const maxReportedTerms = 3

// Checker implements the detector.Checker interface for the deep risk-term
// analysis pass: guarantee language, risk-free claims, get-rich-quick and
// insider-tip phrasing. The pipeline skips this checker in fast mode.
type Checker struct {
	set *patterns.Set
}

// NewChecker returns a checker bound to the shared risk-term patterns.
func NewChecker() *Checker {
	return &Checker{set: patterns.Get(patterns.RiskTerm)}
}

// Check emits a single summarizing issue naming up to three matched phrases.
func (c *Checker) Check(text string) []detector.Issue {
	matches := c.set.FindAllMatches(text, maxReportedTerms)
	if len(matches) == 0 {
		return nil
	}
	return []detector.Issue{{
		Category: detector.CategoryRiskTerm,
		Message:  fmt.Sprintf("Risk analysis detected: %s", strings.Join(matches, ", ")),
		Matched:  matches[0],
	}}
}
