// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package guaranteedreturns

import (
	"finguard/internal/detector"
	"finguard/internal/patterns"
)

// Checker implements the detector.Checker interface for prohibited
// guaranteed-return language.
type Checker struct {
	set *patterns.Set
}

// NewChecker returns a checker bound to the shared guaranteed-return patterns.
func NewChecker() *Checker {
	return &Checker{set: patterns.Get(patterns.GuaranteedReturn)}
}

// Check emits at most one issue per call. Multiple matches of the same
// category do not produce duplicates.
func (c *Checker) Check(text string) []detector.Issue {
	match, ok := c.set.FindMatch(text)
	if !ok {
		return nil
	}
	return []detector.Issue{{
		Category: detector.CategoryGuaranteedReturn,
		Message:  "Contains prohibited guaranteed return language",
		Matched:  match,
	}}
}
