// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package predictions

import (
	"finguard/internal/detector"
	"finguard/internal/patterns"
)

// Checker implements the detector.Checker interface for overly specific
// price or timing predictions.
type Checker struct {
	set    *patterns.Set
	hedges *patterns.Set
	strict bool
}

// NewChecker returns a checker bound to the shared prediction patterns.
// In strict mode the uncertainty-marker exemption is disabled: hedged
// predictions are flagged like absolute ones.
func NewChecker(strict bool) *Checker {
	return &Checker{
		set:    patterns.Get(patterns.SpecificPrediction),
		hedges: patterns.Get(patterns.UncertaintyMarker),
		strict: strict,
	}
}

// Check flags a prediction only when no uncertainty marker appears anywhere
// in the text (unless strict mode is on). One issue at most.
func (c *Checker) Check(text string) []detector.Issue {
	match, ok := c.set.FindMatch(text)
	if !ok {
		return nil
	}
	if !c.strict && c.hedges.ContainsKeyword(text) {
		return nil
	}
	return []detector.Issue{{
		Category: detector.CategorySpecificPrediction,
		Message:  "Contains overly specific predictions without uncertainty language",
		Matched:  match,
	}}
}
