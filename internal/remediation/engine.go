// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package remediation rewrites failing text into a suggested compliant
// version with deterministic substitutions.
package remediation

import (
	"regexp"

	"finguard/internal/detector"
	"finguard/internal/patterns"
)

// Disclaimer is the paragraph appended when a disclaimer issue is present and
// no disclaimer phrase survives the earlier transforms.
const Disclaimer = "\n\nDisclaimer: This is not financial advice. Please consult with a qualified financial professional before making investment decisions."

type substitution struct {
	pattern     *regexp.Regexp
	replacement string
}

// Guarantee softening. Each rule neutralizes one family of certainty
// phrasing so the guaranteed-return patterns no longer fire on the output.
var guaranteeSubs = []substitution{
	{regexp.MustCompile(`(?i)\bwill\s+(definitely|certainly|surely)\b`), "might"},
	{regexp.MustCompile(`(?i)\bguarantee[sd]?\b`), "potentially offer"},
	{regexp.MustCompile(`(?i)\b(assured|certain|definite|promised)\b`), "possible"},
	{regexp.MustCompile(`(?i)\b(risk[- ]free|no[- ]risk|zero[- ]risk)\b`), "lower risk"},
	{regexp.MustCompile(`(?i)\bno\s+(chance|risk)\s+of\s+loss\b`), "lower chance of loss"},
	{regexp.MustCompile(`(?i)\b(cannot|can'?t)\s+(lose|fail)\b`), "may have lower risk of loss"},
	{regexp.MustCompile(`(?i)\b100%\s+(safe|secure)\b`), "relatively ${1}"},
	{regexp.MustCompile(`(?i)\bsure\s+(thing|bet|profit)\b`), "speculative possibility"},
}

// Prediction hedging
var predictionSubs = []substitution{
	{regexp.MustCompile(`(?i)\bwill\s+hit\b`), "could potentially reach"},
	{regexp.MustCompile(`(?i)\bwill\s+reach\b`), "could potentially reach"},
	{regexp.MustCompile(`(?i)\bgoing\s+to\s+(hit|reach)\b`), "could potentially reach"},
	{regexp.MustCompile(`(?i)\bwill\s+be\s+worth\b`), "might be valued at"},
	{regexp.MustCompile(`(?i)\bgoing\s+to\s+be\s+worth\b`), "might be valued at"},
	{regexp.MustCompile(`(?i)\bwill\s+increase\b`), "could potentially increase"},
	{regexp.MustCompile(`(?i)\bexactly\s+(\d+%)`), "around ${1}"},
}

// Remediate produces a suggested compliant version of the text. Transforms
// run in a fixed order regardless of issue order, each gated on the presence
// of a matching issue category. Text with no issues passes through unchanged.
func Remediate(text string, issues []detector.Issue) string {
	fixed := text

	if detector.HasCategory(issues, detector.CategoryGuaranteedReturn) {
		fixed = applyAll(fixed, guaranteeSubs)
	}

	if detector.HasCategory(issues, detector.CategorySpecificPrediction) {
		fixed = applyAll(fixed, predictionSubs)
	}

	if detector.HasCategory(issues, detector.CategoryDisclaimer) {
		if !patterns.Get(patterns.DisclaimerKeyword).ContainsKeyword(fixed) {
			fixed += Disclaimer
		}
	}

	return fixed
}

func applyAll(text string, subs []substitution) string {
	for _, sub := range subs {
		text = sub.pattern.ReplaceAllString(text, sub.replacement)
	}
	return text
}
