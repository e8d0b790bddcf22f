// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import "context"

// Category identifies one compliance rule category.
type Category string

const (
	CategoryGuaranteedReturn   Category = "GUARANTEED_RETURN"
	CategorySpecificPrediction Category = "SPECIFIC_PREDICTION"
	CategoryDisclaimer         Category = "DISCLAIMER"
	CategoryUnlicensedAdvice   Category = "UNLICENSED_ADVICE"
	CategoryRiskTerm           Category = "RISK_TERM"
	CategorySecondaryOpinion   Category = "SECONDARY_OPINION"
)

// Issue describes one detected compliance problem.
type Issue struct {
	// Category is the rule category that produced the issue
	Category Category `json:"category"`

	// Message is a short human-readable description
	Message string `json:"message"`

	// Matched is the trigger phrase, when a local pattern produced the issue
	Matched string `json:"matched,omitempty"`
}

// Checker scans text against one rule category. Implementations must be pure
// functions of the input text plus the shared pattern library: no mutable
// state, safe for concurrent use.
type Checker interface {
	Check(text string) []Issue
}

// Classification is the tri-state outcome of a topic classifier callback.
type Classification int

const (
	// ClassificationUnknown means the callback had no opinion (not configured,
	// or the call failed); the caller falls back to pattern heuristics.
	ClassificationUnknown Classification = iota
	ClassificationFinancial
	ClassificationNonFinancial
)

// Classifier is an optional caller-injected topic classifier. A failed call
// must be reported as ClassificationUnknown, never as an error.
type Classifier interface {
	Classify(ctx context.Context, text string) Classification
}

// SecondaryOpinion is an optional caller-injected external compliance check.
// Errors are caught at the call site and treated as zero issues.
type SecondaryOpinion interface {
	Consult(ctx context.Context, text string) ([]Issue, error)
}

// Result is the outcome of one validation. Pass results carry no issues;
// Fail results carry the ordered issue list and a best-effort suggested fix.
type Result struct {
	Passed    bool    `json:"passed"`
	Financial bool    `json:"financial"`
	Issues    []Issue `json:"issues,omitempty"`

	// SuggestedFix is a remediated version of the input, set only on failure
	SuggestedFix string `json:"suggested_fix,omitempty"`
}

// Pass returns a passing result for content with no compliance obligations.
func Pass(financial bool) Result {
	return Result{Passed: true, Financial: financial}
}

// Fail returns a failing result with the detected issues and suggested fix.
func Fail(issues []Issue, suggestedFix string) Result {
	return Result{Passed: false, Financial: true, Issues: issues, SuggestedFix: suggestedFix}
}

// HasCategory reports whether any issue belongs to the given category.
func HasCategory(issues []Issue, category Category) bool {
	for _, issue := range issues {
		if issue.Category == category {
			return true
		}
	}
	return false
}
