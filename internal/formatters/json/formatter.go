// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"finguard/internal/detector"
	"finguard/internal/formatters"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON output for programmatic consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

// output is the wire shape of one validation result
type output struct {
	Passed       bool             `json:"passed"`
	Financial    bool             `json:"financial"`
	IssueCount   int              `json:"issue_count"`
	Issues       []detector.Issue `json:"issues,omitempty"`
	SuggestedFix string           `json:"suggested_fix,omitempty"`
}

func (f *Formatter) Format(result detector.Result, options formatters.FormatterOptions) (string, error) {
	out := output{
		Passed:       result.Passed,
		Financial:    result.Financial,
		IssueCount:   len(result.Issues),
		Issues:       result.Issues,
		SuggestedFix: result.SuggestedFix,
	}

	if !options.ShowMatch {
		out.Issues = stripMatches(out.Issues)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error formatting JSON: %w", err)
	}
	return string(data), nil
}

func stripMatches(issues []detector.Issue) []detector.Issue {
	stripped := make([]detector.Issue, len(issues))
	for i, issue := range issues {
		issue.Matched = ""
		stripped[i] = issue
	}
	return stripped
}

// init registers the JSON formatter with the default registry
func init() {
	formatters.Register(NewFormatter())
}
