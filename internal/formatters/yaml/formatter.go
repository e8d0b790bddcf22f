// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"fmt"

	"finguard/internal/detector"
	"finguard/internal/formatters"

	yamlv3 "gopkg.in/yaml.v3"
)

// Formatter implements YAML output formatting
type Formatter struct{}

// NewFormatter creates a new YAML formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "yaml"
}

func (f *Formatter) Description() string {
	return "YAML output for configuration-friendly consumption"
}

func (f *Formatter) FileExtension() string {
	return ".yaml"
}

type issueOutput struct {
	Category string `yaml:"category"`
	Message  string `yaml:"message"`
	Matched  string `yaml:"matched,omitempty"`
}

type output struct {
	Passed       bool          `yaml:"passed"`
	Financial    bool          `yaml:"financial"`
	IssueCount   int           `yaml:"issue_count"`
	Issues       []issueOutput `yaml:"issues,omitempty"`
	SuggestedFix string        `yaml:"suggested_fix,omitempty"`
}

func (f *Formatter) Format(result detector.Result, options formatters.FormatterOptions) (string, error) {
	out := output{
		Passed:       result.Passed,
		Financial:    result.Financial,
		IssueCount:   len(result.Issues),
		SuggestedFix: result.SuggestedFix,
	}

	for _, issue := range result.Issues {
		entry := issueOutput{
			Category: string(issue.Category),
			Message:  issue.Message,
		}
		if options.ShowMatch {
			entry.Matched = issue.Matched
		}
		out.Issues = append(out.Issues, entry)
	}

	data, err := yamlv3.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("error formatting YAML: %w", err)
	}
	return string(data), nil
}

// init registers the YAML formatter with the default registry
func init() {
	formatters.Register(NewFormatter())
}
