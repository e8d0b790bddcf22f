// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"finguard/internal/detector"
	"finguard/internal/formatters"

	"github.com/fatih/color"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(result detector.Result, options formatters.FormatterOptions) (string, error) {
	// Disable colors if requested
	if options.NoColor {
		color.NoColor = true
	}

	var sb strings.Builder

	if result.Passed {
		if result.Financial {
			sb.WriteString(f.colors["green"].Sprint("PASSED") + ": financial content, no compliance violations\n")
		} else {
			sb.WriteString(f.colors["green"].Sprint("PASSED") + ": non-financial content\n")
		}
		return sb.String(), nil
	}

	violations := "violations"
	if len(result.Issues) == 1 {
		violations = "violation"
	}
	sb.WriteString(f.colors["red"].Sprint("BLOCKED") + fmt.Sprintf(": %d compliance %s found\n", len(result.Issues), violations))

	for i, issue := range result.Issues {
		sb.WriteString(fmt.Sprintf("  %d. [%s] %s\n", i+1, f.colors["yellow"].Sprint(string(issue.Category)), issue.Message))
		if options.ShowMatch && issue.Matched != "" {
			sb.WriteString(fmt.Sprintf("     matched: %q\n", issue.Matched))
		}
	}

	if result.SuggestedFix != "" {
		sb.WriteString("\n" + f.colors["cyan"].Sprint("Suggested fix:") + "\n")
		for _, line := range strings.Split(result.SuggestedFix, "\n") {
			sb.WriteString("  " + line + "\n")
		}
	}

	return sb.String(), nil
}

// init registers the text formatter with the default registry
func init() {
	formatters.Register(NewFormatter())
}
