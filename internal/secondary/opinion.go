// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package secondary provides the model-backed second pass over content that
// already cleared or failed the local rule checks.
package secondary

import (
	"context"
	"fmt"
	"strings"

	"finguard/internal/detector"
	"finguard/internal/llm"
)

const compliancePrompt = `Analyze this text for financial advice compliance issues:

Text: "%s"

Check for:
1. Investment advice without disclaimers
2. Guaranteed return promises
3. Overly specific predictions without caveats
4. Unlicensed advisor claims
5. SEC/FINRA regulatory red flags

Respond with:
- "COMPLIANT" if no major issues
- "VIOLATIONS: [specific issues]" if problems exist`

// ComplianceOpinion asks a completion model for an independent compliance
// verdict and maps it onto the pipeline's issue type
type ComplianceOpinion struct {
	completer llm.Completer
}

// NewComplianceOpinion creates a secondary opinion backed by the given completer
func NewComplianceOpinion(completer llm.Completer) *ComplianceOpinion {
	return &ComplianceOpinion{completer: completer}
}

// Consult requests a verdict for the text. A "COMPLIANT" response or any
// unrecognized response yields no issues.
func (o *ComplianceOpinion) Consult(ctx context.Context, text string) ([]detector.Issue, error) {
	response, err := o.completer.Complete(ctx, fmt.Sprintf(compliancePrompt, text))
	if err != nil {
		return nil, fmt.Errorf("secondary opinion request failed: %w", err)
	}

	return parseVerdict(response), nil
}

// parseVerdict extracts issues from a model verdict. Only responses starting
// with "VIOLATIONS" produce an issue; everything else is treated as clean.
func parseVerdict(response string) []detector.Issue {
	response = strings.TrimSpace(response)
	if !strings.HasPrefix(response, "VIOLATIONS") {
		return nil
	}

	details := strings.TrimSpace(strings.TrimPrefix(response, "VIOLATIONS"))
	details = strings.TrimSpace(strings.TrimPrefix(details, ":"))
	if details == "" {
		details = "unspecified compliance concerns"
	}

	return []detector.Issue{{
		Category: detector.CategorySecondaryOpinion,
		Message:  fmt.Sprintf("LLM detected: %s", details),
		Matched:  "",
	}}
}
