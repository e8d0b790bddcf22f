// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package guaranteedreturns

import (
	"testing"

	"finguard/internal/detector"
)

func TestCheckFlagsGuaranteeLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"guaranteed returns", "I guarantee you'll make 20% returns with this strategy!", true},
		{"risk free", "This is a risk-free investment that cannot lose money!", true},
		{"assured profits", "Assured profits for every investor who joins.", true},
		{"sure thing", "Trust me, this stock is a sure thing.", true},
		{"hedged commentary", "Returns are never certain and depend on the market.", false},
		{"clean text", "Diversified portfolios can reduce exposure to volatility.", false},
		{"empty", "", false},
	}

	c := NewChecker()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			issues := c.Check(tc.text)
			if got := len(issues) > 0; got != tc.want {
				t.Errorf("Check(%q) flagged=%v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestCheckEmitsAtMostOneIssue(t *testing.T) {
	// Multiple guarantee phrases in one text must not duplicate the issue.
	text := "Guaranteed returns, risk-free, 100% safe, a sure thing - you cannot lose money."
	issues := NewChecker().Check(text)
	if len(issues) != 1 {
		t.Fatalf("expected exactly 1 issue, got %d", len(issues))
	}
	if issues[0].Category != detector.CategoryGuaranteedReturn {
		t.Errorf("unexpected category %q", issues[0].Category)
	}
	if issues[0].Matched == "" {
		t.Error("expected the trigger phrase to be recorded")
	}
}
