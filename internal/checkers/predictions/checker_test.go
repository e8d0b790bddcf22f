// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package predictions

import (
	"testing"

	"finguard/internal/detector"
)

func TestCheckFlagsAbsolutePredictions(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"will hit price", "Bitcoin will hit $100,000 by December.", true},
		{"ticker target", "AAPL will reach $500 next quarter.", true},
		{"exact percentage", "You'll see exactly 15% gain this year.", true},
		{"exact worth", "This coin will be worth exactly $10.", true},
		{"hedged prediction", "Bitcoin might hit $100,000 by December.", false},
		{"could reach", "Analysts say the index could reach new highs.", false},
		{"no prediction", "Index funds track the broader market.", false},
	}

	c := NewChecker(false)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			issues := c.Check(tc.text)
			if got := len(issues) > 0; got != tc.want {
				t.Errorf("Check(%q) flagged=%v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestUncertaintyMarkerAnywhereExempts(t *testing.T) {
	// The hedge doesn't have to touch the prediction itself.
	text := "Things could change, but Bitcoin will hit $100,000 by December."
	if issues := NewChecker(false).Check(text); len(issues) != 0 {
		t.Errorf("expected hedge elsewhere in text to exempt the prediction, got %v", issues)
	}
}

func TestStrictModeIgnoresHedges(t *testing.T) {
	text := "Bitcoin will likely hit $100,000 by December."
	if issues := NewChecker(false).Check(text); len(issues) != 0 {
		t.Fatalf("expected hedged prediction to pass outside strict mode, got %v", issues)
	}
	issues := NewChecker(true).Check(text)
	if len(issues) != 1 {
		t.Fatalf("expected strict mode to flag hedged prediction, got %d issues", len(issues))
	}
	if issues[0].Category != detector.CategorySpecificPrediction {
		t.Errorf("unexpected category %q", issues[0].Category)
	}
}
