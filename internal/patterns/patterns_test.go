// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package patterns

import "testing"

func TestLibraryContainsAllCategories(t *testing.T) {
	required := []Category{
		GuaranteedReturn, SpecificPrediction, DisclaimerKeyword,
		AdviceIndicator, LicensingClaim, UncertaintyMarker,
		FinancialKeyword, RiskTerm, PriceContext,
	}
	lib := Library()
	for _, category := range required {
		if _, ok := lib[category]; !ok {
			t.Errorf("library missing category %q", category)
		}
	}
}

func TestGetIsSharedAndStable(t *testing.T) {
	a := Get(GuaranteedReturn)
	b := Get(GuaranteedReturn)
	if a != b {
		t.Error("expected Get to return the shared set, not a copy")
	}
}

func TestGetUnknownCategory(t *testing.T) {
	s := Get(Category("nonexistent"))
	if s == nil {
		t.Fatal("expected empty set for unknown category, got nil")
	}
	if s.MatchesAny("guaranteed returns") {
		t.Error("empty set should match nothing")
	}
}

func TestGuaranteedReturnMatches(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"I guarantee you'll make 20% returns!", true},
		{"This is a risk-free investment.", true},
		{"You cannot lose money on this.", true},
		{"It's a sure thing, trust me.", true},
		{"This fund is 100% safe.", true},
		{"Returns depend on market conditions.", false},
		{"Diversification can reduce volatility.", false},
	}

	set := Get(GuaranteedReturn)
	for _, tc := range tests {
		if got := set.MatchesAny(tc.text); got != tc.want {
			t.Errorf("MatchesAny(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestSpecificPredictionMatches(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Bitcoin will hit $100,000 by December.", true},
		{"AAPL will reach $500 next quarter.", true},
		{"Expect exactly 15% gain this year.", true},
		{"This token will be worth exactly $10.", true},
		{"Tech stocks may see growth over time.", false},
	}

	set := Get(SpecificPrediction)
	for _, tc := range tests {
		if got := set.MatchesAny(tc.text); got != tc.want {
			t.Errorf("MatchesAny(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestUncertaintyMarkerKeywords(t *testing.T) {
	set := Get(UncertaintyMarker)
	if !set.ContainsKeyword("Bitcoin might hit $100,000 by December.") {
		t.Error("expected 'might' to be detected as an uncertainty marker")
	}
	if set.ContainsKeyword("Bitcoin will hit $100,000 by December.") {
		t.Error("expected no uncertainty marker in an absolute prediction")
	}
}

func TestDisclaimerKeywords(t *testing.T) {
	set := Get(DisclaimerKeyword)
	if !set.ContainsKeyword("This is NOT financial advice.") {
		t.Error("expected case-insensitive disclaimer detection")
	}
	if set.ContainsKeyword("Buy gold immediately.") {
		t.Error("expected no disclaimer in bare advice")
	}
}

func TestFinancialKeywordCount(t *testing.T) {
	set := Get(FinancialKeyword)
	if n := set.CountKeywords("Diversify your portfolio across stocks and bonds."); n < 3 {
		t.Errorf("expected at least 3 financial keywords, got %d", n)
	}
	if n := set.CountKeywords("The weather is nice today."); n != 0 {
		t.Errorf("expected 0 financial keywords in non-financial text, got %d", n)
	}
}

func TestFindMatchReturnsTrigger(t *testing.T) {
	m, ok := Get(GuaranteedReturn).FindMatch("This plan is risk-free for everyone.")
	if !ok {
		t.Fatal("expected a match")
	}
	if m != "risk-free" {
		t.Errorf("expected trigger phrase %q, got %q", "risk-free", m)
	}
}

func TestFindAllMatchesCapsAndDeduplicates(t *testing.T) {
	text := "Risk-free and guaranteed profits with insider tips, you cannot lose."
	matches := Get(RiskTerm).FindAllMatches(text, 3)
	if len(matches) == 0 {
		t.Fatal("expected risk term matches")
	}
	if len(matches) > 3 {
		t.Errorf("expected at most 3 matches, got %d", len(matches))
	}
	seen := make(map[string]bool)
	for _, m := range matches {
		if seen[m] {
			t.Errorf("duplicate match %q", m)
		}
		seen[m] = true
	}
}
