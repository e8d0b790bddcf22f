// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package remediation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finguard/internal/detector"
	"finguard/internal/patterns"
)

func issueOf(category detector.Category) detector.Issue {
	return detector.Issue{Category: category, Message: "test issue"}
}

func TestRemediateIdentityOnCleanText(t *testing.T) {
	text := "Index funds are a common way to diversify. This is not financial advice."
	assert.Equal(t, text, Remediate(text, nil))
	assert.Equal(t, text, Remediate(text, []detector.Issue{}))
}

func TestRemediateGuaranteeSoftening(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "guarantee verb",
			input: "We guarantee massive returns on this fund.",
			want:  "We potentially offer massive returns on this fund.",
		},
		{
			name:  "risk-free claim",
			input: "This is a risk-free investment.",
			want:  "This is a lower risk investment.",
		},
		{
			name:  "cannot lose",
			input: "You cannot lose money here.",
			want:  "You may have lower risk of loss money here.",
		},
		{
			name:  "will definitely",
			input: "The stock will definitely rise and profit.",
			want:  "The stock might rise and profit.",
		},
		{
			name:  "100% safe",
			input: "This plan is 100% safe.",
			want:  "This plan is relatively safe.",
		},
		{
			name:  "sure thing",
			input: "Trust me, it is a sure thing.",
			want:  "Trust me, it is a speculative possibility.",
		},
	}

	issues := []detector.Issue{issueOf(detector.CategoryGuaranteedReturn)}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Remediate(tt.input, issues))
		})
	}
}

// Every guarantee trigger phrase must stop matching after remediation so a
// re-validation cannot re-report the category it just fixed.
func TestRemediateGuaranteeProgress(t *testing.T) {
	inputs := []string{
		"We guarantee huge returns.",
		"Guaranteed profits for everyone.",
		"Assured gains if you join today.",
		"A risk-free opportunity.",
		"Zero-risk and no-risk plans available.",
		"The fund will definitely increase in value.",
		"Your deposit is 100% safe.",
		"You cannot lose money with us.",
		"This trade is a sure bet.",
		"There is no chance of loss.",
	}

	set := patterns.Get(patterns.GuaranteedReturn)
	issues := []detector.Issue{issueOf(detector.CategoryGuaranteedReturn)}
	for _, input := range inputs {
		require.True(t, set.MatchesAny(input), "precondition: %q must trigger", input)
		fixed := Remediate(input, issues)
		assert.False(t, set.MatchesAny(fixed), "remediated text %q still triggers", fixed)
	}
}

func TestRemediatePredictionHedging(t *testing.T) {
	issues := []detector.Issue{issueOf(detector.CategorySpecificPrediction)}

	fixed := Remediate("Bitcoin will hit $100,000 by December.", issues)
	assert.Equal(t, "Bitcoin could potentially reach $100,000 by December.", fixed)

	fixed = Remediate("The shares will be worth exactly $50.", issues)
	assert.Contains(t, fixed, "might be valued at")
	assert.NotContains(t, strings.ToLower(fixed), "will be worth")

	fixed = Remediate("You get exactly 20% gain this quarter.", issues)
	assert.Equal(t, "You get around 20% gain this quarter.", fixed)
}

func TestRemediateDisclaimerAppend(t *testing.T) {
	issues := []detector.Issue{issueOf(detector.CategoryDisclaimer)}

	fixed := Remediate("You should buy Tesla stock now.", issues)
	assert.True(t, strings.HasSuffix(fixed, Disclaimer))
	assert.Contains(t, fixed, "not financial advice")

	// Already-disclaimed text is left alone
	disclaimed := "You should buy Tesla stock now. This is not financial advice."
	assert.Equal(t, disclaimed, Remediate(disclaimed, issues))
}

// The disclaimer decision looks at the text after the earlier transforms:
// softening "risk-free" to "lower risk" introduces a disclaimer keyword, so
// no paragraph is appended.
func TestRemediateDisclaimerAfterSoftening(t *testing.T) {
	issues := []detector.Issue{
		issueOf(detector.CategoryGuaranteedReturn),
		issueOf(detector.CategoryDisclaimer),
	}

	fixed := Remediate("A risk-free way to build wealth.", issues)
	assert.Equal(t, "A lower risk way to build wealth.", fixed)
}

func TestRemediateTransformsAreGated(t *testing.T) {
	text := "We guarantee returns and Bitcoin will hit $100,000."

	// Only a prediction issue: guarantee language untouched
	fixed := Remediate(text, []detector.Issue{issueOf(detector.CategorySpecificPrediction)})
	assert.Contains(t, fixed, "guarantee")
	assert.Contains(t, fixed, "could potentially reach")

	// Only a guarantee issue: prediction language untouched
	fixed = Remediate(text, []detector.Issue{issueOf(detector.CategoryGuaranteedReturn)})
	assert.Contains(t, fixed, "potentially offer")
	assert.Contains(t, fixed, "will hit")
}
