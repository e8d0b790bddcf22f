// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package guaranteedreturns

import "finguard/internal/help"

// GetCheckInfo returns standardized information about the GUARANTEED_RETURN check
func (c *Checker) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "GUARANTEED_RETURN",
		ShortDescription: "Detects language asserting certainty of profit",
		DetailedDescription: `The GUARANTEED_RETURN check flags phrases that promise investment outcomes with certainty: guaranteed or assured returns, risk-free claims, and no-loss promises.

Regulatory guidance prohibits presenting investments as certain to profit. The check matches a fixed set of guarantee phrasings case-insensitively and reports at most one issue per text regardless of how many phrases match.`,

		Patterns: []string{
			"guarantee(s/d)/assured/promised ... return/profit/gain/income",
			"risk-free, no-risk, zero-risk",
			"cannot lose/fail ... money/investment",
			"100% safe/secure/guaranteed",
			"sure thing/bet/profit",
		},

		ConfigurationInfo: "Enabled by the check_guaranteed_returns setting (on by default).",

		Examples: []string{
			`finguard --text "I guarantee 20% returns!" --checks GUARANTEED_RETURN`,
			`finguard --file newsletter.txt --checks GUARANTEED_RETURN --format json`,
		},
	}
}
