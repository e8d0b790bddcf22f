// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package predictions

import "finguard/internal/help"

// GetCheckInfo returns standardized information about the SPECIFIC_PREDICTION check
func (c *Checker) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "SPECIFIC_PREDICTION",
		ShortDescription: "Detects concrete price/date predictions without hedging",
		DetailedDescription: `The SPECIFIC_PREDICTION check flags statements that bind a concrete price or percentage to a specific date or timeframe without hedging language, such as "AAPL will hit $500 by next month" or "exactly 15% gain this year".

A prediction accompanied by an uncertainty marker anywhere in the text (might, could, may, possibly, likely) is exempt, since hedged forecasts are ordinary market commentary.`,

		Patterns: []string{
			"will/going to ... hit/reach/be worth $X",
			"TICKER will hit/reach $X",
			"exactly N% gain/return/profit",
			"will be worth exactly $X",
			"by next week/month or a dated deadline ... price/value",
		},

		Exemptions: []string{
			"Uncertainty markers: might, could, may, possibly, perhaps, likely, potentially",
			"Exemption is disabled in strict mode",
		},

		ConfigurationInfo: "Enabled by the check_specific_predictions setting (on by default).",

		Examples: []string{
			`finguard --text "Bitcoin will hit $100,000 by December." --checks SPECIFIC_PREDICTION`,
		},
	}
}
