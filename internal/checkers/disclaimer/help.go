// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package disclaimer

import "finguard/internal/help"

// GetCheckInfo returns standardized information about the DISCLAIMER check
func (c *Checker) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "DISCLAIMER",
		ShortDescription: "Requires a disclaimer on directive financial advice",
		DetailedDescription: `The DISCLAIMER check fires when text contains directive advice (you should buy, strong sell, act fast) but no recognized disclaimer phrase.

Disclaimer detection is a case-insensitive membership test over phrases like "not financial advice", "consult a professional", "past performance" and "educational purposes". Any one of them satisfies the requirement.`,

		Patterns: []string{
			"should/must/recommend/suggest + buy/sell/invest/trade",
			"best/top/perfect + stock/investment/strategy",
			"my advice, i recommend, you should",
			"buy now, sell now, act fast, strong buy/sell",
		},

		Exemptions: []string{
			"Any recognized disclaimer phrase present in the text",
			"Text with no advice indicators (unless strict mode is on)",
		},

		ConfigurationInfo: `Enabled by the require_disclaimers setting (on by default).
In strict mode the advice gate is removed: every financial text needs a disclaimer.`,

		Examples: []string{
			`finguard --text "You should buy Tesla stock now." --checks DISCLAIMER`,
		},
	}
}
