// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package riskterms

import "finguard/internal/help"

// GetCheckInfo returns standardized information about the RISK_TERM check
func (c *Checker) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "RISK_TERM",
		ShortDescription: "Deep scan for high-risk promotional phrasing",
		DetailedDescription: `The RISK_TERM check runs a broader sweep for high-risk promotional phrasing: guarantee language, risk-free claims, get-rich-quick wording, insider-tip phrasing, and no-loss claims.

It emits a single summarizing issue naming up to three matched phrases. The pipeline skips this check in fast mode to keep latency down.`,

		Patterns: []string{
			"guaranteed profits/returns/money",
			"risk-free, no risk, zero risk",
			"quick/fast money/profit/rich",
			"secret/insider tip(s)/information",
			"cannot/can't lose/fail",
		},

		ConfigurationInfo: "Runs whenever fast_mode is off; skipped entirely in fast mode.",

		Examples: []string{
			`finguard --text "Secret insider tips for quick money!" --checks RISK_TERM`,
		},
	}
}
