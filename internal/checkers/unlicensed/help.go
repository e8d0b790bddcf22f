// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package unlicensed

import "finguard/internal/help"

// GetCheckInfo returns standardized information about the UNLICENSED_ADVICE check
func (c *Checker) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "UNLICENSED_ADVICE",
		ShortDescription: "Detects credential claims combined with directive advice",
		DetailedDescription: `The UNLICENSED_ADVICE check fires only when a professional credential claim ("as a financial advisor", "certified financial planner", "fiduciary duty") appears together with directive advice in the same text.

An explicit counter-disclaimer such as "not a licensed advisor" or "not professional advice" neutralizes the claim and suppresses the issue.`,

		Patterns: []string{
			"as a financial advisor",
			"i am a licensed ...",
			"certified financial planner",
			"registered investment advisor",
			"fiduciary advice/duty",
			"my professional opinion",
		},

		Exemptions: []string{
			"not a licensed ..., not a financial advisor, not professional advice",
			"Credential claim without any advice indicator",
		},

		ConfigurationInfo: "Enabled by the check_unlicensed_advice setting (on by default).",

		Examples: []string{
			`finguard --text "As a financial advisor, I recommend you buy gold." --checks UNLICENSED_ADVICE`,
		},
	}
}
