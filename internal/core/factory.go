// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"strings"

	"finguard/internal/checkers/disclaimer"
	"finguard/internal/checkers/guaranteedreturns"
	"finguard/internal/checkers/predictions"
	"finguard/internal/checkers/riskterms"
	"finguard/internal/checkers/unlicensed"
	"finguard/internal/detector"
)

// BuildCheckerSet constructs the enabled checkers in presentation order:
// guaranteed returns, predictions, disclaimer, unlicensed advice, risk terms.
// Risk-term analysis is omitted entirely in fast mode.
func BuildCheckerSet(cfg Config) []detector.Checker {
	var checkers []detector.Checker

	if cfg.CheckGuaranteedReturns {
		checkers = append(checkers, guaranteedreturns.NewChecker())
	}
	if cfg.CheckSpecificPredictions {
		checkers = append(checkers, predictions.NewChecker(cfg.StrictMode))
	}
	if cfg.RequireDisclaimers {
		checkers = append(checkers, disclaimer.NewChecker(cfg.StrictMode))
	}
	if cfg.CheckUnlicensedAdvice {
		checkers = append(checkers, unlicensed.NewChecker())
	}
	if cfg.CheckRiskTerms && !cfg.FastMode {
		checkers = append(checkers, riskterms.NewChecker())
	}

	return checkers
}

// CheckNames lists every check name accepted by ParseChecksToRun.
func CheckNames() []string {
	return []string{
		"GUARANTEED_RETURN",
		"SPECIFIC_PREDICTION",
		"DISCLAIMER",
		"UNLICENSED_ADVICE",
		"RISK_TERM",
	}
}

// ParseChecksToRun converts a slice of check names into an enabled-checks map.
// An empty slice or ["all"] enables every check. Unknown names are reported
// so configuration errors surface before validation starts.
func ParseChecksToRun(checks []string) (map[string]bool, []string) {
	result := map[string]bool{
		"GUARANTEED_RETURN":   false,
		"SPECIFIC_PREDICTION": false,
		"DISCLAIMER":          false,
		"UNLICENSED_ADVICE":   false,
		"RISK_TERM":           false,
	}

	if len(checks) == 0 || (len(checks) == 1 && strings.TrimSpace(checks[0]) == "all") {
		for key := range result {
			result[key] = true
		}
		return result, nil
	}

	var unknown []string
	for _, check := range checks {
		name := strings.ToUpper(strings.TrimSpace(check))
		if name == "" {
			continue
		}
		if _, exists := result[name]; exists {
			result[name] = true
		} else {
			unknown = append(unknown, name)
		}
	}

	return result, unknown
}

// ApplyChecks narrows a config to the checks enabled in the map.
func ApplyChecks(cfg Config, enabled map[string]bool) Config {
	cfg.CheckGuaranteedReturns = cfg.CheckGuaranteedReturns && enabled["GUARANTEED_RETURN"]
	cfg.CheckSpecificPredictions = cfg.CheckSpecificPredictions && enabled["SPECIFIC_PREDICTION"]
	cfg.RequireDisclaimers = cfg.RequireDisclaimers && enabled["DISCLAIMER"]
	cfg.CheckUnlicensedAdvice = cfg.CheckUnlicensedAdvice && enabled["UNLICENSED_ADVICE"]
	cfg.CheckRiskTerms = cfg.CheckRiskTerms && enabled["RISK_TERM"]
	return cfg
}
