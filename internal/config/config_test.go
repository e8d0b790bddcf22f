// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.Defaults.Format != "text" {
		t.Errorf("expected default format text, got %q", config.Defaults.Format)
	}
	if config.Defaults.Checks != "all" {
		t.Errorf("expected default checks all, got %q", config.Defaults.Checks)
	}
	if !config.Compliance.RequireDisclaimers {
		t.Error("expected require_disclaimers to default to true")
	}
	if !config.Compliance.CheckRiskTerms {
		t.Error("expected check_risk_terms to default to true")
	}
	if config.SecondaryOpinion.Enabled {
		t.Error("expected secondary opinion to default to disabled")
	}
	if config.GetProfile("fast") == nil {
		t.Error("expected built-in fast profile")
	}
	if config.GetProfile("strict") == nil {
		t.Error("expected built-in strict profile")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
defaults:
  format: json
  checks: GUARANTEED_RETURN,DISCLAIMER
compliance:
  check_unlicensed_advice: false
  fast_mode: true
secondary_opinion:
  enabled: true
  model: llama-3.3-70b-versatile
  timeout_seconds: 5
profiles:
  review:
    format: yaml
    strict_mode: true
    description: Editorial review pass
`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.Defaults.Format != "json" {
		t.Errorf("expected format json, got %q", config.Defaults.Format)
	}
	if config.Compliance.CheckUnlicensedAdvice {
		t.Error("expected check_unlicensed_advice false")
	}
	if !config.Compliance.FastMode {
		t.Error("expected fast_mode true")
	}
	// Fields absent from the file keep their defaults
	if !config.Compliance.RequireDisclaimers {
		t.Error("expected require_disclaimers to stay true when not in file")
	}
	if !config.Compliance.CheckGuaranteedReturns {
		t.Error("expected check_guaranteed_returns to stay true when not in file")
	}
	if !config.SecondaryOpinion.Enabled {
		t.Error("expected secondary opinion enabled")
	}
	if config.SecondaryOpinion.TimeoutSeconds != 5 {
		t.Errorf("expected timeout 5, got %d", config.SecondaryOpinion.TimeoutSeconds)
	}

	profile := config.GetProfile("review")
	if profile == nil {
		t.Fatal("expected review profile")
	}
	if profile.Format != "yaml" || !profile.StrictMode {
		t.Errorf("unexpected profile values: %+v", profile)
	}
}

func TestLoadConfigRejectsConflictingModes(t *testing.T) {
	path := writeConfig(t, `
compliance:
  strict_mode: true
  fast_mode: true
`)

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for strict_mode + fast_mode")
	}
}

func TestLoadConfigRejectsConflictingProfile(t *testing.T) {
	path := writeConfig(t, `
profiles:
  broken:
    strict_mode: true
    fast_mode: true
`)

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for conflicting profile modes")
	}
}

func TestLoadConfigRejectsUnknownFormat(t *testing.T) {
	path := writeConfig(t, `
defaults:
  format: xml
`)

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestLoadConfigOrDefaultFallsBack(t *testing.T) {
	config := LoadConfigOrDefault("/nonexistent/config.yaml")
	if config == nil {
		t.Fatal("expected fallback config")
	}
	if config.Defaults.Format != "text" {
		t.Errorf("expected default format text, got %q", config.Defaults.Format)
	}
}

func TestGetProfileMissing(t *testing.T) {
	config, _ := LoadConfig("")
	if config.GetProfile("nope") != nil {
		t.Error("expected nil for unknown profile")
	}
}
