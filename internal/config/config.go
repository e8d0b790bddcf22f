// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format  string `yaml:"format"`
		Checks  string `yaml:"checks"`
		Verbose bool   `yaml:"verbose"`
		Debug   bool   `yaml:"debug"`
		NoColor bool   `yaml:"no_color"`
	} `yaml:"defaults"`

	// Compliance rule switches
	Compliance struct {
		RequireDisclaimers       bool `yaml:"require_disclaimers"`
		CheckGuaranteedReturns   bool `yaml:"check_guaranteed_returns"`
		CheckSpecificPredictions bool `yaml:"check_specific_predictions"`
		CheckUnlicensedAdvice    bool `yaml:"check_unlicensed_advice"`
		CheckRiskTerms           bool `yaml:"check_risk_terms"`
		StrictMode               bool `yaml:"strict_mode"`
		FastMode                 bool `yaml:"fast_mode"`
	} `yaml:"compliance"`

	// Secondary opinion service settings
	SecondaryOpinion struct {
		Enabled        bool   `yaml:"enabled"`
		Model          string `yaml:"model"`
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		MaxTokens      int    `yaml:"max_tokens"`
	} `yaml:"secondary_opinion"`

	// Profiles for different validation scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents a validation profile with specific settings
type Profile struct {
	Format      string `yaml:"format"`
	Checks      string `yaml:"checks"`
	Verbose     bool   `yaml:"verbose"`
	NoColor     bool   `yaml:"no_color"`
	StrictMode  bool   `yaml:"strict_mode"`
	FastMode    bool   `yaml:"fast_mode"`
	Description string `yaml:"description"`
}

// LoadConfig loads configuration from a YAML file, applying defaults for
// anything the file does not set. An empty path yields the default config.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	// Set default values
	config.Defaults.Format = "text"
	config.Defaults.Checks = "all"
	config.Compliance.RequireDisclaimers = true
	config.Compliance.CheckGuaranteedReturns = true
	config.Compliance.CheckSpecificPredictions = true
	config.Compliance.CheckUnlicensedAdvice = true
	config.Compliance.CheckRiskTerms = true
	config.SecondaryOpinion.Enabled = false
	config.SecondaryOpinion.TimeoutSeconds = 10
	config.SecondaryOpinion.MaxTokens = 300

	// Built-in profiles
	config.Profiles["fast"] = Profile{
		Format:      "text",
		Checks:      "all",
		FastMode:    true,
		Description: "Pattern-first validation that skips the slow analysis passes when local issues suffice",
	}
	config.Profiles["strict"] = Profile{
		Format:      "text",
		Checks:      "all",
		StrictMode:  true,
		Description: "Strictest regulatory standards: hedge exemptions and advice gating disabled",
	}

	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Restore defaults for boolean fields the file does not mention.
	// YAML unmarshaling would otherwise leave them false.
	complianceDefaults := map[string]*bool{
		"require_disclaimers":        &config.Compliance.RequireDisclaimers,
		"check_guaranteed_returns":   &config.Compliance.CheckGuaranteedReturns,
		"check_specific_predictions": &config.Compliance.CheckSpecificPredictions,
		"check_unlicensed_advice":    &config.Compliance.CheckUnlicensedAdvice,
		"check_risk_terms":           &config.Compliance.CheckRiskTerms,
	}
	for field, target := range complianceDefaults {
		if !containsField(data, "compliance", field) {
			*target = true
		}
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// LoadConfigOrDefault loads the given config file, falling back to the
// default configuration when the file cannot be loaded.
func LoadConfigOrDefault(configFile string) *Config {
	config, err := LoadConfig(configFile)
	if err != nil {
		config, _ = LoadConfig("")
	}
	return config
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	if fileExists("config.yaml") {
		return "config.yaml"
	}
	if fileExists("finguard.yaml") {
		return "finguard.yaml"
	}
	if fileExists("finguard.yml") {
		return "finguard.yml"
	}

	// Project-specific config
	if fileExists(".finguard.yaml") {
		return ".finguard.yaml"
	}
	if fileExists(".finguard.yml") {
		return ".finguard.yml"
	}

	// User-level config
	if home, err := os.UserHomeDir(); err == nil {
		userConfig := filepath.Join(home, ".finguard", "config.yaml")
		if fileExists(userConfig) {
			return userConfig
		}
	}

	return ""
}

// ValidateConfig checks configuration consistency. Conflicts fail here so a
// bad file never reaches the validator.
func ValidateConfig(config *Config) error {
	if config.Compliance.StrictMode && config.Compliance.FastMode {
		return fmt.Errorf("compliance: strict_mode and fast_mode cannot both be enabled")
	}

	switch config.Defaults.Format {
	case "", "text", "json", "yaml":
	default:
		return fmt.Errorf("defaults: unknown output format %q", config.Defaults.Format)
	}

	if config.SecondaryOpinion.TimeoutSeconds < 0 {
		return fmt.Errorf("secondary_opinion: timeout_seconds cannot be negative")
	}
	if config.SecondaryOpinion.MaxTokens < 0 {
		return fmt.Errorf("secondary_opinion: max_tokens cannot be negative")
	}

	for name, profile := range config.Profiles {
		if profile.StrictMode && profile.FastMode {
			return fmt.Errorf("profile %q: strict_mode and fast_mode cannot both be enabled", name)
		}
	}

	return nil
}

// ListProfiles returns a list of available profile names
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	return profiles
}

// GetProfile returns a profile by name, or nil if not found
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// containsField checks if a nested field exists in the YAML data
func containsField(data []byte, path ...string) bool {
	var node map[string]interface{}
	if err := yaml.Unmarshal(data, &node); err != nil {
		return false
	}

	current := node
	for i, key := range path {
		value, exists := current[key]
		if !exists {
			return false
		}
		if i == len(path)-1 {
			return true
		}
		next, ok := value.(map[string]interface{})
		if !ok {
			return false
		}
		current = next
	}
	return false
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return info != nil && !info.IsDir()
}
