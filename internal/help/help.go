// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// CheckInfo contains standardized information about a compliance check
type CheckInfo struct {
	Name                string   // Name of the check (e.g., "GUARANTEED_RETURN")
	ShortDescription    string   // Short description for the checks list
	DetailedDescription string   // Detailed description of what the check does
	Patterns            []string // Patterns the check looks for
	Exemptions          []string // Conditions that exempt text from the check
	ConfigurationInfo   string   // Information about how to configure the check
	Examples            []string // Usage examples
}

// Provider defines the interface for help content providers
type Provider interface {
	GetCheckInfo() CheckInfo
}

// System manages help content for the application
type System struct {
	providers map[string]Provider
	colors    map[string]*color.Color
}

// NewSystem creates a new help system
func NewSystem(noColor bool) *System {
	if noColor {
		color.NoColor = true
	}

	return &System{
		providers: make(map[string]Provider),
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"header":   color.New(color.FgBlue, color.Bold),
			"emphasis": color.New(color.FgWhite, color.Bold),
			"negative": color.New(color.FgRed),
			"example":  color.New(color.FgMagenta),
		},
	}
}

// RegisterProvider adds a help provider to the system
func (h *System) RegisterProvider(provider Provider) {
	info := provider.GetCheckInfo()
	h.providers[strings.ToLower(info.Name)] = provider
}

// ShowGeneralHelp displays general help information
func (h *System) ShowGeneralHelp() {
	h.colors["title"].Println("Finguard - Financial Content Compliance Validator")
	fmt.Println("=================================================")
	fmt.Println()
	h.colors["header"].Println("USAGE:")
	fmt.Println("  finguard --text <content> [options]")
	fmt.Println("  finguard --file <path> [options]")
	fmt.Println("  echo <content> | finguard [options]")
	fmt.Println()

	h.colors["header"].Println("OPTIONS:")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  --text\t<content>\tText to validate")
	fmt.Fprintln(w, "  --file\t<path>\tPath to a text, markdown, or PDF file to validate")
	fmt.Fprintln(w, "  --config\t<path>\tPath to configuration file (YAML)")
	fmt.Fprintln(w, "  --profile\t<name>\tProfile name to use from config file")
	fmt.Fprintln(w, "  --list-profiles\t\tList available profiles in config file")
	fmt.Fprintln(w, "  --format\t<format>\tOutput format: text, json, yaml (default: text)")
	fmt.Fprintln(w, "  --checks\t<checks>\tSpecific checks to run: GUARANTEED_RETURN,SPECIFIC_PREDICTION,DISCLAIMER,UNLICENSED_ADVICE,RISK_TERM,all (default: all)")
	fmt.Fprintln(w, "  --fast\t\tSkip the secondary opinion and risk analysis when local checks already found issues")
	fmt.Fprintln(w, "  --strict\t\tApply strictest standards (disclaimer required for any financial content)")
	fmt.Fprintln(w, "  --secondary\t\tConsult the configured language model for a secondary opinion")
	fmt.Fprintln(w, "  --verbose\t\tDisplay detailed information for each issue")
	fmt.Fprintln(w, "  --debug\t\tEnable debug logging of the validation pipeline")
	fmt.Fprintln(w, "  --no-color\t\tDisable colored output")
	fmt.Fprintln(w, "  --list-checks\t\tList all available checks")
	fmt.Fprintln(w, "  --list-formats\t\tList all available output formats")
	fmt.Fprintln(w, "  --version\t\tShow version information")
	fmt.Fprintln(w, "  --help\t\tShow this help message")
	fmt.Fprintln(w, "  --help <check>\t\tShow detailed help for a specific check")
	w.Flush()

	fmt.Println()
	h.colors["header"].Println("EXAMPLES:")
	h.colors["example"].Println("  finguard --text \"You should buy Tesla stock now.\"")
	h.colors["example"].Println("  finguard --file advice.pdf --format json")
	h.colors["example"].Println("  finguard --text \"...\" --checks GUARANTEED_RETURN,DISCLAIMER --strict")
	fmt.Println()
	h.colors["header"].Println("CONFIGURATION:")
	fmt.Println("  Project config: finguard.yaml or .finguard.yaml (in current directory)")
	fmt.Println("  Secondary opinion: set FINGUARD_API_KEY (or OPENAI_API_KEY) to enable")
}

// ShowChecksHelp displays information about all available checks
func (h *System) ShowChecksHelp() {
	h.colors["title"].Println("Available Compliance Checks")
	fmt.Println("===========================")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	h.colors["header"].Fprintln(w, "  CHECK\tDESCRIPTION")
	h.colors["header"].Fprintln(w, "  -----\t-----------")

	var checkNames []string
	for _, provider := range h.providers {
		checkNames = append(checkNames, provider.GetCheckInfo().Name)
	}
	sort.Strings(checkNames)

	for _, checkName := range checkNames {
		info := h.providers[strings.ToLower(checkName)].GetCheckInfo()
		fmt.Fprintf(w, "  ")
		h.colors["emphasis"].Fprintf(w, "%s", info.Name)
		fmt.Fprintf(w, "\t%s\n", info.ShortDescription)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("For detailed information about a specific check, use:")
	h.colors["example"].Println("  finguard --help <check>")
}

// ShowCheckHelp displays detailed help for a specific check
func (h *System) ShowCheckHelp(checkName string) bool {
	provider, exists := h.providers[strings.ToLower(checkName)]
	if !exists {
		h.colors["negative"].Printf("Error: Check '%s' not found.\n", checkName)
		fmt.Println("Use 'finguard --list-checks' to see a list of available checks.")
		return false
	}

	info := provider.GetCheckInfo()

	h.colors["title"].Printf("%s Check\n", info.Name)
	fmt.Println(strings.Repeat("=", len(info.Name)+6))
	fmt.Println()
	fmt.Println(info.DetailedDescription)

	if len(info.Patterns) > 0 {
		fmt.Println()
		h.colors["header"].Println("PATTERNS:")
		for _, pattern := range info.Patterns {
			fmt.Printf("  - %s\n", pattern)
		}
	}

	if len(info.Exemptions) > 0 {
		fmt.Println()
		h.colors["header"].Println("EXEMPTIONS:")
		for _, exemption := range info.Exemptions {
			fmt.Printf("  - %s\n", exemption)
		}
	}

	if info.ConfigurationInfo != "" {
		fmt.Println()
		h.colors["header"].Println("CONFIGURATION:")
		fmt.Println(info.ConfigurationInfo)
	}

	if len(info.Examples) > 0 {
		fmt.Println()
		h.colors["header"].Println("EXAMPLES:")
		for _, example := range info.Examples {
			h.colors["example"].Printf("  %s\n", example)
		}
	}

	return true
}
