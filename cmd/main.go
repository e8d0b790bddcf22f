// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"finguard/internal/config"
	"finguard/internal/core"
	"finguard/internal/detector"
	"finguard/internal/help"
	"finguard/internal/input"
	"finguard/internal/llm"
	"finguard/internal/observability"
	"finguard/internal/secondary"
	"finguard/internal/version"

	"finguard/internal/formatters"
	_ "finguard/internal/formatters/json"
	_ "finguard/internal/formatters/text"
	_ "finguard/internal/formatters/yaml"

	"golang.org/x/term"
)

const (
	exitPass  = 0
	exitFail  = 1
	exitUsage = 2
)

// loadConfiguration loads the configuration file or returns default config
func loadConfiguration(configFile string) *config.Config {
	configPath := configFile
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		cfg, _ = config.LoadConfig("")
	}
	return cfg
}

// configFlags holds command line flag values
type configFlags struct {
	outputFormat string
	checksToRun  string
	verbose      bool
	debug        bool
	noColor      bool
	strictMode   bool
	fastMode     bool
	useSecondary bool
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	format       string
	checksToRun  string
	verbose      bool
	debug        bool
	noColor      bool
	strictMode   bool
	fastMode     bool
	useSecondary bool
}

// resolveConfiguration resolves final configuration values from config file,
// profile, and command line flags, in that precedence order
func resolveConfiguration(cfg *config.Config, activeProfile *config.Profile, flags *configFlags) *finalConfiguration {
	final := &finalConfiguration{}

	// Format
	final.format = "text" // default fallback
	if cfg != nil && cfg.Defaults.Format != "" {
		final.format = cfg.Defaults.Format
	}
	if activeProfile != nil && activeProfile.Format != "" {
		final.format = activeProfile.Format
	}
	if isFlagSet("format") && flags.outputFormat != "" {
		final.format = flags.outputFormat
	}

	// Checks to run
	final.checksToRun = "all" // default fallback
	if cfg != nil && cfg.Defaults.Checks != "" {
		final.checksToRun = cfg.Defaults.Checks
	}
	if activeProfile != nil && activeProfile.Checks != "" {
		final.checksToRun = activeProfile.Checks
	}
	if isFlagSet("checks") && flags.checksToRun != "" {
		final.checksToRun = flags.checksToRun
	}

	// Verbose
	if cfg != nil {
		final.verbose = cfg.Defaults.Verbose
	}
	if activeProfile != nil && activeProfile.Verbose {
		final.verbose = true
	}
	if isFlagSet("verbose") {
		final.verbose = flags.verbose
	}

	// Debug
	if cfg != nil {
		final.debug = cfg.Defaults.Debug
	}
	if isFlagSet("debug") {
		final.debug = flags.debug
	}

	// No color
	if cfg != nil {
		final.noColor = cfg.Defaults.NoColor
	}
	if activeProfile != nil && activeProfile.NoColor {
		final.noColor = true
	}
	if isFlagSet("no-color") {
		final.noColor = flags.noColor
	}

	// Strict / fast modes
	if cfg != nil {
		final.strictMode = cfg.Compliance.StrictMode
		final.fastMode = cfg.Compliance.FastMode
	}
	if activeProfile != nil {
		if activeProfile.StrictMode {
			final.strictMode = true
		}
		if activeProfile.FastMode {
			final.fastMode = true
		}
	}
	if isFlagSet("strict") {
		final.strictMode = flags.strictMode
	}
	if isFlagSet("fast") {
		final.fastMode = flags.fastMode
	}

	// Secondary opinion
	if cfg != nil {
		final.useSecondary = cfg.SecondaryOpinion.Enabled
	}
	if isFlagSet("secondary") {
		final.useSecondary = flags.useSecondary
	}

	return final
}

// isFlagSet reports whether a flag was explicitly set on the command line
func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// registerHelpProviders adds every checker's help content to the help system
func registerHelpProviders(helpSystem *help.System) {
	for _, checker := range core.BuildCheckerSet(core.DefaultConfig()) {
		if provider, ok := checker.(help.Provider); ok {
			helpSystem.RegisterProvider(provider)
		}
	}
}

// readStdin reads piped input when stdin is not a terminal
func readStdin() (string, bool) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", false
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// buildSecondaryOpinion constructs the fail-safe LLM opinion from config.
// Returns nil when the client cannot be built (typically a missing API key).
func buildSecondaryOpinion(cfg *config.Config) (detector.SecondaryOpinion, llm.Completer) {
	client, err := llm.NewClient(llm.Config{
		BaseURL:     cfg.SecondaryOpinion.BaseURL,
		Model:       cfg.SecondaryOpinion.Model,
		Temperature: 0.1,
		MaxTokens:   cfg.SecondaryOpinion.MaxTokens,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: secondary opinion disabled: %v\n", err)
		return nil, nil
	}

	timeout := time.Duration(cfg.SecondaryOpinion.TimeoutSeconds) * time.Second
	return secondary.NewFailSafe(secondary.NewComplianceOpinion(client), timeout), client
}

func main() {
	// Parse command line flags
	textInput := flag.String("text", "", "Text to validate")
	inputFile := flag.String("file", "", "Path to the input file (.txt, .md, .pdf)")
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	profileName := flag.String("profile", "", "Profile name to use from config file")
	listProfiles := flag.Bool("list-profiles", false, "List available profiles in config file")
	listChecks := flag.Bool("list-checks", false, "List available compliance checks")
	listFormats := flag.Bool("list-formats", false, "List available output formats")
	outputFormat := flag.String("format", "", "Output format: text, json, yaml (default: text)")
	checksToRun := flag.String("checks", "", "Specific checks to run: GUARANTEED_RETURN, DISCLAIMER, or combinations like 'GUARANTEED_RETURN,DISCLAIMER'")
	verbose := flag.Bool("verbose", false, "Display detailed information for each issue")
	debug := flag.Bool("debug", false, "Enable debug logging to show validation flow")
	outputFile := flag.String("output", "", "Path to output file (if not specified, output to stdout)")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	strictMode := flag.Bool("strict", false, "Apply strictest regulatory standards (disables hedge exemptions)")
	fastMode := flag.Bool("fast", false, "Skip the slow analysis passes when local checks already fail")
	useSecondary := flag.Bool("secondary", false, "Enable LLM secondary opinion (requires API key)")
	showMatch := flag.Bool("show-match", false, "Display the trigger phrases in findings")
	showHelp := flag.Bool("help", false, "Show help information")
	showVersion := flag.Bool("version", false, "Show version information")

	flag.Parse()

	// Handle version command
	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	// Load configuration
	cfg := loadConfiguration(*configFile)

	// Handle profile operations
	if *listProfiles {
		fmt.Println("Available profiles:")
		for _, name := range cfg.ListProfiles() {
			profile := cfg.GetProfile(name)
			fmt.Printf("  %-10s %s\n", name, profile.Description)
		}
		return
	}

	var activeProfile *config.Profile
	if *profileName != "" {
		activeProfile = cfg.GetProfile(*profileName)
		if activeProfile == nil {
			fmt.Fprintf(os.Stderr, "Error: profile %q not found (available: %s)\n",
				*profileName, strings.Join(cfg.ListProfiles(), ", "))
			os.Exit(exitUsage)
		}
	}

	// Resolve final configuration values
	finalConfig := resolveConfiguration(cfg, activeProfile, &configFlags{
		outputFormat: *outputFormat,
		checksToRun:  *checksToRun,
		verbose:      *verbose,
		debug:        *debug,
		noColor:      *noColor,
		strictMode:   *strictMode,
		fastMode:     *fastMode,
		useSecondary: *useSecondary,
	})

	// Disable colors in non-interactive environments
	if !term.IsTerminal(int(os.Stderr.Fd())) || os.Getenv("CI") != "" {
		finalConfig.noColor = true
	}

	// Handle help commands
	if *showHelp {
		helpSystem := help.NewSystem(finalConfig.noColor)
		registerHelpProviders(helpSystem)

		args := flag.Args()
		if len(args) == 0 {
			helpSystem.ShowGeneralHelp()
			return
		}
		if len(args) == 1 {
			if strings.ToLower(args[0]) == "checks" {
				helpSystem.ShowChecksHelp()
				return
			}
			if helpSystem.ShowCheckHelp(args[0]) {
				return
			}
			os.Exit(exitUsage)
		}
		fmt.Println("Error: Too many arguments for help command")
		fmt.Println("Use 'finguard --help', 'finguard --help checks', or 'finguard --help <check>'")
		os.Exit(exitUsage)
	}

	if *listChecks {
		helpSystem := help.NewSystem(finalConfig.noColor)
		registerHelpProviders(helpSystem)
		helpSystem.ShowChecksHelp()
		return
	}

	if *listFormats {
		fmt.Println("Available output formats:")
		for _, name := range formatters.List() {
			if formatter, ok := formatters.Get(name); ok {
				fmt.Printf("  %-6s %s\n", name, formatter.Description())
			}
		}
		return
	}

	// Validate requested checks
	enabledChecks, unknown := core.ParseChecksToRun(strings.Split(finalConfig.checksToRun, ","))
	if len(unknown) > 0 {
		fmt.Fprintf(os.Stderr, "Error: unknown checks: %s (available: %s)\n",
			strings.Join(unknown, ", "), strings.Join(core.CheckNames(), ", "))
		os.Exit(exitUsage)
	}

	// Resolve the input text
	var text string
	switch {
	case *textInput != "":
		text = *textInput
	case *inputFile != "":
		content, err := input.LoadContent(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitUsage)
		}
		text = content
	default:
		content, ok := readStdin()
		if !ok {
			fmt.Fprintln(os.Stderr, "Error: no input provided (use --text, --file, or pipe content to stdin)")
			fmt.Fprintln(os.Stderr, "Run 'finguard --help' for usage")
			os.Exit(exitUsage)
		}
		text = content
	}

	// Build the validator configuration
	validatorConfig := core.Config{
		RequireDisclaimers:       cfg.Compliance.RequireDisclaimers,
		CheckGuaranteedReturns:   cfg.Compliance.CheckGuaranteedReturns,
		CheckSpecificPredictions: cfg.Compliance.CheckSpecificPredictions,
		CheckUnlicensedAdvice:    cfg.Compliance.CheckUnlicensedAdvice,
		CheckRiskTerms:           cfg.Compliance.CheckRiskTerms,
		UseSecondaryOpinion:      finalConfig.useSecondary,
		StrictMode:               finalConfig.strictMode,
		FastMode:                 finalConfig.fastMode,
	}
	validatorConfig = core.ApplyChecks(validatorConfig, enabledChecks)

	// Build observer
	observer := observability.NewStandardObserver(observability.ObservabilityMetrics, os.Stderr)
	if finalConfig.debug {
		observer = observability.NewStandardObserver(observability.ObservabilityDebug, os.Stderr)
		observer.DebugObserver = observability.NewDebugObserver(os.Stderr, true)
		observer.DebugObserver.LogDetail("checks: %s, strict=%v, fast=%v, secondary=%v",
			finalConfig.checksToRun, finalConfig.strictMode, finalConfig.fastMode, finalConfig.useSecondary)
	}

	options := []core.Option{core.WithObserver(observer)}

	// Wire the LLM collaborators when the secondary opinion is enabled
	if finalConfig.useSecondary {
		opinion, completer := buildSecondaryOpinion(cfg)
		if opinion != nil {
			options = append(options,
				core.WithSecondaryOpinion(opinion),
				core.WithClassifierCallback(llm.NewTopicClassifier(completer)))
		} else {
			validatorConfig.UseSecondaryOpinion = false
		}
	}

	validator, err := core.New(validatorConfig, options...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}

	// Run validation
	result := validator.Validate(context.Background(), text)

	// Format the result
	output, err := formatters.Export(finalConfig.format, result, formatters.FormatterOptions{
		Verbose:   finalConfig.verbose,
		NoColor:   finalConfig.noColor,
		ShowMatch: *showMatch || finalConfig.verbose,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output), 0o600); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(exitUsage)
		}
	} else {
		fmt.Print(output)
		if !strings.HasSuffix(output, "\n") {
			fmt.Println()
		}
	}

	if result.Passed {
		os.Exit(exitPass)
	}
	os.Exit(exitFail)
}
