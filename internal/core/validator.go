// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package core runs the compliance validation pipeline: topic gate, rule
// checks, optional secondary opinion, aggregation and remediation.
package core

import (
	"context"
	"fmt"
	"strings"

	"finguard/internal/classifier"
	"finguard/internal/detector"
	"finguard/internal/observability"
	"finguard/internal/remediation"
)

// Config holds the switches for one validator instance. It is fixed at
// construction and never mutated afterwards.
type Config struct {
	RequireDisclaimers       bool
	CheckGuaranteedReturns   bool
	CheckSpecificPredictions bool
	CheckUnlicensedAdvice    bool
	CheckRiskTerms           bool
	UseSecondaryOpinion      bool
	StrictMode               bool
	FastMode                 bool
}

// DefaultConfig enables every local check with secondary opinion on, matching
// the documented default behavior.
func DefaultConfig() Config {
	return Config{
		RequireDisclaimers:       true,
		CheckGuaranteedReturns:   true,
		CheckSpecificPredictions: true,
		CheckUnlicensedAdvice:    true,
		CheckRiskTerms:           true,
		UseSecondaryOpinion:      true,
	}
}

// Validator is the compliance validation pipeline. Safe for concurrent use:
// all state is read-only after construction.
type Validator struct {
	config     Config
	classifier *classifier.Classifier
	checkers   []detector.Checker
	secondary  detector.SecondaryOpinion
	observer   *observability.StandardObserver
}

// Option configures optional collaborators on a Validator.
type Option func(*Validator)

// WithClassifierCallback injects a topic classifier callback consulted before
// the pattern heuristics.
func WithClassifierCallback(callback detector.Classifier) Option {
	return func(v *Validator) {
		v.classifier = classifier.New(callback)
	}
}

// WithSecondaryOpinion injects the external compliance opinion used when
// UseSecondaryOpinion is enabled.
func WithSecondaryOpinion(opinion detector.SecondaryOpinion) Option {
	return func(v *Validator) {
		v.secondary = opinion
	}
}

// WithObserver attaches an observer for per-stage timing.
func WithObserver(observer *observability.StandardObserver) Option {
	return func(v *Validator) {
		v.observer = observer
	}
}

// New builds a validator from a config. Conflicting switches fail fast here
// rather than at validate time.
func New(cfg Config, opts ...Option) (*Validator, error) {
	if cfg.StrictMode && cfg.FastMode {
		return nil, fmt.Errorf("invalid configuration: strict_mode and fast_mode cannot both be enabled")
	}

	v := &Validator{
		config:     cfg,
		classifier: classifier.New(nil),
		checkers:   BuildCheckerSet(cfg),
	}

	for _, opt := range opts {
		opt(v)
	}

	return v, nil
}

// Validate runs the full pipeline over one text. Collaborator failures never
// surface as errors; the result is always well formed.
func (v *Validator) Validate(ctx context.Context, text string) detector.Result {
	done := v.startTiming("core", "validate")

	if strings.TrimSpace(text) == "" {
		done(true, observability.StandardObservabilityData{ContentLength: len(text)})
		return detector.Pass(false)
	}

	step := v.startStep("classify", "topic detection")
	classifyDone := v.startTiming("classifier", "is_financial")
	financial := v.classifier.IsFinancial(ctx, text)
	classifyDone(true, observability.StandardObservabilityData{
		ContentLength: len(text),
		Metadata:      map[string]interface{}{"financial": financial},
	})
	step(fmt.Sprintf("financial=%v", financial))

	if !financial {
		done(true, observability.StandardObservabilityData{ContentLength: len(text)})
		return detector.Pass(false)
	}

	step = v.startStep("checks", "rule checkers")
	var issues []detector.Issue
	checksDone := v.startTiming("checkers", "run_all")
	for _, checker := range v.checkers {
		found := checker.Check(text)
		for _, issue := range found {
			v.logDetail("issue: [%s] %s", issue.Category, issue.Message)
		}
		issues = append(issues, found...)
	}
	checksDone(true, observability.StandardObservabilityData{IssueCount: len(issues)})
	step(fmt.Sprintf("%d issues", len(issues)))

	issues = append(issues, v.consultSecondary(ctx, text, len(issues))...)

	if len(issues) == 0 {
		done(true, observability.StandardObservabilityData{ContentLength: len(text)})
		return detector.Pass(true)
	}

	step = v.startStep("remediate", "suggest compliant version")
	fix := remediation.Remediate(text, issues)
	step(fmt.Sprintf("%d chars", len(fix)))

	done(true, observability.StandardObservabilityData{
		ContentLength: len(text),
		IssueCount:    len(issues),
	})
	return detector.Fail(issues, fix)
}

// consultSecondary applies the fast-mode skip policy and the fail-safe error
// policy around the external opinion.
func (v *Validator) consultSecondary(ctx context.Context, text string, localIssues int) []detector.Issue {
	if !v.config.UseSecondaryOpinion || v.secondary == nil {
		return nil
	}
	if v.config.FastMode && localIssues > 0 {
		// Local issues already fail the text; skip the slow call
		v.logDetail("fast mode: skipping secondary opinion")
		return nil
	}

	step := v.startStep("secondary", "external opinion")
	secondaryDone := v.startTiming("secondary", "consult")
	issues, err := v.secondary.Consult(ctx, text)
	if err != nil {
		secondaryDone(false, observability.StandardObservabilityData{Error: err.Error()})
		step("failed, ignoring")
		return nil
	}
	secondaryDone(true, observability.StandardObservabilityData{IssueCount: len(issues)})
	step(fmt.Sprintf("%d issues", len(issues)))
	return issues
}

func (v *Validator) startTiming(component, operation string) func(bool, observability.StandardObservabilityData) {
	if v.observer == nil {
		return func(bool, observability.StandardObservabilityData) {}
	}
	return v.observer.StartTiming(component, operation)
}

func (v *Validator) startStep(step, description string) func(result string) {
	if v.observer == nil || v.observer.DebugObserver == nil {
		return func(string) {}
	}
	return v.observer.DebugObserver.StartStep(step, description)
}

func (v *Validator) logDetail(format string, args ...interface{}) {
	if v.observer != nil && v.observer.DebugObserver != nil {
		v.observer.DebugObserver.LogDetail(format, args...)
	}
}
