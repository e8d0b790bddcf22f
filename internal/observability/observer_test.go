// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestStartTimingDebugOutput(t *testing.T) {
	var buf bytes.Buffer
	observer := NewStandardObserver(ObservabilityDebug, &buf)

	done := observer.StartTiming("secondary", "consult")
	done(false, StandardObservabilityData{
		ContentLength: 42,
		IssueCount:    2,
		Error:         "connection refused",
	})

	var record StandardObservabilityData
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("unmarshal debug record: %v", err)
	}
	if record.Component != "secondary" || record.Operation != "consult" {
		t.Errorf("got component=%q operation=%q", record.Component, record.Operation)
	}
	if record.Success {
		t.Error("expected success=false")
	}
	if record.ContentLength != 42 {
		t.Errorf("content_length = %d, want 42", record.ContentLength)
	}
	if record.IssueCount != 2 {
		t.Errorf("issue_count = %d, want 2", record.IssueCount)
	}
	if record.Error != "connection refused" {
		t.Errorf("error = %q, want %q", record.Error, "connection refused")
	}
	if record.RequestID == "" {
		t.Error("expected a request id to be stamped")
	}
}

func TestLogOperationQuietLevels(t *testing.T) {
	for _, level := range []ObservabilityLevel{ObservabilityOff, ObservabilityMetrics} {
		var buf bytes.Buffer
		observer := NewStandardObserver(level, &buf)
		observer.StartTiming("core", "validate")(true, StandardObservabilityData{IssueCount: 1})
		if buf.Len() != 0 {
			t.Errorf("level %d: expected no output, got %q", level, buf.String())
		}
	}
}

func TestLogOperationNilWriter(t *testing.T) {
	observer := NewStandardObserver(ObservabilityDebug, nil)
	// Must not panic
	observer.LogOperation(StandardObservabilityData{Component: "core"})
}

func TestDebugObserverSteps(t *testing.T) {
	var buf bytes.Buffer
	debug := NewDebugObserver(&buf, true)

	outer := debug.StartStep("checks", "rule checkers")
	debug.LogDetail("issue: [%s] %s", "RISK_TERM", "Risk analysis detected: volatile")
	inner := debug.StartStep("secondary", "external opinion")
	inner("0 issues")
	outer("1 issues")

	output := buf.String()
	if !strings.Contains(output, "▶ checks: rule checkers") {
		t.Errorf("missing step start line in %q", output)
	}
	if !strings.Contains(output, "issue: [RISK_TERM]") {
		t.Errorf("missing detail line in %q", output)
	}
	if !strings.Contains(output, "  ▶ secondary") {
		t.Errorf("nested step should be indented in %q", output)
	}
	if !strings.Contains(output, "✓ checks") || !strings.Contains(output, "1 issues") {
		t.Errorf("missing completion line in %q", output)
	}
}

func TestDebugObserverDisabled(t *testing.T) {
	var buf bytes.Buffer
	debug := NewDebugObserver(&buf, false)
	done := debug.StartStep("classify", "topic detection")
	debug.LogDetail("should not appear")
	done("financial=true")
	if buf.Len() != 0 {
		t.Errorf("disabled observer wrote %q", buf.String())
	}
}
