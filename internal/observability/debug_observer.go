// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// DebugObserver provides human-readable step-by-step progress output
type DebugObserver struct {
	writer  io.Writer
	enabled bool
	depth   int
}

// NewDebugObserver creates a debug observer
func NewDebugObserver(writer io.Writer, enabled bool) *DebugObserver {
	return &DebugObserver{
		writer:  writer,
		enabled: enabled,
	}
}

// StartStep logs the start of a pipeline step and returns a completion function
func (d *DebugObserver) StartStep(step, description string) func(result string) {
	if !d.enabled || d.writer == nil {
		return func(string) {}
	}

	indent := strings.Repeat("  ", d.depth)
	fmt.Fprintf(d.writer, "%s▶ %s: %s\n", indent, step, description)
	d.depth++
	start := time.Now()

	return func(result string) {
		d.depth--
		elapsed := time.Since(start)
		indent := strings.Repeat("  ", d.depth)
		if result != "" {
			fmt.Fprintf(d.writer, "%s✓ %s (%v): %s\n", indent, step, elapsed.Round(time.Microsecond), result)
		} else {
			fmt.Fprintf(d.writer, "%s✓ %s (%v)\n", indent, step, elapsed.Round(time.Microsecond))
		}
	}
}

// LogDetail logs a detail line at the current depth
func (d *DebugObserver) LogDetail(format string, args ...interface{}) {
	if !d.enabled || d.writer == nil {
		return
	}
	indent := strings.Repeat("  ", d.depth)
	fmt.Fprintf(d.writer, "%s  %s\n", indent, fmt.Sprintf(format, args...))
}
