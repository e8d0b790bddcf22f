// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package secondary

import (
	"context"
	"time"

	"finguard/internal/detector"
)

// DefaultTimeout bounds a single secondary opinion call
const DefaultTimeout = 10 * time.Second

// FailSafe wraps a secondary opinion so that errors and timeouts never block
// validation. Any failure is reported as zero issues.
type FailSafe struct {
	inner   detector.SecondaryOpinion
	timeout time.Duration
}

// NewFailSafe wraps an opinion with a per-call timeout. A non-positive
// timeout falls back to DefaultTimeout.
func NewFailSafe(inner detector.SecondaryOpinion, timeout time.Duration) *FailSafe {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &FailSafe{inner: inner, timeout: timeout}
}

// Consult delegates to the wrapped opinion and swallows any error
func (f *FailSafe) Consult(ctx context.Context, text string) ([]detector.Issue, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	issues, err := f.inner.Consult(ctx, text)
	if err != nil {
		return nil, nil
	}
	return issues, nil
}
