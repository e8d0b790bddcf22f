// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package llm

import (
	"context"
	"errors"
	"testing"

	"finguard/internal/detector"
)

type fakeCompleter struct {
	response string
	err      error
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	return f.response, f.err
}

func TestTopicClassifier(t *testing.T) {
	tests := []struct {
		name     string
		response string
		err      error
		want     detector.Classification
	}{
		{"yes answer", "YES", nil, detector.ClassificationFinancial},
		{"lowercase yes", "yes", nil, detector.ClassificationFinancial},
		{"yes with period", "Yes.", nil, detector.ClassificationFinancial},
		{"no answer", "NO", nil, detector.ClassificationNonFinancial},
		{"rambling answer", "It depends on the context of the text.", nil, detector.ClassificationUnknown},
		{"empty answer", "", nil, detector.ClassificationUnknown},
		{"completion error", "", errors.New("timeout"), detector.ClassificationUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewTopicClassifier(&fakeCompleter{response: tt.response, err: tt.err})
			got := c.Classify(context.Background(), "Invest in index funds.")
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
