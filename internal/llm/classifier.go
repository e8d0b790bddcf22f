// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package llm

import (
	"context"
	"fmt"
	"strings"

	"finguard/internal/detector"
)

const classifyPrompt = `Does the following text contain financial advice or investment content?

Text: "%s"

Answer with exactly one word: YES or NO.`

// TopicClassifier answers the financial-content question with a completion
// model. Any failure or unparseable answer is reported as unknown so the
// keyword heuristics can decide instead.
type TopicClassifier struct {
	completer Completer
}

// NewTopicClassifier creates a model-backed classifier
func NewTopicClassifier(completer Completer) *TopicClassifier {
	return &TopicClassifier{completer: completer}
}

// Classify implements detector.Classifier
func (c *TopicClassifier) Classify(ctx context.Context, text string) detector.Classification {
	response, err := c.completer.Complete(ctx, fmt.Sprintf(classifyPrompt, text))
	if err != nil {
		return detector.ClassificationUnknown
	}

	switch strings.ToUpper(strings.TrimSpace(strings.Trim(response, ".!"))) {
	case "YES":
		return detector.ClassificationFinancial
	case "NO":
		return detector.ClassificationNonFinancial
	default:
		return detector.ClassificationUnknown
	}
}
