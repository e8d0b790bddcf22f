// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package llm provides a thin chat-completion client used by the
// classifier and the secondary compliance opinion.
package llm

import (
	"context"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Completer is the minimal completion surface the pipeline depends on
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Config holds connection settings for an OpenAI-compatible endpoint
type Config struct {
	APIKey      string
	BaseURL     string // empty means the default OpenAI endpoint
	Model       string
	Temperature float32
	MaxTokens   int
}

// DefaultModel is used when no model is configured
const DefaultModel = "llama-3.3-70b-versatile"

// Client wraps an OpenAI-compatible chat completion endpoint
type Client struct {
	client *openai.Client
	model  string
	temp   float32
	tokens int
}

// NewClient creates a completion client from explicit configuration
func NewClient(cfg Config) (*Client, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = resolveAPIKey()
	}
	if apiKey == "" {
		return nil, fmt.Errorf("no API key configured (set FINGUARD_API_KEY or OPENAI_API_KEY)")
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	tokens := cfg.MaxTokens
	if tokens <= 0 {
		tokens = 500
	}

	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
		temp:   cfg.Temperature,
		tokens: tokens,
	}, nil
}

// resolveAPIKey checks the supported environment variables in precedence order
func resolveAPIKey() string {
	for _, name := range []string{"FINGUARD_API_KEY", "OPENAI_API_KEY", "GROQ_API_KEY"} {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

// Complete sends a single-turn prompt and returns the trimmed response text
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temp,
		MaxTokens:   c.tokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
