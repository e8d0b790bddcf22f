// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package input

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadContentPlainText(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		filename string
		content  string
	}{
		{"txt file", "advice.txt", "You should buy stocks now."},
		{"markdown file", "advice.md", "# Outlook\n\nMarkets may vary."},
		{"no extension", "advice", "plain content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.filename)
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatalf("failed to write test file: %v", err)
			}

			got, err := LoadContent(path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.content {
				t.Errorf("expected %q, got %q", tt.content, got)
			}
		})
	}
}

func TestLoadContentUnsupportedType(t *testing.T) {
	if _, err := LoadContent("chart.png"); err == nil {
		t.Fatal("expected error for unsupported file type")
	}
}

func TestLoadContentMissingFile(t *testing.T) {
	if _, err := LoadContent(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCleanText(t *testing.T) {
	in := "  line one  \n\n\tline\t\ttwo\n   \n"
	want := "line one\nline two"
	if got := cleanText(in); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
