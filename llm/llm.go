// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package llm provides an optional language-model layer for rephrasing
// agent replies. Agents work without it; a nil Runner means canned text.
package llm

import "context"

// Runner generates a completion for a single prompt.
type Runner interface {
	// Run sends prompt to the model and returns the generated text.
	Run(ctx context.Context, prompt string) (string, error)
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context, prompt string) (string, error)

// Run implements [Runner].
func (f RunnerFunc) Run(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
