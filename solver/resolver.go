// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package solver

import (
	"context"
	"log/slog"
	"strings"
)

// Delegate is the remote math-solving peer consulted before falling back to
// local evaluation.
type Delegate interface {
	// IsAvailable reports the cached availability from discovery; it does
	// not re-probe the peer.
	IsAvailable() bool
	// Solve submits the math text to the peer and returns its answer.
	Solve(ctx context.Context, text string) (string, error)
}

// DelegatedPrefix marks an answer produced by the remote math agent.
const DelegatedPrefix = "I've delegated your math question to our specialized Math Agent: "

// Resolver composes the delegate client with the local evaluator. Resolve
// never fails: every math question produces a human-readable answer or an
// explanation string.
type Resolver struct {
	delegate Delegate
	logger   *slog.Logger
}

// NewResolver creates a Resolver. delegate may be nil, in which case every
// question is answered locally.
func NewResolver(delegate Delegate, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		delegate: delegate,
		logger:   logger,
	}
}

// CanDelegate reports whether a remote math peer is configured and was
// reachable at discovery time.
func (r *Resolver) CanDelegate() bool {
	return r.delegate != nil && r.delegate.IsAvailable()
}

// Resolve answers a math question, delegate first, local evaluation on
// delegate absence or failure.
func (r *Resolver) Resolve(ctx context.Context, text string) string {
	if r.delegate != nil && r.delegate.IsAvailable() {
		result, err := r.delegate.Solve(ctx, text)
		switch {
		case err != nil:
			r.logger.WarnContext(ctx, "math agent error, falling back to local solver", "error", err)
		case isErrorMarker(result):
			r.logger.WarnContext(ctx, "math agent reported an error, falling back to local solver", "result", result)
		default:
			return DelegatedPrefix + result
		}
	}

	return SolveLocally(text)
}

// isErrorMarker reports whether a delegate reply is the demo peer's inline
// error form rather than an answer.
func isErrorMarker(result string) bool {
	return strings.Contains(result, "Error") || strings.Contains(result, "failed")
}
