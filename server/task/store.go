// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package task provides the authoritative store of task state for an agent.
package task

import (
	"context"

	a2a "github.com/go-a2a/a2a-demo"
)

// Store defines the interface for task state operations. Mutations to one
// task are performed by the single processing unit responsible for it; the
// store only has to protect the id-to-task mapping itself.
type Store interface {
	// Upsert creates the task for the given send parameters if it does not
	// exist, or appends the inbound message to its history if it does.
	// The returned bool reports whether the task was created.
	Upsert(ctx context.Context, params a2a.TaskSendParams) (*a2a.Task, bool, error)

	// Get retrieves a task by its ID.
	// Returns a2a.TaskNotFoundError if the task doesn't exist.
	Get(ctx context.Context, taskID string) (*a2a.Task, error)

	// Contains reports whether a task with the given ID exists.
	Contains(ctx context.Context, taskID string) bool

	// UpdateStatus moves a task to the given state with the agent response
	// attached as both the status message and a single artifact.
	// Returns ErrTaskTerminal if the task already finished in a different
	// state, and a2a.TaskNotFoundError if the task doesn't exist.
	UpdateStatus(ctx context.Context, taskID string, state a2a.TaskState, response a2a.Message) (*a2a.Task, error)
}
