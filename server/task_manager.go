// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"

	a2a "github.com/go-a2a/a2a-demo"
	"github.com/go-a2a/a2a-demo/server/event"
)

// TaskManager is the agent-side task processing contract the server
// dispatches to. Implementations that do not stream return
// [a2a.UnsupportedOperationError] from OnSendTaskSubscribe.
type TaskManager interface {
	// OnSendTask handles a synchronous task exchange: exactly one
	// response per call, no intermediate events.
	OnSendTask(ctx context.Context, params a2a.TaskSendParams) (*a2a.Task, error)

	// OnGetTask returns a snapshot of a stored task.
	OnGetTask(ctx context.Context, taskID string) (*a2a.Task, error)

	// OnSendTaskSubscribe starts or continues a streaming task exchange
	// and returns the consumer of its event stream.
	OnSendTaskSubscribe(ctx context.Context, params a2a.TaskSendParams) (*event.Consumer, error)
}
