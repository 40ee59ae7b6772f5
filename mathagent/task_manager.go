// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package mathagent implements the demo's specialist math agent. It is a
// synchronous-only agent: every request is answered in one exchange and
// streaming subscriptions are rejected.
package mathagent

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	a2a "github.com/go-a2a/a2a-demo"
	"github.com/go-a2a/a2a-demo/server/event"
	"github.com/go-a2a/a2a-demo/server/task"
	"github.com/go-a2a/a2a-demo/solver"
)

// noExpressionText is the reply when nothing evaluable is found.
const noExpressionText = "I couldn't find a valid mathematical expression to calculate."

// TaskManager answers math questions over the synchronous task exchange.
type TaskManager struct {
	store  task.Store
	logger *slog.Logger
	tracer trace.Tracer
}

// NewTaskManager creates a TaskManager backed by an in-memory task store.
func NewTaskManager(logger *slog.Logger) *TaskManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskManager{
		store:  task.NewInMemoryStore(),
		logger: logger,
		tracer: otel.GetTracerProvider().Tracer("github.com/go-a2a/a2a-demo/mathagent"),
	}
}

// OnSendTask evaluates the math content of the request and completes the
// task with the answer. Unparsable input still completes the task with an
// explanatory reply.
func (tm *TaskManager) OnSendTask(ctx context.Context, params a2a.TaskSendParams) (*a2a.Task, error) {
	ctx, span := tm.tracer.Start(ctx, "mathagent.task_manager.OnSendTask",
		trace.WithAttributes(attribute.String("a2a.task_id", params.ID)))
	defer span.End()

	if err := params.Validate(); err != nil {
		return nil, a2a.InvalidParamsError{Msg: err.Error()}
	}

	if _, _, err := tm.store.Upsert(ctx, params); err != nil {
		return nil, err
	}

	received := params.Text()
	tm.logger.InfoContext(ctx, "received math request", "task_id", params.ID, "text", received)

	answer := Answer(received)

	updated, err := tm.store.UpdateStatus(ctx, params.ID, a2a.TaskStateCompleted, a2a.NewAgentMessage(answer))
	if err != nil {
		return nil, err
	}

	tm.logger.InfoContext(ctx, "task completed", "task_id", params.ID)
	return updated, nil
}

// OnGetTask returns a snapshot of a stored task.
func (tm *TaskManager) OnGetTask(ctx context.Context, taskID string) (*a2a.Task, error) {
	ctx, span := tm.tracer.Start(ctx, "mathagent.task_manager.OnGetTask",
		trace.WithAttributes(attribute.String("a2a.task_id", taskID)))
	defer span.End()

	return tm.store.Get(ctx, taskID)
}

// OnSendTaskSubscribe rejects streaming; this agent is synchronous only.
func (tm *TaskManager) OnSendTaskSubscribe(ctx context.Context, params a2a.TaskSendParams) (*event.Consumer, error) {
	return nil, a2a.UnsupportedOperationError{Operation: a2a.MethodTasksSendSubscribe}
}

// Answer evaluates the math content of free text. Operator chains win over
// function calls; failing both, the first two integers are summed; failing
// that, a fixed no-expression reply. Evaluation errors are rendered inline
// rather than returned.
func Answer(text string) string {
	if expr, ok := solver.ExtractExpression(text); ok {
		v, err := solver.EvaluateExpression(expr)
		if err != nil {
			return fmt.Sprintf("I encountered an error while calculating: %v", err)
		}
		return fmt.Sprintf("The result of %s is %s", expr, solver.FormatNumber(v))
	}

	if name, arg, ok := solver.ExtractFunctionCall(text); ok {
		n, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Sprintf("I encountered an error while calculating: %v", err)
		}
		v, err := solver.EvaluateFunction(name, n)
		if err != nil {
			return fmt.Sprintf("I encountered an error while calculating: %v", err)
		}
		return fmt.Sprintf("The result of %s(%s) is %s", name, arg, solver.FormatNumber(v))
	}

	if a, b, ok := solver.FirstTwoIntegers(text); ok {
		return fmt.Sprintf("I found numbers %d and %d, their sum is %d", a, b, a+b)
	}

	return noExpressionText
}
