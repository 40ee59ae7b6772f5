// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package echo implements the demo's front agent. It answers generic
// requests directly, delegates math questions to a remote math agent,
// and drives a three-step progress sequence for streaming callers.
package echo

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	a2a "github.com/go-a2a/a2a-demo"
	"github.com/go-a2a/a2a-demo/llm"
	"github.com/go-a2a/a2a-demo/server/event"
	"github.com/go-a2a/a2a-demo/server/task"
	"github.com/go-a2a/a2a-demo/solver"
)

// stopToken is the literal a caller sends mid-sequence to stop the
// streaming demo.
const stopToken = "N"

// progressLabels drives the streaming demo: one non-final working event
// per label, then a final input-required prompt.
var progressLabels = [3]string{"one", "two", "three"}

// morePrompt is the final question of the streaming sequence.
const morePrompt = "Would you like more messages?(Y/N)"

// doneText is the reply to a stop token.
const doneText = "All done!"

// TaskManager orchestrates task processing for the echo agent.
type TaskManager struct {
	store    task.Store
	events   *event.Manager
	resolver *solver.Resolver
	runner   llm.Runner // nil means canned replies

	logger *slog.Logger
	tracer trace.Tracer
}

// Option configures a TaskManager.
type Option func(*TaskManager)

// WithLogger sets the logger for the TaskManager.
func WithLogger(logger *slog.Logger) Option {
	return func(tm *TaskManager) {
		tm.logger = logger
	}
}

// WithRunner sets the optional language-model collaborator.
func WithRunner(runner llm.Runner) Option {
	return func(tm *TaskManager) {
		tm.runner = runner
	}
}

// NewTaskManager creates a TaskManager backed by an in-memory task store.
// resolver must not be nil; configure it with a nil delegate to disable
// delegation.
func NewTaskManager(resolver *solver.Resolver, opts ...Option) *TaskManager {
	tm := &TaskManager{
		store:    task.NewInMemoryStore(),
		events:   event.NewManager(event.DefaultMaxQueueSize),
		resolver: resolver,
		logger:   slog.Default(),
		tracer:   otel.GetTracerProvider().Tracer("github.com/go-a2a/a2a-demo/echo"),
	}
	for _, o := range opts {
		o(tm)
	}
	return tm
}

// OnSendTask handles a synchronous task exchange: exactly one response,
// no intermediate events. The task ends in the completed state.
func (tm *TaskManager) OnSendTask(ctx context.Context, params a2a.TaskSendParams) (*a2a.Task, error) {
	ctx, span := tm.tracer.Start(ctx, "echo.task_manager.OnSendTask",
		trace.WithAttributes(attribute.String("a2a.task_id", params.ID)))
	defer span.End()

	if err := params.Validate(); err != nil {
		return nil, a2a.InvalidParamsError{Msg: err.Error()}
	}

	if _, _, err := tm.store.Upsert(ctx, params); err != nil {
		return nil, err
	}

	received := params.Text()

	var response string
	switch {
	case solver.IsMathQuestion(received):
		tm.logger.InfoContext(ctx, "detected math question", "task_id", params.ID, "text", received)
		response = tm.resolver.Resolve(ctx, received)
	case tm.runner != nil:
		generated, err := tm.runner.Run(ctx, received)
		if err != nil {
			tm.logger.WarnContext(ctx, "model call failed, echoing instead", "task_id", params.ID, "error", err)
			response = fmt.Sprintf("on_send_task received: %s", received)
		} else {
			response = generated
		}
	default:
		response = fmt.Sprintf("on_send_task received: %s", received)
	}

	updated, err := tm.store.UpdateStatus(ctx, params.ID, a2a.TaskStateCompleted, a2a.NewAgentMessage(response))
	if err != nil {
		return nil, err
	}

	tm.logger.InfoContext(ctx, "task completed", "task_id", params.ID)
	return updated, nil
}

// OnGetTask returns a snapshot of a stored task.
func (tm *TaskManager) OnGetTask(ctx context.Context, taskID string) (*a2a.Task, error) {
	ctx, span := tm.tracer.Start(ctx, "echo.task_manager.OnGetTask",
		trace.WithAttributes(attribute.String("a2a.task_id", taskID)))
	defer span.End()

	t, err := tm.store.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}

	tm.logger.InfoContext(ctx, "task retrieved", "task_id", taskID, "state", t.Status.State)
	return t, nil
}

// OnSendTaskSubscribe handles a streaming task exchange. It subscribes the
// caller to the task's event stream and kicks off whichever arm applies:
// an immediate final answer for math questions, an immediate "All done!"
// when an existing task receives the stop token, or the asynchronous
// three-step progress sequence otherwise.
func (tm *TaskManager) OnSendTaskSubscribe(ctx context.Context, params a2a.TaskSendParams) (*event.Consumer, error) {
	ctx, span := tm.tracer.Start(ctx, "echo.task_manager.OnSendTaskSubscribe",
		trace.WithAttributes(attribute.String("a2a.task_id", params.ID)))
	defer span.End()

	if err := params.Validate(); err != nil {
		return nil, a2a.InvalidParamsError{Msg: err.Error()}
	}

	// New-vs-existing decides the arm, so capture it before the upsert.
	isNew := !tm.store.Contains(ctx, params.ID)

	if _, _, err := tm.store.Upsert(ctx, params); err != nil {
		return nil, err
	}

	queue, err := tm.events.Subscribe(params.ID)
	if err != nil {
		return nil, err
	}

	received := params.Text()

	switch {
	case isNew && solver.IsMathQuestion(received) && tm.resolver.CanDelegate():
		tm.logger.InfoContext(ctx, "detected math question", "task_id", params.ID, "text", received)
		if err := tm.completeStream(ctx, params.ID, tm.resolver.Resolve(ctx, received)); err != nil {
			tm.events.Release(params.ID)
			return nil, err
		}
	case !isNew && received == stopToken:
		if err := tm.completeStream(ctx, params.ID, doneText); err != nil {
			tm.events.Release(params.ID)
			return nil, err
		}
	default:
		// The worker outlives this request; it must not inherit the
		// request's cancellation.
		go tm.streamProgress(context.WithoutCancel(ctx), params.ID, received)
	}

	tm.logger.InfoContext(ctx, "task subscription created", "task_id", params.ID)
	return event.NewConsumer(params.ID, queue), nil
}

// completeStream moves the task to completed and publishes the single
// final event carrying the response.
func (tm *TaskManager) completeStream(ctx context.Context, taskID, response string) error {
	if _, err := tm.store.UpdateStatus(ctx, taskID, a2a.TaskStateCompleted, a2a.NewAgentMessage(response)); err != nil {
		return err
	}
	return tm.events.Publish(ctx, a2a.NewStatusUpdateEvent(taskID, a2a.TaskStateCompleted, response, true))
}

// streamProgress publishes three non-final working events followed by a
// final input-required prompt. A panic or a refused status update anywhere
// in the sequence surfaces as a final failed event so the subscriber's
// stream still terminates.
func (tm *TaskManager) streamProgress(ctx context.Context, taskID, received string) {
	ctx, span := tm.tracer.Start(ctx, "echo.task_manager.streamProgress",
		trace.WithAttributes(attribute.String("a2a.task_id", taskID)))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			tm.logger.ErrorContext(ctx, "streaming worker panicked", "task_id", taskID, "panic", r)
			tm.failStream(ctx, taskID, fmt.Sprintf("task processing failed: %v", r))
		}
	}()

	for _, label := range progressLabels {
		text := fmt.Sprintf("%s: %s", label, received)
		if tm.runner != nil {
			generated, err := tm.runner.Run(ctx, fmt.Sprintf("%s: %s", label, received))
			if err != nil {
				tm.logger.WarnContext(ctx, "model call failed, echoing instead", "task_id", taskID, "error", err)
			} else {
				text = fmt.Sprintf("%s: %s", label, generated)
			}
		}

		if _, err := tm.store.UpdateStatus(ctx, taskID, a2a.TaskStateWorking, a2a.NewAgentMessage(text)); err != nil {
			tm.logger.WarnContext(ctx, "status update failed", "task_id", taskID, "error", err)
			tm.failStream(ctx, taskID, fmt.Sprintf("task processing failed: %v", err))
			return
		}
		if err := tm.events.Publish(ctx, a2a.NewStatusUpdateEvent(taskID, a2a.TaskStateWorking, text, false)); err != nil {
			// The subscriber is gone or too far behind. Close the queue so a
			// draining consumer terminates; the task stays resumable.
			tm.logger.WarnContext(ctx, "event publish failed", "task_id", taskID, "error", err)
			tm.events.Release(taskID)
			return
		}
	}

	if _, err := tm.store.UpdateStatus(ctx, taskID, a2a.TaskStateInputRequired, a2a.NewAgentMessage(morePrompt)); err != nil {
		tm.logger.WarnContext(ctx, "status update failed", "task_id", taskID, "error", err)
		tm.failStream(ctx, taskID, fmt.Sprintf("task processing failed: %v", err))
		return
	}
	if err := tm.events.Publish(ctx, a2a.NewStatusUpdateEvent(taskID, a2a.TaskStateInputRequired, morePrompt, true)); err != nil {
		tm.logger.WarnContext(ctx, "event publish failed", "task_id", taskID, "error", err)
		tm.events.Release(taskID)
	}
}

// failStream is the worker's failure exit: best-effort terminal state plus a
// final failed event so the subscriber is not left hanging. The store update
// may be refused when the task is already terminal; the final event is
// published regardless.
func (tm *TaskManager) failStream(ctx context.Context, taskID, reason string) {
	if _, err := tm.store.UpdateStatus(ctx, taskID, a2a.TaskStateFailed, a2a.NewAgentMessage(reason)); err != nil {
		tm.logger.WarnContext(ctx, "status update failed", "task_id", taskID, "error", err)
	}
	if err := tm.events.Publish(ctx, a2a.NewStatusUpdateEvent(taskID, a2a.TaskStateFailed, reason, true)); err != nil {
		tm.logger.WarnContext(ctx, "event publish failed", "task_id", taskID, "error", err)
	}
}
