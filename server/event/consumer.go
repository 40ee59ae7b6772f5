// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"context"

	a2a "github.com/go-a2a/a2a-demo"
)

// Consumer drains a task's event queue, detecting the final event and
// closing the queue behind it. It is the subscriber-side handle returned by
// a streaming call.
type Consumer struct {
	taskID string
	queue  *Queue
}

// NewConsumer creates a consumer for the given task's queue.
func NewConsumer(taskID string, queue *Queue) *Consumer {
	return &Consumer{
		taskID: taskID,
		queue:  queue,
	}
}

// TaskID returns the task the consumer is subscribed to.
func (c *Consumer) TaskID() string {
	return c.taskID
}

// Next blocks until the next event is available. After a final event has
// been delivered, or when the context is canceled, it returns ErrQueueClosed
// or the context error respectively.
func (c *Consumer) Next(ctx context.Context) (*a2a.TaskStatusUpdateEvent, error) {
	ev, err := c.queue.Dequeue(ctx, false)
	if err != nil {
		return nil, err
	}
	if ev.Final {
		_ = c.queue.Close()
	}
	return ev, nil
}

// Close closes the underlying queue. Call it when abandoning the stream
// before its final event, so the task can be resubscribed.
func (c *Consumer) Close() error {
	return c.queue.Close()
}

// Events returns a channel yielding the task's events in emission order.
// The channel is closed after the final event has been delivered, or when
// the context is canceled or the queue is closed.
func (c *Consumer) Events(ctx context.Context) <-chan *a2a.TaskStatusUpdateEvent {
	events := make(chan *a2a.TaskStatusUpdateEvent)

	go func() {
		defer close(events)

		for {
			ev, err := c.queue.Dequeue(ctx, false)
			if err != nil {
				// Context canceled, or queue closed and drained.
				// Either way the stream ends here.
				return
			}

			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}

			if ev.Final {
				_ = c.queue.Close()
				return
			}
		}
	}()

	return events
}
