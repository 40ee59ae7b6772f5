// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package event provides the per-task event stream: a bounded queue written
// by the task's processing routine and drained by a single subscriber.
package event

import (
	"context"
	"sync"

	a2a "github.com/go-a2a/a2a-demo"
)

// DefaultMaxQueueSize is the default maximum queue size.
const DefaultMaxQueueSize = 1024

// Queue is a bounded FIFO of status update events for one task. Events are
// delivered in emission order. A final event is the last one the producer
// enqueues; the consumer closes the queue after delivering it.
type Queue struct {
	events    chan *a2a.TaskStatusUpdateEvent
	maxSize   int
	mu        sync.RWMutex
	closed    bool
	closeOnce sync.Once
	done      chan struct{}
}

// NewQueue creates a new event queue with the specified maximum size.
// If maxSize is 0, DefaultMaxQueueSize is used.
func NewQueue(maxSize int) (*Queue, error) {
	if maxSize < 0 {
		return nil, ErrInvalidQueueSize
	}
	if maxSize == 0 {
		maxSize = DefaultMaxQueueSize
	}

	return &Queue{
		events:  make(chan *a2a.TaskStatusUpdateEvent, maxSize),
		maxSize: maxSize,
		done:    make(chan struct{}),
	}, nil
}

// Enqueue adds an event to the queue.
// Returns ErrQueueClosed if the queue is closed and ErrQueueFull if the
// subscriber has fallen more than maxSize events behind.
func (q *Queue) Enqueue(ctx context.Context, ev *a2a.TaskStatusUpdateEvent) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case q.events <- ev:
		return nil
	default:
		return ErrQueueFull
	}
}

// Dequeue retrieves an event from the queue.
// If noWait is true, returns immediately with ErrQueueEmpty when nothing is
// buffered. Otherwise it blocks until an event is available, the context is
// canceled, or the queue is closed and drained.
func (q *Queue) Dequeue(ctx context.Context, noWait bool) (*a2a.TaskStatusUpdateEvent, error) {
	if noWait {
		select {
		case ev := <-q.events:
			return ev, nil
		default:
			if q.IsClosed() {
				return nil, ErrQueueClosed
			}
			return nil, ErrQueueEmpty
		}
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case ev := <-q.events:
		return ev, nil
	case <-q.done:
		// Closed while waiting. Drain anything already buffered.
		select {
		case ev := <-q.events:
			return ev, nil
		default:
			return nil, ErrQueueClosed
		}
	}
}

// Close closes the queue, preventing future enqueues and causing dequeue
// operations to return ErrQueueClosed once drained.
func (q *Queue) Close() error {
	q.closeOnce.Do(func() {
		q.mu.Lock()
		defer q.mu.Unlock()

		q.closed = true
		close(q.done)
	})
	return nil
}

// IsClosed reports whether the queue is closed.
func (q *Queue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}

// Size returns the current number of buffered events.
func (q *Queue) Size() int {
	return len(q.events)
}
