// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package event

import "errors"

var (
	// ErrQueueClosed is returned when attempting to use a closed queue.
	ErrQueueClosed = errors.New("event queue is closed")

	// ErrQueueEmpty is returned when attempting to dequeue from an empty
	// queue in non-blocking mode.
	ErrQueueEmpty = errors.New("event queue is empty")

	// ErrQueueFull is returned when the queue cannot accept another event.
	ErrQueueFull = errors.New("event queue is full")

	// ErrInvalidQueueSize is returned when attempting to create a queue
	// with a negative size.
	ErrInvalidQueueSize = errors.New("max queue size must be greater than 0")

	// ErrAlreadySubscribed is returned when a task already has an active
	// subscriber. Each task's stream is consumed by exactly one subscriber.
	ErrAlreadySubscribed = errors.New("task already has an active subscriber")

	// ErrNotSubscribed is returned when publishing to a task that has no
	// open event queue.
	ErrNotSubscribed = errors.New("task has no open event queue")
)
