// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"context"
	"fmt"
	"sync"

	a2a "github.com/go-a2a/a2a-demo"
)

// Manager multiplexes per-task event queues. A task has at most one open
// queue at a time; a second concurrent subscription on the same task id is
// rejected with ErrAlreadySubscribed. A queue whose stream has finished
// (closed by its consumer) may be replaced by a fresh subscription, which is
// how a task continues over successive streaming calls.
type Manager struct {
	mu      sync.Mutex
	queues  map[string]*Queue
	maxSize int
}

// NewManager creates a queue manager. maxSize bounds each per-task queue;
// 0 selects DefaultMaxQueueSize.
func NewManager(maxSize int) *Manager {
	if maxSize < 0 {
		maxSize = DefaultMaxQueueSize
	}
	return &Manager{
		queues:  make(map[string]*Queue),
		maxSize: maxSize,
	}
}

// Subscribe opens the event queue for a task and returns it.
// Returns ErrAlreadySubscribed if the task already has an open queue.
func (m *Manager) Subscribe(taskID string) (*Queue, error) {
	if taskID == "" {
		return nil, fmt.Errorf("task ID cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if q, ok := m.queues[taskID]; ok && !q.IsClosed() {
		return nil, fmt.Errorf("task %s: %w", taskID, ErrAlreadySubscribed)
	}

	q, err := NewQueue(m.maxSize)
	if err != nil {
		return nil, err
	}
	m.queues[taskID] = q
	return q, nil
}

// Publish enqueues an event onto its task's open queue.
// Returns ErrNotSubscribed if the task has no open queue.
func (m *Manager) Publish(ctx context.Context, ev *a2a.TaskStatusUpdateEvent) error {
	m.mu.Lock()
	q, ok := m.queues[ev.GetTaskID()]
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("task %s: %w", ev.GetTaskID(), ErrNotSubscribed)
	}
	return q.Enqueue(ctx, ev)
}

// Release closes and removes the queue for a task. Releasing a task with no
// queue is a no-op.
func (m *Manager) Release(taskID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	q, ok := m.queues[taskID]
	if !ok {
		return nil
	}
	delete(m.queues, taskID)
	return q.Close()
}

// CloseAll closes all managed queues.
func (m *Manager) CloseAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var firstErr error
	for taskID, q := range m.queues {
		if err := q.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(m.queues, taskID)
	}
	return firstErr
}

// Size returns the number of managed queues.
func (m *Manager) Size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queues)
}
