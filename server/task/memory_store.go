// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package task

import (
	"context"
	"fmt"
	"sync"
	"time"

	a2a "github.com/go-a2a/a2a-demo"
)

// InMemoryStore is an in-memory implementation of Store. Task state is
// process-resident: tasks are never deleted and are lost when the process
// stops. All operations are thread-safe using sync.RWMutex.
type InMemoryStore struct {
	mu    sync.RWMutex
	tasks map[string]*a2a.Task
}

var _ Store = (*InMemoryStore)(nil)

// NewInMemoryStore creates a new InMemoryStore.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		tasks: make(map[string]*a2a.Task),
	}
}

// Upsert creates the task if absent, or appends the inbound message to its
// history if present.
func (s *InMemoryStore) Upsert(ctx context.Context, params a2a.TaskSendParams) (*a2a.Task, bool, error) {
	if err := params.Validate(); err != nil {
		return nil, false, fmt.Errorf("upsert task: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.tasks[params.ID]; ok {
		existing.History = append(existing.History, params.Message)
		return copyTask(existing), false, nil
	}

	created := a2a.NewTask(params)
	s.tasks[params.ID] = created
	return copyTask(created), true, nil
}

// Get retrieves a task by its ID.
func (s *InMemoryStore) Get(ctx context.Context, taskID string) (*a2a.Task, error) {
	if taskID == "" {
		return nil, fmt.Errorf("task ID cannot be empty")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[taskID]
	if !ok {
		return nil, a2a.TaskNotFoundError{TaskID: taskID}
	}
	return copyTask(task), nil
}

// Contains reports whether a task with the given ID exists.
func (s *InMemoryStore) Contains(ctx context.Context, taskID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.tasks[taskID]
	return ok
}

// UpdateStatus moves a task to the given state with the agent response
// attached as the status message. Once the task settles (terminal or
// input-required) the response also becomes its single artifact;
// intermediate working updates carry no artifact. A terminal task may be
// re-completed in the same state (idempotent re-send) but never resurrected
// into a different one.
func (s *InMemoryStore) UpdateStatus(ctx context.Context, taskID string, state a2a.TaskState, response a2a.Message) (*a2a.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[taskID]
	if !ok {
		return nil, a2a.TaskNotFoundError{TaskID: taskID}
	}

	current := task.Status.State
	if current.Terminal() {
		if state != current {
			return nil, fmt.Errorf("task %s: %w", taskID, ErrTaskTerminal)
		}
	} else if state != current && !current.CanTransition(state) {
		return nil, fmt.Errorf("task %s: %s -> %s: %w", taskID, current, state, ErrInvalidTransition)
	}

	task.Status = a2a.TaskStatus{
		State:     state,
		Message:   &response,
		Timestamp: time.Now().UTC(),
	}
	if state.Terminal() || state == a2a.TaskStateInputRequired {
		task.Artifacts = []a2a.Artifact{{Parts: response.Parts}}
	}

	return copyTask(task), nil
}

// Size returns the current number of tasks. Useful for tests.
func (s *InMemoryStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.tasks)
}

// copyTask creates a deep copy of a task so callers never share memory with
// the stored value.
func copyTask(task *a2a.Task) *a2a.Task {
	if task == nil {
		return nil
	}

	cp := &a2a.Task{
		ID:     task.ID,
		Status: task.Status,
	}
	if task.Status.Message != nil {
		msg := *task.Status.Message
		msg.Parts = append([]a2a.Part(nil), task.Status.Message.Parts...)
		cp.Status.Message = &msg
	}
	if task.History != nil {
		cp.History = make([]a2a.Message, len(task.History))
		for i, m := range task.History {
			m.Parts = append([]a2a.Part(nil), m.Parts...)
			cp.History[i] = m
		}
	}
	if task.Artifacts != nil {
		cp.Artifacts = make([]a2a.Artifact, len(task.Artifacts))
		for i, art := range task.Artifacts {
			art.Parts = append([]a2a.Part(nil), art.Parts...)
			cp.Artifacts[i] = art
		}
	}
	return cp
}
