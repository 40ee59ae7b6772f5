// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"context"
	"errors"
	"testing"

	a2a "github.com/go-a2a/a2a-demo"
)

func TestManager_Subscribe(t *testing.T) {
	t.Parallel()

	m := NewManager(0)

	q, err := m.Subscribe("task-1")
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	if q == nil {
		t.Fatal("Subscribe() returned nil queue")
	}
	if m.Size() != 1 {
		t.Errorf("m.Size() = %d, want 1", m.Size())
	}

	if _, err := m.Subscribe(""); err == nil {
		t.Error("Subscribe() with empty task ID should fail")
	}
}

func TestManager_DoubleSubscribe(t *testing.T) {
	t.Parallel()

	m := NewManager(0)

	if _, err := m.Subscribe("task-1"); err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	if _, err := m.Subscribe("task-1"); !errors.Is(err, ErrAlreadySubscribed) {
		t.Errorf("second Subscribe() error = %v, want ErrAlreadySubscribed", err)
	}
}

func TestManager_ResubscribeAfterStreamEnds(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewManager(0)

	q1, err := m.Subscribe("task-1")
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	// The consumer closes the queue after the final event; a later
	// streaming call on the same task then opens a fresh queue.
	q1.Close()

	q2, err := m.Subscribe("task-1")
	if err != nil {
		t.Fatalf("Subscribe() after stream end error = %v", err)
	}
	if q1 == q2 {
		t.Error("resubscription should create a fresh queue")
	}

	if err := m.Publish(ctx, a2a.NewStatusUpdateEvent("task-1", a2a.TaskStateWorking, "again", false)); err != nil {
		t.Errorf("Publish() to fresh queue error = %v", err)
	}
}

func TestManager_Publish(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewManager(0)

	ev := a2a.NewStatusUpdateEvent("task-1", a2a.TaskStateWorking, "one", false)
	if err := m.Publish(ctx, ev); !errors.Is(err, ErrNotSubscribed) {
		t.Errorf("Publish() without subscriber error = %v, want ErrNotSubscribed", err)
	}

	q, err := m.Subscribe("task-1")
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	if err := m.Publish(ctx, ev); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	got, err := q.Dequeue(ctx, false)
	if err != nil {
		t.Fatalf("Dequeue() error = %v", err)
	}
	if got.GetTaskID() != "task-1" {
		t.Errorf("published event task = %q, want %q", got.GetTaskID(), "task-1")
	}
}

func TestManager_Release(t *testing.T) {
	t.Parallel()

	m := NewManager(0)

	q, err := m.Subscribe("task-1")
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	if err := m.Release("task-1"); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	if !q.IsClosed() {
		t.Error("released queue should be closed")
	}
	if m.Size() != 0 {
		t.Errorf("m.Size() = %d after release, want 0", m.Size())
	}

	// Releasing an unknown task is a no-op.
	if err := m.Release("missing"); err != nil {
		t.Errorf("Release(missing) error = %v", err)
	}
}

func TestManager_CloseAll(t *testing.T) {
	t.Parallel()

	m := NewManager(0)

	q1, _ := m.Subscribe("task-1")
	q2, _ := m.Subscribe("task-2")

	if err := m.CloseAll(); err != nil {
		t.Fatalf("CloseAll() error = %v", err)
	}
	if !q1.IsClosed() || !q2.IsClosed() {
		t.Error("CloseAll() should close every queue")
	}
	if m.Size() != 0 {
		t.Errorf("m.Size() = %d after CloseAll, want 0", m.Size())
	}
}
