// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"context"
	"errors"
	"testing"
	"time"

	a2a "github.com/go-a2a/a2a-demo"
)

func TestConsumer_EventsUntilFinal(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	q, err := NewQueue(10)
	if err != nil {
		t.Fatalf("NewQueue() error = %v", err)
	}

	for _, l := range []string{"one", "two", "three"} {
		if err := q.Enqueue(ctx, a2a.NewStatusUpdateEvent("task-1", a2a.TaskStateWorking, l, false)); err != nil {
			t.Fatalf("Enqueue(%s) error = %v", l, err)
		}
	}
	if err := q.Enqueue(ctx, a2a.NewStatusUpdateEvent("task-1", a2a.TaskStateInputRequired, "Would you like more messages? (Y/N)", true)); err != nil {
		t.Fatalf("Enqueue(final) error = %v", err)
	}

	c := NewConsumer("task-1", q)
	if c.TaskID() != "task-1" {
		t.Errorf("TaskID() = %q, want %q", c.TaskID(), "task-1")
	}

	var states []a2a.TaskState
	var finals []bool
	for ev := range c.Events(ctx) {
		states = append(states, ev.Status.State)
		finals = append(finals, ev.Final)
	}

	wantStates := []a2a.TaskState{
		a2a.TaskStateWorking,
		a2a.TaskStateWorking,
		a2a.TaskStateWorking,
		a2a.TaskStateInputRequired,
	}
	if len(states) != len(wantStates) {
		t.Fatalf("consumed %d events, want %d", len(states), len(wantStates))
	}
	for i, want := range wantStates {
		if states[i] != want {
			t.Errorf("event[%d] state = %s, want %s", i, states[i], want)
		}
	}
	for i, final := range finals {
		wantFinal := i == len(finals)-1
		if final != wantFinal {
			t.Errorf("event[%d] final = %v, want %v", i, final, wantFinal)
		}
	}

	if !q.IsClosed() {
		t.Error("queue should be closed after the final event")
	}
}

func TestConsumer_Next(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	q, err := NewQueue(10)
	if err != nil {
		t.Fatalf("NewQueue() error = %v", err)
	}

	if err := q.Enqueue(ctx, a2a.NewStatusUpdateEvent("task-1", a2a.TaskStateCompleted, "All done!", true)); err != nil {
		t.Fatalf("Enqueue() error = %v", err)
	}

	c := NewConsumer("task-1", q)

	ev, err := c.Next(ctx)
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if !ev.Final || ev.Status.State != a2a.TaskStateCompleted {
		t.Errorf("Next() = state %s final %v, want completed final", ev.Status.State, ev.Final)
	}

	// No events follow a final event.
	if _, err := c.Next(ctx); !errors.Is(err, ErrQueueClosed) {
		t.Errorf("Next() after final error = %v, want ErrQueueClosed", err)
	}
}

func TestConsumer_ContextCancel(t *testing.T) {
	t.Parallel()

	q, err := NewQueue(10)
	if err != nil {
		t.Fatalf("NewQueue() error = %v", err)
	}
	defer q.Close()

	ctx, cancel := context.WithCancel(context.Background())
	c := NewConsumer("task-1", q)
	events := c.Events(ctx)

	cancel()

	select {
	case _, ok := <-events:
		if ok {
			t.Error("expected closed events channel after cancel")
		}
	case <-time.After(time.Second):
		t.Error("events channel not closed after context cancel")
	}
}
