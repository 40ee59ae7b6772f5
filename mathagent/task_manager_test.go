// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package mathagent

import (
	"context"
	"errors"
	"strings"
	"testing"

	a2a "github.com/go-a2a/a2a-demo"
)

func sendParams(id, text string) a2a.TaskSendParams {
	return a2a.TaskSendParams{
		ID:      id,
		Message: a2a.Message{Role: a2a.RoleUser, Parts: []a2a.Part{a2a.NewTextPart(text)}},
	}
}

func TestAnswer(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		text string
		want string
	}{
		"simple addition": {
			text: "What is 25 * 13?",
			want: "The result of 25 * 13 is 325",
		},
		"operator chain with precedence": {
			text: "calculate 2 + 3 * 4",
			want: "The result of 2 + 3 * 4 is 14",
		},
		"power binds tightest": {
			text: "2 * 3 ^ 2",
			want: "The result of 2 * 3 ^ 2 is 18",
		},
		"modulo": {
			text: "10 % 3",
			want: "The result of 10 % 3 is 1",
		},
		"square root": {
			text: "sqrt(16)",
			want: "The result of sqrt(16) is 4",
		},
		"log is base ten": {
			text: "log(100)",
			want: "The result of log(100) is 2",
		},
		"division by zero": {
			text: "5 / 0",
			want: "I encountered an error while calculating: division by zero",
		},
		"modulo by zero": {
			text: "5 % 0",
			want: "I encountered an error while calculating: modulo by zero",
		},
		"loose numbers summed": {
			text: "I have 3 cats and 4 dogs",
			want: "I found numbers 3 and 4, their sum is 7",
		},
		"no expression at all": {
			text: "hello there",
			want: noExpressionText,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if got := Answer(tt.text); got != tt.want {
				t.Errorf("Answer(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestTaskManager_OnSendTask(t *testing.T) {
	t.Parallel()

	tm := NewTaskManager(nil)

	got, err := tm.OnSendTask(context.Background(), sendParams("t1", "What is 12 + 7?"))
	if err != nil {
		t.Fatalf("OnSendTask() error = %v", err)
	}

	if got.Status.State != a2a.TaskStateCompleted {
		t.Errorf("state = %s, want completed", got.Status.State)
	}
	if text := got.Status.Message.Text(); !strings.Contains(text, "19") {
		t.Errorf("response = %q, want it to contain 19", text)
	}
	if len(got.Artifacts) != 1 {
		t.Errorf("artifacts = %d, want 1", len(got.Artifacts))
	}
}

func TestTaskManager_OnSendTask_UnparsableStillCompletes(t *testing.T) {
	t.Parallel()

	tm := NewTaskManager(nil)

	got, err := tm.OnSendTask(context.Background(), sendParams("t1", "no math here"))
	if err != nil {
		t.Fatalf("OnSendTask() error = %v", err)
	}
	if got.Status.State != a2a.TaskStateCompleted {
		t.Errorf("state = %s, want completed", got.Status.State)
	}
	if got.Status.Message.Text() != noExpressionText {
		t.Errorf("response = %q, want %q", got.Status.Message.Text(), noExpressionText)
	}
}

func TestTaskManager_OnSendTaskSubscribe_Unsupported(t *testing.T) {
	t.Parallel()

	tm := NewTaskManager(nil)

	_, err := tm.OnSendTaskSubscribe(context.Background(), sendParams("t1", "2 + 2"))
	var unsupported a2a.UnsupportedOperationError
	if !errors.As(err, &unsupported) {
		t.Errorf("OnSendTaskSubscribe() error = %v, want UnsupportedOperationError", err)
	}
}

func TestTaskManager_OnGetTask(t *testing.T) {
	t.Parallel()

	tm := NewTaskManager(nil)
	ctx := context.Background()

	if _, err := tm.OnGetTask(ctx, "missing"); err == nil {
		t.Error("OnGetTask() on an unknown id should fail")
	}

	if _, err := tm.OnSendTask(ctx, sendParams("t1", "2 + 2")); err != nil {
		t.Fatalf("OnSendTask() error = %v", err)
	}
	got, err := tm.OnGetTask(ctx, "t1")
	if err != nil {
		t.Fatalf("OnGetTask() error = %v", err)
	}
	if got.ID != "t1" {
		t.Errorf("task ID = %s, want t1", got.ID)
	}
}
