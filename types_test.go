// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"testing"
)

func TestTaskState_Terminal(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		state TaskState
		want  bool
	}{
		"submitted is not terminal":      {TaskStateSubmitted, false},
		"working is not terminal":        {TaskStateWorking, false},
		"input-required is not terminal": {TaskStateInputRequired, false},
		"completed is terminal":          {TaskStateCompleted, true},
		"failed is terminal":             {TaskStateFailed, true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.state.Terminal(); got != tt.want {
				t.Errorf("%s.Terminal() = %v, want %v", tt.state, got, tt.want)
			}
		})
	}
}

func TestTaskState_CanTransition(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		from TaskState
		to   TaskState
		want bool
	}{
		"submitted to working":            {TaskStateSubmitted, TaskStateWorking, true},
		"submitted directly to completed": {TaskStateSubmitted, TaskStateCompleted, true},
		"working to working":              {TaskStateWorking, TaskStateWorking, true},
		"working to input-required":       {TaskStateWorking, TaskStateInputRequired, true},
		"working to failed":               {TaskStateWorking, TaskStateFailed, true},
		"input-required back to working":  {TaskStateInputRequired, TaskStateWorking, true},
		"completed to working":            {TaskStateCompleted, TaskStateWorking, false},
		"completed to completed":          {TaskStateCompleted, TaskStateCompleted, false},
		"failed to working":               {TaskStateFailed, TaskStateWorking, false},
		"working back to submitted":       {TaskStateWorking, TaskStateSubmitted, false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.from.CanTransition(tt.to); got != tt.want {
				t.Errorf("CanTransition(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestMessage_Text(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		message Message
		want    string
	}{
		"single text part": {
			message: Message{Role: RoleUser, Parts: []Part{NewTextPart("hello")}},
			want:    "hello",
		},
		"first text part wins": {
			message: Message{Role: RoleUser, Parts: []Part{NewTextPart("first"), NewTextPart("second")}},
			want:    "first",
		},
		"no parts": {
			message: Message{Role: RoleUser},
			want:    "",
		},
		"non-text part skipped": {
			message: Message{Role: RoleUser, Parts: []Part{{Type: "file"}, NewTextPart("after")}},
			want:    "after",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.message.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTaskSendParams_Validate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		params  TaskSendParams
		wantErr bool
	}{
		"valid": {
			params: TaskSendParams{
				ID:      "task-1",
				Message: Message{Role: RoleUser, Parts: []Part{NewTextPart("hi")}},
			},
		},
		"missing id": {
			params: TaskSendParams{
				Message: Message{Role: RoleUser, Parts: []Part{NewTextPart("hi")}},
			},
			wantErr: true,
		},
		"bad role": {
			params: TaskSendParams{
				ID:      "task-1",
				Message: Message{Role: "system", Parts: []Part{NewTextPart("hi")}},
			},
			wantErr: true,
		},
		"empty parts": {
			params: TaskSendParams{
				ID:      "task-1",
				Message: Message{Role: RoleUser},
			},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.params.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAgentCard_Validate(t *testing.T) {
	t.Parallel()

	valid := AgentCard{Name: "Echo Agent", URL: "http://localhost:10002/", Version: "0.1.0"}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}

	missingName := valid
	missingName.Name = ""
	if err := missingName.Validate(); err == nil {
		t.Error("Validate() with empty name should fail")
	}
}
