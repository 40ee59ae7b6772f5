// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import "time"

// NewTask creates a freshly submitted task from inbound send parameters.
// The inbound message becomes the first history entry and the status
// message.
func NewTask(params TaskSendParams) *Task {
	msg := params.Message
	return &Task{
		ID: params.ID,
		Status: TaskStatus{
			State:     TaskStateSubmitted,
			Message:   &msg,
			Timestamp: time.Now().UTC(),
		},
		History: []Message{params.Message},
	}
}

// NewAgentMessage creates an agent-role message holding a single text part.
func NewAgentMessage(text string) Message {
	return Message{
		Role:  RoleAgent,
		Parts: []Part{NewTextPart(text)},
	}
}

// NewStatusUpdateEvent creates a status update event for a task carrying an
// agent text response.
func NewStatusUpdateEvent(taskID string, state TaskState, text string, final bool) *TaskStatusUpdateEvent {
	msg := NewAgentMessage(text)
	return &TaskStatusUpdateEvent{
		ID: taskID,
		Status: TaskStatus{
			State:     state,
			Message:   &msg,
			Timestamp: time.Now().UTC(),
		},
		Final: final,
	}
}
