// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"fmt"
	"time"
)

// TaskState represents the lifecycle state of a task.
type TaskState string

// Valid task states.
const (
	TaskStateSubmitted     TaskState = "submitted"
	TaskStateWorking       TaskState = "working"
	TaskStateInputRequired TaskState = "input-required"
	TaskStateCompleted     TaskState = "completed"
	TaskStateFailed        TaskState = "failed"
	TaskStateUnknown       TaskState = "unknown"
)

// Terminal reports whether the state admits no further transitions.
// input-required terminality is carried by the Final flag on the status
// update event, not by the state itself.
func (s TaskState) Terminal() bool {
	return s == TaskStateCompleted || s == TaskStateFailed
}

// CanTransition reports whether a task may move from s to next.
// Transitions are monotonic: submitted feeds working or a direct completion,
// working may emit further working updates before finishing, and a non-final
// input-required re-enters working on the next inbound message.
func (s TaskState) CanTransition(next TaskState) bool {
	if s.Terminal() {
		return false
	}
	switch s {
	case TaskStateSubmitted:
		return next == TaskStateWorking || next == TaskStateCompleted ||
			next == TaskStateInputRequired || next == TaskStateFailed
	case TaskStateWorking:
		return next == TaskStateWorking || next == TaskStateCompleted ||
			next == TaskStateInputRequired || next == TaskStateFailed
	case TaskStateInputRequired:
		return next == TaskStateWorking || next == TaskStateCompleted ||
			next == TaskStateInputRequired || next == TaskStateFailed
	default:
		return false
	}
}

// Role identifies the author of a message.
type Role string

// Valid message roles.
const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// Part is a single content segment of a message or artifact.
// The demo agents only exchange text parts.
type Part struct {
	Type string `json:"type"`
	Text string `json:"text,omitzero"`
}

// NewTextPart creates a text content part.
func NewTextPart(text string) Part {
	return Part{Type: "text", Text: text}
}

// Message is a role-tagged ordered sequence of content parts. A message is
// immutable once attached to a task.
type Message struct {
	Role  Role   `json:"role"`
	Parts []Part `json:"parts"`
}

// Validate ensures the Message is well formed.
func (m Message) Validate() error {
	if m.Role != RoleUser && m.Role != RoleAgent {
		return fmt.Errorf("invalid message role: %q", m.Role)
	}
	if len(m.Parts) == 0 {
		return fmt.Errorf("message must have at least one part")
	}
	return nil
}

// Text returns the text of the first text part, or the empty string.
func (m Message) Text() string {
	for _, p := range m.Parts {
		if p.Type == "text" {
			return p.Text
		}
	}
	return ""
}

// TaskStatus pairs a task state with the message that accompanied the
// transition into it.
type TaskStatus struct {
	State     TaskState `json:"state"`
	Message   *Message  `json:"message,omitzero"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}

// Artifact is a finalized output of a task.
type Artifact struct {
	Name  string `json:"name,omitzero"`
	Parts []Part `json:"parts"`
}

// Task is one unit of conversational work identified by an opaque id and
// tracked through the task state machine.
type Task struct {
	ID        string     `json:"id"`
	Status    TaskStatus `json:"status"`
	History   []Message  `json:"history,omitzero"`
	Artifacts []Artifact `json:"artifacts,omitzero"`
}

// Validate ensures the Task is well formed.
func (t *Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("task ID cannot be empty")
	}
	switch t.Status.State {
	case TaskStateSubmitted, TaskStateWorking, TaskStateInputRequired,
		TaskStateCompleted, TaskStateFailed, TaskStateUnknown:
	default:
		return fmt.Errorf("invalid task state: %q", t.Status.State)
	}
	return nil
}

// TaskSendParams are the parameters of a tasks/send or tasks/sendSubscribe
// request. The core reads the id and the first text part of the message.
type TaskSendParams struct {
	ID      string  `json:"id"`
	Message Message `json:"message"`
}

// Validate ensures the TaskSendParams are well formed.
func (p TaskSendParams) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("task ID cannot be empty")
	}
	return p.Message.Validate()
}

// Text returns the text of the first text part of the inbound message.
func (p TaskSendParams) Text() string {
	return p.Message.Text()
}

// TaskQueryParams are the parameters of a tasks/get request.
type TaskQueryParams struct {
	ID string `json:"id"`
}

// TaskStatusUpdateEvent is one event on a task's stream. Final marks the
// last event of the stream; no events follow it.
type TaskStatusUpdateEvent struct {
	ID     string     `json:"id"`
	Status TaskStatus `json:"status"`
	Final  bool       `json:"final"`
}

// GetTaskID returns the task ID the event is for.
func (e *TaskStatusUpdateEvent) GetTaskID() string {
	return e.ID
}

// AgentCapabilities advertises optional protocol features of an agent.
type AgentCapabilities struct {
	Streaming bool `json:"streaming"`
}

// AgentSkill describes a unit of capability an agent can perform.
type AgentSkill struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitzero"`
	Tags        []string `json:"tags,omitzero"`
	Examples    []string `json:"examples,omitzero"`
	InputModes  []string `json:"inputModes,omitzero"`
	OutputModes []string `json:"outputModes,omitzero"`
}

// AgentCard is the capability descriptor an agent serves at the well-known
// path.
type AgentCard struct {
	Name               string            `json:"name"`
	Description        string            `json:"description,omitzero"`
	URL                string            `json:"url"`
	Version            string            `json:"version"`
	DefaultInputModes  []string          `json:"defaultInputModes,omitzero"`
	DefaultOutputModes []string          `json:"defaultOutputModes,omitzero"`
	Capabilities       AgentCapabilities `json:"capabilities"`
	Skills             []AgentSkill      `json:"skills,omitzero"`
}

// Validate ensures the AgentCard is valid.
func (c *AgentCard) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("agent card name cannot be empty")
	}
	if c.URL == "" {
		return fmt.Errorf("agent card URL cannot be empty")
	}
	if c.Version == "" {
		return fmt.Errorf("agent card version cannot be empty")
	}
	return nil
}
