// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// JSONRPCVersion is the JSON-RPC protocol version used by A2A.
const JSONRPCVersion = "2.0"

// ID is the unique identifier of a JSON-RPC message: a string, a number, or
// absent (for notifications). The zero value is the absent id.
type ID struct {
	value any
}

// String renders the id for correlation and logging. Numbers keep their
// shortest decimal form.
func (id ID) String() string {
	switch v := id.value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// IsZero reports whether the id is absent, which lets omitzero drop it from
// the envelope.
func (id ID) IsZero() bool {
	return id.value == nil
}

// MarshalJSON implements [json.Marshaler].
func (id ID) MarshalJSON() ([]byte, error) {
	if id.value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(id.value)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (id *ID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		id.value = nil
		return nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch v.(type) {
	case string, float64:
		id.value = v
		return nil
	default:
		return fmt.Errorf("jsonrpc id must be a string or a number, got %T", v)
	}
}

// JSONRPCMessage is the base structure for all JSON-RPC 2.0 messages.
type JSONRPCMessage struct {
	// JSONRPC version, always "2.0".
	JSONRPC string `json:"jsonrpc"`
	// ID is a unique identifier for request/response correlation.
	ID ID `json:"id,omitzero"` // string, number, or absent
}

// NewJSONRPCMessage creates a new [JSONRPCMessage] with the given id, which
// may be a string, a number, or an [ID] echoed from a request.
func NewJSONRPCMessage(id any) JSONRPCMessage {
	if v, ok := id.(ID); ok {
		return JSONRPCMessage{JSONRPC: JSONRPCVersion, ID: v}
	}
	return JSONRPCMessage{
		JSONRPC: JSONRPCVersion,
		ID:      ID{value: id},
	}
}

// JSONRPCRequest represents a JSON-RPC 2.0 request.
type JSONRPCRequest struct {
	JSONRPCMessage

	// Method identifies the operation to perform.
	Method string `json:"method"`
	// Params contains parameters for the method.
	Params json.RawMessage `json:"params,omitempty"`
}

// JSONRPCError represents a JSON-RPC 2.0 error object.
type JSONRPCError struct {
	// Code is the error code.
	Code int `json:"code"`
	// Message is a short description of the error.
	Message string `json:"message"`
	// Data contains optional additional error details.
	Data any `json:"data,omitempty"`
}

// Error implements the error interface.
func (e *JSONRPCError) Error() string {
	return e.Message
}

// JSONRPCResponse represents a JSON-RPC 2.0 response. Result and Error are
// mutually exclusive.
type JSONRPCResponse struct {
	JSONRPCMessage

	Result any           `json:"result,omitempty"`
	Error  *JSONRPCError `json:"error,omitempty"`
}

// NewSendTaskRequest creates a tasks/send request envelope.
func NewSendTaskRequest(id any, params TaskSendParams) (*JSONRPCRequest, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	return &JSONRPCRequest{
		JSONRPCMessage: NewJSONRPCMessage(id),
		Method:         MethodTasksSend,
		Params:         raw,
	}, nil
}

// SendTaskResponse is a tasks/send response whose result is a task snapshot.
type SendTaskResponse struct {
	JSONRPCMessage

	Result *Task         `json:"result,omitempty"`
	Error  *JSONRPCError `json:"error,omitempty"`
}

// SendTaskStreamingResponse is one frame of a tasks/sendSubscribe stream.
type SendTaskStreamingResponse struct {
	JSONRPCMessage

	Result *TaskStatusUpdateEvent `json:"result,omitempty"`
	Error  *JSONRPCError          `json:"error,omitempty"`
}
