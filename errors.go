// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import "fmt"

// Error codes for the A2A protocol.
const (
	ErrorCodeJSONParse            = -32700
	ErrorCodeInvalidRequest       = -32600
	ErrorCodeMethodNotFound       = -32601
	ErrorCodeInvalidParams        = -32602
	ErrorCodeInternalError        = -32603
	ErrorCodeTaskNotFound         = -32001
	ErrorCodeUnsupportedOperation = -32004
)

// A2AError is an error carrying a JSON-RPC error code.
type A2AError interface {
	error
	Code() int
}

// AsJSONRPCError converts any error to a JSON-RPC error object, mapping
// untyped errors to an internal error.
func AsJSONRPCError(err error) *JSONRPCError {
	if ae, ok := err.(A2AError); ok {
		return &JSONRPCError{Code: ae.Code(), Message: ae.Error()}
	}
	return &JSONRPCError{Code: ErrorCodeInternalError, Message: err.Error()}
}

// TaskNotFoundError indicates the requested task ID is absent from the
// store.
type TaskNotFoundError struct {
	TaskID string
}

// Error returns the error message.
func (e TaskNotFoundError) Error() string {
	return fmt.Sprintf("task not found: %s", e.TaskID)
}

// Code returns the error code.
func (e TaskNotFoundError) Code() int {
	return ErrorCodeTaskNotFound
}

// MethodNotFoundError indicates an unknown JSON-RPC method.
type MethodNotFoundError struct {
	Method string
}

// Error returns the error message.
func (e MethodNotFoundError) Error() string {
	return fmt.Sprintf("method not found: %s", e.Method)
}

// Code returns the error code.
func (e MethodNotFoundError) Code() int {
	return ErrorCodeMethodNotFound
}

// InvalidParamsError indicates malformed request parameters.
type InvalidParamsError struct {
	Msg string
}

// Error returns the error message.
func (e InvalidParamsError) Error() string {
	return fmt.Sprintf("invalid params: %s", e.Msg)
}

// Code returns the error code.
func (e InvalidParamsError) Code() int {
	return ErrorCodeInvalidParams
}

// UnsupportedOperationError indicates the agent does not implement the
// requested operation, e.g. streaming on a non-streaming agent.
type UnsupportedOperationError struct {
	Operation string
}

// Error returns the error message.
func (e UnsupportedOperationError) Error() string {
	return fmt.Sprintf("unsupported operation: %s", e.Operation)
}

// Code returns the error code.
func (e UnsupportedOperationError) Code() int {
	return ErrorCodeUnsupportedOperation
}

// InternalError represents an internal agent error.
type InternalError struct {
	Msg string
}

// Error returns the error message.
func (e InternalError) Error() string {
	return fmt.Sprintf("internal error: %s", e.Msg)
}

// Code returns the error code.
func (e InternalError) Code() int {
	return ErrorCodeInternalError
}
