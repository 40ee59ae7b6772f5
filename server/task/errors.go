// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package task

import "errors"

var (
	// ErrTaskTerminal is returned when attempting to move a finished task
	// to a different state. Terminal tasks admit no further transitions.
	ErrTaskTerminal = errors.New("task is in a terminal state")

	// ErrInvalidTransition is returned when a requested state change is not
	// permitted by the task state machine.
	ErrInvalidTransition = errors.New("invalid task state transition")
)
