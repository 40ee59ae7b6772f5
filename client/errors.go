// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"errors"
	"fmt"
)

var (
	// ErrDelegateDisabled indicates no math agent URL was configured;
	// delegation is off and no network attempt is made.
	ErrDelegateDisabled = errors.New("no math agent URL configured")

	// ErrDelegateUnavailable indicates discovery has not succeeded, so
	// solve requests are not sent.
	ErrDelegateUnavailable = errors.New("math agent is not available")
)

// MalformedResponseError indicates the peer's reply was missing the fields
// the protocol requires.
type MalformedResponseError struct {
	Reason string
}

// Error returns the error message.
func (e MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed math agent response: %s", e.Reason)
}
