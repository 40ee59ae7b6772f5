// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package a2a provides the wire types for the A2A demo agents: tasks,
// messages, artifacts, status update events, agent cards, and the JSON-RPC
// envelope the agents exchange over HTTP.
package a2a

import "time"

// A2A RPC method names.
const (
	// MethodTasksSend is the method name for sending a task.
	MethodTasksSend = "tasks/send"
	// MethodTasksSendSubscribe is the method name for sending a task and subscribing to updates.
	MethodTasksSendSubscribe = "tasks/sendSubscribe"
	// MethodTasksGet is the method name for getting a task.
	MethodTasksGet = "tasks/get"
)

// A2A protocol path constants.
const (
	// AgentCardWellKnownPath is the standard path for retrieving an agent's
	// public AgentCard, following the well-known URI pattern.
	//
	// Example usage: http://agent.example.com/.well-known/agent.json
	AgentCardWellKnownPath = "/.well-known/agent.json"

	// DefaultRPCPath is the default URL path for the A2A JSON-RPC endpoint.
	DefaultRPCPath = "/"
)

// Default tunables for delegate connectivity.
const (
	// DefaultMaxRetries is the number of agent card fetch attempts made
	// during delegate discovery.
	DefaultMaxRetries = 3
	// DefaultRetryDelay is the fixed delay between discovery attempts.
	DefaultRetryDelay = 2 * time.Second
	// DefaultSolveTimeout bounds a single delegated tasks/send exchange.
	DefaultSolveTimeout = 10 * time.Second
	// DefaultCardTimeout bounds a single agent card fetch.
	DefaultCardTimeout = 5 * time.Second
)
