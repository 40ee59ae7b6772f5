// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	a2a "github.com/go-a2a/a2a-demo"
	"github.com/go-a2a/a2a-demo/solver"
)

// Availability is the cached connectivity state of the delegate peer.
type Availability string

// Valid availability states. Transitions happen only through Discover.
const (
	AvailabilityUnknown     Availability = "unknown"
	AvailabilityAvailable   Availability = "available"
	AvailabilityUnavailable Availability = "unavailable"
)

// DelegateConfig configures connectivity to the math agent.
type DelegateConfig struct {
	// BaseURL is the math agent's base URL. Empty disables delegation
	// entirely; Discover then makes no network attempt.
	BaseURL string
	// MaxRetries is the number of discovery attempts (default 3).
	MaxRetries int
	// RetryDelay is the fixed delay between discovery attempts (default 2s).
	RetryDelay time.Duration
	// SolveTimeout bounds a single solve exchange (default 10s).
	SolveTimeout time.Duration
}

// withDefaults fills unset fields with the protocol defaults.
func (c DelegateConfig) withDefaults() DelegateConfig {
	if c.MaxRetries <= 0 {
		c.MaxRetries = a2a.DefaultMaxRetries
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = a2a.DefaultRetryDelay
	}
	if c.SolveTimeout <= 0 {
		c.SolveTimeout = a2a.DefaultSolveTimeout
	}
	return c
}

// DelegateClient maintains best-effort connectivity to the remote math
// agent: capability discovery with bounded retry, cached availability, and
// a single-attempt solve exchange. Retry and fallback on solve failures
// belong to the caller, not this client.
//
// Availability is read-mostly: many tasks read it concurrently, writes
// happen only during Discover.
type DelegateClient struct {
	cfg      DelegateConfig
	resolver *CardResolver
	rpc      *Transport
	logger   *slog.Logger

	mu           sync.RWMutex
	availability Availability
	card         *a2a.AgentCard
}

// NewDelegateClient creates a delegate client. No network traffic happens
// until Discover is called. If logger is nil, slog.Default() is used.
func NewDelegateClient(cfg DelegateConfig, logger *slog.Logger) *DelegateClient {
	cfg = cfg.withDefaults()
	if logger == nil {
		logger = slog.Default()
	}

	c := &DelegateClient{
		cfg:          cfg,
		logger:       logger,
		availability: AvailabilityUnknown,
	}
	if cfg.BaseURL != "" {
		base := strings.TrimRight(cfg.BaseURL, "/")
		c.resolver = NewCardResolver(base, nil)
		c.rpc = NewTransport(base+"/tasks/send", nil)
	}
	return c
}

// Discover fetches the math agent's card with bounded retry and caches the
// result. It blocks for up to MaxRetries attempts with a fixed delay in
// between, so it is meant to run during agent construction, before task
// traffic. An empty BaseURL short-circuits to unavailable without any
// network attempt.
func (c *DelegateClient) Discover(ctx context.Context) error {
	if c.cfg.BaseURL == "" {
		c.logger.WarnContext(ctx, "no math agent URL provided, math delegation disabled")
		c.setAvailability(AvailabilityUnavailable, nil)
		return ErrDelegateDisabled
	}

	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxRetries; attempt++ {
		cardCtx, cancel := context.WithTimeout(ctx, a2a.DefaultCardTimeout)
		card, err := c.resolver.GetAgentCard(cardCtx)
		cancel()

		if err == nil {
			c.logger.InfoContext(ctx, "connected to math agent", "name", card.Name, "url", c.cfg.BaseURL)
			c.setAvailability(AvailabilityAvailable, card)
			return nil
		}
		lastErr = err
		c.logger.WarnContext(ctx, "failed to connect to math agent",
			"attempt", attempt, "max_attempts", c.cfg.MaxRetries, "error", err)

		if attempt == c.cfg.MaxRetries {
			break
		}
		select {
		case <-time.After(c.cfg.RetryDelay):
		case <-ctx.Done():
			c.setAvailability(AvailabilityUnavailable, nil)
			return ctx.Err()
		}
	}

	c.setAvailability(AvailabilityUnavailable, nil)
	return fmt.Errorf("math agent discovery failed after %d attempts: %w", c.cfg.MaxRetries, lastErr)
}

// IsAvailable reports the cached availability; it never re-probes the peer.
func (c *DelegateClient) IsAvailable() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.availability == AvailabilityAvailable
}

// Availability returns the cached availability state.
func (c *DelegateClient) Availability() Availability {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.availability
}

// AgentCard returns the last fetched capability descriptor, or nil.
func (c *DelegateClient) AgentCard() *a2a.AgentCard {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.card
}

// Solve submits the math text to the peer as a tasks/send exchange. It
// makes exactly one attempt, bounded by SolveTimeout; any transport
// failure, timeout, or malformed response is returned as an error.
func (c *DelegateClient) Solve(ctx context.Context, text string) (string, error) {
	if !c.IsAvailable() {
		return "", ErrDelegateUnavailable
	}

	params := a2a.TaskSendParams{
		ID: uuid.NewString(),
		Message: a2a.Message{
			Role:  a2a.RoleUser,
			Parts: []a2a.Part{a2a.NewTextPart(text)},
		},
	}
	req, err := a2a.NewSendTaskRequest(uuid.NewString(), params)
	if err != nil {
		return "", fmt.Errorf("encode solve request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.SolveTimeout)
	defer cancel()

	var resp a2a.SendTaskResponse
	if err := c.rpc.Call(ctx, req, &resp); err != nil {
		return "", fmt.Errorf("math agent communication failed: %w", err)
	}
	if resp.Error != nil {
		return "", fmt.Errorf("math agent returned error %d: %s", resp.Error.Code, resp.Error.Message)
	}
	if resp.Result == nil || resp.Result.Status.Message == nil {
		return "", MalformedResponseError{Reason: "missing result status message"}
	}
	answer := resp.Result.Status.Message.Text()
	if answer == "" {
		return "", MalformedResponseError{Reason: "no text part in result"}
	}

	return answer, nil
}

// setAvailability updates the cached availability and card.
func (c *DelegateClient) setAvailability(av Availability, card *a2a.AgentCard) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.availability = av
	c.card = card
}

var _ solver.Delegate = (*DelegateClient)(nil)
