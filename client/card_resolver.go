// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package client provides the A2A client side: agent card resolution and
// the delegate client the echo agent uses to reach the math agent.
package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	a2a "github.com/go-a2a/a2a-demo"
)

// CardResolver fetches agent cards from a peer's well-known path.
type CardResolver struct {
	hc      *http.Client
	baseURL string
}

// NewCardResolver creates a card resolver for the given peer base URL.
// If hc is nil, a default client is used.
func NewCardResolver(baseURL string, hc *http.Client) *CardResolver {
	if hc == nil {
		hc = &http.Client{}
	}
	return &CardResolver{
		hc:      hc,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GetAgentCard fetches the peer's public agent card. A non-2xx status or a
// body without a name counts as a failed fetch.
func (r *CardResolver) GetAgentCard(ctx context.Context) (*a2a.AgentCard, error) {
	targetURL := r.baseURL + a2a.AgentCardWellKnownPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, http.NoBody)
	if err != nil {
		return nil, err
	}

	resp, err := r.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch agent card: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch agent card from %s: status %d", targetURL, resp.StatusCode)
	}

	var agentCard a2a.AgentCard
	dec := jsontext.NewDecoder(resp.Body)
	if err := json.UnmarshalDecode(dec, &agentCard, json.DefaultOptionsV2()); err != nil {
		return nil, fmt.Errorf("decode agent card: %w", err)
	}
	if agentCard.Name == "" {
		return nil, MalformedResponseError{Reason: "agent card has no name"}
	}

	return &agentCard, nil
}
