// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
)

// Transport handles a single JSON-RPC request/response exchange with an A2A
// endpoint.
type Transport struct {
	endpoint   string
	httpClient *http.Client
}

// NewTransport creates a Transport posting to the given endpoint URL.
// If httpClient is nil, a default client is used.
func NewTransport(endpoint string, httpClient *http.Client) *Transport {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Transport{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

// Call sends a JSON-RPC request and decodes the response into resp.
func (t *Transport) Call(ctx context.Context, req any, resp any) error {
	data, err := sonic.ConfigFastest.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("sending HTTP request: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(httpResp.Body)
		return fmt.Errorf("server returned non-OK status: %s, body: %s", httpResp.Status, string(body))
	}

	if err := sonic.ConfigFastest.NewDecoder(httpResp.Body).Decode(resp); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}
