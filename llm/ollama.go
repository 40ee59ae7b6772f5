// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package llm

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

const (
	// DefaultOllamaHost is the local Ollama server address.
	DefaultOllamaHost = "http://localhost:11434"

	// DefaultOllamaModel is used when no model is configured.
	DefaultOllamaModel = "llama3.2"

	// chatPath is Ollama's non-streaming chat endpoint.
	chatPath = "/api/chat"
)

// json is the codec for Ollama exchanges. ConfigDefault matches
// encoding/json semantics, which Ollama expects.
var json = sonic.ConfigDefault

// OllamaClient talks to a local Ollama server over its chat API.
// It implements [Runner].
type OllamaClient struct {
	hc      *http.Client
	baseURL string
	model   string
}

var _ Runner = (*OllamaClient)(nil)

// NewOllamaClient creates a client for the Ollama server at baseURL.
// Empty arguments fall back to [DefaultOllamaHost] and [DefaultOllamaModel].
// No connection is attempted until the first Run call.
func NewOllamaClient(baseURL, model string) *OllamaClient {
	if baseURL == "" {
		baseURL = DefaultOllamaHost
	}
	if model == "" {
		model = DefaultOllamaModel
	}

	return &OllamaClient{
		hc: &http.Client{
			// Local models can be slow to load on first use.
			Timeout: 5 * time.Minute,
		},
		baseURL: baseURL,
		model:   model,
	}
}

// chatMessage is one turn of an Ollama chat exchange.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the body of a POST /api/chat call.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

// chatResponse is the non-streaming reply to a chat call.
type chatResponse struct {
	Model     string      `json:"model"`
	CreatedAt string      `json:"created_at"`
	Message   chatMessage `json:"message"`
	Done      bool        `json:"done"`
}

// Run implements [Runner] with a single-turn, non-streaming chat call.
func (c *OllamaClient) Run(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(&chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request to %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("ollama returned %d: %s", resp.StatusCode, b)
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}

	return chat.Message.Content, nil
}

// Model reports the configured model name.
func (c *OllamaClient) Model() string {
	return c.model
}
