// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/bytedance/sonic"

	a2a "github.com/go-a2a/a2a-demo"
)

// Stream represents a Server-Sent Events (SSE) connection relaying one
// task's status updates.
type Stream struct {
	w       http.ResponseWriter
	flusher http.Flusher
	mu      sync.Mutex
}

// NewStream prepares w for SSE delivery. It fails when the underlying
// writer cannot flush.
func NewStream(w http.ResponseWriter) (*Stream, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("response writer does not support streaming")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // For Nginx proxy
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	return &Stream{
		w:       w,
		flusher: flusher,
	}, nil
}

// SendStatusUpdate writes one streaming response frame.
func (s *Stream) SendStatusUpdate(frame *a2a.SendTaskStreamingResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := sonic.ConfigDefault.Marshal(frame)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if _, err := fmt.Fprintf(s.w, "event: status\ndata: %s\n\n", data); err != nil {
		return err
	}
	s.flusher.Flush()

	return nil
}
