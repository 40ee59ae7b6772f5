// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package server exposes an agent over HTTP: the agent card at its
// well-known path and JSON-RPC task methods, with SSE for streaming.
package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"

	a2a "github.com/go-a2a/a2a-demo"
)

// Server serves one agent's card and task endpoints.
type Server struct {
	taskManager TaskManager
	mux         *http.ServeMux
	agentCard   *a2a.AgentCard
	logger      *slog.Logger
}

// Config holds configuration for the agent server.
type Config struct {
	// AgentCard represents metadata about the agent.
	AgentCard *a2a.AgentCard
	// TaskManager is the task processing implementation.
	TaskManager TaskManager
	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// NewServer creates a new agent server with the provided configuration.
func NewServer(cfg Config) (*Server, error) {
	if cfg.AgentCard == nil {
		return nil, fmt.Errorf("agent card is required")
	}
	if err := cfg.AgentCard.Validate(); err != nil {
		return nil, fmt.Errorf("invalid agent card: %w", err)
	}
	if cfg.TaskManager == nil {
		return nil, fmt.Errorf("task manager is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	s := &Server{
		taskManager: cfg.TaskManager,
		mux:         http.NewServeMux(),
		agentCard:   cfg.AgentCard,
		logger:      cfg.Logger,
	}
	s.registerHandlers()

	return s, nil
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// registerHandlers sets up all the HTTP routes for the agent server.
func (s *Server) registerHandlers() {
	// Agent card endpoint
	s.mux.HandleFunc("GET "+a2a.AgentCardWellKnownPath, s.handleAgentCard)

	// JSON-RPC endpoints. Some clients post to the root, others to the
	// method-named path; both carry the same envelope.
	s.mux.HandleFunc("POST /", s.handleRPCRequest)
	s.mux.HandleFunc("POST /tasks/send", s.handleRPCRequest)
}

// handleAgentCard serves the agent card.
func (s *Server) handleAgentCard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := sonic.ConfigDefault.NewEncoder(w).Encode(s.agentCard); err != nil {
		http.Error(w, "Failed to encode agent card", http.StatusInternalServerError)
	}
}

// handleRPCRequest handles all JSON-RPC requests.
func (s *Server) handleRPCRequest(w http.ResponseWriter, r *http.Request) {
	var req a2a.JSONRPCRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, nil, &a2a.JSONRPCError{Code: a2a.ErrorCodeJSONParse, Message: "failed to parse request"})
		return
	}
	defer r.Body.Close()

	switch req.Method {
	case a2a.MethodTasksSend:
		s.handleTasksSend(w, r, req)
	case a2a.MethodTasksGet:
		s.handleTasksGet(w, r, req)
	case a2a.MethodTasksSendSubscribe:
		s.handleTasksSendSubscribe(w, r, req)
	default:
		s.sendError(w, req.ID, a2a.AsJSONRPCError(a2a.MethodNotFoundError{Method: req.Method}))
	}
}

// handleTasksSend runs the synchronous exchange and replies with the
// completed task.
func (s *Server) handleTasksSend(w http.ResponseWriter, r *http.Request, req a2a.JSONRPCRequest) {
	var params a2a.TaskSendParams
	if err := sonic.Unmarshal(req.Params, &params); err != nil {
		s.sendError(w, req.ID, a2a.AsJSONRPCError(a2a.InvalidParamsError{Msg: err.Error()}))
		return
	}

	task, err := s.taskManager.OnSendTask(r.Context(), params)
	if err != nil {
		s.logger.WarnContext(r.Context(), "tasks/send failed", "task_id", params.ID, "error", err)
		s.sendError(w, req.ID, a2a.AsJSONRPCError(err))
		return
	}

	s.sendResponse(w, &a2a.SendTaskResponse{
		JSONRPCMessage: a2a.NewJSONRPCMessage(req.ID),
		Result:         task,
	})
}

// handleTasksGet replies with a snapshot of the requested task.
func (s *Server) handleTasksGet(w http.ResponseWriter, r *http.Request, req a2a.JSONRPCRequest) {
	var params a2a.TaskQueryParams
	if err := sonic.Unmarshal(req.Params, &params); err != nil {
		s.sendError(w, req.ID, a2a.AsJSONRPCError(a2a.InvalidParamsError{Msg: err.Error()}))
		return
	}

	task, err := s.taskManager.OnGetTask(r.Context(), params.ID)
	if err != nil {
		s.sendError(w, req.ID, a2a.AsJSONRPCError(err))
		return
	}

	s.sendResponse(w, &a2a.SendTaskResponse{
		JSONRPCMessage: a2a.NewJSONRPCMessage(req.ID),
		Result:         task,
	})
}

// handleTasksSendSubscribe starts the streaming exchange and relays its
// events over SSE until the final one.
func (s *Server) handleTasksSendSubscribe(w http.ResponseWriter, r *http.Request, req a2a.JSONRPCRequest) {
	var params a2a.TaskSendParams
	if err := sonic.Unmarshal(req.Params, &params); err != nil {
		s.sendError(w, req.ID, a2a.AsJSONRPCError(a2a.InvalidParamsError{Msg: err.Error()}))
		return
	}

	consumer, err := s.taskManager.OnSendTaskSubscribe(r.Context(), params)
	if err != nil {
		s.logger.WarnContext(r.Context(), "tasks/sendSubscribe failed", "task_id", params.ID, "error", err)
		s.sendError(w, req.ID, a2a.AsJSONRPCError(err))
		return
	}

	stream, err := NewStream(w)
	if err != nil {
		s.sendError(w, req.ID, a2a.AsJSONRPCError(a2a.InternalError{Msg: err.Error()}))
		return
	}

	// Abandoning the stream before its final event would otherwise leave
	// the task permanently subscribed.
	defer consumer.Close()

	for {
		ev, err := consumer.Next(r.Context())
		if err != nil {
			s.logger.WarnContext(r.Context(), "event stream ended early", "task_id", params.ID, "error", err)
			return
		}
		if err := stream.SendStatusUpdate(&a2a.SendTaskStreamingResponse{
			JSONRPCMessage: a2a.NewJSONRPCMessage(req.ID),
			Result:         ev,
		}); err != nil {
			s.logger.WarnContext(r.Context(), "SSE write failed", "task_id", params.ID, "error", err)
			return
		}
		if ev.Final {
			return
		}
	}
}

// sendResponse sends a JSON-RPC response.
func (s *Server) sendResponse(w http.ResponseWriter, resp any) {
	w.Header().Set("Content-Type", "application/json")
	if err := sonic.ConfigDefault.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// sendError sends a JSON-RPC error response. id is the request id being
// answered, or nil when the request could not be parsed.
func (s *Server) sendError(w http.ResponseWriter, id any, rpcErr *a2a.JSONRPCError) {
	s.sendResponse(w, &a2a.JSONRPCResponse{
		JSONRPCMessage: a2a.NewJSONRPCMessage(id),
		Error:          rpcErr,
	})
}
