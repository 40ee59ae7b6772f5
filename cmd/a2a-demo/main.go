// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Command a2a-demo runs the demo agents: an echo agent that delegates
// math questions and a specialist math agent. By default both run in one
// process; the echo and math subcommands run a single agent.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	a2a "github.com/go-a2a/a2a-demo"
	"github.com/go-a2a/a2a-demo/client"
	"github.com/go-a2a/a2a-demo/echo"
	"github.com/go-a2a/a2a-demo/llm"
	"github.com/go-a2a/a2a-demo/mathagent"
	"github.com/go-a2a/a2a-demo/server"
	"github.com/go-a2a/a2a-demo/solver"
)

var (
	echoHost     string
	echoPort     int
	mathHost     string
	mathPort     int
	mathAgentURL string
	ollamaHost   string
	ollamaModel  string
	notStartMath bool
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "a2a-demo",
		Short: "Run the Echo and Math agents simultaneously",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoth(cmd.Context(), logger)
		},
	}
	rootCmd.PersistentFlags().StringVar(&echoHost, "echo-host", "localhost", "echo agent listen host")
	rootCmd.PersistentFlags().IntVar(&echoPort, "echo-port", 10002, "echo agent listen port")
	rootCmd.PersistentFlags().StringVar(&mathHost, "math-host", "localhost", "math agent listen host")
	rootCmd.PersistentFlags().IntVar(&mathPort, "math-port", 10003, "math agent listen port")
	rootCmd.PersistentFlags().StringVar(&ollamaHost, "ollama-host", llm.DefaultOllamaHost, "Ollama server URL")
	rootCmd.PersistentFlags().StringVar(&ollamaModel, "ollama-model", llm.DefaultOllamaModel, "Ollama model; empty disables model calls")
	rootCmd.Flags().BoolVar(&notStartMath, "not-start-math", false, "whether not to start the Math Agent")

	echoCmd := &cobra.Command{
		Use:   "echo",
		Short: "Run the Echo Agent that can delegate math questions to the Math Agent",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEcho(cmd.Context(), logger, mathAgentURL)
		},
	}
	echoCmd.Flags().StringVar(&mathAgentURL, "math-agent-url", "", "base URL of the Math Agent; empty disables delegation")

	mathCmd := &cobra.Command{
		Use:   "math",
		Short: "Run the Math Agent",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMath(cmd.Context(), logger)
		},
	}

	rootCmd.AddCommand(echoCmd, mathCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runBoth starts the math agent in the background, gives it a moment to
// come up, and then runs the echo agent pointed at it.
func runBoth(ctx context.Context, logger *slog.Logger) error {
	mathURL := ""
	if !notStartMath {
		go func() {
			if err := runMath(ctx, logger); err != nil {
				logger.Error("Math Agent failed", "error", err)
				logger.Error("Math Agent will not be available")
			}
		}()

		// Give the Math Agent a moment to start up before the echo
		// agent probes it.
		select {
		case <-time.After(2 * time.Second):
		case <-ctx.Done():
			return ctx.Err()
		}

		mathURL = fmt.Sprintf("http://%s:%d", mathHost, mathPort)
	}

	return runEcho(ctx, logger, mathURL)
}

func runEcho(ctx context.Context, logger *slog.Logger, mathURL string) error {
	delegate := client.NewDelegateClient(client.DelegateConfig{BaseURL: mathURL}, logger)
	if err := delegate.Discover(ctx); err != nil {
		logger.Warn("math delegation is disabled", "error", err)
	} else {
		logger.Info("math delegation is enabled", "url", mathURL)
	}

	opts := []echo.Option{echo.WithLogger(logger)}
	if ollamaModel != "" {
		opts = append(opts, echo.WithRunner(llm.NewOllamaClient(ollamaHost, ollamaModel)))
	}
	tm := echo.NewTaskManager(solver.NewResolver(delegate, logger), opts...)

	srv, err := server.NewServer(server.Config{
		AgentCard:   echoAgentCard(echoHost, echoPort),
		TaskManager: tm,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	return serve(ctx, logger, fmt.Sprintf("%s:%d", echoHost, echoPort), srv, "Echo Agent")
}

func runMath(ctx context.Context, logger *slog.Logger) error {
	srv, err := server.NewServer(server.Config{
		AgentCard:   mathAgentCard(mathHost, mathPort),
		TaskManager: mathagent.NewTaskManager(logger),
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	return serve(ctx, logger, fmt.Sprintf("%s:%d", mathHost, mathPort), srv, "Math Agent")
}

// serve runs an HTTP server until the context is canceled, then shuts it
// down gracefully.
func serve(ctx context.Context, logger *slog.Logger, addr string, handler http.Handler, name string) error {
	hs := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("starting agent", "agent", name, "addr", addr)
		errc <- hs.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down agent", "agent", name)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return hs.Shutdown(shutdownCtx)
	}
}

func echoAgentCard(host string, port int) *a2a.AgentCard {
	return &a2a.AgentCard{
		Name:        "Echo Agent",
		Description: "An agent that echoes your input and delegates math questions",
		URL:         fmt.Sprintf("http://%s:%d/", host, port),
		Version:     "0.1.0",
		Capabilities: a2a.AgentCapabilities{
			Streaming: true,
		},
		DefaultInputModes:  []string{"text"},
		DefaultOutputModes: []string{"text"},
		Skills: []a2a.AgentSkill{
			{
				ID:          "my-project-echo-skill",
				Name:        "Echo Tool",
				Description: "Echos the input given, and delegates math questions to a Math Agent",
				Tags:        []string{"echo", "repeater", "delegation"},
				Examples:    []string{"I will see this echoed back to me", "What is 25 * 13?"},
				InputModes:  []string{"text"},
				OutputModes: []string{"text"},
			},
		},
	}
}

func mathAgentCard(host string, port int) *a2a.AgentCard {
	return &a2a.AgentCard{
		Name:        "Math Agent",
		Description: "An agent that performs mathematical calculations",
		URL:         fmt.Sprintf("http://%s:%d/", host, port),
		Version:     "0.1.0",
		Capabilities: a2a.AgentCapabilities{
			Streaming: false,
		},
		DefaultInputModes:  []string{"text"},
		DefaultOutputModes: []string{"text"},
		Skills: []a2a.AgentSkill{
			{
				ID:          "math-calculation-skill",
				Name:        "Math Calculator",
				Description: "Performs mathematical calculations",
				Tags:        []string{"math", "calculator", "arithmetic"},
				Examples:    []string{"What is 25 * 13?", "Calculate the square root of 144"},
				InputModes:  []string{"text"},
				OutputModes: []string{"text"},
			},
		},
	}
}
