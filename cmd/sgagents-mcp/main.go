package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lion-city/sgagents/internal/agents"
	mcpserver "github.com/lion-city/sgagents/internal/mcp"
	"github.com/lion-city/sgagents/internal/trust"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "sgagents-mcp",
		Short: "Expose the Singapore demo agents to AI assistants over MCP",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zerolog.New(
				zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339},
			).With().Timestamp().Logger()

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			svc := agents.New(trust.New(logger))
			return mcpserver.New(svc, logger).Run(ctx)
		},
	}

	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
