// Package mcp exposes the Singapore demo agents to AI assistants via
// the Model Context Protocol. Tools call the agent services in-process;
// no daemon connection is required.
package mcp

import (
	"context"
	"log"
	"os"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/lion-city/sgagents/internal/agents"
)

// MCPServer serves the agent tools on stdio.
type MCPServer struct {
	svc    *agents.Service
	logger zerolog.Logger
}

// New creates an MCPServer. Call Run() to start serving on stdio.
func New(svc *agents.Service, logger zerolog.Logger) *MCPServer {
	return &MCPServer{
		svc:    svc,
		logger: logger.With().Str("component", "mcp").Logger(),
	}
}

// Run registers the MCP tools and serves on stdio. It blocks until
// stdin is closed or the context is cancelled.
func (s *MCPServer) Run(ctx context.Context) error {
	srv := mcpserver.NewMCPServer(
		"sgagents",
		agents.Version,
		mcpserver.WithRecovery(),
	)

	s.registerTools(srv)

	stdio := mcpserver.NewStdioServer(srv)
	stdio.SetErrorLogger(log.New(os.Stderr, "", log.LstdFlags))

	s.logger.Info().Msg("MCP server starting on stdio")
	return stdio.Listen(ctx, os.Stdin, os.Stdout)
}

func (s *MCPServer) registerTools(srv *mcpserver.MCPServer) {
	srv.AddTool(
		mcplib.NewTool("list_agents",
			mcplib.WithDescription("List the registered Singapore demo agents with their trust levels and capabilities"),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		s.handleListAgents,
	)

	srv.AddTool(
		mcplib.NewTool("search_hawker_centres",
			mcplib.WithDescription("Search Singapore hawker centres by food query"),
			mcplib.WithString("query", mcplib.Required(), mcplib.Description("Food or stall to look for (e.g. \"chicken rice\")")),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		s.handleSearchHawker,
	)

	srv.AddTool(
		mcplib.NewTool("get_psi_reading",
			mcplib.WithDescription("Get the current Pollutant Standards Index readings for Singapore"),
			mcplib.WithString("location", mcplib.Description("Region to report (north, south, east, west, central, national). Defaults to national")),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		s.handlePSIReading,
	)

	srv.AddTool(
		mcplib.NewTool("search_attractions",
			mcplib.WithDescription("List Singapore tourist attractions, optionally filtered by category (landmarks, nature, culture)"),
			mcplib.WithString("category", mcplib.Description("Attraction category. Defaults to all")),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		s.handleSearchAttractions,
	)
}
