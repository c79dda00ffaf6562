package mcp

import (
	"context"
	"encoding/json"

	mcplib "github.com/mark3labs/mcp-go/mcp"

	"github.com/lion-city/sgagents/internal/agents"
)

func (s *MCPServer) handleListAgents(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	listing := s.svc.Index()
	return textJSON(listing.Agents)
}

func (s *MCPServer) handleSearchHawker(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil || query == "" {
		return textError("missing required parameter: query"), nil
	}
	return textJSON(s.svc.SearchHawker(query))
}

func (s *MCPServer) handlePSIReading(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	location := req.GetString("location", agents.DefaultLocation)
	return textJSON(s.svc.PSIReading(location))
}

func (s *MCPServer) handleSearchAttractions(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	category := req.GetString("category", agents.CategoryAll)
	return textJSON(s.svc.Attractions(category))
}

// textResult returns a successful text result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{
			mcplib.TextContent{Type: "text", Text: text},
		},
	}
}

// textError returns an error text result.
func textError(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{
			mcplib.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}

// textJSON marshals v to indented JSON and returns it as a text result.
func textJSON(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return textError("failed to marshal response: " + err.Error()), nil
	}
	return textResult(string(data)), nil
}
