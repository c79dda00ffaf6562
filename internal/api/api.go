// Package api serves the sgagentd control API over a Unix socket.
// It is a local ops surface read by sgagentctl; the public agent
// endpoints live in internal/web.
package api

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/lion-city/sgagents/internal/agents"
	"github.com/lion-city/sgagents/internal/trust"
	"github.com/lion-city/sgagents/pkg/protocol"
)

// Server serves the control API.
type Server struct {
	socketPath string
	trust      *trust.Registry
	startedAt  time.Time
	httpServer *http.Server
	logger     zerolog.Logger
}

// New creates a control API server over the given trust registry.
func New(socketPath string, reg *trust.Registry, startedAt time.Time, logger zerolog.Logger) *Server {
	s := &Server{
		socketPath: socketPath,
		trust:      reg,
		startedAt:  startedAt,
		logger:     logger.With().Str("component", "api").Logger(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/status", s.handleStatus)
	mux.HandleFunc("GET /api/v1/agents", s.handleAgents)

	s.httpServer = &http.Server{Handler: mux}
	return s
}

// Start begins listening on the Unix socket. Blocks until Shutdown.
func (s *Server) Start() error {
	os.Remove(s.socketPath)

	ln, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return err
	}
	os.Chmod(s.socketPath, 0600)

	s.logger.Info().Str("socket", s.socketPath).Msg("control API listening")
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully stops the API server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := protocol.StatusResponse{
		Status:     "ok",
		Version:    agents.Version,
		Uptime:     time.Since(s.startedAt).Truncate(time.Second).String(),
		StartedAt:  s.startedAt,
		AgentCount: s.trust.Count(),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleAgents(w http.ResponseWriter, r *http.Request) {
	listing := make(map[string]protocol.AgentInfo, s.trust.Count())
	for id, rec := range s.trust.All() {
		listing[id] = agents.ToAgentInfo(rec)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(protocol.AgentsResponse{Agents: listing})
}
