// Package web serves the public HTTP API of the Singapore multi-agent
// demo: the three agent endpoints, the index listing, and the embedded
// demo console.
package web

import (
	"context"
	"embed"
	"net"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/lion-city/sgagents/internal/agents"
)

//go:embed static
var content embed.FS

// Config holds public HTTP server settings passed to New.
type Config struct {
	Listen string
}

// Server serves the agent endpoints on a TCP port.
type Server struct {
	listen     string
	svc        *agents.Service
	httpServer *http.Server
	logger     zerolog.Logger
}

// New creates a public API server backed by the given agent service.
func New(cfg Config, svc *agents.Service, logger zerolog.Logger) *Server {
	s := &Server{
		listen: cfg.Listen,
		svc:    svc,
		logger: logger.With().Str("component", "web").Logger(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /demo", s.handleDemo)

	// Agent endpoints accept GET and POST; parameters may arrive in the
	// query string or a JSON body.
	for pattern, handler := range map[string]http.HandlerFunc{
		"/api/hawker":  s.handleHawker,
		"/api/psi":     s.handlePSI,
		"/api/merlion": s.handleMerlion,
	} {
		mux.HandleFunc("GET "+pattern, handler)
		mux.HandleFunc("POST "+pattern, handler)
	}

	s.httpServer = &http.Server{Handler: s.middleware(mux)}
	return s
}

// Start begins listening on TCP. Blocks until Shutdown or error.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.listen)
	if err != nil {
		return err
	}
	s.logger.Info().Str("listen", s.listen).Msg("public API listening")
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
