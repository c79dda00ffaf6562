package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/lion-city/sgagents/internal/agents"
	"github.com/lion-city/sgagents/internal/api"
	"github.com/lion-city/sgagents/internal/trust"
	"github.com/lion-city/sgagents/internal/web"
)

// Daemon is the sgagentd process.
type Daemon struct {
	cfg       Config
	logger    zerolog.Logger
	trust     *trust.Registry
	apiServer *api.Server
	webServer *web.Server
	startedAt time.Time
	stopCh    chan struct{}
}

// NewDaemon creates a Daemon from config.
func NewDaemon(cfg Config, logger zerolog.Logger) *Daemon {
	return &Daemon{
		cfg:    cfg,
		logger: logger,
		stopCh: make(chan struct{}),
	}
}

// Run starts all subsystems and blocks until a signal is received or
// Stop is called.
func (d *Daemon) Run() error {
	d.startedAt = time.Now()

	// 1. Build the trust registry and agent services.
	d.trust = trust.New(d.logger)
	svc := agents.New(d.trust)

	// 2. Start the control API on the Unix socket.
	if err := os.MkdirAll(filepath.Dir(d.cfg.Server.Socket), 0700); err != nil {
		return fmt.Errorf("create socket dir: %w", err)
	}
	d.apiServer = api.New(d.cfg.Server.Socket, d.trust, d.startedAt, d.logger)
	apiErrCh := make(chan error, 1)
	go func() {
		apiErrCh <- d.apiServer.Start()
	}()

	// 3. Start the public web server.
	d.webServer = web.New(web.Config{Listen: d.cfg.Server.Listen}, svc, d.logger)
	webErrCh := make(chan error, 1)
	go func() {
		webErrCh <- d.webServer.Start()
	}()

	d.logger.Info().
		Str("listen", d.cfg.Server.Listen).
		Str("socket", d.cfg.Server.Socket).
		Msg("sgagentd started")

	// 4. Wait for signal, stop call, or subsystem error.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		d.logger.Info().Str("signal", sig.String()).Msg("shutting down")
	case <-d.stopCh:
		d.logger.Info().Msg("stop requested, shutting down")
	case err := <-apiErrCh:
		if err != nil {
			d.logger.Error().Err(err).Msg("control API error")
		}
	case err := <-webErrCh:
		if err != nil {
			d.logger.Error().Err(err).Msg("web server error")
		}
	}

	return d.shutdown()
}

// Stop signals the daemon to shut down. Safe to call from another goroutine.
func (d *Daemon) Stop() {
	close(d.stopCh)
}

func (d *Daemon) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if d.webServer != nil {
		d.webServer.Shutdown(ctx)
	}
	if d.apiServer != nil {
		d.apiServer.Shutdown(ctx)
	}
	return nil
}
