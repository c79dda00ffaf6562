package server_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lion-city/sgagents/internal/server"
	"github.com/lion-city/sgagents/pkg/protocol"
)

func TestEndToEnd(t *testing.T) {
	tmpDir := t.TempDir()
	socketPath := filepath.Join(tmpDir, "sgagentd.sock")

	cfg := server.Config{
		Server: server.ServerConfig{
			Listen: "127.0.0.1:0",
			Socket: socketPath,
		},
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	d := server.NewDaemon(cfg, logger)

	// Run daemon in background.
	errCh := make(chan error, 1)
	go func() { errCh <- d.Run() }()

	// Wait for socket to appear.
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(socketPath); err == nil {
			break
		}
		time.Sleep(100 * time.Millisecond)
	}
	if _, err := os.Stat(socketPath); err != nil {
		t.Fatal("socket did not appear in time")
	}

	client := &http.Client{
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
				return (&net.Dialer{}).DialContext(ctx, "unix", socketPath)
			},
		},
	}

	// Check status.
	resp, err := client.Get("http://sgagentd/api/v1/status")
	if err != nil {
		t.Fatalf("status request: %v", err)
	}
	var status protocol.StatusResponse
	json.NewDecoder(resp.Body).Decode(&status)
	resp.Body.Close()

	if status.Status != "ok" {
		t.Fatalf("expected status ok, got %s", status.Status)
	}
	if status.AgentCount != 3 {
		t.Fatalf("expected 3 agents, got %d", status.AgentCount)
	}

	// Check agents listing.
	resp, err = client.Get("http://sgagentd/api/v1/agents")
	if err != nil {
		t.Fatalf("agents request: %v", err)
	}
	var agents protocol.AgentsResponse
	json.NewDecoder(resp.Body).Decode(&agents)
	resp.Body.Close()

	if len(agents.Agents) != 3 {
		t.Fatalf("expected 3 agents, got %d", len(agents.Agents))
	}
	hawker, ok := agents.Agents["hawker"]
	if !ok {
		t.Fatal("hawker agent missing from listing")
	}
	if hawker.TrustLevel != "high" {
		t.Fatalf("expected trust level high, got %s", hawker.TrustLevel)
	}

	// Stop daemon.
	d.Stop()

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("daemon error: %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("daemon did not shut down in time")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	// Point config search away from any real config file.
	t.Chdir(t.TempDir())

	cfg, err := server.LoadConfig("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Server.Listen != "127.0.0.1:8080" {
		t.Errorf("listen = %q, want 127.0.0.1:8080", cfg.Server.Listen)
	}
	if cfg.Server.Socket == "" {
		t.Error("expected a default socket path")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Log.Level)
	}
}
