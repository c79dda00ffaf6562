// Package sockpath provides the default Unix socket path for the
// sgagentd daemon. All binaries (sgagentd, sgagentctl) use this to
// agree on the default.
package sockpath

import (
	"os"
	"path/filepath"
)

// DefaultSocketPath returns the default path for the sgagentd Unix socket.
// It prefers $XDG_RUNTIME_DIR/sgagents/sgagentd.sock (tmpfs-backed on
// Linux), falling back to ~/.config/sgagents/sgagentd.sock.
func DefaultSocketPath() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, "sgagents", "sgagentd.sock")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "sgagents", "sgagentd.sock")
}
