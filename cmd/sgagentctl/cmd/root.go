package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lion-city/sgagents/pkg/sockpath"
)

var (
	socketPath string

	// Version is set by the main package via ldflags.
	Version = "dev"
)

// NewRootCmd creates the root sgagentctl command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "sgagentctl",
		Short:   "Control the sgagentd daemon",
		Version: Version,
	}

	rootCmd.PersistentFlags().StringVar(&socketPath, "socket",
		sockpath.DefaultSocketPath(), "sgagentd Unix socket path")

	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newAgentsCmd())

	return rootCmd
}
