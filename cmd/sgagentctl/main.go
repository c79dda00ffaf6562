package main

import (
	"os"

	"github.com/lion-city/sgagents/cmd/sgagentctl/cmd"
)

var version = "dev"

func main() {
	cmd.Version = version
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
