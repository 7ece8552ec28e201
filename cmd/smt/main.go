package main

import (
	"fmt"
	"os"

	"smt/internal/cli"
	"smt/internal/cli/commands"
	"smt/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "smt",
		Short:   "Snapshot mutation test harness",
		Long:    `A harness for snapshot-style mutation tests. Discovers case directories in a nested hierarchy, feeds each original artifact through a mutation provider and compares the output against the recorded expectation.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
