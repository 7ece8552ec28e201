package commands

import (
	"smt/internal/cli"
	"smt/internal/config"
	"smt/internal/discovery"
	"smt/internal/mutation"
	"smt/internal/snapshot"
	"smt/internal/storage"
	"smt/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	crawler := discovery.NewCrawler(cfg.CaseFiles.Names())
	providers := mutation.NewRegistry()
	runner := snapshot.NewRunner(cfg, providers)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	failureViewer := ui.NewFailureViewer(jsonStorage)

	return &Commands{
		Run:      NewRunCommand(cfg, crawler, runner, jsonStorage, formatter, failureViewer),
		List:     NewListCommand(cfg, crawler, formatter),
		Failures: NewFailuresCommand(cfg, jsonStorage, failureViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run snapshot mutation cases",
		Long:  "Discover case directories, mutate each original artifact and compare the result against the recorded expectation",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing. pflag writes the flag
			// default into the bound variable at registration, so only an
			// explicitly set flag may override the env/default worker count.
			cfg.Flags = flags.ToConfigFlags()
			if cmd.Flags().Changed("workers") && flags.Workers > 0 {
				cfg.Workers = flags.Workers
			}
			return nil
		},
	}
	runCmd.Flags().IntVarP(&flags.Workers, "workers", "w", 4, "Number of workers to use")
	runCmd.Flags().StringVarP(&flags.CasesPath, "cases-path", "t", "", "Path to the directory where case discovery should start")
	runCmd.Flags().StringArrayVarP(&flags.Includes, "include", "i", nil, "Run only cases whose qualified name matches the regular expression (repeatable, OR semantics)")
	runCmd.Flags().BoolVar(&flags.Accept, "accept", false, "Accept each candidate output as the new expectation")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on first case failure")
	runCmd.Flags().BoolVar(&flags.OpenFailures, "open-failures", false, "Open the failures viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	// Accept command, the run command with --accept forced on
	acceptCmd := &cobra.Command{
		Use:   "accept",
		Short: "Rewrite expectations from current mutation output",
		Long:  "Run all (or filtered) cases and record each candidate output as the new expected artifact",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			flags.Accept = true
			cfg.Flags = flags.ToConfigFlags()
			if cmd.Flags().Changed("workers") && flags.Workers > 0 {
				cfg.Workers = flags.Workers
			}
			return nil
		},
	}
	acceptCmd.Flags().IntVarP(&flags.Workers, "workers", "w", 4, "Number of workers to use")
	acceptCmd.Flags().StringVarP(&flags.CasesPath, "cases-path", "t", "", "Path to the directory where case discovery should start")
	acceptCmd.Flags().StringArrayVarP(&flags.Includes, "include", "i", nil, "Accept only cases whose qualified name matches the regular expression (repeatable)")
	rootCmd.AddCommand(acceptCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered cases",
		Long:  "Crawl and list the suite/case hierarchy without executing anything",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.CasesPath, "cases-path", "t", "", "Path to the directory where case discovery should start")
	listCmd.Flags().StringArrayVarP(&flags.Includes, "include", "i", nil, "Mark cases not matching the regular expression as skipped (repeatable)")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View case failures interactively",
		Long:  "Display case failures from the last run in an interactive viewer",
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)
}
