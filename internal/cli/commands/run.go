package commands

import (
	"fmt"

	"smt/internal/config"
	"smt/internal/describe"
	"smt/internal/discovery"
	"smt/internal/domain"
	"smt/internal/report"
	"smt/internal/snapshot"
	"smt/internal/storage"
	"smt/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	crawler   *discovery.Crawler
	runner    *snapshot.Runner
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    ui.Viewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	crawler *discovery.Crawler,
	runner *snapshot.Runner,
	st storage.Storage,
	formatter *ui.Formatter,
	viewer ui.Viewer,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		crawler:   crawler,
		runner:    runner,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	// An invalid include pattern is a misconfiguration: fail before any
	// crawling or registration.
	filter, err := discovery.CompileFilter(rc.config.Flags.Includes)
	if err != nil {
		return err
	}

	// Discover cases
	root, err := rc.crawler.Crawl(rc.config.RootLabel, rc.config.GetCasesPath())
	if err != nil {
		return err
	}

	// Register suites and cases
	registry := report.NewRegistry()
	describe.Describe(root, filter, rc.runner.Run, registry)

	cases := registry.Cases()
	if len(cases) == 0 {
		color.Yellow("No cases found")
		return nil
	}

	// Execute registered cases
	scheduler := report.NewScheduler(rc.config.Workers)
	if runnable := registry.Runnable(); runnable > 0 {
		scheduler.SetProgress(ui.NewProgressBar(runnable))
	}
	results, duration := scheduler.ExecuteWithOptions(cmd.Context(), cases, rc.config.Flags.FailFast)

	// Save results
	if err := rc.storage.Save(results, duration, rc.config.Workers, rc.config.Flags.Includes, rc.config.Flags.Accept); err != nil {
		return fmt.Errorf("failed to save run results: %w", err)
	}

	// Print stats
	if err := rc.formatter.PrintRunStats(); err != nil {
		return err
	}

	failed := 0
	for _, result := range results {
		if result.Status == domain.StatusFailed {
			failed++
		}
	}
	if failed == 0 {
		return nil
	}

	if rc.config.Flags.OpenFailures {
		output, err := rc.storage.Load()
		if err != nil {
			return err
		}
		if err := rc.viewer.View(output); err != nil {
			return err
		}
	}
	return fmt.Errorf("%d case(s) failed", failed)
}
