package commands

import (
	"smt/internal/config"
	"smt/internal/discovery"
	"smt/internal/ui"

	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	crawler   *discovery.Crawler
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, crawler *discovery.Crawler, formatter *ui.Formatter) *ListCommand {
	return &ListCommand{
		config:    cfg,
		crawler:   crawler,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	filter, err := discovery.CompileFilter(lc.config.Flags.Includes)
	if err != nil {
		return err
	}

	root, err := lc.crawler.Crawl(lc.config.RootLabel, lc.config.GetCasesPath())
	if err != nil {
		return err
	}

	return lc.formatter.PrintCaseTree(root, filter)
}
