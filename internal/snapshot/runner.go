// Package snapshot implements the per-case workflow: read the original,
// mutate it, record the candidate, and compare against the expectation.
package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"smt/internal/config"
	"smt/internal/domain"
	"smt/internal/mutation"
)

// Runner performs the mutate-and-compare workflow for one leaf case.
type Runner struct {
	config    *config.Config
	providers *mutation.Registry
}

// NewRunner creates a new Runner.
func NewRunner(cfg *config.Config, providers *mutation.Registry) *Runner {
	return &Runner{config: cfg, providers: providers}
}

// Run executes one case. Any returned error is that case's failure; it never
// affects sibling cases.
func (r *Runner) Run(ctx context.Context, node *domain.Node) error {
	paths := r.config.CasePaths(node.Dir)

	settings, err := LoadSettings(paths.Settings)
	if err != nil {
		return err
	}
	if settings.Provider == "" {
		settings.Provider = r.config.DefaultProvider
	}

	provider, err := r.providers.Provider(node.Dir, settings)
	if err != nil {
		return err
	}

	original, err := os.ReadFile(paths.Original)
	if err != nil {
		return fmt.Errorf("read original artifact: %w", err)
	}

	candidate, err := provider.Mutate(ctx, original)
	if err != nil {
		return err
	}

	if err := os.WriteFile(paths.Actual, candidate, 0644); err != nil {
		return fmt.Errorf("write actual artifact: %w", err)
	}

	if r.config.Flags.Accept {
		if err := os.WriteFile(paths.Expected, candidate, 0644); err != nil {
			return fmt.Errorf("accept candidate as expected: %w", err)
		}
		return nil
	}

	expected, err := os.ReadFile(paths.Expected)
	if err != nil {
		return fmt.Errorf("read expected artifact (run with --accept to record one): %w", err)
	}

	if !bytes.Equal(candidate, expected) {
		return fmt.Errorf("candidate differs from %s\n%s", paths.Expected, diffExcerpt(expected, candidate))
	}
	return nil
}
