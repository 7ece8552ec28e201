package mutation

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"smt/internal/domain"
)

// CommandProvider runs an external command: the original artifact is piped
// to stdin and the candidate output is read from stdout.
type CommandProvider struct {
	dir  string
	argv []string
	env  map[string]string
}

// NewCommandProvider builds a CommandProvider from case settings.
func NewCommandProvider(dir string, settings *domain.CaseSettings) (Provider, error) {
	if len(settings.Command) == 0 {
		return nil, fmt.Errorf("command provider requires a non-empty command")
	}
	return &CommandProvider{dir: dir, argv: settings.Command, env: settings.Env}, nil
}

// Mutate executes the configured command in the case directory.
func (p *CommandProvider) Mutate(ctx context.Context, original []byte) ([]byte, error) {
	cmd := exec.CommandContext(ctx, p.argv[0], p.argv[1:]...)
	cmd.Dir = p.dir

	// Start with the current environment, then case-level overrides.
	cmd.Env = os.Environ()
	for key, value := range p.env {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", key, value))
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdin = bytes.NewReader(original)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("mutation command failed: %w: %s", err, msg)
		}
		return nil, fmt.Errorf("mutation command failed: %w", err)
	}
	return stdout.Bytes(), nil
}
