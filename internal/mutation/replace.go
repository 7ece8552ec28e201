package mutation

import (
	"bytes"
	"context"
	"fmt"

	"smt/internal/domain"
)

// ReplaceProvider applies ordered literal find/replace rules to the original.
type ReplaceProvider struct {
	rules []domain.Replacement
}

// NewReplaceProvider builds a ReplaceProvider from case settings.
func NewReplaceProvider(dir string, settings *domain.CaseSettings) (Provider, error) {
	for i, rule := range settings.Replacements {
		if rule.Find == "" {
			return nil, fmt.Errorf("replacement %d has an empty find string", i)
		}
	}
	return &ReplaceProvider{rules: settings.Replacements}, nil
}

// Mutate applies the rules in order.
func (p *ReplaceProvider) Mutate(ctx context.Context, original []byte) ([]byte, error) {
	out := original
	for _, rule := range p.rules {
		out = bytes.ReplaceAll(out, []byte(rule.Find), []byte(rule.Replace))
	}
	return out, nil
}
