// Package mutation provides the pluggable providers that transform an
// original artifact into a candidate output.
package mutation

import (
	"context"
	"fmt"

	"smt/internal/domain"
)

// Provider transforms an original artifact into a candidate output.
type Provider interface {
	Mutate(ctx context.Context, original []byte) ([]byte, error)
}

// Factory builds a provider for one case from its settings. dir is the case
// directory, the working directory for providers that shell out.
type Factory func(dir string, settings *domain.CaseSettings) (Provider, error)

// Registry maps provider names to factories. The built-in providers are
// registered up front; external ones register by name.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates a Registry with the built-in providers.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.Register("identity", func(dir string, settings *domain.CaseSettings) (Provider, error) {
		return identityProvider{}, nil
	})
	r.Register("replace", NewReplaceProvider)
	r.Register("command", NewCommandProvider)
	return r
}

// Register adds a factory under the given name, replacing any previous one.
func (r *Registry) Register(name string, factory Factory) {
	r.factories[name] = factory
}

// Provider builds the provider selected by the case settings. An empty
// provider name selects identity.
func (r *Registry) Provider(dir string, settings *domain.CaseSettings) (Provider, error) {
	name := settings.Provider
	if name == "" {
		name = "identity"
	}
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown mutation provider: %s", name)
	}
	return factory(dir, settings)
}

// identityProvider returns the original unchanged. Useful for pure
// snapshot cases and for harness tests.
type identityProvider struct{}

func (identityProvider) Mutate(ctx context.Context, original []byte) ([]byte, error) {
	out := make([]byte, len(original))
	copy(out, original)
	return out, nil
}
