package discovery

import (
	"fmt"
	"regexp"
)

// Filter decides whether a case should run, by qualified name. Qualified
// names are node labels from the root joined with "/", so include patterns
// written as path fragments match naturally.
type Filter struct {
	includes []string
	patterns []*regexp.Regexp
}

// CompileFilter compiles the include patterns. An invalid pattern is a
// misconfiguration, so compilation fails the whole run up front rather than
// surfacing per case.
func CompileFilter(includes []string) (*Filter, error) {
	f := &Filter{includes: includes}
	for _, p := range includes {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid include pattern %q: %w", p, err)
		}
		f.patterns = append(f.patterns, re)
	}
	return f, nil
}

// Include reports whether the named case is admitted. An empty pattern set
// admits everything; otherwise one matching pattern is enough.
func (f *Filter) Include(qualifiedName string) bool {
	if f == nil || len(f.patterns) == 0 {
		return true
	}
	for _, re := range f.patterns {
		if re.MatchString(qualifiedName) {
			return true
		}
	}
	return false
}

// Empty reports whether the filter has no patterns.
func (f *Filter) Empty() bool {
	return f == nil || len(f.patterns) == 0
}

// Patterns returns the original pattern strings, for logging.
func (f *Filter) Patterns() []string {
	if f == nil {
		return nil
	}
	return f.includes
}
