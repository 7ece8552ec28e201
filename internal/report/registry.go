// Package report is the reporting side of the harness: it collects the
// registered suite/case tree and schedules execution of registered bodies.
package report

import (
	"context"

	"smt/internal/domain"
)

// Suite is a registered namespace in the report tree. Suites appear in the
// tree even when every descendant case was filtered out.
type Suite struct {
	Label  string
	Suites []*Suite
	Cases  []*Case
}

// Case is a registered leaf test.
type Case struct {
	Label         string
	QualifiedName string
	Dir           string
	Skipped       bool

	body func(ctx context.Context) error
}

// Registry collects suite and case registrations in order. It implements
// describe.Reporter.
type Registry struct {
	root  *Suite
	stack []*Suite
	cases []*Case
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// BeginSuite opens a suite scope. The first suite becomes the tree root.
func (r *Registry) BeginSuite(label string) {
	s := &Suite{Label: label}
	if len(r.stack) == 0 && r.root == nil {
		r.root = s
	} else {
		parent := r.current()
		parent.Suites = append(parent.Suites, s)
	}
	r.stack = append(r.stack, s)
}

// EndSuite closes the innermost suite scope.
func (r *Registry) EndSuite() {
	if len(r.stack) > 0 {
		r.stack = r.stack[:len(r.stack)-1]
	}
}

// Case registers a runnable test in the current suite scope.
func (r *Registry) Case(node *domain.Node, qualifiedName string, body func(ctx context.Context) error) {
	r.add(&Case{Label: node.Label, QualifiedName: qualifiedName, Dir: node.Dir, body: body})
}

// SkippedCase registers a filtered-out test so it stays visible in the report.
func (r *Registry) SkippedCase(node *domain.Node, qualifiedName string) {
	r.add(&Case{Label: node.Label, QualifiedName: qualifiedName, Dir: node.Dir, Skipped: true})
}

func (r *Registry) add(c *Case) {
	suite := r.current()
	suite.Cases = append(suite.Cases, c)
	r.cases = append(r.cases, c)
}

// current returns the innermost open suite, creating an unlabeled root when a
// case is registered outside any suite (the crawl root itself was a case).
func (r *Registry) current() *Suite {
	if len(r.stack) == 0 {
		if r.root == nil {
			r.root = &Suite{}
		}
		return r.root
	}
	return r.stack[len(r.stack)-1]
}

// Root returns the registered tree, nil if nothing was registered.
func (r *Registry) Root() *Suite {
	return r.root
}

// Cases returns all registered cases in registration order, skipped included.
func (r *Registry) Cases() []*Case {
	return r.cases
}

// Runnable returns the number of registered non-skipped cases.
func (r *Registry) Runnable() int {
	count := 0
	for _, c := range r.cases {
		if !c.Skipped {
			count++
		}
	}
	return count
}

// SkippedResult builds the result recorded for a case that never ran.
func (c *Case) SkippedResult(message string) domain.CaseResult {
	return domain.CaseResult{
		QualifiedName: c.QualifiedName,
		Label:         c.Label,
		Dir:           c.Dir,
		Status:        domain.StatusSkipped,
		Message:       message,
	}
}
