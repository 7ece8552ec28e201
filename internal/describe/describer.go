// Package describe registers a crawled case hierarchy with a reporter,
// applying the inclusion filter at the leaves.
package describe

import (
	"context"
	"strings"

	"github.com/fatih/color"

	"smt/internal/discovery"
	"smt/internal/domain"
)

// CaseRunner executes one leaf case and signals failure via error, never via
// a sentinel value.
type CaseRunner func(ctx context.Context, node *domain.Node) error

// Reporter is the registration surface of the reporting framework.
// Registration is synchronous; execution of registered bodies is owned by the
// reporter's scheduler.
type Reporter interface {
	// BeginSuite opens a named suite scope; EndSuite closes the innermost one.
	BeginSuite(label string)
	EndSuite()
	// Case registers a runnable test inside the current suite scope.
	Case(node *domain.Node, qualifiedName string, body func(ctx context.Context) error)
	// SkippedCase registers a test that was filtered out, so it stays visible
	// in the report.
	SkippedCase(node *domain.Node, qualifiedName string)
}

// Describe recursively registers the hierarchy with the reporter. Suites are
// always registered so the report keeps its shape under filtering; cases are
// registered runnable when admitted by the filter and skipped otherwise.
// Children are registered in the crawler's order.
func Describe(root *domain.Node, filter *discovery.Filter, runner CaseRunner, rep Reporter) {
	if patterns := filter.Patterns(); len(patterns) > 0 {
		color.Cyan("Include patterns: %s", strings.Join(patterns, ", "))
	}
	describeNode(root, root.Label, filter, runner, rep)
}

func describeNode(node *domain.Node, qualifiedName string, filter *discovery.Filter, runner CaseRunner, rep Reporter) {
	if node.IsCase() {
		if !filter.Include(qualifiedName) {
			rep.SkippedCase(node, qualifiedName)
			return
		}
		n := node
		rep.Case(node, qualifiedName, func(ctx context.Context) error {
			return runner(ctx, n)
		})
		return
	}

	rep.BeginSuite(node.Label)
	for _, child := range node.Children {
		describeNode(child, qualifiedName+"/"+child.Label, filter, runner, rep)
	}
	rep.EndSuite()
}
