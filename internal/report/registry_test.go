package report

import (
	"context"
	"testing"

	"smt/internal/domain"
)

func caseNode(label string) *domain.Node {
	return &domain.Node{Label: label, Dir: "/" + label, Kind: domain.KindCase}
}

func TestRegistry_TreeShape(t *testing.T) {
	r := NewRegistry()
	noop := func(ctx context.Context) error { return nil }

	r.BeginSuite("cases")
	r.BeginSuite("group-a")
	r.Case(caseNode("case-1"), "cases/group-a/case-1", noop)
	r.Case(caseNode("case-2"), "cases/group-a/case-2", noop)
	r.EndSuite()
	r.BeginSuite("group-b")
	r.SkippedCase(caseNode("case-3"), "cases/group-b/case-3")
	r.EndSuite()
	r.BeginSuite("group-c")
	r.EndSuite()
	r.EndSuite()

	root := r.Root()
	if root == nil || root.Label != "cases" {
		t.Fatalf("expected root suite 'cases', got %+v", root)
	}
	if len(root.Suites) != 3 {
		t.Fatalf("expected 3 child suites, got %d", len(root.Suites))
	}

	// Empty suites stay in the tree.
	if root.Suites[2].Label != "group-c" || len(root.Suites[2].Cases) != 0 {
		t.Errorf("expected empty suite group-c to be registered")
	}

	// Skipped cases stay visible.
	groupB := root.Suites[1]
	if len(groupB.Cases) != 1 || !groupB.Cases[0].Skipped {
		t.Errorf("expected case-3 registered as skipped")
	}

	if got := len(r.Cases()); got != 3 {
		t.Errorf("expected 3 registered cases, got %d", got)
	}
	if got := r.Runnable(); got != 2 {
		t.Errorf("expected 2 runnable cases, got %d", got)
	}

	// Registration order is preserved.
	names := []string{}
	for _, c := range r.Cases() {
		names = append(names, c.QualifiedName)
	}
	want := []string{"cases/group-a/case-1", "cases/group-a/case-2", "cases/group-b/case-3"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected case order %v, got %v", want, names)
		}
	}
}

func TestRegistry_CaseOutsideSuite(t *testing.T) {
	r := NewRegistry()
	r.Case(caseNode("cases"), "cases", func(ctx context.Context) error { return nil })

	if r.Root() == nil || len(r.Root().Cases) != 1 {
		t.Fatalf("expected a synthetic root owning the case")
	}
}
