package describe

import (
	"context"
	"errors"
	"testing"

	"smt/internal/discovery"
	"smt/internal/domain"
)

// recordingReporter captures registration events in order.
type recordingReporter struct {
	events []string
	bodies map[string]func(ctx context.Context) error
}

func newRecordingReporter() *recordingReporter {
	return &recordingReporter{bodies: make(map[string]func(ctx context.Context) error)}
}

func (r *recordingReporter) BeginSuite(label string) {
	r.events = append(r.events, "begin:"+label)
}

func (r *recordingReporter) EndSuite() {
	r.events = append(r.events, "end")
}

func (r *recordingReporter) Case(node *domain.Node, qualifiedName string, body func(ctx context.Context) error) {
	r.events = append(r.events, "case:"+qualifiedName)
	r.bodies[qualifiedName] = body
}

func (r *recordingReporter) SkippedCase(node *domain.Node, qualifiedName string) {
	r.events = append(r.events, "skip:"+qualifiedName)
}

func sampleTree() *domain.Node {
	caseNode := func(label string) *domain.Node {
		return &domain.Node{Label: label, Dir: "/" + label, Kind: domain.KindCase}
	}
	return &domain.Node{
		Label: "cases",
		Kind:  domain.KindSuite,
		Children: []*domain.Node{
			{Label: "group-a", Kind: domain.KindSuite, Children: []*domain.Node{
				caseNode("case-1"),
				caseNode("case-2"),
			}},
			{Label: "group-b", Kind: domain.KindSuite, Children: []*domain.Node{
				caseNode("case-3"),
			}},
			{Label: "group-c", Kind: domain.KindSuite},
		},
	}
}

func mustFilter(t *testing.T, includes []string) *discovery.Filter {
	t.Helper()
	filter, err := discovery.CompileFilter(includes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return filter
}

func assertEvents(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected events %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected events %v, got %v", want, got)
		}
	}
}

func TestDescribe_NoFilter(t *testing.T) {
	rep := newRecordingReporter()
	invocations := make(map[string]int)
	runner := func(ctx context.Context, node *domain.Node) error {
		invocations[node.Label]++
		return nil
	}

	Describe(sampleTree(), mustFilter(t, nil), runner, rep)

	assertEvents(t, rep.events, []string{
		"begin:cases",
		"begin:group-a",
		"case:cases/group-a/case-1",
		"case:cases/group-a/case-2",
		"end",
		"begin:group-b",
		"case:cases/group-b/case-3",
		"end",
		"begin:group-c",
		"end",
		"end",
	})

	// Each registered body invokes the runner exactly once with its own node.
	for name, body := range rep.bodies {
		if err := body(context.Background()); err != nil {
			t.Fatalf("body %s failed: %v", name, err)
		}
	}
	for _, label := range []string{"case-1", "case-2", "case-3"} {
		if invocations[label] != 1 {
			t.Errorf("expected runner invoked once for %s, got %d", label, invocations[label])
		}
	}
}

func TestDescribe_FilterSkipsAtLeavesOnly(t *testing.T) {
	rep := newRecordingReporter()
	runner := func(ctx context.Context, node *domain.Node) error { return nil }

	Describe(sampleTree(), mustFilter(t, []string{"group-a"}), runner, rep)

	// Suites keep their place in the report; case-3 is registered but skipped.
	assertEvents(t, rep.events, []string{
		"begin:cases",
		"begin:group-a",
		"case:cases/group-a/case-1",
		"case:cases/group-a/case-2",
		"end",
		"begin:group-b",
		"skip:cases/group-b/case-3",
		"end",
		"begin:group-c",
		"end",
		"end",
	})

	if _, ok := rep.bodies["cases/group-b/case-3"]; ok {
		t.Error("skipped case must not have a runnable body")
	}
}

func TestDescribe_RunnerErrorPropagates(t *testing.T) {
	rep := newRecordingReporter()
	failure := errors.New("candidate differs")
	runner := func(ctx context.Context, node *domain.Node) error {
		if node.Label == "case-2" {
			return failure
		}
		return nil
	}

	Describe(sampleTree(), mustFilter(t, nil), runner, rep)

	if err := rep.bodies["cases/group-a/case-2"](context.Background()); !errors.Is(err, failure) {
		t.Errorf("expected runner error to propagate, got %v", err)
	}
	if err := rep.bodies["cases/group-a/case-1"](context.Background()); err != nil {
		t.Errorf("expected sibling case to be unaffected, got %v", err)
	}
}

func TestDescribe_RootIsACase(t *testing.T) {
	rep := newRecordingReporter()
	root := &domain.Node{Label: "cases", Dir: "/cases", Kind: domain.KindCase}
	runner := func(ctx context.Context, node *domain.Node) error { return nil }

	Describe(root, mustFilter(t, nil), runner, rep)

	assertEvents(t, rep.events, []string{"case:cases"})
}
