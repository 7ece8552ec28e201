package report

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"smt/internal/domain"
)

func runnableCase(label string, body func(ctx context.Context) error) *Case {
	return &Case{Label: label, QualifiedName: "cases/" + label, Dir: "/" + label, body: body}
}

func resultByName(results []domain.CaseResult, name string) domain.CaseResult {
	for _, r := range results {
		if r.QualifiedName == name {
			return r
		}
	}
	return domain.CaseResult{}
}

func TestScheduler_ExecutesEachBodyOnce(t *testing.T) {
	var counts [3]int32
	cases := []*Case{
		runnableCase("case-1", func(ctx context.Context) error { atomic.AddInt32(&counts[0], 1); return nil }),
		runnableCase("case-2", func(ctx context.Context) error { atomic.AddInt32(&counts[1], 1); return errors.New("boom") }),
		runnableCase("case-3", func(ctx context.Context) error { atomic.AddInt32(&counts[2], 1); return nil }),
	}

	results, _ := NewScheduler(4).Execute(context.Background(), cases)

	for i, c := range counts {
		if c != 1 {
			t.Errorf("expected body %d invoked once, got %d", i+1, c)
		}
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	if r := resultByName(results, "cases/case-1"); r.Status != domain.StatusPassed {
		t.Errorf("expected case-1 passed, got %s", r.Status)
	}
	failed := resultByName(results, "cases/case-2")
	if failed.Status != domain.StatusFailed || failed.Message != "boom" {
		t.Errorf("expected case-2 failed with message, got %+v", failed)
	}
	// A failing case never aborts its siblings.
	if r := resultByName(results, "cases/case-3"); r.Status != domain.StatusPassed {
		t.Errorf("expected case-3 passed, got %s", r.Status)
	}
}

func TestScheduler_SkippedCasesNeverRun(t *testing.T) {
	var invoked int32
	skipped := &Case{Label: "case-1", QualifiedName: "cases/case-1", Skipped: true}
	cases := []*Case{
		skipped,
		runnableCase("case-2", func(ctx context.Context) error { atomic.AddInt32(&invoked, 1); return nil }),
	}

	results, _ := NewScheduler(2).Execute(context.Background(), cases)

	if invoked != 1 {
		t.Errorf("expected only the runnable case to execute, got %d invocations", invoked)
	}
	if results[0].Status != domain.StatusSkipped {
		t.Errorf("expected skipped result for case-1, got %s", results[0].Status)
	}
	if results[0].QualifiedName != "cases/case-1" {
		t.Errorf("skipped case must keep its name in the results")
	}
}

func TestScheduler_OnlySkippedCases(t *testing.T) {
	cases := []*Case{
		{Label: "case-1", QualifiedName: "cases/case-1", Skipped: true},
	}
	results, duration := NewScheduler(2).Execute(context.Background(), cases)
	if len(results) != 1 || results[0].Status != domain.StatusSkipped {
		t.Fatalf("expected one skipped result, got %+v", results)
	}
	if duration != 0 {
		t.Errorf("expected zero duration with nothing to run")
	}
}

func TestScheduler_PanicContained(t *testing.T) {
	cases := []*Case{
		runnableCase("case-1", func(ctx context.Context) error { panic("bad runner") }),
		runnableCase("case-2", func(ctx context.Context) error { return nil }),
	}

	results, _ := NewScheduler(1).Execute(context.Background(), cases)

	if results[0].Status != domain.StatusFailed {
		t.Errorf("expected panicking case to fail, got %s", results[0].Status)
	}
	if results[1].Status != domain.StatusPassed {
		t.Errorf("expected sibling case to pass, got %s", results[1].Status)
	}
}

func TestScheduler_FailFast(t *testing.T) {
	var invoked int32
	cases := []*Case{
		runnableCase("case-1", func(ctx context.Context) error { atomic.AddInt32(&invoked, 1); return errors.New("boom") }),
		runnableCase("case-2", func(ctx context.Context) error { atomic.AddInt32(&invoked, 1); return nil }),
	}

	// Single worker makes dispatch order deterministic.
	results, _ := NewScheduler(1).ExecuteWithOptions(context.Background(), cases, true)

	if invoked != 1 {
		t.Fatalf("expected fail-fast to stop after first failure, got %d invocations", invoked)
	}
	if results[0].Status != domain.StatusFailed {
		t.Errorf("expected case-1 failed, got %s", results[0].Status)
	}
	if results[1].Status != domain.StatusSkipped {
		t.Errorf("expected case-2 skipped under fail-fast, got %s", results[1].Status)
	}
}
