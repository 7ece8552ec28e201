package report

import (
	"context"
	"fmt"
	"sync"
	"time"

	"smt/internal/domain"
	"smt/internal/ui"
)

// Scheduler executes registered case bodies on a bounded worker pool. The
// registry owns registration order; the scheduler only decides when bodies
// run. Each runnable case's body is invoked exactly once per Execute call.
type Scheduler struct {
	workers  int
	progress *ui.ProgressBar
}

// NewScheduler creates a Scheduler with the given worker count.
func NewScheduler(workers int) *Scheduler {
	if workers <= 0 {
		workers = 1
	}
	return &Scheduler{workers: workers}
}

// SetProgress sets the progress bar updated as cases complete.
func (s *Scheduler) SetProgress(progress *ui.ProgressBar) {
	s.progress = progress
}

// Execute runs all registered cases (no fail-fast). Results come back in
// registration order, skipped cases included.
func (s *Scheduler) Execute(ctx context.Context, cases []*Case) ([]domain.CaseResult, time.Duration) {
	return s.ExecuteWithOptions(ctx, cases, false)
}

// ExecuteWithOptions runs cases with optional fail-fast (stop dispatching
// after the first failure).
func (s *Scheduler) ExecuteWithOptions(ctx context.Context, cases []*Case, failFast bool) ([]domain.CaseResult, time.Duration) {
	results := make([]domain.CaseResult, len(cases))
	runnable := make([]int, 0, len(cases))
	for i, c := range cases {
		if c.Skipped {
			results[i] = c.SkippedResult("filtered out by include patterns")
			continue
		}
		runnable = append(runnable, i)
	}
	if len(runnable) == 0 {
		return results, 0
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	queue := make(chan int, len(runnable))
	for _, i := range runnable {
		queue <- i
	}
	close(queue)

	var mu sync.Mutex
	var completed, passed, failed int
	startTime := time.Now()

	var wg sync.WaitGroup
	for w := 0; w < s.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range queue {
				c := cases[i]
				if failFast && ctx.Err() != nil {
					results[i] = c.SkippedResult("not run (fail-fast)")
					continue
				}

				caseStart := time.Now()
				err := runBody(ctx, c)

				result := domain.CaseResult{
					QualifiedName: c.QualifiedName,
					Label:         c.Label,
					Dir:           c.Dir,
					Status:        domain.StatusPassed,
					Duration:      time.Since(caseStart),
				}
				if err != nil {
					result.Status = domain.StatusFailed
					result.Message = err.Error()
				}
				results[i] = result

				mu.Lock()
				completed++
				if err != nil {
					failed++
					if failFast {
						cancel()
					}
				} else {
					passed++
				}
				if s.progress != nil {
					s.progress.Update(completed, passed, failed)
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if s.progress != nil {
		s.progress.Finish()
	}
	return results, time.Since(startTime)
}

// runBody invokes one case body, containing panics so a misbehaving runner
// fails its own case instead of the whole run.
func runBody(ctx context.Context, c *Case) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("case panicked: %v", r)
		}
	}()
	return c.body(ctx)
}
