package bench

import (
	"context"
	"time"

	"github.com/algoscope/algoscope/pkg/internal/types"
)

// RunSorting benchmarks every registered sorting algorithm over the
// configured sizes and shapes. Quadratic algorithms are skipped above the
// cutoff; skipped combinations still count toward suite progress.
func (r *Runner) RunSorting(ctx context.Context) ([]types.BenchResult, error) {
	cm := r.GetComponentMetadata()
	start := r.startSuite(cm, "RunSorting", r.plannedSortingCases())
	results, err := r.runSorting(ctx)
	r.finishSuite(cm, "RunSorting", len(results), start, err)
	return results, err
}

// RunSearching benchmarks the search algorithms over sorted inputs at the
// configured sizes, probing one present and one absent key per case.
func (r *Runner) RunSearching(ctx context.Context) ([]types.BenchResult, error) {
	cm := r.GetComponentMetadata()
	start := r.startSuite(cm, "RunSearching", r.plannedSearchingCases())
	results, err := r.runSearching(ctx)
	r.finishSuite(cm, "RunSearching", len(results), start, err)
	return results, err
}

// RunRecursion benchmarks the fibonacci variants over the configured
// argument values.
func (r *Runner) RunRecursion(ctx context.Context) ([]types.BenchResult, error) {
	cm := r.GetComponentMetadata()
	start := r.startSuite(cm, "RunRecursion", r.plannedRecursionCases())
	results, err := r.runRecursion(ctx)
	r.finishSuite(cm, "RunRecursion", len(results), start, err)
	return results, err
}

// RunAll runs the sorting, searching and recursion suites in order. Suite
// lifecycle hooks fire once around the whole run, not per sub-suite. On
// cancellation the results measured so far are returned with ctx.Err().
func (r *Runner) RunAll(ctx context.Context) ([]types.BenchResult, error) {
	cm := r.GetComponentMetadata()
	planned := r.plannedSortingCases() + r.plannedSearchingCases() + r.plannedRecursionCases()
	start := r.startSuite(cm, "RunAll", planned)

	results := make([]types.BenchResult, 0, planned)
	for _, run := range []func(context.Context) ([]types.BenchResult, error){
		r.runSorting,
		r.runSearching,
		r.runRecursion,
	} {
		part, err := run(ctx)
		results = append(results, part...)
		if err != nil {
			r.finishSuite(cm, "RunAll", len(results), start, err)
			return results, err
		}
	}

	r.finishSuite(cm, "RunAll", len(results), start, nil)
	return results, nil
}

// startSuite announces a suite run, feeds the planned case count to
// connected meters and fires the start hooks. It returns the suite start
// time for finishSuite.
func (r *Runner) startSuite(cm types.ComponentMetadata, event string, planned int) time.Time {
	r.NotifyLoggers(types.InfoLevel, "Suite starting",
		"component", cm,
		"event", event,
		"planned_cases", planned,
	)
	for _, meter := range r.snapshotMeters() {
		meter.AddTotalItems(uint64(planned))
	}
	for _, sensor := range r.snapshotSensors() {
		sensor.InvokeOnStart(cm)
	}
	return time.Now()
}

// finishSuite fires the completion hooks, or the error hooks when the run
// stopped early.
func (r *Runner) finishSuite(cm types.ComponentMetadata, event string, cases int, start time.Time, err error) {
	elapsed := time.Since(start)
	if err != nil {
		r.NotifyLoggers(types.WarnLevel, "Suite stopped early",
			"component", cm,
			"event", event,
			"cases", cases,
			"elapsed", elapsed,
			"error", err,
		)
		for _, sensor := range r.snapshotSensors() {
			sensor.InvokeOnError(cm, err, types.BenchResult{})
		}
		return
	}

	r.NotifyLoggers(types.InfoLevel, "Suite complete",
		"component", cm,
		"event", event,
		"cases", cases,
		"elapsed", elapsed,
	)
	for _, sensor := range r.snapshotSensors() {
		sensor.InvokeOnBenchSuiteComplete(cm, cases, elapsed)
		sensor.InvokeOnComplete(cm)
	}
}
