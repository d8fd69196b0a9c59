package bench

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/algoscope/algoscope/pkg/internal/recursion"
	"github.com/algoscope/algoscope/pkg/internal/searching"
	"github.com/algoscope/algoscope/pkg/internal/sorting"
	"github.com/algoscope/algoscope/pkg/internal/types"
)

// recordingSensor captures the hook invocations the runner makes. Unused
// Sensor methods are inherited from the embedded interface and panic if
// called, which keeps the fake honest about what the runner touches.
type recordingSensor struct {
	types.Sensor[types.BenchResult]

	mu         sync.Mutex
	starts     int
	completes  int
	errs       []error
	results    []types.BenchResult
	caseStarts []string
	skips      []string
	suiteCount int
	suiteCases int

	onResult func(types.BenchResult)
}

func (s *recordingSensor) GetComponentMetadata() types.ComponentMetadata {
	return types.ComponentMetadata{Name: "recording", Type: "SENSOR"}
}

func (s *recordingSensor) InvokeOnStart(cm types.ComponentMetadata) {
	s.mu.Lock()
	s.starts++
	s.mu.Unlock()
}

func (s *recordingSensor) InvokeOnComplete(cm types.ComponentMetadata) {
	s.mu.Lock()
	s.completes++
	s.mu.Unlock()
}

func (s *recordingSensor) InvokeOnError(cm types.ComponentMetadata, err error, elem types.BenchResult) {
	s.mu.Lock()
	s.errs = append(s.errs, err)
	s.mu.Unlock()
}

func (s *recordingSensor) InvokeOnElementProcessed(cm types.ComponentMetadata, elem types.BenchResult) {
	s.mu.Lock()
	s.results = append(s.results, elem)
	cb := s.onResult
	s.mu.Unlock()
	if cb != nil {
		cb(elem)
	}
}

func (s *recordingSensor) InvokeOnBenchCaseStart(cm types.ComponentMetadata, category, algorithm string, size int, shape string) {
	s.mu.Lock()
	s.caseStarts = append(s.caseStarts, fmt.Sprintf("%s/%s/%d/%s", category, algorithm, size, shape))
	s.mu.Unlock()
}

func (s *recordingSensor) InvokeOnBenchCaseSkip(cm types.ComponentMetadata, algorithm string, size int, reason string) {
	s.mu.Lock()
	s.skips = append(s.skips, fmt.Sprintf("%s/%d/%s", algorithm, size, reason))
	s.mu.Unlock()
}

func (s *recordingSensor) InvokeOnBenchSuiteComplete(cm types.ComponentMetadata, cases int, elapsed time.Duration) {
	s.mu.Lock()
	s.suiteCount++
	s.suiteCases = cases
	s.mu.Unlock()
}

// totalsMeter records the planned case count the runner hands to meters.
type totalsMeter struct {
	types.Meter[types.BenchResult]

	mu    sync.Mutex
	total uint64
}

func (m *totalsMeter) GetComponentMetadata() types.ComponentMetadata {
	return types.ComponentMetadata{Name: "totals", Type: "METER"}
}

func (m *totalsMeter) AddTotalItems(additionalTotal uint64) {
	m.mu.Lock()
	m.total += additionalTotal
	m.mu.Unlock()
}

func TestNewRunner_Metadata(t *testing.T) {
	r := NewRunner()

	cm := r.GetComponentMetadata()
	if cm.Type != "BENCH_RUNNER" {
		t.Errorf("expected component type BENCH_RUNNER, got %q", cm.Type)
	}
	if len(cm.ID) != 64 {
		t.Errorf("expected 64 character id, got %d characters", len(cm.ID))
	}

	r.SetComponentMetadata("suite", "runner-1")
	cm = r.GetComponentMetadata()
	if cm.Name != "suite" || cm.ID != "runner-1" || cm.Type != "BENCH_RUNNER" {
		t.Errorf("unexpected metadata after override: %+v", cm)
	}
}

func TestShapes_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	if got := Sorted(5); !slices.IsSorted(got) {
		t.Errorf("Sorted output not ascending: %v", got)
	}

	reversed := Reversed(5)
	for i := 1; i < len(reversed); i++ {
		if reversed[i-1] <= reversed[i] {
			t.Fatalf("Reversed output not descending: %v", reversed)
		}
	}

	if got := Random(rng, 1000); len(got) != 1000 {
		t.Fatalf("expected 1000 random elements, got %d", len(got))
	}

	nearly := NearlySorted(rng, 1000)
	inversions := 0
	for i := 1; i < len(nearly); i++ {
		if nearly[i-1] > nearly[i] {
			inversions++
		}
	}
	if inversions == 0 || inversions > 20 {
		t.Errorf("expected about 10 inversions in 1000 nearly sorted elements, got %d", inversions)
	}

	restored := append([]int(nil), nearly...)
	slices.Sort(restored)
	for i, v := range restored {
		if v != i {
			t.Fatalf("NearlySorted is not a permutation of 0..n-1 at index %d: %d", i, v)
		}
	}
}

func TestShapes_Deterministic(t *testing.T) {
	a := Random(rand.New(rand.NewSource(99)), 256)
	b := Random(rand.New(rand.NewSource(99)), 256)
	if !slices.Equal(a, b) {
		t.Errorf("same seed produced different random inputs")
	}

	c := NearlySorted(rand.New(rand.NewSource(99)), 256)
	d := NearlySorted(rand.New(rand.NewSource(99)), 256)
	if !slices.Equal(c, d) {
		t.Errorf("same seed produced different nearly sorted inputs")
	}
}

func TestInput_ShapeDispatch(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	if got := Input(rng, types.ShapeSorted, 8); !slices.IsSorted(got) {
		t.Errorf("sorted shape not ascending: %v", got)
	}
	if got := Input(rng, types.ShapeReversed, 8); got[0] != 7 || got[7] != 0 {
		t.Errorf("unexpected reversed shape: %v", got)
	}
	if got := Input(rng, types.DataShape("bogus"), 8); len(got) != 8 {
		t.Errorf("unknown shape should fall back to random data, got %v", got)
	}
	if got := Input(rng, types.ShapeRandom, 0); got != nil {
		t.Errorf("expected nil input for size zero, got %v", got)
	}
}

func TestRunSorting_GridAndCutoff(t *testing.T) {
	sensor := &recordingSensor{}
	r := NewRunner(
		WithSizes(64, 256),
		WithShapes(types.ShapeRandom, types.ShapeReversed),
		WithQuadraticCutoff(100),
		WithSensor(sensor),
	)

	results, err := r.RunSorting(context.Background())
	if err != nil {
		t.Fatalf("RunSorting returned error: %v", err)
	}

	quadratic := 0
	for _, alg := range sorting.Algorithms() {
		if alg.Quadratic() {
			quadratic++
		}
	}
	total := len(sorting.Algorithms()) * 2 * 2
	skipped := quadratic * 2 // one size above the cutoff, two shapes
	if len(results) != total-skipped {
		t.Fatalf("expected %d results, got %d", total-skipped, len(results))
	}

	sensor.mu.Lock()
	skips := append([]string(nil), sensor.skips...)
	caseStarts := len(sensor.caseStarts)
	sensor.mu.Unlock()

	if len(skips) != skipped {
		t.Fatalf("expected %d skip callbacks, got %d: %v", skipped, len(skips), skips)
	}
	for _, skip := range skips {
		if !strings.HasSuffix(skip, "/256/quadratic cutoff") {
			t.Errorf("unexpected skip entry %q", skip)
		}
	}
	if caseStarts != len(results) {
		t.Errorf("case start callbacks (%d) should match measured cases (%d)", caseStarts, len(results))
	}

	bubbleSeen := false
	for _, result := range results {
		if result.Category != "sorting" {
			t.Errorf("unexpected category %q", result.Category)
		}
		if result.Size != 64 && result.Size != 256 {
			t.Errorf("unexpected size %d", result.Size)
		}
		if result.Complexity == "" {
			t.Errorf("missing complexity for %s", result.Algorithm)
		}
		if result.Algorithm == "bubble_sort" {
			bubbleSeen = true
			if result.Size != 64 {
				t.Errorf("bubble_sort ran above the cutoff at size %d", result.Size)
			}
			if result.Comparisons == 0 {
				t.Errorf("bubble_sort reported zero comparisons")
			}
		}
	}
	if !bubbleSeen {
		t.Errorf("bubble_sort missing from results")
	}
}

func TestRunSorting_DeterministicCounts(t *testing.T) {
	run := func() []types.BenchResult {
		t.Helper()
		r := NewRunner(
			WithSizes(128),
			WithShapes(types.ShapeRandom, types.ShapeNearlySorted),
			WithSeed(11),
		)
		results, err := r.RunSorting(context.Background())
		if err != nil {
			t.Fatalf("RunSorting returned error: %v", err)
		}
		return results
	}

	first, second := run(), run()
	if len(first) != len(second) {
		t.Fatalf("result counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		a, b := first[i], second[i]
		if a.Algorithm != b.Algorithm || a.Shape != b.Shape ||
			a.Comparisons != b.Comparisons || a.Swaps != b.Swaps {
			t.Errorf("case %d differs across identically seeded runs: %+v vs %+v", i, a, b)
		}
	}
}

func TestRunSearching(t *testing.T) {
	r := NewRunner(WithSizes(128, 512))

	results, err := r.RunSearching(context.Background())
	if err != nil {
		t.Fatalf("RunSearching returned error: %v", err)
	}
	if want := len(searching.Algorithms()) * 2; len(results) != want {
		t.Fatalf("expected %d results, got %d", want, len(results))
	}

	for _, result := range results {
		if result.Category != "searching" {
			t.Errorf("unexpected category %q", result.Category)
		}
		if result.Shape != "" {
			t.Errorf("searching case carries shape %q", result.Shape)
		}
		if result.Comparisons == 0 {
			t.Errorf("%s at size %d reported zero probes", result.Algorithm, result.Size)
		}
		if result.Swaps != 0 {
			t.Errorf("%s reported %d swaps", result.Algorithm, result.Swaps)
		}
	}
}

func TestRunRecursion_CallCounts(t *testing.T) {
	r := NewRunner(WithRecursionDepths(10))

	results, err := r.RunRecursion(context.Background())
	if err != nil {
		t.Fatalf("RunRecursion returned error: %v", err)
	}
	if len(results) != len(recursion.Variants()) {
		t.Fatalf("expected %d results, got %d", len(recursion.Variants()), len(results))
	}

	counts := make(map[string]uint64, len(results))
	for _, result := range results {
		if result.Category != "recursion" {
			t.Errorf("unexpected category %q", result.Category)
		}
		counts[result.Algorithm] = result.Comparisons
	}
	if counts["fib_naive"] != 177 {
		t.Errorf("expected 177 naive calls at n=10, got %d", counts["fib_naive"])
	}
	if counts["fib_memo"] != 19 {
		t.Errorf("expected 19 memoized calls at n=10, got %d", counts["fib_memo"])
	}
	if counts["fib_iterative"] != 0 {
		t.Errorf("expected zero calls for the iterative variant, got %d", counts["fib_iterative"])
	}
}

func TestRunAll_LifecycleHooks(t *testing.T) {
	sensor := &recordingSensor{}
	meter := &totalsMeter{}
	r := NewRunner(
		WithSizes(64),
		WithShapes(types.ShapeRandom),
		WithRecursionDepths(10, 15),
		WithSensor(sensor),
		WithMeter(meter),
	)

	results, err := r.RunAll(context.Background())
	if err != nil {
		t.Fatalf("RunAll returned error: %v", err)
	}

	planned := len(sorting.Algorithms()) + len(searching.Algorithms()) + len(recursion.Variants())*2
	if len(results) != planned {
		t.Fatalf("expected %d results, got %d", planned, len(results))
	}

	sensor.mu.Lock()
	starts, completes := sensor.starts, sensor.completes
	suiteCount, suiteCases := sensor.suiteCount, sensor.suiteCases
	processed := len(sensor.results)
	sensor.mu.Unlock()

	if starts != 1 || completes != 1 || suiteCount != 1 {
		t.Errorf("expected one start/complete/suite-complete, got %d/%d/%d", starts, completes, suiteCount)
	}
	if suiteCases != planned {
		t.Errorf("suite completion reported %d cases, want %d", suiteCases, planned)
	}
	if processed != planned {
		t.Errorf("OnElementProcessed fired %d times, want %d", processed, planned)
	}

	meter.mu.Lock()
	total := meter.total
	meter.mu.Unlock()
	if total != uint64(planned) {
		t.Errorf("meter received %d planned cases, want %d", total, planned)
	}

	categories := make([]string, 0, 3)
	for _, result := range results {
		if len(categories) == 0 || categories[len(categories)-1] != result.Category {
			categories = append(categories, result.Category)
		}
	}
	if !slices.Equal(categories, []string{"sorting", "searching", "recursion"}) {
		t.Errorf("unexpected category order %v", categories)
	}
}

func TestRunAll_CancelReturnsPartial(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sensor := &recordingSensor{}
	remaining := 3
	sensor.onResult = func(types.BenchResult) {
		remaining--
		if remaining == 0 {
			cancel()
		}
	}

	r := NewRunner(
		WithSizes(64, 128),
		WithShapes(types.ShapeRandom, types.ShapeSorted),
		WithSensor(sensor),
	)

	results, err := r.RunAll(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected three partial results, got %d", len(results))
	}

	sensor.mu.Lock()
	errCount := len(sensor.errs)
	completes, suiteCount := sensor.completes, sensor.suiteCount
	sensor.mu.Unlock()

	if errCount != 1 {
		t.Errorf("expected one error callback, got %d", errCount)
	}
	if completes != 0 || suiteCount != 0 {
		t.Errorf("completion hooks fired on a cancelled run: completes=%d suite=%d", completes, suiteCount)
	}
}

func TestRunSorting_CancelledContextUpfront(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := NewRunner().RunSorting(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results from a cancelled run, got %d", len(results))
	}
}

func TestConfigAccessors(t *testing.T) {
	r := NewRunner()

	r.SetSizes([]int{500, -3, 0, 900})
	if got := r.GetSizes(); !slices.Equal(got, []int{500, 900}) {
		t.Errorf("expected non-positive sizes dropped, got %v", got)
	}
	r.SetSizes(nil)
	if got := r.GetSizes(); !slices.Equal(got, []int{500, 900}) {
		t.Errorf("empty SetSizes should keep the grid, got %v", got)
	}

	sizes := r.GetSizes()
	sizes[0] = 1
	if got := r.GetSizes(); got[0] != 500 {
		t.Errorf("GetSizes returned shared backing storage")
	}

	r.SetShapes([]types.DataShape{types.ShapeSorted})
	if got := r.GetShapes(); len(got) != 1 || got[0] != types.ShapeSorted {
		t.Errorf("unexpected shapes %v", got)
	}
	r.SetShapes(nil)
	if got := r.GetShapes(); len(got) != 1 {
		t.Errorf("empty SetShapes should keep the set, got %v", got)
	}
}

func TestConnect_CompactsNilEntries(t *testing.T) {
	r := NewRunner().(*Runner)

	r.ConnectSensor(nil, nil)
	if got := r.snapshotSensors(); got != nil {
		t.Errorf("expected no sensors after nil-only connect, got %d", len(got))
	}
	r.ConnectLogger(nil)
	if got := r.snapshotLoggers(); got != nil {
		t.Errorf("expected no loggers after nil-only connect, got %d", len(got))
	}
	r.ConnectMeter(nil)
	if got := r.snapshotMeters(); got != nil {
		t.Errorf("expected no meters after nil-only connect, got %d", len(got))
	}

	sensor := &recordingSensor{}
	r.ConnectSensor(nil, sensor)
	if got := r.snapshotSensors(); len(got) != 1 {
		t.Errorf("expected one sensor after compaction, got %d", len(got))
	}
}
