package bench

import (
	"context"
	"math/rand"
	"time"

	"github.com/algoscope/algoscope/pkg/internal/recursion"
	"github.com/algoscope/algoscope/pkg/internal/searching"
	"github.com/algoscope/algoscope/pkg/internal/sorting"
	"github.com/algoscope/algoscope/pkg/internal/types"
)

func (r *Runner) runSorting(ctx context.Context) ([]types.BenchResult, error) {
	cm := r.GetComponentMetadata()
	sizes, shapes, _, repeats, cutoff, seed := r.caseConfig()
	rng := rand.New(rand.NewSource(seed))

	// Every algorithm at a given size and shape sorts the same base slice,
	// so operation counts are directly comparable across algorithms.
	type caseInput struct {
		size  int
		shape types.DataShape
		data  []int
	}
	inputs := make([]caseInput, 0, len(sizes)*len(shapes))
	for _, size := range sizes {
		for _, shape := range shapes {
			inputs = append(inputs, caseInput{size: size, shape: shape, data: Input(rng, shape, size)})
		}
	}

	algorithms := sorting.Algorithms()
	results := make([]types.BenchResult, 0, len(algorithms)*len(inputs))
	for _, alg := range algorithms {
		for _, in := range inputs {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			if alg.Quadratic() && in.size > cutoff {
				r.NotifyLoggers(types.InfoLevel, "Skipping quadratic case",
					"component", cm,
					"event", "RunSorting",
					"algorithm", alg.Name,
					"size", in.size,
					"cutoff", cutoff,
				)
				for _, sensor := range r.snapshotSensors() {
					sensor.InvokeOnBenchCaseSkip(cm, alg.Name, in.size, "quadratic cutoff")
				}
				continue
			}

			for _, sensor := range r.snapshotSensors() {
				sensor.InvokeOnBenchCaseStart(cm, "sorting", alg.Name, in.size, string(in.shape))
			}
			dur, stats := measureSort(alg, in.data, repeats)
			result := types.BenchResult{
				Category:    "sorting",
				Algorithm:   alg.Name,
				Size:        in.size,
				Shape:       string(in.shape),
				Duration:    dur,
				Millis:      float64(dur) / float64(time.Millisecond),
				Comparisons: stats.Comparisons,
				Swaps:       stats.Swaps,
				Complexity:  alg.Complexity,
				Stable:      alg.Stable,
			}
			results = append(results, result)
			r.emitResult(cm, "RunSorting", result)
		}
	}
	return results, nil
}

func (r *Runner) runSearching(ctx context.Context) ([]types.BenchResult, error) {
	cm := r.GetComponentMetadata()
	sizes, _, _, repeats, _, seed := r.caseConfig()
	rng := rand.New(rand.NewSource(seed))

	// Sorted inputs hold even values only, so probing target+1 is always a
	// miss inside the value range.
	type probe struct {
		data    []int
		present int
		absent  int
	}
	probes := make([]probe, 0, len(sizes))
	for _, size := range sizes {
		data := make([]int, size)
		for i := range data {
			data[i] = i * 2
		}
		present := data[rng.Intn(size)]
		probes = append(probes, probe{data: data, present: present, absent: present + 1})
	}

	algorithms := searching.Algorithms()
	results := make([]types.BenchResult, 0, len(algorithms)*len(sizes))
	for _, alg := range algorithms {
		for i, size := range sizes {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			for _, sensor := range r.snapshotSensors() {
				sensor.InvokeOnBenchCaseStart(cm, "searching", alg.Name, size, "")
			}
			p := probes[i]
			dur, comparisons := measureSearch(alg, p.data, p.present, p.absent, repeats)
			result := types.BenchResult{
				Category:    "searching",
				Algorithm:   alg.Name,
				Size:        size,
				Duration:    dur,
				Millis:      float64(dur) / float64(time.Millisecond),
				Comparisons: comparisons,
				Complexity:  alg.Complexity,
			}
			results = append(results, result)
			r.emitResult(cm, "RunSearching", result)
		}
	}
	return results, nil
}

func (r *Runner) runRecursion(ctx context.Context) ([]types.BenchResult, error) {
	cm := r.GetComponentMetadata()
	_, _, depths, repeats, _, _ := r.caseConfig()

	variants := recursion.Variants()
	results := make([]types.BenchResult, 0, len(variants)*len(depths))
	for _, variant := range variants {
		for _, n := range depths {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			for _, sensor := range r.snapshotSensors() {
				sensor.InvokeOnBenchCaseStart(cm, "recursion", variant.Name, n, "")
			}
			dur, calls := measureCompute(variant, n, repeats)
			// Comparisons carries the invocation count here; calls are the
			// operation the recursion kit instruments.
			result := types.BenchResult{
				Category:    "recursion",
				Algorithm:   variant.Name,
				Size:        n,
				Duration:    dur,
				Millis:      float64(dur) / float64(time.Millisecond),
				Comparisons: calls,
				Complexity:  variant.Complexity,
			}
			results = append(results, result)
			r.emitResult(cm, "RunRecursion", result)
		}
	}
	return results, nil
}

// emitResult logs one finished case and hands it to connected sensors.
func (r *Runner) emitResult(cm types.ComponentMetadata, event string, result types.BenchResult) {
	r.NotifyLoggers(types.DebugLevel, "Case complete",
		"component", cm,
		"event", event,
		"category", result.Category,
		"algorithm", result.Algorithm,
		"size", result.Size,
		"shape", result.Shape,
		"millis", result.Millis,
		"comparisons", result.Comparisons,
		"swaps", result.Swaps,
	)
	for _, sensor := range r.snapshotSensors() {
		sensor.InvokeOnElementProcessed(cm, result)
	}
}

// measureSort times one sorting case. The base input is copied outside the
// timed section before every repeat; the fastest repeat is reported.
func measureSort(alg sorting.Algorithm, base []int, repeats int) (time.Duration, sorting.Stats) {
	var (
		best  time.Duration
		stats sorting.Stats
	)
	work := make([]int, len(base))
	for i := 0; i < repeats; i++ {
		copy(work, base)
		start := time.Now()
		s := alg.Sort(work)
		dur := time.Since(start)
		if i == 0 || dur < best {
			best = dur
			stats = s
		}
	}
	return best, stats
}

// measureSearch times one present and one absent probe back to back.
func measureSearch(alg searching.Algorithm, data []int, present, absent, repeats int) (time.Duration, uint64) {
	var (
		best        time.Duration
		comparisons uint64
	)
	for i := 0; i < repeats; i++ {
		start := time.Now()
		_, hitComparisons := alg.Search(data, present)
		_, missComparisons := alg.Search(data, absent)
		dur := time.Since(start)
		if i == 0 || dur < best {
			best = dur
			comparisons = hitComparisons + missComparisons
		}
	}
	return best, comparisons
}

func measureCompute(variant recursion.Variant, n, repeats int) (time.Duration, uint64) {
	var (
		best  time.Duration
		calls uint64
	)
	for i := 0; i < repeats; i++ {
		start := time.Now()
		_, c := variant.Compute(n)
		dur := time.Since(start)
		if i == 0 || dur < best {
			best = dur
			calls = c
		}
	}
	return best, calls
}

// caseConfig snapshots the grid configuration for one suite run.
func (r *Runner) caseConfig() (sizes []int, shapes []types.DataShape, depths []int, repeats, cutoff int, seed int64) {
	r.configLock.Lock()
	defer r.configLock.Unlock()
	sizes = append([]int(nil), r.sizes...)
	shapes = append([]types.DataShape(nil), r.shapes...)
	depths = append([]int(nil), r.recursionDepths...)
	return sizes, shapes, depths, r.repeats, r.quadraticCutoff, r.seed
}

// Planned case counts include combinations the cutoff will skip; skips
// count toward suite progress.

func (r *Runner) plannedSortingCases() int {
	r.configLock.Lock()
	grid := len(r.sizes) * len(r.shapes)
	r.configLock.Unlock()
	return grid * len(sorting.Algorithms())
}

func (r *Runner) plannedSearchingCases() int {
	r.configLock.Lock()
	n := len(r.sizes)
	r.configLock.Unlock()
	return n * len(searching.Algorithms())
}

func (r *Runner) plannedRecursionCases() int {
	r.configLock.Lock()
	n := len(r.recursionDepths)
	r.configLock.Unlock()
	return n * len(recursion.Variants())
}
