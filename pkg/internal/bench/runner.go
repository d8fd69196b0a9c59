// Package bench implements the sequential benchmark runner over the
// instrumented algorithm kits. Cases run back to back on the calling
// goroutine so wall-clock timings stay comparable, and every input slice is
// regenerated from a fixed seed, so two runs with the same configuration
// measure identical data. One BenchResult is emitted per case and fanned out
// to connected sensors; connected meters receive the planned case count so
// progress displays can track the suite to completion.
package bench

import (
	"sync"

	"github.com/algoscope/algoscope/pkg/internal/types"
	"github.com/algoscope/algoscope/pkg/internal/utils"
)

const (
	defaultRepeats         = 1
	defaultQuadraticCutoff = 10000
	defaultSeed            = 1
)

// Runner sequentially benchmarks the sorting, searching and recursion kits.
type Runner struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	// Case grid configuration. Snapshot under configLock before a suite
	// starts; the run itself works on the copies.
	sizes           []int
	shapes          []types.DataShape
	recursionDepths []int
	repeats         int
	quadraticCutoff int
	seed            int64
	configLock      sync.Mutex

	loggers     []types.Logger
	loggersLock sync.Mutex

	sensors    []types.Sensor[types.BenchResult]
	sensorLock sync.Mutex

	meters     []types.Meter[types.BenchResult]
	metersLock sync.Mutex
}

// NewRunner creates a benchmark runner with the default case grid: sizes
// 1000 through 20000, all four input shapes, fibonacci arguments 10 through
// 30, one repeat per case and the quadratic cutoff at 10000 elements.
func NewRunner(options ...types.Option[types.BenchRunner]) types.BenchRunner {
	r := &Runner{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "BENCH_RUNNER",
		},
		sizes: []int{1000, 2000, 5000, 10000, 20000},
		shapes: []types.DataShape{
			types.ShapeRandom,
			types.ShapeSorted,
			types.ShapeReversed,
			types.ShapeNearlySorted,
		},
		recursionDepths: []int{10, 15, 20, 25, 30},
		repeats:         defaultRepeats,
		quadraticCutoff: defaultQuadraticCutoff,
		seed:            defaultSeed,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	return r
}
