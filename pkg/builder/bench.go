package builder

import (
	"github.com/algoscope/algoscope/pkg/internal/bench"
	"github.com/algoscope/algoscope/pkg/internal/types"
)

// BenchResult is one measured case of the benchmark suite.
type BenchResult = types.BenchResult

// BenchRunner measures the instrumented algorithm kits sequentially.
type BenchRunner = types.BenchRunner

// DataShape selects the initial ordering of generated benchmark inputs.
type DataShape = types.DataShape

const (
	ShapeRandom       DataShape = types.ShapeRandom
	ShapeSorted       DataShape = types.ShapeSorted
	ShapeReversed     DataShape = types.ShapeReversed
	ShapeNearlySorted DataShape = types.ShapeNearlySorted
)

// NewBenchRunner creates a new benchmark runner with the provided configuration options.
func NewBenchRunner(options ...types.Option[types.BenchRunner]) types.BenchRunner {
	return bench.NewRunner(options...)
}

// BenchRunnerWithComponentMetadata adds component metadata overrides.
func BenchRunnerWithComponentMetadata(name string, id string) types.Option[types.BenchRunner] {
	return bench.WithComponentMetadata(name, id)
}

// BenchRunnerWithLogger adds one or more loggers to the runner.
func BenchRunnerWithLogger(logger ...types.Logger) types.Option[types.BenchRunner] {
	return bench.WithLogger(logger...)
}

// BenchRunnerWithSensor attaches sensors observing case lifecycle events.
func BenchRunnerWithSensor(sensor ...types.Sensor[types.BenchResult]) types.Option[types.BenchRunner] {
	return bench.WithSensor(sensor...)
}

// BenchRunnerWithMeter attaches progress meters updated per case.
func BenchRunnerWithMeter(meter ...types.Meter[types.BenchResult]) types.Option[types.BenchRunner] {
	return bench.WithMeter(meter...)
}

// BenchRunnerWithSizes sets the input sizes of the sorting and searching grids.
func BenchRunnerWithSizes(sizes ...int) types.Option[types.BenchRunner] {
	return bench.WithSizes(sizes...)
}

// BenchRunnerWithShapes sets the input orderings benchmarked per size.
func BenchRunnerWithShapes(shapes ...DataShape) types.Option[types.BenchRunner] {
	return bench.WithShapes(shapes...)
}

// BenchRunnerWithRepeats sets how often each case runs; the fastest run wins.
func BenchRunnerWithRepeats(n int) types.Option[types.BenchRunner] {
	return bench.WithRepeats(n)
}

// BenchRunnerWithQuadraticCutoff skips quadratic sorts above n elements.
func BenchRunnerWithQuadraticCutoff(n int) types.Option[types.BenchRunner] {
	return bench.WithQuadraticCutoff(n)
}

// BenchRunnerWithSeed fixes the input generator seed for reproducible runs.
func BenchRunnerWithSeed(seed int64) types.Option[types.BenchRunner] {
	return bench.WithSeed(seed)
}

// BenchRunnerWithRecursionDepths sets the fibonacci argument values.
func BenchRunnerWithRecursionDepths(n ...int) types.Option[types.BenchRunner] {
	return bench.WithRecursionDepths(n...)
}
