package bench

import "github.com/algoscope/algoscope/pkg/internal/types"

// WithLogger creates an option to add a logger to a Runner.
//
// Parameters:
//   - logger: One or more logger instances to be added to the Runner for logging.
//
// Returns:
//
//	A function conforming to types.Option[types.BenchRunner] that, when called with a Runner component,
//	connects the specified logger(s) to the Runner.
func WithLogger(logger ...types.Logger) types.Option[types.BenchRunner] {
	return func(r types.BenchRunner) {
		r.ConnectLogger(logger...)
	}
}

// WithSensor creates an option to attach sensors to a Runner.
//
// Parameters:
//   - sensor: One or more sensor instances that observe benchmark lifecycle events.
//
// Returns:
//
//	A function conforming to types.Option[types.BenchRunner] that, when called with a Runner component,
//	connects the specified sensor(s) to the Runner.
func WithSensor(sensor ...types.Sensor[types.BenchResult]) types.Option[types.BenchRunner] {
	return func(r types.BenchRunner) {
		r.ConnectSensor(sensor...)
	}
}

// WithMeter creates an option to connect a meter to a Runner.
//
// Parameters:
//   - meter: One or more meter instances that receive the planned case count at suite start.
//
// Returns:
//
//	A function conforming to types.Option[types.BenchRunner] that, when called with a Runner component,
//	connects the specified meter(s) to the Runner.
func WithMeter(meter ...types.Meter[types.BenchResult]) types.Option[types.BenchRunner] {
	return func(r types.BenchRunner) {
		r.ConnectMeter(meter...)
	}
}

// WithComponentMetadata creates an option to set custom metadata for a Runner.
//
// Parameters:
//   - name: The name to set for the Runner component, used for identification and logging.
//   - id: The unique identifier to set for the Runner component, used for unique identification across systems.
//
// Returns:
//
//	A function conforming to types.Option[types.BenchRunner], which when called with a Runner component,
//	sets the specified name and id in the component's metadata.
func WithComponentMetadata(name string, id string) types.Option[types.BenchRunner] {
	return func(r types.BenchRunner) {
		r.SetComponentMetadata(name, id)
	}
}

// ---------- Case grid ----------

// WithSizes sets the input sizes benchmarked per algorithm.
// args: one or more positive element counts
func WithSizes(sizes ...int) types.Option[types.BenchRunner] {
	return func(r types.BenchRunner) { r.SetSizes(sizes) }
}

// WithShapes sets the input orderings benchmarked per size.
// args: one or more of ShapeRandom, ShapeSorted, ShapeReversed, ShapeNearlySorted
func WithShapes(shapes ...types.DataShape) types.Option[types.BenchRunner] {
	return func(r types.BenchRunner) { r.SetShapes(shapes) }
}

// WithRepeats sets how many times each case is measured; the fastest repeat
// is reported.
// args: repeat count, clamped to at least one
func WithRepeats(n int) types.Option[types.BenchRunner] {
	return func(r types.BenchRunner) { r.SetRepeats(n) }
}

// WithQuadraticCutoff sets the largest input size the quadratic sorts still
// run at.
// args: element count above which O(n²) cases are skipped
func WithQuadraticCutoff(n int) types.Option[types.BenchRunner] {
	return func(r types.BenchRunner) { r.SetQuadraticCutoff(n) }
}

// WithSeed reseeds the deterministic input generator.
// args: seed shared by every generated input slice
func WithSeed(seed int64) types.Option[types.BenchRunner] {
	return func(r types.BenchRunner) { r.SetSeed(seed) }
}

// WithRecursionDepths sets the fibonacci arguments for the recursion suite.
// args: one or more non-negative n values
func WithRecursionDepths(n ...int) types.Option[types.BenchRunner] {
	return func(r types.BenchRunner) { r.SetRecursionDepths(n) }
}
