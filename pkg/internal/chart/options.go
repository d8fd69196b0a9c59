package chart

import "github.com/algoscope/algoscope/pkg/internal/types"

// WithLogger creates an option to add a logger to a Chart.
//
// Parameters:
//   - logger: One or more logger instances to be added to the Chart for logging.
//
// Returns:
//
//	A function conforming to types.Option[types.Chart] that, when called with a Chart component,
//	connects the specified logger(s) to the Chart.
func WithLogger(logger ...types.Logger) types.Option[types.Chart] {
	return func(c types.Chart) {
		c.ConnectLogger(logger...)
	}
}

// WithSensor creates an option to attach sensors to a Chart.
//
// Parameters:
//   - sensor: One or more sensor instances that observe render events.
//
// Returns:
//
//	A function conforming to types.Option[types.Chart] that, when called with a Chart component,
//	connects the specified sensor(s) to the Chart.
func WithSensor(sensor ...types.Sensor[string]) types.Option[types.Chart] {
	return func(c types.Chart) {
		c.ConnectSensor(sensor...)
	}
}

// WithComponentMetadata creates an option to set custom metadata for a Chart.
//
// Parameters:
//   - name: The name to set for the Chart component, used for identification and logging.
//   - id: The unique identifier to set for the Chart component, used for unique identification across systems.
//
// Returns:
//
//	A function conforming to types.Option[types.Chart], which when called with a Chart component,
//	sets the specified name and id in the component's metadata.
func WithComponentMetadata(name string, id string) types.Option[types.Chart] {
	return func(c types.Chart) {
		c.SetComponentMetadata(name, id)
	}
}

// ---------- Render inputs ----------

// WithOutputDir sets the directory the PNG files are written into.
// args: existing directory path
func WithOutputDir(dir string) types.Option[types.Chart] {
	return func(c types.Chart) { c.SetOutputDir(dir) }
}

// WithSortingSample replaces the built-in sorting measurements.
// args: sizes plus one timing series per algorithm, same length
func WithSortingSample(s types.SortingSample) types.Option[types.Chart] {
	return func(c types.Chart) { c.SetSortingSample(s) }
}

// WithSearchSample replaces the built-in search measurements.
// args: sizes plus linear and binary timings, same length
func WithSearchSample(s types.SearchSample) types.Option[types.Chart] {
	return func(c types.Chart) { c.SetSearchSample(s) }
}

// WithFibonacciSample replaces the built-in fibonacci measurements.
// args: n values plus call counts and timings, same length
func WithFibonacciSample(s types.FibonacciSample) types.Option[types.Chart] {
	return func(c types.Chart) { c.SetFibonacciSample(s) }
}
