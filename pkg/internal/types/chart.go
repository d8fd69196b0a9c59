package types

import "context"

// Chart renders the analysis charts for the built-in sample measurements.
// Each Render method writes one PNG inside the configured output directory
// and returns the written path. Renderers never print to stdout; progress
// goes to the attached loggers and sensors.
type Chart interface {
	// RenderSortingAnalysis writes the four-panel sorting comparison
	// (linear, log-log with theory guides, efficient pair, growth bars).
	RenderSortingAnalysis(ctx context.Context) (string, error)

	// RenderSearchAnalysis writes the linear-versus-binary comparison with
	// the per-size slowdown factor panel.
	RenderSearchAnalysis(ctx context.Context) (string, error)

	// RenderFibonacciAnalysis writes the naive-versus-memoized call count
	// and timing panels on a log-scaled axis.
	RenderFibonacciAnalysis(ctx context.Context) (string, error)

	// RenderComplexityCheatsheet writes the Big-O reference chart with
	// shaded input-size bands.
	RenderComplexityCheatsheet(ctx context.Context) (string, error)

	// RenderAll renders the four charts in order, stopping at the first
	// failure, and returns the written paths.
	RenderAll(ctx context.Context) ([]string, error)

	SetOutputDir(dir string)
	GetOutputDir() string
	SetSortingSample(SortingSample)
	SetSearchSample(SearchSample)
	SetFibonacciSample(FibonacciSample)

	ConnectLogger(...Logger)
	ConnectSensor(...Sensor[string])

	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
}
