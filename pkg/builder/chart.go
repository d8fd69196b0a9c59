package builder

import (
	"github.com/algoscope/algoscope/pkg/internal/chart"
	"github.com/algoscope/algoscope/pkg/internal/types"
)

// Chart renders the analysis charts into an output directory.
type Chart = types.Chart

// ErrChartOutputDir is returned when the output directory is missing or
// not writable; callers print the remediation hint on it.
var ErrChartOutputDir = chart.ErrOutputDir

// NewChart creates a new chart renderer with the provided configuration options.
func NewChart(options ...types.Option[types.Chart]) types.Chart {
	return chart.NewChart(options...)
}

// ChartWithComponentMetadata adds component metadata overrides.
func ChartWithComponentMetadata(name string, id string) types.Option[types.Chart] {
	return chart.WithComponentMetadata(name, id)
}

// ChartWithLogger adds one or more loggers to the chart renderer.
func ChartWithLogger(logger ...types.Logger) types.Option[types.Chart] {
	return chart.WithLogger(logger...)
}

// ChartWithSensor attaches sensors observing render events.
func ChartWithSensor(sensor ...types.Sensor[string]) types.Option[types.Chart] {
	return chart.WithSensor(sensor...)
}

// ChartWithOutputDir sets the directory the PNG files are written to.
func ChartWithOutputDir(dir string) types.Option[types.Chart] {
	return chart.WithOutputDir(dir)
}

// ChartWithSortingSample overrides the sorting measurement series.
func ChartWithSortingSample(s types.SortingSample) types.Option[types.Chart] {
	return chart.WithSortingSample(s)
}

// ChartWithSearchSample overrides the search measurement series.
func ChartWithSearchSample(s types.SearchSample) types.Option[types.Chart] {
	return chart.WithSearchSample(s)
}

// ChartWithFibonacciSample overrides the fibonacci measurement series.
func ChartWithFibonacciSample(s types.FibonacciSample) types.Option[types.Chart] {
	return chart.WithFibonacciSample(s)
}
