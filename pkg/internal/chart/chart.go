// Package chart renders the four analysis charts from the built-in sample
// measurements: the sorting comparison, the search comparison, the
// fibonacci recursion analysis and the complexity cheatsheet. Rendering is
// gonum/plot over an image canvas; every output is a PNG at a fixed name
// inside the configured output directory. Renderers never print to
// stdout; progress goes to the attached loggers and sensors.
package chart

import (
	"errors"
	"sync"

	"github.com/algoscope/algoscope/pkg/internal/dataset"
	"github.com/algoscope/algoscope/pkg/internal/types"
	"github.com/algoscope/algoscope/pkg/internal/utils"
)

// Fixed output names. The chart set is not configurable; only the output
// directory is.
const (
	SortingAnalysisFile      = "sorting_analysis.png"
	SearchAnalysisFile       = "search_analysis.png"
	FibonacciAnalysisFile    = "fibonacci_analysis.png"
	ComplexityCheatsheetFile = "complexity_cheatsheet.png"
)

// ErrOutputDir reports that the output directory is missing or not
// writable. Callers match it with errors.Is to print remediation.
var ErrOutputDir = errors.New("output directory unavailable")

// Chart is the renderer component (Type CHART_RENDERER). The zero value is
// not usable; construct with NewChart.
type Chart struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	// Render inputs. Snapshot under configLock before building panels;
	// the render itself works on the copies.
	outputDir  string
	sorting    types.SortingSample
	search     types.SearchSample
	fibonacci  types.FibonacciSample
	configLock sync.Mutex

	loggers     []types.Logger
	loggersLock sync.Mutex

	sensors    []types.Sensor[string]
	sensorLock sync.Mutex
}

// NewChart creates a new Chart with the provided options. Without options
// it renders the built-in dataset samples into the current directory.
func NewChart(options ...types.Option[types.Chart]) types.Chart {
	c := &Chart{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "CHART_RENDERER",
		},
		outputDir: ".",
		sorting:   dataset.Sorting(),
		search:    dataset.Search(),
		fibonacci: dataset.Fibonacci(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}
