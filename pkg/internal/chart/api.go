package chart

import (
	"context"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/algoscope/algoscope/pkg/internal/types"
)

// RenderSortingAnalysis writes the four-panel sorting comparison: linear
// scale, log-log scale with theoretical guides, the efficient pair only,
// and the growth-rate bars.
func (c *Chart) RenderSortingAnalysis(ctx context.Context) (string, error) {
	return c.render(ctx, "sorting_analysis", SortingAnalysisFile, 12*vg.Inch, 8*vg.Inch, c.sortingPanels)
}

// RenderSearchAnalysis writes the linear-versus-binary comparison with the
// per-size slowdown factor panel.
func (c *Chart) RenderSearchAnalysis(ctx context.Context) (string, error) {
	return c.render(ctx, "search_analysis", SearchAnalysisFile, 10*vg.Inch, 6*vg.Inch, c.searchPanels)
}

// RenderFibonacciAnalysis writes the naive-versus-memoized call count and
// timing panels on log-scaled axes.
func (c *Chart) RenderFibonacciAnalysis(ctx context.Context) (string, error) {
	return c.render(ctx, "fibonacci_analysis", FibonacciAnalysisFile, 12*vg.Inch, 5*vg.Inch, c.fibonacciPanels)
}

// RenderComplexityCheatsheet writes the Big-O reference chart with shaded
// input-size bands.
func (c *Chart) RenderComplexityCheatsheet(ctx context.Context) (string, error) {
	return c.render(ctx, "complexity_cheatsheet", ComplexityCheatsheetFile, 12*vg.Inch, 8*vg.Inch, c.cheatsheetPanels)
}

// RenderAll renders the four charts in order, stopping at the first
// failure, and returns the written paths.
func (c *Chart) RenderAll(ctx context.Context) ([]string, error) {
	renders := []func(context.Context) (string, error){
		c.RenderSortingAnalysis,
		c.RenderSearchAnalysis,
		c.RenderFibonacciAnalysis,
		c.RenderComplexityCheatsheet,
	}

	var paths []string
	for _, render := range renders {
		path, err := render(ctx)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// render runs one chart build and carries the shared lifecycle: sensor
// hooks, logging, and the output write.
func (c *Chart) render(ctx context.Context, name, file string, width, height vg.Length, build func() ([][]*plot.Plot, error)) (string, error) {
	cm := c.GetComponentMetadata()
	if err := ctx.Err(); err != nil {
		return "", err
	}

	for _, sensor := range c.snapshotSensors() {
		sensor.InvokeOnChartRenderStart(cm, name)
	}
	c.NotifyLoggers(types.DebugLevel, "Render starting",
		"component", cm,
		"event", "Render",
		"chart", name,
	)

	path := filepath.Join(c.GetOutputDir(), file)
	plots, err := build()
	var size int64
	if err == nil {
		size, err = writePNG(path, plots, width, height)
	}
	if err != nil {
		for _, sensor := range c.snapshotSensors() {
			sensor.InvokeOnChartRenderError(cm, name, err)
		}
		c.NotifyLoggers(types.ErrorLevel, "Render failed",
			"component", cm,
			"event", "Render",
			"chart", name,
			"error", err,
		)
		return "", err
	}

	for _, sensor := range c.snapshotSensors() {
		sensor.InvokeOnChartSaved(cm, name, path, size)
	}
	c.NotifyLoggers(types.InfoLevel, "Chart saved",
		"component", cm,
		"event", "Render",
		"chart", name,
		"path", path,
		"bytes", size,
	)
	return path, nil
}
