package main

import (
	"context"
	"fmt"
	"time"

	"github.com/algoscope/algoscope/pkg/builder"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := builder.NewLogger(builder.LoggerWithDevelopment(true), builder.LoggerWithLevel("debug"))
	defer logger.Flush()

	// Watch every render through a sensor; the element is the written path.
	sensor := builder.NewSensor[string](
		builder.SensorWithOnChartRenderStartFunc[string](
			func(c builder.ComponentMetadata, name string) {
				fmt.Printf("rendering %s...\n", name)
			},
		),
		builder.SensorWithOnChartSavedFunc[string](
			func(c builder.ComponentMetadata, chart string, path string, bytes int64) {
				fmt.Printf("saved %s (%d bytes)\n", path, bytes)
			},
		),
	)

	chart := builder.NewChart(
		builder.ChartWithLogger(logger),
		builder.ChartWithSensor(sensor),
		builder.ChartWithOutputDir(builder.EnvOr("CHART_OUTPUT_DIR", ".")),
	)

	paths, err := chart.RenderAll(ctx)
	if err != nil {
		fmt.Printf("render failed: %v\n", err)
		return
	}
	fmt.Printf("wrote %d charts\n", len(paths))
}
