package main

import (
	"context"
	"fmt"
	"time"

	"github.com/algoscope/algoscope/pkg/builder"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	logger := builder.NewLogger(builder.LoggerWithLevel("warn"))
	defer logger.Flush()

	// Sensors observe the runner without touching the measurements.
	sensor := builder.NewSensor[builder.BenchResult](
		builder.SensorWithOnBenchCaseStartFunc[builder.BenchResult](
			func(c builder.ComponentMetadata, category string, algorithm string, size int, shape string) {
				fmt.Printf("start  %s/%s n=%d %s\n", category, algorithm, size, shape)
			},
		),
		builder.SensorWithOnBenchCaseSkipFunc[builder.BenchResult](
			func(c builder.ComponentMetadata, algorithm string, size int, reason string) {
				fmt.Printf("skip   %s n=%d (%s)\n", algorithm, size, reason)
			},
		),
		builder.SensorWithOnElementProcessedFunc[builder.BenchResult](
			func(c builder.ComponentMetadata, r builder.BenchResult) {
				fmt.Printf("done   %s/%s n=%d in %.3fms\n", r.Category, r.Algorithm, r.Size, r.Millis)
			},
		),
		builder.SensorWithOnBenchSuiteCompleteFunc[builder.BenchResult](
			func(c builder.ComponentMetadata, cases int, elapsed time.Duration) {
				fmt.Printf("suite  %d cases in %v\n", cases, elapsed)
			},
		),
	)

	runner := builder.NewBenchRunner(
		builder.BenchRunnerWithLogger(logger),
		builder.BenchRunnerWithSensor(sensor),
		builder.BenchRunnerWithSizes(500, 5000),
		builder.BenchRunnerWithShapes(builder.ShapeRandom),
		builder.BenchRunnerWithRepeats(1),
		builder.BenchRunnerWithQuadraticCutoff(1000),
	)
	if _, err := runner.RunSorting(ctx); err != nil {
		fmt.Printf("suite failed: %v\n", err)
	}
}
