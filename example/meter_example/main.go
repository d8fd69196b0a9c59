package main

import (
	"context"
	"time"

	"github.com/algoscope/algoscope/pkg/builder"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := builder.NewLogger(builder.LoggerWithLevel("error"))
	defer logger.Flush()

	// Create a new Meter
	meter := builder.NewMeter[builder.BenchResult](ctx,
		builder.MeterWithIdleTimeout[builder.BenchResult](10*time.Second),
	)

	sensor := builder.NewSensor[builder.BenchResult](
		builder.SensorWithMeter[builder.BenchResult](meter),
	)

	runner := builder.NewBenchRunner(
		builder.BenchRunnerWithLogger(logger),
		builder.BenchRunnerWithSensor(sensor),
		builder.BenchRunnerWithMeter(meter),
		builder.BenchRunnerWithSizes(1000, 5000, 10000),
		builder.BenchRunnerWithShapes(builder.ShapeRandom, builder.ShapeReversed),
		builder.BenchRunnerWithRepeats(3),
	)

	go func() {
		_, _ = runner.RunAll(ctx)
	}()

	// Blocks until every planned case is accounted for, rendering live
	// progress and a final metric report.
	meter.Monitor()
}
