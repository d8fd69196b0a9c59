package main

import (
	"context"
	"fmt"
	"time"

	"github.com/algoscope/algoscope/pkg/builder"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	logger := builder.NewLogger(builder.LoggerWithLevel("warn"))
	defer logger.Flush()

	// Small grid so the demo finishes quickly.
	runner := builder.NewBenchRunner(
		builder.BenchRunnerWithLogger(logger),
		builder.BenchRunnerWithSizes(100, 1000, 5000),
		builder.BenchRunnerWithShapes(builder.ShapeRandom, builder.ShapeReversed),
		builder.BenchRunnerWithRepeats(3),
		builder.BenchRunnerWithQuadraticCutoff(2000),
		builder.BenchRunnerWithSeed(42),
		builder.BenchRunnerWithRecursionDepths(10, 20, 25),
	)

	results, err := runner.RunAll(ctx)
	if err != nil {
		fmt.Printf("suite failed: %v\n", err)
		return
	}

	rep := builder.NewReportWriter(
		builder.ReportWriterWithLogger(logger),
	)
	if err := rep.WriteResults(results); err != nil {
		fmt.Printf("report failed: %v\n", err)
		return
	}
	if err := rep.WriteSpeedupAnalysis(results); err != nil {
		fmt.Printf("speedup analysis failed: %v\n", err)
	}
}
