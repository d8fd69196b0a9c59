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

	logger := builder.NewLogger(builder.LoggerWithDevelopment(true), builder.LoggerWithLevel("debug"))
	defer logger.Flush()

	// Add a file sink
	fileSinkConfig := builder.SinkConfig{
		Type: string(builder.FileSink),
		Config: map[string]interface{}{
			"path": "logs/output.log",
		},
	}
	if err := logger.AddSink("fileSink", fileSinkConfig); err != nil {
		fmt.Printf("Failed to add file sink: %v\n", err)
		return
	}

	// Every component logs through the same adapter; the runner's case
	// events land in both the console and the file.
	runner := builder.NewBenchRunner(
		builder.BenchRunnerWithLogger(logger),
		builder.BenchRunnerWithSizes(100, 500),
		builder.BenchRunnerWithShapes(builder.ShapeRandom),
		builder.BenchRunnerWithRepeats(1),
	)
	if _, err := runner.RunSorting(ctx); err != nil {
		logger.Error("sorting suite failed", "error", err)
	}

	sinks, _ := logger.ListSinks()
	fmt.Printf("active sinks: %v\n", sinks)
}
