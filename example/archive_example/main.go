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

	runner := builder.NewBenchRunner(
		builder.BenchRunnerWithLogger(logger),
		builder.BenchRunnerWithSizes(100, 1000),
		builder.BenchRunnerWithShapes(builder.ShapeRandom),
		builder.BenchRunnerWithRepeats(2),
		builder.BenchRunnerWithSeed(1),
	)
	results, err := runner.RunAll(ctx)
	if err != nil {
		fmt.Printf("suite failed: %v\n", err)
		return
	}

	// Parquet + zstd-compressed NDJSON side by side, with a sensor watching
	// the writes.
	sensor := builder.NewSensor[builder.BenchResult](
		builder.SensorWithOnArchiveFlushFunc[builder.BenchResult](
			func(c builder.ComponentMetadata, records int, bytes int, compression string) {
				fmt.Printf("flushed %d records (%d bytes, %s)\n", records, bytes, compression)
			},
		),
	)
	aw := builder.NewArchiveWriter(
		builder.ArchiveWriterWithLogger(logger),
		builder.ArchiveWriterWithSensor(sensor),
		builder.ArchiveWriterWithDir(builder.EnvOr("ARCHIVE_DIR", "runs")),
		builder.ArchiveWriterWithFormats(builder.ArchiveFormatParquet, builder.ArchiveFormatNDJSON),
		builder.ArchiveWriterWithCompression(builder.COMPRESS_ZSTD),
	)

	paths, err := aw.WriteResults(ctx, results)
	if err != nil {
		fmt.Printf("archive failed: %v\n", err)
		return
	}
	for _, p := range paths {
		fmt.Println(p)
	}
}
