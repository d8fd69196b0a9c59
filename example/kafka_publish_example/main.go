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
	)
	results, err := runner.RunAll(ctx)
	if err != nil {
		fmt.Printf("suite failed: %v\n", err)
		return
	}

	// One JSON message per result, keyed so each category/algorithm pair
	// stays on one partition stream.
	sensor := builder.NewSensor[builder.BenchResult](
		builder.SensorWithOnKafkaProduceSuccessFunc[builder.BenchResult](
			func(c builder.ComponentMetadata, topic string, records int, dur time.Duration) {
				fmt.Printf("produced %d records to %s in %v\n", records, topic, dur)
			},
		),
	)
	pub := builder.NewKafkaPublisher(ctx,
		builder.KafkaClientWithLogger(logger),
		builder.KafkaClientWithSensor(sensor),
		builder.KafkaClientWithConnection([]string{builder.EnvOr("KAFKA_BROKER", "localhost:9092")}, nil),
		builder.KafkaClientWithWriterConfig(builder.KafkaWriterConfig{
			Topic:       builder.EnvOr("KAFKA_TOPIC", "bench.results"),
			Compression: "gzip",
		}),
	)
	defer pub.Close()

	if err := pub.PublishResults(ctx, results); err != nil {
		fmt.Printf("publish failed: %v\n", err)
	}
}
