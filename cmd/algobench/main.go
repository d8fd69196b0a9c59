package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/algoscope/algoscope/pkg/builder"
)

// Env knobs. Suite settings fall back to the runner defaults; export stages
// stay off until their destination is configured.
const (
	envLogLevel = "ALGOBENCH_LOG_LEVEL"

	envSizes   = "ALGOBENCH_SIZES"
	envShapes  = "ALGOBENCH_SHAPES" // csv: random,sorted,reversed,nearly_sorted
	envRepeats = "ALGOBENCH_REPEATS"
	envCutoff  = "ALGOBENCH_CUTOFF"
	envSeed    = "ALGOBENCH_SEED"
	envDepths  = "ALGOBENCH_DEPTHS"

	envArchive            = "ALGOBENCH_ARCHIVE"
	envArchiveDir         = "ALGOBENCH_ARCHIVE_DIR"
	envArchiveFormats     = "ALGOBENCH_ARCHIVE_FORMATS"     // csv: parquet,ndjson
	envArchiveCompression = "ALGOBENCH_ARCHIVE_COMPRESSION" // none|gzip|snappy|zstd|brotli|lz4

	envS3Bucket    = "ALGOBENCH_S3_BUCKET" // enables upload when set
	envS3Region    = "ALGOBENCH_S3_REGION"
	envS3Endpoint  = "ALGOBENCH_S3_ENDPOINT" // "" for AWS; LocalStack/MinIO otherwise
	envS3AccessKey = "ALGOBENCH_S3_ACCESS_KEY"
	envS3SecretKey = "ALGOBENCH_S3_SECRET_KEY"
	envS3PathStyle = "ALGOBENCH_S3_PATH_STYLE"
	envS3Prefix    = "ALGOBENCH_S3_PREFIX"

	envKafkaBrokers     = "ALGOBENCH_KAFKA_BROKERS" // enables publish when set
	envKafkaTopic       = "ALGOBENCH_KAFKA_TOPIC"
	envKafkaAcks        = "ALGOBENCH_KAFKA_ACKS"
	envKafkaCompression = "ALGOBENCH_KAFKA_COMPRESSION"
	envKafkaKeyTemplate = "ALGOBENCH_KAFKA_KEY_TEMPLATE"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Ctrl+C
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() { <-sigs; fmt.Println("Shutting down..."); cancel() }()

	logger := builder.NewLogger(
		builder.LoggerWithLevel(builder.EnvOr(envLogLevel, "warn")),
	)

	fmt.Println("Algorithm Benchmark Suite")
	fmt.Println(strings.Repeat("=", 40))

	rep := builder.NewReportWriter(
		builder.ReportWriterWithLogger(logger),
		builder.ReportWriterWithHostInfo(true),
	)
	if err := rep.WriteHostInfo(); err != nil {
		logger.Warn("Host info unavailable", "error", err)
	}

	// The meter gets its own context so finishing the dashboard does not
	// cancel the export stages below.
	meterCtx, meterCancel := context.WithCancel(ctx)
	defer meterCancel()
	meter := builder.NewMeter[builder.BenchResult](meterCtx,
		builder.MeterWithIdleTimeout[builder.BenchResult](30*time.Second),
	)

	sensor := builder.NewSensor[builder.BenchResult](
		builder.SensorWithMeter[builder.BenchResult](meter),
		builder.SensorWithOnBenchCaseSkipFunc[builder.BenchResult](
			func(c builder.ComponentMetadata, algorithm string, size int, reason string) {
				logger.Debug("Case skipped", "algorithm", algorithm, "size", size, "reason", reason)
			},
		),
		builder.SensorWithOnBenchSuiteCompleteFunc[builder.BenchResult](
			func(c builder.ComponentMetadata, cases int, elapsed time.Duration) {
				logger.Info("Suite complete", "cases", cases, "elapsed", elapsed)
			},
		),
	)

	opts := []builder.Option[builder.BenchRunner]{
		builder.BenchRunnerWithLogger(logger),
		builder.BenchRunnerWithSensor(sensor),
		builder.BenchRunnerWithMeter(meter),
	}
	if sizes := builder.EnvIntsOr(envSizes, nil); len(sizes) > 0 {
		opts = append(opts, builder.BenchRunnerWithSizes(sizes...))
	}
	if shapes := parseShapes(builder.EnvOr(envShapes, "")); len(shapes) > 0 {
		opts = append(opts, builder.BenchRunnerWithShapes(shapes...))
	}
	if n := builder.EnvIntOr(envRepeats, 0); n > 0 {
		opts = append(opts, builder.BenchRunnerWithRepeats(n))
	}
	if n := builder.EnvIntOr(envCutoff, 0); n > 0 {
		opts = append(opts, builder.BenchRunnerWithQuadraticCutoff(n))
	}
	if seed := builder.EnvIntOr(envSeed, 0); seed != 0 {
		opts = append(opts, builder.BenchRunnerWithSeed(int64(seed)))
	}
	if depths := builder.EnvIntsOr(envDepths, nil); len(depths) > 0 {
		opts = append(opts, builder.BenchRunnerWithRecursionDepths(depths...))
	}
	runner := builder.NewBenchRunner(opts...)

	var (
		results []builder.BenchResult
		runErr  error
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		results, runErr = runner.RunAll(ctx)
	}()
	meter.Monitor()
	<-done

	if len(results) > 0 {
		if err := rep.WriteResults(results); err != nil {
			logger.Error("Result table failed", "error", err)
		}
		if err := rep.WriteSpeedupAnalysis(results); err != nil {
			logger.Error("Speedup analysis failed", "error", err)
		}
	}
	if runErr != nil {
		fmt.Printf("Suite failed: %v\n", runErr)
		return 1
	}

	if builder.EnvBoolOr(envArchive, false) {
		paths, err := archiveResults(ctx, logger, results)
		if err != nil {
			fmt.Printf("Archive failed: %v\n", err)
			return 1
		}
		if len(paths) > 0 {
			fmt.Printf("Archived %d file(s) under %s\n", len(paths), filepath.Dir(paths[0]))
		}

		if bucket := builder.EnvOr(envS3Bucket, ""); bucket != "" {
			keys, err := uploadRun(ctx, logger, bucket, paths)
			if err != nil {
				fmt.Printf("S3 upload failed: %v\n", err)
				return 1
			}
			fmt.Printf("Uploaded %d object(s) to s3://%s\n", len(keys), bucket)
		}
	} else if builder.EnvOr(envS3Bucket, "") != "" {
		logger.Warn("S3 upload needs the archive stage; set ALGOBENCH_ARCHIVE=true")
	}

	if brokers := splitCSV(builder.EnvOr(envKafkaBrokers, "")); len(brokers) > 0 {
		topic := builder.EnvOr(envKafkaTopic, "bench.results")
		if err := publishResults(ctx, logger, brokers, topic, results); err != nil {
			fmt.Printf("Kafka publish failed: %v\n", err)
			return 1
		}
		fmt.Printf("Published %d result(s) to %s\n", len(results), topic)
	}

	return 0
}

func archiveResults(ctx context.Context, logger builder.Logger, results []builder.BenchResult) ([]string, error) {
	opts := []builder.Option[builder.ArchiveWriter]{
		builder.ArchiveWriterWithLogger(logger),
		builder.ArchiveWriterWithDir(builder.EnvOr(envArchiveDir, "runs")),
	}
	if formats := parseFormats(builder.EnvOr(envArchiveFormats, "")); len(formats) > 0 {
		opts = append(opts, builder.ArchiveWriterWithFormats(formats...))
	}
	if algorithm, ok := parseCompression(builder.EnvOr(envArchiveCompression, "")); ok {
		opts = append(opts, builder.ArchiveWriterWithCompression(algorithm))
	}
	return builder.NewArchiveWriter(opts...).WriteResults(ctx, results)
}

func uploadRun(ctx context.Context, logger builder.Logger, bucket string, paths []string) ([]string, error) {
	var (
		region    = builder.EnvOr(envS3Region, "us-east-1")
		endpoint  = builder.EnvOr(envS3Endpoint, "")
		accessKey = builder.EnvOr(envS3AccessKey, "")
		pathStyle = builder.EnvBoolOr(envS3PathStyle, endpoint != "")
	)

	var (
		cli *s3.Client
		err error
	)
	if accessKey != "" {
		cli, err = builder.NewS3ClientStatic(ctx, region, accessKey,
			builder.EnvOr(envS3SecretKey, ""), "", endpoint, pathStyle)
	} else {
		cli, err = builder.NewS3ClientDefault(ctx, region, endpoint, pathStyle)
	}
	if err != nil {
		return nil, err
	}

	opts := []builder.S3ClientOption{
		builder.S3ClientWithLogger(logger),
		builder.S3ClientWithS3ClientDeps(builder.S3ClientDeps{
			Client:         cli,
			Bucket:         bucket,
			ForcePathStyle: pathStyle,
		}),
	}
	if prefix := builder.EnvOr(envS3Prefix, ""); prefix != "" {
		opts = append(opts, builder.S3ClientWithPrefixTemplate(prefix))
	}
	s3c := builder.NewS3Client(ctx, opts...)
	defer s3c.Stop()

	return s3c.UploadRun(ctx, paths)
}

func publishResults(ctx context.Context, logger builder.Logger, brokers []string, topic string, results []builder.BenchResult) error {
	pub := builder.NewKafkaPublisher(ctx,
		builder.KafkaClientWithLogger(logger),
		builder.KafkaClientWithConnection(brokers, nil),
		builder.KafkaClientWithWriterConfig(builder.KafkaWriterConfig{
			Topic:       topic,
			KeyTemplate: builder.EnvOr(envKafkaKeyTemplate, ""),
			Acks:        builder.EnvOr(envKafkaAcks, ""),
			Compression: builder.EnvOr(envKafkaCompression, ""),
		}),
	)
	defer pub.Close()

	return pub.PublishResults(ctx, results)
}

func parseShapes(csv string) []builder.DataShape {
	var shapes []builder.DataShape
	for _, tok := range strings.Split(csv, ",") {
		shape := builder.DataShape(strings.ToLower(strings.TrimSpace(tok)))
		switch shape {
		case builder.ShapeRandom, builder.ShapeSorted, builder.ShapeReversed, builder.ShapeNearlySorted:
			shapes = append(shapes, shape)
		}
	}
	return shapes
}

func parseFormats(csv string) []builder.ArchiveFormat {
	var formats []builder.ArchiveFormat
	for _, tok := range strings.Split(csv, ",") {
		switch strings.ToLower(strings.TrimSpace(tok)) {
		case "parquet":
			formats = append(formats, builder.ArchiveFormatParquet)
		case "ndjson":
			formats = append(formats, builder.ArchiveFormatNDJSON)
		}
	}
	return formats
}

func parseCompression(name string) (builder.CompressionAlgorithm, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none":
		return builder.COMPRESS_NONE, true
	case "gzip":
		return builder.COMPRESS_GZIP, true
	case "snappy":
		return builder.COMPRESS_SNAPPY, true
	case "zstd":
		return builder.COMPRESS_ZSTD, true
	case "brotli":
		return builder.COMPRESS_BROTLI, true
	case "lz4":
		return builder.COMPRESS_LZ4, true
	}
	return builder.COMPRESS_NONE, false
}

func splitCSV(csv string) []string {
	var out []string
	for _, tok := range strings.Split(csv, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
