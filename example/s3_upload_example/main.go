package main

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/algoscope/algoscope/pkg/builder"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	logger := builder.NewLogger(builder.LoggerWithLevel("warn"))
	defer logger.Flush()

	// LocalStack S3 client with static creds
	cli, err := builder.NewS3ClientStatic(
		ctx,
		builder.EnvOr("S3_REGION", "us-east-1"),
		builder.EnvOr("S3_ACCESS_KEY", "test"),
		builder.EnvOr("S3_SECRET_KEY", "test"),
		"",
		builder.EnvOr("S3_ENDPOINT", "http://localhost:4566"),
		true,
	)
	if err != nil {
		fmt.Printf("s3 client: %v\n", err)
		return
	}

	bucket := builder.EnvOr("S3_BUCKET", "algoscope-dev")
	_, _ = cli.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(bucket)})

	// Small suite, archive it, upload the run files.
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

	aw := builder.NewArchiveWriter(
		builder.ArchiveWriterWithLogger(logger),
		builder.ArchiveWriterWithDir("runs"),
		builder.ArchiveWriterWithFormats(builder.ArchiveFormatParquet, builder.ArchiveFormatNDJSON),
		builder.ArchiveWriterWithCompression(builder.COMPRESS_GZIP),
	)
	paths, err := aw.WriteResults(ctx, results)
	if err != nil {
		fmt.Printf("archive failed: %v\n", err)
		return
	}

	uploader := builder.NewS3Client(ctx,
		builder.S3ClientWithLogger(logger),
		builder.S3ClientWithClientAndBucket(cli, bucket),
		builder.S3ClientWithPrefixTemplate("runs/{yyyy}/{MM}/{dd}/{runId}/"),
		builder.S3ClientWithSensor(builder.NewSensor[string](
			builder.SensorWithOnS3PutSuccessFunc[string](
				func(c builder.ComponentMetadata, bucket string, key string, bytes int, dur time.Duration) {
					fmt.Printf("put s3://%s/%s (%d bytes in %v)\n", bucket, key, bytes, dur)
				},
			),
		)),
	)
	defer uploader.Stop()

	keys, err := uploader.UploadRun(ctx, paths)
	if err != nil {
		fmt.Printf("upload failed: %v\n", err)
		return
	}
	fmt.Printf("uploaded %d object(s)\n", len(keys))
}
