package s3client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/algoscope/algoscope/pkg/internal/types"
)

const (
	defaultMaxAttempts   = 5
	defaultBaseBackoff   = 100 * time.Millisecond
	defaultMaxBackoff    = 3 * time.Second
	defaultJitterEnabled = true
)

var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

type uploadConfig struct {
	cli                 *s3.Client
	bucket              string
	prefixTemplate      string
	sseMode             string
	kmsKey              string
	contentTypeOverride string
}

func (c *Client) config() uploadConfig {
	c.configLock.Lock()
	defer c.configLock.Unlock()
	return uploadConfig{
		cli:                 c.cli,
		bucket:              c.bucket,
		prefixTemplate:      c.prefixTemplate,
		sseMode:             c.sseMode,
		kmsKey:              c.kmsKey,
		contentTypeOverride: c.contentTypeOverride,
	}
}

func (cfg uploadConfig) validate() error {
	if cfg.cli == nil || cfg.bucket == "" {
		return fmt.Errorf("s3 client and bucket must be configured before upload")
	}
	return nil
}

// bound derives an upload context that also ends when Stop cancels the
// adapter context.
func (c *Client) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(c.ctx, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

// renderPrefix expands the template placeholders against one instant, so
// every key rendered from the result shares the same prefix.
func renderPrefix(template string, now time.Time, runID string) string {
	ts := now.UTC()
	repl := map[string]string{
		"{yyyy}":  ts.Format("2006"),
		"{MM}":    ts.Format("01"),
		"{dd}":    ts.Format("02"),
		"{HH}":    ts.Format("15"),
		"{mm}":    ts.Format("04"),
		"{ts}":    fmt.Sprintf("%d", ts.UnixMilli()),
		"{runId}": runID,
	}
	prefix := template
	for k, v := range repl {
		prefix = strings.ReplaceAll(prefix, k, v)
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix
}

func (c *Client) putFile(ctx context.Context, cfg uploadConfig, prefix, localPath string) (string, error) {
	cm := c.GetComponentMetadata()

	data, err := os.ReadFile(localPath)
	if err != nil {
		c.NotifyLoggers(types.ErrorLevel, "Upload read failed",
			"component", cm,
			"event", "Upload",
			"path", localPath,
			"error", err,
		)
		return "", err
	}

	key := path.Join(prefix, filepath.Base(localPath))
	ct := cfg.contentTypeOverride
	if ct == "" {
		ct = contentTypeFor(localPath)
	}

	put := &s3.PutObjectInput{
		Bucket:      aws.String(cfg.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(ct),
	}
	switch strings.ToLower(cfg.sseMode) {
	case "aes256":
		put.ServerSideEncryption = s3types.ServerSideEncryptionAes256
	case "aws:kms":
		put.ServerSideEncryption = s3types.ServerSideEncryptionAwsKms
		if cfg.kmsKey != "" {
			put.SSEKMSKeyId = aws.String(cfg.kmsKey)
		}
	}

	dur, err := c.putWithRetry(ctx, cfg, put, key, len(data))
	if err != nil {
		return "", err
	}

	c.NotifyLoggers(types.InfoLevel, "Upload complete",
		"component", cm,
		"event", "Upload",
		"bucket", cfg.bucket,
		"key", key,
		"bytes", len(data),
		"duration", dur,
	)
	return key, nil
}

func (c *Client) putWithRetry(ctx context.Context, cfg uploadConfig, put *s3.PutObjectInput, key string, payloadSize int) (time.Duration, error) {
	cm := c.GetComponentMetadata()
	rs, ok := put.Body.(io.ReadSeeker)
	if !ok {
		return 0, fmt.Errorf("putWithRetry requires io.ReadSeeker body")
	}

	var lastErr error
	for attempt := 1; attempt <= defaultMaxAttempts; attempt++ {
		if _, err := rs.Seek(0, io.SeekStart); err != nil {
			return 0, err
		}

		for _, sensor := range c.snapshotSensors() {
			sensor.InvokeOnS3PutAttempt(cm, cfg.bucket, key, payloadSize)
		}

		start := time.Now()
		_, err := cfg.cli.PutObject(ctx, put)
		dur := time.Since(start)
		if err == nil {
			for _, sensor := range c.snapshotSensors() {
				sensor.InvokeOnS3PutSuccess(cm, cfg.bucket, key, payloadSize, dur)
			}
			return dur, nil
		}

		lastErr = err
		c.NotifyLoggers(types.WarnLevel, "PutObject retry",
			"component", cm,
			"event", "PutObject",
			"attempt", attempt,
			"max_attempts", defaultMaxAttempts,
			"key", key,
			"error", err,
		)

		if !isRetryable(err) || attempt == defaultMaxAttempts || ctx.Err() != nil {
			for _, sensor := range c.snapshotSensors() {
				sensor.InvokeOnS3PutError(cm, cfg.bucket, key, err)
			}
			c.NotifyLoggers(types.ErrorLevel, "PutObject failed",
				"component", cm,
				"event", "PutObject",
				"attempts", attempt,
				"key", key,
				"error", err,
			)
			return 0, err
		}

		select {
		case <-time.After(backoffDuration(attempt)):
		case <-ctx.Done():
			for _, sensor := range c.snapshotSensors() {
				sensor.InvokeOnS3PutError(cm, cfg.bucket, key, ctx.Err())
			}
			return 0, ctx.Err()
		}
	}

	return 0, lastErr
}

func backoffDuration(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := defaultBaseBackoff << (attempt - 1)
	if d > defaultMaxBackoff {
		d = defaultMaxBackoff
	}
	if defaultJitterEnabled {
		return time.Duration(rng.Int63n(int64(d) + 1))
	}
	return d
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "throttl"),
		strings.Contains(msg, "slowdown"),
		strings.Contains(msg, "timeout"),
		strings.Contains(msg, "tempor"),
		strings.Contains(msg, "connection reset"),
		strings.Contains(msg, "eof"),
		strings.Contains(msg, "internalerror"),
		strings.Contains(msg, "service unavailable"),
		strings.Contains(msg, "503"),
		strings.Contains(msg, "500"):
		return true
	default:
		return false
	}
}

func contentTypeFor(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".parquet":
		return "application/parquet"
	case ".ndjson":
		return "application/x-ndjson"
	case ".json":
		return "application/json"
	case ".png":
		return "image/png"
	case ".gz":
		return "application/gzip"
	case ".zst":
		return "application/zstd"
	default:
		return "application/octet-stream"
	}
}
