// pkg/internal/types/s3_adapter.go
package types

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Common S3 client wiring (no envs)
type S3ClientDeps struct {
	Client         *s3.Client // required; caller constructs (LocalStack, AWS, MinIO, etc.)
	Bucket         string     // required
	ForcePathStyle bool       // default true for emulators
}

// S3UploadConfig controls key layout and object metadata for uploaded runs.
type S3UploadConfig struct {
	// PrefixTemplate lays out keys, e.g. "runs/{yyyy}/{MM}/{dd}/{runId}/".
	PrefixTemplate string

	// Server-side encryption
	SSEMode  string // "" | "AES256" | "aws:kms"
	KMSKeyID string // used when SSEMode=="aws:kms"

	// ContentTypeOverride forces a content type; empty derives from extension.
	ContentTypeOverride string
}

// S3ClientAdapter uploads archived run files to S3-compatible storage.
// Sensors observe each put with the rendered key as the element.
type S3ClientAdapter interface {
	SetS3ClientDeps(S3ClientDeps)
	SetUploadConfig(S3UploadConfig)

	// UploadFile puts a single local file and returns the rendered key.
	UploadFile(ctx context.Context, path string) (string, error)

	// UploadRun puts every file of a run under one key prefix.
	UploadRun(ctx context.Context, paths []string) ([]string, error)

	Stop()
	ConnectLogger(...Logger)
	ConnectSensor(...Sensor[string])
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
}

// S3ClientOption configures an S3ClientAdapter.
type S3ClientOption func(S3ClientAdapter)
