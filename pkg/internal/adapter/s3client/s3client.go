// Package s3client uploads archived benchmark runs to S3-compatible
// storage. The adapter does not construct its own AWS client; callers
// inject an *s3.Client and bucket (builder helpers cover static
// credentials, assume-role and endpoint overrides for LocalStack or
// MinIO). Keys are rendered from a prefix template plus the local file
// basename, so one run's files stay together under one prefix.
package s3client

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/algoscope/algoscope/pkg/internal/types"
	"github.com/algoscope/algoscope/pkg/internal/utils"
)

const defaultPrefixTemplate = "benchmarks/{yyyy}/{MM}/{dd}/{ts}/"

// Client is the uploader component (Type S3_CLIENT). The zero value is
// not usable; construct with NewClient.
type Client struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	ctx    context.Context
	cancel context.CancelFunc

	// Connection deps and key layout. Snapshot under configLock; the
	// upload itself works on the copies.
	cli                 *s3.Client
	bucket              string
	prefixTemplate      string
	sseMode             string
	kmsKey              string
	contentTypeOverride string
	configLock          sync.Mutex

	loggers     []types.Logger
	loggersLock sync.Mutex

	sensors    []types.Sensor[string]
	sensorLock sync.Mutex
}

// NewClient creates a new upload Client with the provided options. The
// constructor context bounds every upload; Stop cancels it.
func NewClient(ctx context.Context, options ...types.S3ClientOption) types.S3ClientAdapter {
	ctx, cancel := context.WithCancel(ctx)

	c := &Client{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "S3_CLIENT",
		},
		ctx:            ctx,
		cancel:         cancel,
		prefixTemplate: defaultPrefixTemplate,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}
