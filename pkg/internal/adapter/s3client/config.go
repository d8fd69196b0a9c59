package s3client

import (
	"strings"

	"github.com/algoscope/algoscope/pkg/internal/types"
)

// SetS3ClientDeps wires the S3 client and bucket for the adapter.
func (c *Client) SetS3ClientDeps(d types.S3ClientDeps) {
	c.configLock.Lock()
	defer c.configLock.Unlock()
	c.cli = d.Client
	c.bucket = strings.TrimSpace(d.Bucket)
}

// SetUploadConfig applies upload configuration fields that are
// explicitly set.
func (c *Client) SetUploadConfig(cfg types.S3UploadConfig) {
	c.configLock.Lock()
	defer c.configLock.Unlock()

	if cfg.PrefixTemplate != "" {
		c.prefixTemplate = cfg.PrefixTemplate
	}
	if cfg.SSEMode != "" {
		c.sseMode = cfg.SSEMode
	}
	if cfg.KMSKeyID != "" {
		c.kmsKey = cfg.KMSKeyID
	}
	if cfg.ContentTypeOverride != "" {
		c.contentTypeOverride = cfg.ContentTypeOverride
	}
}
