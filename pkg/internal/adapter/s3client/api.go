package s3client

import (
	"context"
	"time"

	"github.com/algoscope/algoscope/pkg/internal/types"
	"github.com/algoscope/algoscope/pkg/internal/utils"
)

// UploadFile puts a single local file into the bucket and returns the
// rendered key.
//
// Parameters:
//   - ctx: Context bounding the upload, including retries.
//   - localPath: Path of the file to upload; its basename becomes the
//     final key segment.
//
// Returns:
//
//	The object key the file was stored under, or an error if the adapter
//	is unconfigured, stopped, or the put ultimately fails.
func (c *Client) UploadFile(ctx context.Context, localPath string) (string, error) {
	if err := c.ctx.Err(); err != nil {
		return "", err
	}
	cfg := c.config()
	if err := cfg.validate(); err != nil {
		return "", err
	}
	ctx, done := c.bound(ctx)
	defer done()

	prefix := renderPrefix(cfg.prefixTemplate, time.Now(), utils.GenerateUniqueHash())
	return c.putFile(ctx, cfg, prefix, localPath)
}

// UploadRun puts every file of a run under one rendered prefix, so the
// archived formats stay together in the bucket.
//
// Parameters:
//   - ctx: Context bounding the uploads; cancellation stops after the
//     current file.
//   - paths: Local files to upload, typically the paths returned by the
//     archive writer.
//
// Returns:
//
//	The object keys written so far, in input order, and the first error
//	encountered. A nil error means every file was uploaded.
func (c *Client) UploadRun(ctx context.Context, paths []string) ([]string, error) {
	cm := c.GetComponentMetadata()
	if len(paths) == 0 {
		c.NotifyLoggers(types.InfoLevel, "Nothing to upload",
			"component", cm,
			"event", "UploadRun",
		)
		return nil, nil
	}
	if err := c.ctx.Err(); err != nil {
		return nil, err
	}
	cfg := c.config()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	ctx, done := c.bound(ctx)
	defer done()

	prefix := renderPrefix(cfg.prefixTemplate, time.Now(), utils.GenerateUniqueHash())

	var keys []string
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return keys, err
		}
		key, err := c.putFile(ctx, cfg, prefix, p)
		if err != nil {
			return keys, err
		}
		keys = append(keys, key)
	}

	c.NotifyLoggers(types.InfoLevel, "Run upload complete",
		"component", cm,
		"event", "UploadRun",
		"bucket", cfg.bucket,
		"prefix", prefix,
		"files", len(keys),
	)
	return keys, nil
}

// Stop cancels the adapter context. Uploads in flight abort; later
// calls fail with context.Canceled.
func (c *Client) Stop() {
	c.cancel()
	c.NotifyLoggers(types.DebugLevel, "Stop",
		"component", c.GetComponentMetadata(),
		"event", "Stop",
	)
}
