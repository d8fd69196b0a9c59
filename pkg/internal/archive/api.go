package archive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/algoscope/algoscope/pkg/internal/types"
)

// WriteResults persists one benchmark run under a fresh timestamped
// directory and returns the paths it wrote, in configured format order.
// An empty run writes nothing and returns no paths. On error the paths
// written so far are returned alongside the error.
func (w *Writer) WriteResults(ctx context.Context, results []types.BenchResult) ([]string, error) {
	cm := w.GetComponentMetadata()
	if len(results) == 0 {
		w.NotifyLoggers(types.InfoLevel, "Nothing to archive",
			"component", cm,
			"event", "WriteResults",
		)
		return nil, nil
	}

	dir, prefix, formats, algorithm, parquetName := w.config()
	compName, err := compressionName(algorithm)
	if err != nil {
		return nil, err
	}

	runDir := filepath.Join(dir, prefix, time.Now().UTC().Format(timestampLayout))
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return nil, fmt.Errorf("create run directory: %w", err)
	}

	var paths []string
	for _, format := range formats {
		if err := ctx.Err(); err != nil {
			return paths, err
		}

		var path string
		switch format {
		case types.ArchiveFormatParquet:
			path, err = w.writeParquet(cm, runDir, parquetName, results)
		case types.ArchiveFormatNDJSON:
			path, err = w.writeNDJSON(cm, runDir, algorithm, compName, results)
		default:
			err = fmt.Errorf("unknown archive format %q", format)
		}
		if err != nil {
			w.NotifyLoggers(types.ErrorLevel, "Archive write failed",
				"component", cm,
				"event", "WriteResults",
				"format", format,
				"error", err,
			)
			for _, sensor := range w.snapshotSensors() {
				sensor.InvokeOnError(cm, err, types.BenchResult{})
			}
			return paths, err
		}
		paths = append(paths, path)
	}

	for _, sensor := range w.snapshotSensors() {
		sensor.InvokeOnArchiveWriteStop(cm)
	}
	w.NotifyLoggers(types.InfoLevel, "Archive run complete",
		"component", cm,
		"event", "WriteResults",
		"dir", runDir,
		"files", len(paths),
	)
	return paths, nil
}
