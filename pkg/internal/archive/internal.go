package archive

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	parquet "github.com/parquet-go/parquet-go"
	"github.com/pierrec/lz4"

	"github.com/algoscope/algoscope/pkg/internal/codec"
	"github.com/algoscope/algoscope/pkg/internal/types"
)

func (w *Writer) config() (dir, prefix string, formats []types.ArchiveFormat, algorithm types.CompressionAlgorithm, parquetName string) {
	w.configLock.Lock()
	defer w.configLock.Unlock()
	formats = make([]types.ArchiveFormat, len(w.formats))
	copy(formats, w.formats)
	return w.dir, w.prefix, formats, w.compression, w.parquetCompName
}

// writeParquet buffers the whole run in memory before writing the file; a
// run is a few hundred rows, not a stream.
func (w *Writer) writeParquet(cm types.ComponentMetadata, runDir, compName string, results []types.BenchResult) (string, error) {
	for _, sensor := range w.snapshotSensors() {
		sensor.InvokeOnArchiveWriteStart(cm, runDir, string(types.ArchiveFormatParquet), compName)
	}

	records := make([]ResultRecord, len(results))
	for i, r := range results {
		records[i] = newRecord(r)
	}

	var buf bytes.Buffer
	pw := parquet.NewGenericWriter[ResultRecord](&buf, parquetCompression(compName))
	if _, err := pw.Write(records); err != nil {
		return "", fmt.Errorf("parquet write: %w", err)
	}
	if err := pw.Close(); err != nil {
		return "", fmt.Errorf("parquet close: %w", err)
	}

	path := filepath.Join(runDir, "results"+parquetExt)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", err
	}

	for _, sensor := range w.snapshotSensors() {
		sensor.InvokeOnArchiveFlush(cm, len(records), buf.Len(), compName)
	}
	w.NotifyLoggers(types.InfoLevel, "Parquet flush",
		"component", cm,
		"event", "ParquetFlush",
		"records", len(records),
		"bytes", buf.Len(),
		"compression", compName,
		"path", path,
	)
	return path, nil
}

func (w *Writer) writeNDJSON(cm types.ComponentMetadata, runDir string, algorithm types.CompressionAlgorithm, compName string, results []types.BenchResult) (string, error) {
	for _, sensor := range w.snapshotSensors() {
		sensor.InvokeOnArchiveWriteStart(cm, runDir, string(types.ArchiveFormatNDJSON), compName)
	}

	ext, err := compressionExt(algorithm)
	if err != nil {
		return "", err
	}

	rw := codec.NewNDJSONRecordWriter[types.BenchResult]()
	path := filepath.Join(runDir, "results"+rw.Ext()+ext)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	cw, err := compressionWriter(f, algorithm)
	if err == nil {
		err = rw.Begin(cw, types.FormatWriterOptions{SchemaVersion: resultSchemaVersion})
	}
	if err == nil {
		for _, r := range results {
			if err = rw.Write(r); err != nil {
				break
			}
		}
	}
	if err == nil {
		err = rw.Close()
	}
	if err == nil {
		err = cw.Close()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", err
	}

	var size int64
	if fi, statErr := os.Stat(path); statErr == nil {
		size = fi.Size()
	}
	for _, sensor := range w.snapshotSensors() {
		sensor.InvokeOnArchiveFlush(cm, len(results), int(size), compName)
	}
	w.NotifyLoggers(types.InfoLevel, "NDJSON flush",
		"component", cm,
		"event", "NDJSONFlush",
		"records", len(results),
		"bytes", size,
		"compression", compName,
		"path", path,
	)
	return path, nil
}

// nopWriteCloser passes writes through for the uncompressed path.
type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func compressionWriter(w io.Writer, algorithm types.CompressionAlgorithm) (io.WriteCloser, error) {
	switch algorithm {
	case COMPRESS_NONE:
		return nopWriteCloser{w}, nil
	case COMPRESS_GZIP:
		return gzip.NewWriter(w), nil
	case COMPRESS_SNAPPY:
		return snappy.NewBufferedWriter(w), nil
	case COMPRESS_ZSTD:
		return zstd.NewWriter(w)
	case COMPRESS_BROTLI:
		return brotli.NewWriterLevel(w, brotli.BestCompression), nil
	case COMPRESS_LZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCodec, algorithm)
	}
}

func compressionExt(algorithm types.CompressionAlgorithm) (string, error) {
	switch algorithm {
	case COMPRESS_NONE:
		return "", nil
	case COMPRESS_GZIP:
		return ".gz", nil
	case COMPRESS_SNAPPY:
		return ".snappy", nil
	case COMPRESS_ZSTD:
		return ".zst", nil
	case COMPRESS_BROTLI:
		return ".br", nil
	case COMPRESS_LZ4:
		return ".lz4", nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownCodec, algorithm)
	}
}

func compressionName(algorithm types.CompressionAlgorithm) (string, error) {
	switch algorithm {
	case COMPRESS_NONE:
		return "none", nil
	case COMPRESS_GZIP:
		return "gzip", nil
	case COMPRESS_SNAPPY:
		return "snappy", nil
	case COMPRESS_ZSTD:
		return "zstd", nil
	case COMPRESS_BROTLI:
		return "brotli", nil
	case COMPRESS_LZ4:
		return "lz4", nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownCodec, algorithm)
	}
}

func parquetCompression(name string) parquet.WriterOption {
	switch strings.ToLower(name) {
	case "zstd":
		return parquet.Compression(&parquet.Zstd)
	case "gzip", "gz":
		return parquet.Compression(&parquet.Gzip)
	case "none", "uncompressed":
		return parquet.Compression(&parquet.Uncompressed)
	default:
		return parquet.Compression(&parquet.Snappy)
	}
}
