// Package archive persists benchmark runs to local files, one timestamped
// directory per run. Each run writes the configured formats: a Parquet
// file with per-page compression, and an NDJSON stream compressed by a
// selectable codec. WriteResults returns every path it wrote so callers
// can hand them to an uploader.
package archive

import (
	"errors"
	"sync"

	"github.com/algoscope/algoscope/pkg/internal/types"
	"github.com/algoscope/algoscope/pkg/internal/utils"
)

// Stream compression for the NDJSON path. Parquet compresses per page
// through its own codecs and ignores this setting.
const (
	COMPRESS_NONE   types.CompressionAlgorithm = 0
	COMPRESS_GZIP   types.CompressionAlgorithm = 1
	COMPRESS_SNAPPY types.CompressionAlgorithm = 2
	COMPRESS_ZSTD   types.CompressionAlgorithm = 3
	COMPRESS_BROTLI types.CompressionAlgorithm = 4
	COMPRESS_LZ4    types.CompressionAlgorithm = 5
)

// ErrUnknownCodec reports a compression algorithm outside the supported set.
var ErrUnknownCodec = errors.New("unknown compression algorithm")

const (
	defaultDir                = "."
	defaultPrefix             = "benchmarks"
	defaultParquetCompression = "snappy"

	parquetExt          = ".parquet"
	resultSchemaVersion = "1"

	// Run directories sort lexically by start time; millisecond precision
	// keeps back-to-back runs from landing in the same directory.
	timestampLayout = "20060102T150405.000Z"
)

// Writer is the archive component (Type ARCHIVE_WRITER). The zero value is
// not usable; construct with NewWriter.
type Writer struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	// Destination layout and formats. Snapshot under configLock before a
	// write; the write itself works on the copies.
	dir             string
	prefix          string
	formats         []types.ArchiveFormat
	compression     types.CompressionAlgorithm
	parquetCompName string
	configLock      sync.Mutex

	loggers     []types.Logger
	loggersLock sync.Mutex

	sensors    []types.Sensor[types.BenchResult]
	sensorLock sync.Mutex
}

// NewWriter creates a new archive Writer with the provided options. By
// default a run lands under ./benchmarks/<timestamp>/ and writes both the
// Parquet and the uncompressed NDJSON representation.
func NewWriter(options ...types.Option[types.ArchiveWriter]) types.ArchiveWriter {
	w := &Writer{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "ARCHIVE_WRITER",
		},
		dir:    defaultDir,
		prefix: defaultPrefix,
		formats: []types.ArchiveFormat{
			types.ArchiveFormatParquet,
			types.ArchiveFormatNDJSON,
		},
		compression:     COMPRESS_NONE,
		parquetCompName: defaultParquetCompression,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	return w
}
