package builder

import (
	"github.com/algoscope/algoscope/pkg/internal/archive"
	"github.com/algoscope/algoscope/pkg/internal/types"
)

// ArchiveWriter persists benchmark results under a timestamped directory.
type ArchiveWriter = types.ArchiveWriter

// ArchiveFormat selects the serialization of archived results.
type ArchiveFormat = types.ArchiveFormat

const (
	ArchiveFormatParquet ArchiveFormat = types.ArchiveFormatParquet
	ArchiveFormatNDJSON  ArchiveFormat = types.ArchiveFormatNDJSON
)

// CompressionAlgorithm selects the stream compression of NDJSON archives.
type CompressionAlgorithm = types.CompressionAlgorithm

const (
	COMPRESS_NONE   CompressionAlgorithm = archive.COMPRESS_NONE
	COMPRESS_GZIP   CompressionAlgorithm = archive.COMPRESS_GZIP
	COMPRESS_SNAPPY CompressionAlgorithm = archive.COMPRESS_SNAPPY
	COMPRESS_ZSTD   CompressionAlgorithm = archive.COMPRESS_ZSTD
	COMPRESS_BROTLI CompressionAlgorithm = archive.COMPRESS_BROTLI
	COMPRESS_LZ4    CompressionAlgorithm = archive.COMPRESS_LZ4
)

// ErrUnknownCodec is returned for unsupported compression selections.
var ErrUnknownCodec = archive.ErrUnknownCodec

// NewArchiveWriter creates a new archive writer with the provided configuration options.
func NewArchiveWriter(options ...types.Option[types.ArchiveWriter]) types.ArchiveWriter {
	return archive.NewWriter(options...)
}

// ArchiveWriterWithComponentMetadata adds component metadata overrides.
func ArchiveWriterWithComponentMetadata(name string, id string) types.Option[types.ArchiveWriter] {
	return archive.WithComponentMetadata(name, id)
}

// ArchiveWriterWithLogger adds one or more loggers to the archive writer.
func ArchiveWriterWithLogger(logger ...types.Logger) types.Option[types.ArchiveWriter] {
	return archive.WithLogger(logger...)
}

// ArchiveWriterWithSensor attaches sensors observing archive writes.
func ArchiveWriterWithSensor(sensor ...types.Sensor[types.BenchResult]) types.Option[types.ArchiveWriter] {
	return archive.WithSensor(sensor...)
}

// ArchiveWriterWithDir sets the root directory archives are written under.
func ArchiveWriterWithDir(dir string) types.Option[types.ArchiveWriter] {
	return archive.WithDir(dir)
}

// ArchiveWriterWithPrefix sets the directory prefix ahead of the timestamp.
func ArchiveWriterWithPrefix(prefix string) types.Option[types.ArchiveWriter] {
	return archive.WithPrefix(prefix)
}

// ArchiveWriterWithFormats selects the formats written per run.
func ArchiveWriterWithFormats(formats ...ArchiveFormat) types.Option[types.ArchiveWriter] {
	return archive.WithFormats(formats...)
}

// ArchiveWriterWithCompression sets the NDJSON stream compression.
func ArchiveWriterWithCompression(algorithm CompressionAlgorithm) types.Option[types.ArchiveWriter] {
	return archive.WithCompression(algorithm)
}

// ArchiveWriterWithParquetCompression sets the parquet page codec by name.
func ArchiveWriterWithParquetCompression(name string) types.Option[types.ArchiveWriter] {
	return archive.WithParquetCompression(name)
}
