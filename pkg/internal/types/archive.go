package types

import "context"

// CompressionAlgorithm selects the stream compression applied to archived
// NDJSON output. Parquet output compresses per page via its own codecs.
type CompressionAlgorithm int

// ArchiveFormat names a persisted result representation.
type ArchiveFormat string

const (
	ArchiveFormatParquet ArchiveFormat = "parquet"
	ArchiveFormatNDJSON  ArchiveFormat = "ndjson"
)

// ArchiveWriter persists benchmark runs to local files, one timestamped
// directory per run. WriteResults returns every path it wrote.
type ArchiveWriter interface {
	WriteResults(ctx context.Context, results []BenchResult) ([]string, error)

	SetDir(dir string)
	GetDir() string
	SetPrefix(prefix string)
	SetFormats(formats ...ArchiveFormat)
	SetCompression(algorithm CompressionAlgorithm)
	SetParquetCompression(name string)

	ConnectLogger(...Logger)
	ConnectSensor(...Sensor[BenchResult])

	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
}
