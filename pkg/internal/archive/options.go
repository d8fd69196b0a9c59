package archive

import "github.com/algoscope/algoscope/pkg/internal/types"

// WithLogger creates an option to add a logger to a Writer.
//
// Parameters:
//   - logger: One or more logger instances to be added to the Writer for logging.
//
// Returns:
//
//	A function conforming to types.Option[types.ArchiveWriter] that, when called with a Writer component,
//	connects the specified logger(s) to the Writer.
func WithLogger(logger ...types.Logger) types.Option[types.ArchiveWriter] {
	return func(w types.ArchiveWriter) {
		w.ConnectLogger(logger...)
	}
}

// WithSensor creates an option to attach sensors to a Writer.
//
// Parameters:
//   - sensor: One or more sensor instances that observe archive write events.
//
// Returns:
//
//	A function conforming to types.Option[types.ArchiveWriter] that, when called with a Writer component,
//	connects the specified sensor(s) to the Writer.
func WithSensor(sensor ...types.Sensor[types.BenchResult]) types.Option[types.ArchiveWriter] {
	return func(w types.ArchiveWriter) {
		w.ConnectSensor(sensor...)
	}
}

// WithComponentMetadata creates an option to set custom metadata for a Writer.
//
// Parameters:
//   - name: The name to set for the Writer component, used for identification and logging.
//   - id: The unique identifier to set for the Writer component, used for unique identification across systems.
//
// Returns:
//
//	A function conforming to types.Option[types.ArchiveWriter], which when called with a Writer component,
//	sets the specified name and id in the component's metadata.
func WithComponentMetadata(name string, id string) types.Option[types.ArchiveWriter] {
	return func(w types.ArchiveWriter) {
		w.SetComponentMetadata(name, id)
	}
}

// ---------- Destination layout ----------

// WithDir sets the root directory runs are archived under.
// args: directory path, created on first write
func WithDir(dir string) types.Option[types.ArchiveWriter] {
	return func(w types.ArchiveWriter) { w.SetDir(dir) }
}

// WithPrefix sets the path segment between the root directory and the
// timestamped run directories.
// args: path segment, e.g. "benchmarks"
func WithPrefix(prefix string) types.Option[types.ArchiveWriter] {
	return func(w types.ArchiveWriter) { w.SetPrefix(prefix) }
}

// WithFormats replaces the persisted formats.
// args: one or more of ArchiveFormatParquet, ArchiveFormatNDJSON
func WithFormats(formats ...types.ArchiveFormat) types.Option[types.ArchiveWriter] {
	return func(w types.ArchiveWriter) { w.SetFormats(formats...) }
}

// WithCompression selects the stream compression for the NDJSON path.
// args: one of the COMPRESS_* algorithms
func WithCompression(algorithm types.CompressionAlgorithm) types.Option[types.ArchiveWriter] {
	return func(w types.ArchiveWriter) { w.SetCompression(algorithm) }
}

// WithParquetCompression selects the Parquet page codec by name.
// args: "snappy", "zstd", "gzip" or "none"
func WithParquetCompression(name string) types.Option[types.ArchiveWriter] {
	return func(w types.ArchiveWriter) { w.SetParquetCompression(name) }
}
