package archive

import "github.com/algoscope/algoscope/pkg/internal/types"

// GetComponentMetadata returns the component metadata.
func (w *Writer) GetComponentMetadata() types.ComponentMetadata {
	w.metadataLock.Lock()
	defer w.metadataLock.Unlock()
	return w.componentMetadata
}

// SetComponentMetadata overrides the component name and id. The component
// type is fixed at construction.
func (w *Writer) SetComponentMetadata(name string, id string) {
	w.metadataLock.Lock()
	defer w.metadataLock.Unlock()
	w.componentMetadata.Name = name
	w.componentMetadata.ID = id
}

// SetDir sets the root directory runs are archived under. An empty dir
// keeps the current one.
func (w *Writer) SetDir(dir string) {
	if dir == "" {
		return
	}
	w.configLock.Lock()
	defer w.configLock.Unlock()
	w.dir = dir
}

// GetDir returns the root archive directory.
func (w *Writer) GetDir() string {
	w.configLock.Lock()
	defer w.configLock.Unlock()
	return w.dir
}

// SetPrefix sets the path segment between the root directory and the
// timestamped run directories. An empty prefix keeps the current one.
func (w *Writer) SetPrefix(prefix string) {
	if prefix == "" {
		return
	}
	w.configLock.Lock()
	defer w.configLock.Unlock()
	w.prefix = prefix
}

// SetFormats replaces the persisted formats. Formats are written in the
// order given; an unknown format fails the write, not the setter. An
// empty call keeps the current formats.
func (w *Writer) SetFormats(formats ...types.ArchiveFormat) {
	if len(formats) == 0 {
		return
	}
	next := make([]types.ArchiveFormat, len(formats))
	copy(next, formats)

	w.configLock.Lock()
	defer w.configLock.Unlock()
	w.formats = next
}

// SetCompression selects the stream compression for the NDJSON path.
// Validation happens at write time so an unsupported value surfaces as
// ErrUnknownCodec from WriteResults.
func (w *Writer) SetCompression(algorithm types.CompressionAlgorithm) {
	w.configLock.Lock()
	defer w.configLock.Unlock()
	w.compression = algorithm
}

// SetParquetCompression selects the Parquet page codec by name ("snappy",
// "zstd", "gzip", "none"). Unrecognized names fall back to snappy.
func (w *Writer) SetParquetCompression(name string) {
	if name == "" {
		return
	}
	w.configLock.Lock()
	defer w.configLock.Unlock()
	w.parquetCompName = name
}
