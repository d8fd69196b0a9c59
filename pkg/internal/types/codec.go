package types

import "io"

// Decoder deserializes one object from r.
type Decoder[T any] interface {
	Decode(io.Reader) (T, error)
}

// Encoder serializes one object to w.
type Encoder[T any] interface {
	Encode(io.Writer, T) error
}

// JSONDecoder decodes one or many JSON objects.
type JSONDecoder[T any] interface {
	Decode(io.Reader) (T, error)
	DecodeSlice(r io.Reader) ([]T, error)
}

// JSONEncoder encodes one or many JSON objects.
type JSONEncoder[T any] interface {
	Encode(io.Writer, T) error
	EncodeSlice(w io.Writer, elems []T) error
}

// FormatWriterOptions carries per-format knobs for record writers.
type FormatWriterOptions struct {
	// e.g. schema version/hash for T
	SchemaVersion string
	// free-form: {"gzip":"true"}, {"compression":"zstd"}, etc.
	Extra map[string]string
}

// RecordWriter supports streaming write of records (row-at-a-time) to an underlying io.Writer.
type RecordWriter[T any] interface {
	// Begin initializes the writer with the destination sink and options.
	Begin(w io.Writer, opts FormatWriterOptions) error
	// Write one record (buffering allowed internally).
	Write(rec T) error
	// Flush internal buffers (optional for some formats).
	Flush() error
	// Close and finalize the stream (must release resources).
	Close() error
	// ContentType/Ext provide upload metadata and filename extension for the produced stream.
	ContentType() string // e.g. "application/x-ndjson", "application/parquet"
	Ext() string         // e.g. ".ndjson", ".parquet"
}
