package codec

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/algoscope/algoscope/pkg/internal/types"
)

// NDJSONRecordWriter streams records to a sink one JSON object per line.
// Begin must be called before Write. Close flushes buffered lines but does
// not close the underlying writer; the caller owns the sink.
type NDJSONRecordWriter[T any] struct {
	bw  *bufio.Writer
	enc *json.Encoder
}

// NewNDJSONRecordWriter creates an unstarted record writer for type T.
func NewNDJSONRecordWriter[T any]() types.RecordWriter[T] {
	return &NDJSONRecordWriter[T]{}
}

// Begin initializes the writer over dst. FormatWriterOptions carries no
// NDJSON knobs today; the schema rides in every record.
func (w *NDJSONRecordWriter[T]) Begin(dst io.Writer, opts types.FormatWriterOptions) error {
	if dst == nil {
		return fmt.Errorf("ndjson: nil destination writer")
	}
	w.bw = bufio.NewWriter(dst)
	w.enc = json.NewEncoder(w.bw)
	return nil
}

// Write appends one record line.
func (w *NDJSONRecordWriter[T]) Write(rec T) error {
	if w.enc == nil {
		return fmt.Errorf("ndjson: Write called before Begin")
	}
	return w.enc.Encode(rec)
}

// Flush pushes buffered lines to the destination.
func (w *NDJSONRecordWriter[T]) Flush() error {
	if w.bw == nil {
		return nil
	}
	return w.bw.Flush()
}

// Close flushes and detaches from the destination. Closing an unstarted
// or already closed writer is a no-op.
func (w *NDJSONRecordWriter[T]) Close() error {
	if w.bw == nil {
		return nil
	}
	err := w.bw.Flush()
	w.bw = nil
	w.enc = nil
	return err
}

// ContentType reports the MIME type of the produced stream.
func (w *NDJSONRecordWriter[T]) ContentType() string { return "application/x-ndjson" }

// Ext reports the filename extension for the produced stream.
func (w *NDJSONRecordWriter[T]) Ext() string { return ".ndjson" }
