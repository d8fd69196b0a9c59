package builder

import (
	"github.com/algoscope/algoscope/pkg/internal/codec"
	"github.com/algoscope/algoscope/pkg/internal/types"
)

// NewJSONEncoder creates a new JSONEncoder.
func NewJSONEncoder[T any]() types.JSONEncoder[T] {
	return codec.NewJSONEncoder[T]()
}

// NewJSONDecoder creates a new JSONDecoder.
func NewJSONDecoder[T any]() types.JSONDecoder[T] {
	return codec.NewJSONDecoder[T]()
}

// NewNDJSONEncoder creates an encoder that writes one JSON object per line.
func NewNDJSONEncoder[T any]() types.JSONEncoder[T] {
	return codec.NewNDJSONEncoder[T]()
}

// NewNDJSONDecoder creates a decoder for newline-delimited JSON streams.
func NewNDJSONDecoder[T any]() types.JSONDecoder[T] {
	return codec.NewNDJSONDecoder[T]()
}

// NewNDJSONRecordWriter creates a record writer with Begin/Write/End framing.
func NewNDJSONRecordWriter[T any]() types.RecordWriter[T] {
	return codec.NewNDJSONRecordWriter[T]()
}
