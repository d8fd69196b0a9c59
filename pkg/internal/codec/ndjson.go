package codec

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/algoscope/algoscope/pkg/internal/types"
)

// NDJSONEncoder encodes values as newline-delimited JSON, one object per
// line with no surrounding array. Single-value Encode behaves exactly like
// the JSON codec because encoding/json already terminates each value with
// a newline.
type NDJSONEncoder[T any] struct{}

// NDJSONDecoder decodes newline-delimited JSON streams.
type NDJSONDecoder[T any] struct{}

// NewNDJSONEncoder creates a new NDJSONEncoder instance for type T.
func NewNDJSONEncoder[T any]() types.JSONEncoder[T] {
	return &NDJSONEncoder[T]{}
}

// NewNDJSONDecoder creates a new NDJSONDecoder instance for type T.
func NewNDJSONDecoder[T any]() types.JSONDecoder[T] {
	return &NDJSONDecoder[T]{}
}

// Encode writes the JSON encoding of elem followed by a newline.
func (e *NDJSONEncoder[T]) Encode(w io.Writer, elem T) error {
	return json.NewEncoder(w).Encode(elem)
}

// EncodeSlice writes one JSON object per line.
func (e *NDJSONEncoder[T]) EncodeSlice(w io.Writer, elems []T) error {
	enc := json.NewEncoder(w)
	for _, elem := range elems {
		if err := enc.Encode(elem); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads the next value from the stream.
func (d *NDJSONDecoder[T]) Decode(r io.Reader) (T, error) {
	var t T
	err := json.NewDecoder(r).Decode(&t)
	return t, err
}

// DecodeSlice reads line-delimited values until the stream ends. A clean
// end of input is not an error; a truncated value is.
func (d *NDJSONDecoder[T]) DecodeSlice(r io.Reader) ([]T, error) {
	dec := json.NewDecoder(r)
	var out []T
	for {
		var t T
		if err := dec.Decode(&t); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return out, err
		}
		out = append(out, t)
	}
}
