// Package codec implements the serialization formats benchmark results
// travel through: plain JSON for single values and slices, and
// newline-delimited JSON for streamed record files. Encoders and decoders
// are generic over the element type so the same codecs serve bench
// results, report rows, and fixtures alike.
package codec

import (
	"io"
)

// Decoder deserializes one value of type T from r.
type Decoder[T any] interface {
	Decode(r io.Reader) (T, error)
}

// Encoder serializes one value of type T to w.
type Encoder[T any] interface {
	Encode(w io.Writer, elem T) error
}
