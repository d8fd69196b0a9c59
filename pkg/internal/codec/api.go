package codec

import (
	"encoding/json"
	"io"
)

// Decode reads from an io.Reader, decodes the JSON data, and stores the result in a value of type T.
//
// Parameters:
//   - r: The io.Reader from which JSON data is read.
//
// Returns:
//   - T: The decoded value of type T.
//   - error: An error if decoding fails, otherwise nil.
func (d *JSONDecoder[T]) Decode(r io.Reader) (T, error) {
	var t T
	err := json.NewDecoder(r).Decode(&t)
	return t, err
}

// DecodeSlice reads from an io.Reader, decodes a JSON array, and stores the result in a slice of type T.
//
// Parameters:
//   - r: The io.Reader from which JSON data is read.
//
// Returns:
//   - []T: The decoded slice of type T.
//   - error: An error if decoding fails, otherwise nil.
func (d *JSONDecoder[T]) DecodeSlice(r io.Reader) ([]T, error) {
	var slice []T
	err := json.NewDecoder(r).Decode(&slice)
	return slice, err
}

// Encode writes the JSON encoding of elem to an io.Writer, followed by a newline.
//
// Parameters:
//   - w: The io.Writer to which JSON data is written.
//   - elem: The value of type T to encode.
//
// Returns:
//   - error: An error if encoding fails, otherwise nil.
func (e *JSONEncoder[T]) Encode(w io.Writer, elem T) error {
	return json.NewEncoder(w).Encode(elem)
}

// EncodeSlice writes the JSON encoding of elems as a single array to an io.Writer.
//
// Parameters:
//   - w: The io.Writer to which JSON data is written.
//   - elems: The slice of type T to encode.
//
// Returns:
//   - error: An error if encoding fails, otherwise nil.
func (e *JSONEncoder[T]) EncodeSlice(w io.Writer, elems []T) error {
	return json.NewEncoder(w).Encode(elems)
}
