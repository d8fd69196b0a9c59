package codec

import (
	"github.com/algoscope/algoscope/pkg/internal/types"
)

// JSONEncoder encodes a generic type into JSON.
type JSONEncoder[T any] struct{}

// JSONDecoder decodes JSON into a generic type.
type JSONDecoder[T any] struct{}

// NewJSONDecoder creates a new JSONDecoder instance for type T.
func NewJSONDecoder[T any]() types.JSONDecoder[T] {
	return &JSONDecoder[T]{}
}

// NewJSONEncoder creates a new JSONEncoder instance for type T.
func NewJSONEncoder[T any]() types.JSONEncoder[T] {
	return &JSONEncoder[T]{}
}
