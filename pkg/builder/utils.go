package builder

import (
	"github.com/algoscope/algoscope/pkg/internal/utils"
)

// Map applies a function to each element in the slice.
func Map[T any](elems []T, f func(T) T) []T {
	return utils.Map[T](elems, f)
}

// Filter returns a new slice holding only the elements of elems that satisfy f().
func Filter[T any](elems []T, f func(T) bool) []T {
	return utils.Filter[T](elems, f)
}

// Contains reports whether element is present in slice.
func Contains[T comparable](slice []T, element T) bool {
	return utils.Contains[T](slice, element)
}
