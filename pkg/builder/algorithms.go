package builder

import (
	"github.com/algoscope/algoscope/pkg/internal/recursion"
	"github.com/algoscope/algoscope/pkg/internal/searching"
	"github.com/algoscope/algoscope/pkg/internal/sorting"
)

// SortingAlgorithm is one instrumented sorting implementation.
type SortingAlgorithm = sorting.Algorithm

// SortingStats counts the comparisons and element moves of one sort call.
type SortingStats = sorting.Stats

// SearchAlgorithm is one instrumented search implementation over sorted input.
type SearchAlgorithm = searching.Algorithm

// RecursionVariant is one instrumented fibonacci implementation.
type RecursionVariant = recursion.Variant

// SortingAlgorithms returns the instrumented sorts in presentation order.
func SortingAlgorithms() []SortingAlgorithm {
	return sorting.Algorithms()
}

// SearchAlgorithms returns the instrumented searches in presentation order.
func SearchAlgorithms() []SearchAlgorithm {
	return searching.Algorithms()
}

// RecursionVariants returns the fibonacci variants in presentation order.
func RecursionVariants() []RecursionVariant {
	return recursion.Variants()
}
