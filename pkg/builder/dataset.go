package builder

import (
	"github.com/algoscope/algoscope/pkg/internal/dataset"
	"github.com/algoscope/algoscope/pkg/internal/types"
)

// SortingSample returns the built-in sorting measurement series.
func SortingSample() types.SortingSample {
	return dataset.Sorting()
}

// SearchSample returns the built-in search measurement series.
func SearchSample() types.SearchSample {
	return dataset.Search()
}

// FibonacciSample returns the built-in fibonacci measurement series.
func FibonacciSample() types.FibonacciSample {
	return dataset.Fibonacci()
}

// GrowthRatios returns the ratio of each element to its predecessor.
func GrowthRatios(series []float64) []float64 {
	return dataset.GrowthRatios(series)
}

// Ratio divides num by den elementwise.
func Ratio(num, den []float64) []float64 {
	return dataset.Ratio(num, den)
}
