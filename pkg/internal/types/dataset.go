package types

// SortingSample holds measured sort timings for a shared set of input sizes.
// All slices are parallel: Bubble[i] is the measured time for Sizes[i].
type SortingSample struct {
	Sizes     []int     // Input sizes the timings were measured at.
	Bubble    []float64 // Bubble sort, milliseconds.
	Insertion []float64 // Insertion sort, milliseconds.
	Merge     []float64 // Merge sort, milliseconds.
	Quick     []float64 // Quick sort, milliseconds.
}

// SearchSample holds measured search timings for a shared set of input sizes.
type SearchSample struct {
	Sizes  []int     // Input sizes the timings were measured at.
	Linear []float64 // Linear search, milliseconds.
	Binary []float64 // Binary search, milliseconds.
}

// FibonacciSample holds call counts and timings for naive versus memoized
// fibonacci across a shared set of n values.
type FibonacciSample struct {
	N          []int     // Fibonacci argument values.
	NaiveCalls []float64 // Function invocations made by the naive recursion.
	MemoCalls  []float64 // Function invocations made with memoization.
	NaiveTime  []float64 // Naive runtime, milliseconds.
	MemoTime   []float64 // Memoized runtime, milliseconds.
}
