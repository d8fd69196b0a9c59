// Package sorting implements the instrumented sorting kit behind the measured
// sample series. Every sort works in place over any cmp.Ordered element type
// and reports how many comparisons and element moves it performed, so the
// benchmark runner can record operation counts alongside wall-clock time.
package sorting

// Stats counts the work a sort performed. Swaps counts element exchanges for
// the exchange sorts and element moves for merge sort; the stdlib sort
// reports zero because it cannot be instrumented.
type Stats struct {
	Comparisons uint64
	Swaps       uint64
}

// Algorithm describes one registry entry for the benchmark runner.
type Algorithm struct {
	Name       string
	Complexity string
	Stable     bool
	Sort       func(s []int) Stats
}

// Quadratic reports whether the algorithm has quadratic time complexity,
// which the benchmark runner uses to skip oversized inputs.
func (a Algorithm) Quadratic() bool {
	return a.Complexity == "O(n²)"
}

// Algorithms returns the registry of instrumented sorts, instantiated for
// int elements, in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{
		{Name: "bubble_sort", Complexity: "O(n²)", Stable: true, Sort: Bubble[int]},
		{Name: "insertion_sort", Complexity: "O(n²)", Stable: true, Sort: Insertion[int]},
		{Name: "selection_sort", Complexity: "O(n²)", Stable: false, Sort: Selection[int]},
		{Name: "merge_sort", Complexity: "O(n log n)", Stable: true, Sort: Merge[int]},
		{Name: "quick_sort", Complexity: "O(n log n)", Stable: false, Sort: Quick[int]},
		{Name: "heap_sort", Complexity: "O(n log n)", Stable: false, Sort: Heap[int]},
		{Name: "std_sort", Complexity: "O(n log n)", Stable: false, Sort: Std[int]},
	}
}
