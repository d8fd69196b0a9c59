// Package searching implements the instrumented search kit behind the
// measured sample series. The searches run over ascending sorted slices and
// report how many element probes were made against the target. Linear,
// binary and jump search work over any cmp.Ordered element type;
// interpolation search needs integer arithmetic and is int only.
package searching

// Algorithm describes one registry entry for the benchmark runner.
type Algorithm struct {
	Name       string
	Complexity string
	Search     func(s []int, target int) (int, uint64)
}

// Algorithms returns the registry of instrumented searches, instantiated for
// int elements, in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{
		{Name: "linear_search", Complexity: "O(n)", Search: Linear[int]},
		{Name: "binary_search", Complexity: "O(log n)", Search: Binary[int]},
		{Name: "jump_search", Complexity: "O(√n)", Search: Jump[int]},
		{Name: "interpolation_search", Complexity: "O(log log n)", Search: Interpolation},
	}
}
