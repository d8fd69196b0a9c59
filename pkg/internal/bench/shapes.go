package bench

import (
	"math/rand"

	"github.com/algoscope/algoscope/pkg/internal/types"
)

// Random returns n values drawn uniformly from [0, 10n). The range keeps a
// few duplicate keys in play without letting them dominate.
func Random(rng *rand.Rand, n int) []int {
	if n <= 0 {
		return nil
	}
	s := make([]int, n)
	for i := range s {
		s[i] = rng.Intn(n * 10)
	}
	return s
}

// Sorted returns 0..n-1 ascending.
func Sorted(n int) []int {
	if n <= 0 {
		return nil
	}
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

// Reversed returns n-1..0 descending, the worst case for the exchange sorts.
func Reversed(n int) []int {
	if n <= 0 {
		return nil
	}
	s := make([]int, n)
	for i := range s {
		s[i] = n - 1 - i
	}
	return s
}

// NearlySorted returns an ascending slice disturbed by roughly one percent
// of random adjacent swaps, the shape insertion sort handles best.
func NearlySorted(rng *rand.Rand, n int) []int {
	s := Sorted(n)
	if n < 2 {
		return s
	}
	swaps := n / 100
	if swaps < 1 {
		swaps = 1
	}
	for i := 0; i < swaps; i++ {
		j := rng.Intn(n - 1)
		s[j], s[j+1] = s[j+1], s[j]
	}
	return s
}

// Input builds the input slice for one benchmark case. Unknown shapes fall
// back to random data.
func Input(rng *rand.Rand, shape types.DataShape, n int) []int {
	switch shape {
	case types.ShapeSorted:
		return Sorted(n)
	case types.ShapeReversed:
		return Reversed(n)
	case types.ShapeNearlySorted:
		return NearlySorted(rng, n)
	default:
		return Random(rng, n)
	}
}
