package main

import (
	"fmt"
	"math/rand"

	"github.com/algoscope/algoscope/pkg/builder"
)

func main() {
	rng := rand.New(rand.NewSource(7))
	base := make([]int, 2000)
	for i := range base {
		base[i] = rng.Intn(10000)
	}

	// Every algorithm sorts a copy of the same input, so the counters are
	// directly comparable.
	fmt.Printf("%-18s %-12s %12s %12s\n", "algorithm", "complexity", "comparisons", "swaps")
	for _, alg := range builder.SortingAlgorithms() {
		work := make([]int, len(base))
		copy(work, base)
		stats := alg.Sort(work)
		fmt.Printf("%-18s %-12s %12d %12d\n", alg.Name, alg.Complexity, stats.Comparisons, stats.Swaps)
	}
}
