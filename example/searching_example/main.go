package main

import (
	"fmt"

	"github.com/algoscope/algoscope/pkg/builder"
)

func main() {
	// Sorted even values; target+1 is always a miss inside the range.
	data := make([]int, 100000)
	for i := range data {
		data[i] = i * 2
	}
	present := data[70000]
	absent := present + 1

	fmt.Printf("%-22s %-14s %10s %10s\n", "algorithm", "complexity", "hit", "miss")
	for _, alg := range builder.SearchAlgorithms() {
		_, hitComparisons := alg.Search(data, present)
		idx, missComparisons := alg.Search(data, absent)
		if idx != -1 {
			fmt.Printf("%s found a value that is not there\n", alg.Name)
			continue
		}
		fmt.Printf("%-22s %-14s %10d %10d\n", alg.Name, alg.Complexity, hitComparisons, missComparisons)
	}
}
