package main

import (
	"fmt"

	"github.com/algoscope/algoscope/pkg/builder"
)

func main() {
	fmt.Printf("%-14s %-8s %14s %14s\n", "variant", "n", "value", "calls")
	for _, n := range []int{10, 20, 30} {
		for _, variant := range builder.RecursionVariants() {
			value, calls := variant.Compute(n)
			fmt.Printf("%-14s %-8d %14d %14d\n", variant.Name, n, value, calls)
		}
		fmt.Println()
	}
}
