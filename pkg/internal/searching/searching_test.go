package searching_test

import (
	"math"
	"sort"
	"testing"

	"github.com/algoscope/algoscope/pkg/internal/searching"
)

func sortedInts(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i * 2 // distinct, even values
	}
	return s
}

func TestAlgorithms_AgreeWithStdlib(t *testing.T) {
	data := sortedInts(1000)

	for _, alg := range searching.Algorithms() {
		// Present keys: every element must be found at its stdlib index.
		for want, target := range data {
			got, _ := alg.Search(data, target)
			if got != want {
				t.Fatalf("%s: index %d for target %d, expected %d", alg.Name, got, target, want)
			}
			if idx := sort.SearchInts(data, target); idx != want {
				t.Fatalf("ground truth drifted: sort.SearchInts gave %d, expected %d", idx, want)
			}
		}

		// Absent keys: odd values inside the range and both out-of-range sides.
		for _, target := range []int{-1, 1, 999, 1001, 5000} {
			if got, _ := alg.Search(data, target); got != -1 {
				t.Fatalf("%s: expected -1 for absent target %d, got %d", alg.Name, target, got)
			}
		}
	}
}

func TestAlgorithms_EmptyAndSingle(t *testing.T) {
	for _, alg := range searching.Algorithms() {
		if got, _ := alg.Search(nil, 7); got != -1 {
			t.Fatalf("%s: expected -1 on empty slice, got %d", alg.Name, got)
		}
		if got, _ := alg.Search([]int{7}, 7); got != 0 {
			t.Fatalf("%s: expected 0 on single match, got %d", alg.Name, got)
		}
		if got, _ := alg.Search([]int{7}, 8); got != -1 {
			t.Fatalf("%s: expected -1 on single miss, got %d", alg.Name, got)
		}
	}
}

func TestBinary_ComparisonBound(t *testing.T) {
	const n = 10000
	data := sortedInts(n)
	bound := uint64(math.Ceil(math.Log2(n))) + 1

	for target := -1; target < 2*n+1; target += 7 {
		_, comparisons := searching.Binary(data, target)
		if comparisons > bound {
			t.Fatalf("binary search used %d probes for target %d, bound is %d", comparisons, target, bound)
		}
	}
}

func TestLinear_ProbeCounts(t *testing.T) {
	data := sortedInts(100)

	if _, comparisons := searching.Linear(data, data[0]); comparisons != 1 {
		t.Fatalf("expected 1 probe for first element, got %d", comparisons)
	}
	if _, comparisons := searching.Linear(data, data[99]); comparisons != 100 {
		t.Fatalf("expected 100 probes for last element, got %d", comparisons)
	}
	if _, comparisons := searching.Linear(data, -5); comparisons != 100 {
		t.Fatalf("expected full scan for absent target, got %d probes", comparisons)
	}
}

func TestFirstOccurrence_Duplicates(t *testing.T) {
	data := []int{1, 3, 3, 3, 5, 5, 9}

	idx, _ := searching.FirstOccurrence(data, 3)
	if idx != 1 {
		t.Fatalf("expected leftmost index 1 for target 3, got %d", idx)
	}
	idx, _ = searching.FirstOccurrence(data, 5)
	if idx != 4 {
		t.Fatalf("expected leftmost index 4 for target 5, got %d", idx)
	}
	if idx, _ := searching.FirstOccurrence(data, 4); idx != -1 {
		t.Fatalf("expected -1 for absent target, got %d", idx)
	}
}

func TestInsertionPoint_MatchesSortSearch(t *testing.T) {
	data := []int{2, 4, 4, 8, 16, 16, 16, 32}

	for target := 0; target <= 40; target++ {
		got, _ := searching.InsertionPoint(data, target)
		want := sort.SearchInts(data, target)
		if got != want {
			t.Fatalf("InsertionPoint(%d) = %d, sort.SearchInts = %d", target, got, want)
		}
	}
}

func TestGenericStringSearch(t *testing.T) {
	data := []string{"binary", "bubble", "insertion", "merge", "quick"}

	if idx, _ := searching.Binary(data, "merge"); idx != 3 {
		t.Fatalf("expected index 3 for merge, got %d", idx)
	}
	if idx, _ := searching.Linear(data, "heap"); idx != -1 {
		t.Fatalf("expected -1 for absent string, got %d", idx)
	}
	if idx, _ := searching.Jump(data, "bubble"); idx != 1 {
		t.Fatalf("expected index 1 for bubble, got %d", idx)
	}
}
