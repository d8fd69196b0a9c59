package builder

import (
	"math"
	"testing"
)

func TestMapFilter(t *testing.T) {
	in := []int{1, 2, 3, 4}
	out := Map(in, func(v int) int { return v * 2 })
	if len(out) != 4 || out[0] != 2 || out[3] != 8 {
		t.Fatalf("unexpected map output: %v", out)
	}

	filtered := Filter(out, func(v int) bool { return v%4 == 0 })
	if len(filtered) != 2 || filtered[0] != 4 || filtered[1] != 8 {
		t.Fatalf("unexpected filter output: %v", filtered)
	}
}

func TestContains(t *testing.T) {
	if !Contains([]string{"merge", "quick"}, "quick") {
		t.Fatalf("expected element to be found")
	}
	if Contains([]string{"merge", "quick"}, "bubble") {
		t.Fatalf("unexpected element found")
	}
}

func TestSamplesShareSizes(t *testing.T) {
	sorting := SortingSample()
	if len(sorting.Sizes) == 0 {
		t.Fatalf("expected sorting sizes")
	}
	if len(sorting.Bubble) != len(sorting.Sizes) || len(sorting.Merge) != len(sorting.Sizes) {
		t.Fatalf("expected one sorting timing per size")
	}

	search := SearchSample()
	if len(search.Linear) != len(search.Sizes) || len(search.Binary) != len(search.Sizes) {
		t.Fatalf("expected one search timing per size")
	}

	fib := FibonacciSample()
	if len(fib.NaiveCalls) != len(fib.N) || len(fib.MemoCalls) != len(fib.N) {
		t.Fatalf("expected one call count per n")
	}
}

func TestGrowthRatios(t *testing.T) {
	out := GrowthRatios([]float64{1, 2, 8})
	if len(out) != 2 || math.Abs(out[0]-2) > 1e-9 || math.Abs(out[1]-4) > 1e-9 {
		t.Fatalf("unexpected growth ratios: %v", out)
	}
	if GrowthRatios([]float64{5}) != nil {
		t.Fatalf("expected nil for a single-point series")
	}
}

func TestRatio(t *testing.T) {
	out := Ratio([]float64{10, 9}, []float64{2, 3})
	if len(out) != 2 || math.Abs(out[0]-5) > 1e-9 || math.Abs(out[1]-3) > 1e-9 {
		t.Fatalf("unexpected ratios: %v", out)
	}
}
