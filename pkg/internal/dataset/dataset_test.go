package dataset_test

import (
	"math"
	"testing"

	"github.com/algoscope/algoscope/pkg/internal/dataset"
)

func TestSorting_ParallelSeries(t *testing.T) {
	s := dataset.Sorting()

	n := len(s.Sizes)
	if n == 0 {
		t.Fatalf("expected non-empty sample")
	}
	for name, series := range map[string][]float64{
		"bubble":    s.Bubble,
		"insertion": s.Insertion,
		"merge":     s.Merge,
		"quick":     s.Quick,
	} {
		if len(series) != n {
			t.Fatalf("%s series length %d, expected %d", name, len(series), n)
		}
		for i, v := range series {
			if v <= 0 {
				t.Fatalf("%s series has non-positive value %v at index %d", name, v, i)
			}
		}
	}
	for i := 1; i < n; i++ {
		if s.Sizes[i] <= s.Sizes[i-1] {
			t.Fatalf("sizes not strictly increasing at index %d: %v", i, s.Sizes)
		}
	}
}

func TestSearch_ParallelSeries(t *testing.T) {
	s := dataset.Search()

	n := len(s.Sizes)
	if len(s.Linear) != n || len(s.Binary) != n {
		t.Fatalf("series lengths mismatch: sizes=%d linear=%d binary=%d", n, len(s.Linear), len(s.Binary))
	}
	for i := 1; i < n; i++ {
		if s.Sizes[i] <= s.Sizes[i-1] {
			t.Fatalf("sizes not strictly increasing at index %d: %v", i, s.Sizes)
		}
	}
}

func TestFibonacci_ParallelSeries(t *testing.T) {
	s := dataset.Fibonacci()

	n := len(s.N)
	for name, series := range map[string][]float64{
		"naive_calls": s.NaiveCalls,
		"memo_calls":  s.MemoCalls,
		"naive_time":  s.NaiveTime,
		"memo_time":   s.MemoTime,
	} {
		if len(series) != n {
			t.Fatalf("%s series length %d, expected %d", name, len(series), n)
		}
		for i, v := range series {
			if v <= 0 {
				t.Fatalf("%s series has non-positive value %v at index %d", name, v, i)
			}
		}
	}
}

func TestGrowthRatios_BubbleDoubling(t *testing.T) {
	s := dataset.Sorting()
	ratios := dataset.GrowthRatios(s.Bubble)

	if len(ratios) != len(s.Bubble)-1 {
		t.Fatalf("expected %d ratios, got %d", len(s.Bubble)-1, len(ratios))
	}
	// 1000 -> 2000 doubling: 45/12.
	if ratios[0] != 3.75 {
		t.Fatalf("expected bubble growth 3.75 for the first doubling, got %v", ratios[0])
	}
}

func TestGrowthRatios_ShortSeries(t *testing.T) {
	if got := dataset.GrowthRatios([]float64{42}); got != nil {
		t.Fatalf("expected nil for single-element series, got %v", got)
	}
	if got := dataset.GrowthRatios(nil); got != nil {
		t.Fatalf("expected nil for empty series, got %v", got)
	}
}

func TestRatio_SearchSlowdown(t *testing.T) {
	s := dataset.Search()
	slowdown := dataset.Ratio(s.Linear, s.Binary)

	if len(slowdown) != len(s.Sizes) {
		t.Fatalf("expected %d ratios, got %d", len(s.Sizes), len(slowdown))
	}
	// At size 10000 linear search is ~472x slower: 8.5/0.018.
	if math.Abs(slowdown[2]-472.2) > 0.1 {
		t.Fatalf("expected slowdown ~472.2 at size 10000, got %v", slowdown[2])
	}
}
