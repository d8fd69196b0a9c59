package recursion_test

import (
	"testing"

	"github.com/algoscope/algoscope/pkg/internal/recursion"
)

func TestFibonacci_VariantsAgree(t *testing.T) {
	want := []uint64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55}

	for n, expect := range want {
		naive, _ := recursion.FibonacciNaive(n)
		memo, _ := recursion.FibonacciMemo(n)
		iter := recursion.FibonacciIterative(n)

		if naive != expect || memo != expect || iter != expect {
			t.Fatalf("F(%d): naive=%d memo=%d iter=%d, expected %d", n, naive, memo, iter, expect)
		}
	}
}

func TestFibonacciNaive_CallCounts(t *testing.T) {
	// The published sample series: total invocations at each measured n.
	cases := map[int]uint64{
		10: 177,
		15: 1973,
		20: 21891,
		25: 242785,
	}

	for n, want := range cases {
		if _, calls := recursion.FibonacciNaive(n); calls != want {
			t.Fatalf("naive F(%d) made %d calls, expected %d", n, calls, want)
		}
	}
}

func TestFibonacciMemo_CallShape(t *testing.T) {
	for _, n := range []int{10, 15, 20, 25, 30, 35, 40} {
		_, calls := recursion.FibonacciMemo(n)
		if want := uint64(2*n - 1); calls != want {
			t.Fatalf("memo F(%d) made %d calls, expected %d", n, calls, want)
		}
	}
}

func TestFibonacci_LargeN(t *testing.T) {
	// F(40) via the linear variants; naive would take seconds here.
	memo, _ := recursion.FibonacciMemo(40)
	iter := recursion.FibonacciIterative(40)

	if memo != 102334155 || iter != 102334155 {
		t.Fatalf("F(40): memo=%d iter=%d, expected 102334155", memo, iter)
	}
}

func TestFibonacci_NegativeN(t *testing.T) {
	if v, calls := recursion.FibonacciNaive(-3); v != 0 || calls != 0 {
		t.Fatalf("expected zero value and calls for negative n, got %d/%d", v, calls)
	}
	if v := recursion.FibonacciIterative(-3); v != 0 {
		t.Fatalf("expected zero for negative n, got %d", v)
	}
}

func TestFactorial(t *testing.T) {
	cases := []struct {
		n     int
		value uint64
		calls uint64
	}{
		{0, 1, 1},
		{1, 1, 1},
		{5, 120, 5},
		{10, 3628800, 10},
		{20, 2432902008176640000, 20},
	}

	for _, tc := range cases {
		value, calls := recursion.Factorial(tc.n)
		if value != tc.value {
			t.Fatalf("%d! = %d, expected %d", tc.n, value, tc.value)
		}
		if calls != tc.calls {
			t.Fatalf("%d! made %d calls, expected %d", tc.n, calls, tc.calls)
		}
	}
}

func TestVariants_Registry(t *testing.T) {
	variants := recursion.Variants()
	if len(variants) != 3 {
		t.Fatalf("expected 3 variants, got %d", len(variants))
	}

	for _, v := range variants {
		value, _ := v.Compute(20)
		if value != 6765 {
			t.Fatalf("%s: F(20) = %d, expected 6765", v.Name, value)
		}
	}
}
