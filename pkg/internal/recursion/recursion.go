// Package recursion implements the fibonacci and factorial kits behind the
// measured call-count series. Every variant reports how many function
// invocations it made, counting both recursive and base-case entries, which
// is the convention the sample data was captured with: naive fibonacci makes
// 2·F(n+1)-1 calls, the memoized variant 2n-1.
package recursion

// FibonacciNaive computes F(n) by plain double recursion. Returns the value
// and the total invocation count. Values stay in uint64 range for n <= 93;
// the call counter is the practical limit long before that.
func FibonacciNaive(n int) (uint64, uint64) {
	if n < 0 {
		return 0, 0
	}
	var calls uint64
	value := fibNaive(n, &calls)
	return value, calls
}

func fibNaive(n int, calls *uint64) uint64 {
	*calls++
	if n <= 1 {
		return uint64(n)
	}
	return fibNaive(n-1, calls) + fibNaive(n-2, calls)
}

// FibonacciMemo computes F(n) by top-down recursion over a memo table.
// Memo hits still count as invocations, giving the 2n-1 call shape.
func FibonacciMemo(n int) (uint64, uint64) {
	if n < 0 {
		return 0, 0
	}
	var calls uint64
	memo := make(map[int]uint64, n+1)
	value := fibMemo(n, memo, &calls)
	return value, calls
}

func fibMemo(n int, memo map[int]uint64, calls *uint64) uint64 {
	*calls++
	if n <= 1 {
		return uint64(n)
	}
	if v, ok := memo[n]; ok {
		return v
	}
	v := fibMemo(n-1, memo, calls) + fibMemo(n-2, memo, calls)
	memo[n] = v
	return v
}

// FibonacciIterative computes F(n) with a rolling pair, no recursion.
func FibonacciIterative(n int) uint64 {
	if n <= 0 {
		return 0
	}
	var prev, curr uint64 = 0, 1
	for i := 2; i <= n; i++ {
		prev, curr = curr, prev+curr
	}
	return curr
}

// Variant describes one registry entry for the benchmark runner.
type Variant struct {
	Name       string
	Complexity string
	Compute    func(n int) (value uint64, calls uint64)
}

// Variants returns the fibonacci registry in presentation order. The
// iterative variant reports zero calls; it makes none.
func Variants() []Variant {
	return []Variant{
		{Name: "fib_naive", Complexity: "O(2ⁿ)", Compute: FibonacciNaive},
		{Name: "fib_memo", Complexity: "O(n)", Compute: FibonacciMemo},
		{Name: "fib_iterative", Complexity: "O(n)", Compute: func(n int) (uint64, uint64) {
			return FibonacciIterative(n), 0
		}},
	}
}
