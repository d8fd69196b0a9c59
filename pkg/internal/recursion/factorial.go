package recursion

// Factorial computes n! by single recursion, counting invocations down to
// the base case (n calls for n >= 1). Values stay in uint64 range for
// n <= 20.
func Factorial(n int) (uint64, uint64) {
	if n < 0 {
		return 0, 0
	}
	var calls uint64
	value := factorial(n, &calls)
	return value, calls
}

func factorial(n int, calls *uint64) uint64 {
	*calls++
	if n <= 1 {
		return 1
	}
	return uint64(n) * factorial(n-1, calls)
}
