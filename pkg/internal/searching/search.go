package searching

import (
	"cmp"
	"math"
)

// Linear scans every element until it finds target. Returns the match index
// and the number of probes, or -1 when absent. The scan does not rely on
// order, matching the naive baseline the sample series was measured from.
func Linear[T cmp.Ordered](s []T, target T) (int, uint64) {
	var comparisons uint64
	for i, v := range s {
		comparisons++
		if v == target {
			return i, comparisons
		}
	}
	return -1, comparisons
}

// Binary searches the sorted slice by halving. Probes are bounded by
// ⌈log2 n⌉+1.
func Binary[T cmp.Ordered](s []T, target T) (int, uint64) {
	var comparisons uint64
	lo, hi := 0, len(s)-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		comparisons++
		switch {
		case s[mid] == target:
			return mid, comparisons
		case s[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return -1, comparisons
}

// Jump searches the sorted slice in √n-sized blocks, then scans the block
// that could hold target.
func Jump[T cmp.Ordered](s []T, target T) (int, uint64) {
	var comparisons uint64
	n := len(s)
	if n == 0 {
		return -1, 0
	}
	step := int(math.Sqrt(float64(n)))
	if step < 1 {
		step = 1
	}

	prev := 0
	end := step
	for end < n {
		comparisons++
		if s[end-1] >= target {
			break
		}
		prev = end
		end += step
	}
	if end > n {
		end = n
	}

	for i := prev; i < end; i++ {
		comparisons++
		if s[i] == target {
			return i, comparisons
		}
		if s[i] > target {
			break
		}
	}
	return -1, comparisons
}

// Interpolation searches the sorted slice by estimating the target's position
// from the value range, assuming roughly uniform spacing. Degenerate ranges
// fall back to an endpoint check.
func Interpolation(s []int, target int) (int, uint64) {
	var comparisons uint64
	lo, hi := 0, len(s)-1
	for lo <= hi {
		if s[lo] == s[hi] {
			comparisons++
			if s[lo] == target {
				return lo, comparisons
			}
			return -1, comparisons
		}
		if target < s[lo] || target > s[hi] {
			return -1, comparisons
		}
		// int64 keeps the position estimate from overflowing on wide ranges.
		pos := lo + int(int64(target-s[lo])*int64(hi-lo)/int64(s[hi]-s[lo]))
		comparisons++
		switch {
		case s[pos] == target:
			return pos, comparisons
		case s[pos] < target:
			lo = pos + 1
		default:
			hi = pos - 1
		}
	}
	return -1, comparisons
}
