package searching

import "cmp"

// FirstOccurrence returns the leftmost index holding target, for sorted data
// with duplicates. Returns -1 when absent.
func FirstOccurrence[T cmp.Ordered](s []T, target T) (int, uint64) {
	idx, comparisons := InsertionPoint(s, target)
	if idx < len(s) {
		comparisons++
		if s[idx] == target {
			return idx, comparisons
		}
	}
	return -1, comparisons
}

// InsertionPoint returns the lower-bound index for target: the smallest
// index at which target could be inserted keeping s sorted. Matches the
// stdlib sort.Search convention.
func InsertionPoint[T cmp.Ordered](s []T, target T) (int, uint64) {
	var comparisons uint64
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		comparisons++
		if s[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, comparisons
}
