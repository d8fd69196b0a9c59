package sorting

import "cmp"

// Merge sorts s in place using top-down merge sort with one scratch buffer
// allocated up front. Swaps counts element moves into merged position. Equal
// elements keep their relative order.
func Merge[T cmp.Ordered](s []T) Stats {
	var st Stats
	if len(s) < 2 {
		return st
	}
	scratch := make([]T, len(s))
	mergeSort(s, scratch, &st)
	return st
}

func mergeSort[T cmp.Ordered](s, scratch []T, st *Stats) {
	if len(s) < 2 {
		return
	}
	mid := len(s) / 2
	mergeSort(s[:mid], scratch[:mid], st)
	mergeSort(s[mid:], scratch[mid:], st)
	mergeHalves(s, mid, scratch, st)
}

// mergeHalves merges the sorted halves s[:mid] and s[mid:]. The left half is
// copied out so the merge can write directly into s.
func mergeHalves[T cmp.Ordered](s []T, mid int, scratch []T, st *Stats) {
	left := scratch[:mid]
	copy(left, s[:mid])

	i, j, k := 0, mid, 0
	for i < len(left) && j < len(s) {
		st.Comparisons++
		if s[j] < left[i] {
			s[k] = s[j]
			j++
		} else {
			s[k] = left[i]
			i++
		}
		st.Swaps++
		k++
	}
	for i < len(left) {
		s[k] = left[i]
		st.Swaps++
		i++
		k++
	}
	// Any right-half remainder is already in place.
}
