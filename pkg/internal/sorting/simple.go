package sorting

import "cmp"

// Bubble sorts s in place by repeatedly exchanging adjacent out-of-order
// elements. A pass without swaps ends the sort early, so already-sorted
// input costs a single pass.
func Bubble[T cmp.Ordered](s []T) Stats {
	var st Stats
	n := len(s)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-1-i; j++ {
			st.Comparisons++
			if s[j] > s[j+1] {
				s[j], s[j+1] = s[j+1], s[j]
				st.Swaps++
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return st
}

// Insertion sorts s in place by growing a sorted prefix. Swaps counts the
// element shifts made while opening the insertion slot.
func Insertion[T cmp.Ordered](s []T) Stats {
	var st Stats
	for i := 1; i < len(s); i++ {
		key := s[i]
		j := i - 1
		for j >= 0 {
			st.Comparisons++
			if s[j] <= key {
				break
			}
			s[j+1] = s[j]
			st.Swaps++
			j--
		}
		s[j+1] = key
	}
	return st
}

// Selection sorts s in place by repeatedly selecting the minimum of the
// unsorted suffix. At most n-1 swaps regardless of input order.
func Selection[T cmp.Ordered](s []T) Stats {
	var st Stats
	n := len(s)
	for i := 0; i < n-1; i++ {
		min := i
		for j := i + 1; j < n; j++ {
			st.Comparisons++
			if s[j] < s[min] {
				min = j
			}
		}
		if min != i {
			s[i], s[min] = s[min], s[i]
			st.Swaps++
		}
	}
	return st
}
