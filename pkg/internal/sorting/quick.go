package sorting

import "cmp"

// Quick sorts s in place using quicksort with Hoare partitioning and a
// middle-element pivot, which keeps sorted and reversed inputs off the
// quadratic path.
func Quick[T cmp.Ordered](s []T) Stats {
	var st Stats
	quickSort(s, &st)
	return st
}

func quickSort[T cmp.Ordered](s []T, st *Stats) {
	if len(s) < 2 {
		return
	}
	p := hoarePartition(s, st)
	quickSort(s[:p+1], st)
	quickSort(s[p+1:], st)
}

// hoarePartition partitions s around the value of its lower-middle element
// and returns the last index of the lower partition. The lower-middle pivot
// keeps both partitions non-empty for len(s) >= 2.
func hoarePartition[T cmp.Ordered](s []T, st *Stats) int {
	pivot := s[(len(s)-1)/2]
	i, j := -1, len(s)
	for {
		for {
			i++
			st.Comparisons++
			if s[i] >= pivot {
				break
			}
		}
		for {
			j--
			st.Comparisons++
			if s[j] <= pivot {
				break
			}
		}
		if i >= j {
			return j
		}
		s[i], s[j] = s[j], s[i]
		st.Swaps++
	}
}
