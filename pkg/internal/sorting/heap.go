package sorting

import "cmp"

// Heap sorts s in place by building a max-heap and repeatedly moving the
// root behind the shrinking heap boundary.
func Heap[T cmp.Ordered](s []T) Stats {
	var st Stats
	n := len(s)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(s, i, n, &st)
	}
	for end := n - 1; end > 0; end-- {
		s[0], s[end] = s[end], s[0]
		st.Swaps++
		siftDown(s, 0, end, &st)
	}
	return st
}

// siftDown restores the max-heap property for the subtree rooted at root,
// treating s[:end] as the heap.
func siftDown[T cmp.Ordered](s []T, root, end int, st *Stats) {
	for {
		child := 2*root + 1
		if child >= end {
			return
		}
		if child+1 < end {
			st.Comparisons++
			if s[child+1] > s[child] {
				child++
			}
		}
		st.Comparisons++
		if s[root] >= s[child] {
			return
		}
		s[root], s[child] = s[child], s[root]
		st.Swaps++
		root = child
	}
}
