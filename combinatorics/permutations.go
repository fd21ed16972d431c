package combinatorics

import "iter"

// Permutations yields every ordering of in. Orderings are produced in
// lexicographic order of input positions, so [1, 2, 3] starts with
// [1 2 3], [1 3 2], [2 1 3].
//
// Duplicated values are treated as distinct by position. An empty input
// yields nothing.
func Permutations[T any](in []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		n := len(in)
		if n == 0 {
			return
		}
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		for {
			perm := make([]T, n)
			for i, j := range idx {
				perm[i] = in[j]
			}
			if !yield(perm) {
				return
			}
			if !nextPermutation(idx) {
				return
			}
		}
	}
}

// nextPermutation rearranges idx into its lexicographic successor and
// reports false once idx is the last (descending) ordering.
func nextPermutation(idx []int) bool {
	i := len(idx) - 2
	for i >= 0 && idx[i] >= idx[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(idx) - 1
	for idx[j] <= idx[i] {
		j--
	}
	idx[i], idx[j] = idx[j], idx[i]
	for l, r := i+1, len(idx)-1; l < r; l, r = l+1, r-1 {
		idx[l], idx[r] = idx[r], idx[l]
	}
	return true
}
