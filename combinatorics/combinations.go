// Package combinatorics generates combinatorial sequences lazily as iter.Seq values.
package combinatorics

import "iter"

// UniqueProgressiveIncrementalCombinations yields every non-empty combination
// of in, keeping the relative order of its elements.
//
// Each element of in is combined with every combination generated before it,
// so the input [1, 2, 3] yields:
//
//	[1]
//	[2]
//	[1 2]
//	[3]
//	[1 3]
//	[2 3]
//	[1 2 3]
//
// An input of n elements yields 2^n - 1 combinations. Each yielded slice is
// freshly allocated and owned by the caller.
func UniqueProgressiveIncrementalCombinations[T any](in []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		results := [][]T{{}}
		for _, value := range in {
			// Only combinations present before this element are extended.
			n := len(results)
			for i := 0; i < n; i++ {
				combination := make([]T, len(results[i])+1)
				copy(combination, results[i])
				combination[len(combination)-1] = value
				results = append(results, combination)
				if !yield(clone(combination)) {
					return
				}
			}
		}
	}
}

func clone[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}
