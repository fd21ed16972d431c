package combinatorics_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/on-the-ground/utilkit/combinatorics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombinations_Order(t *testing.T) {
	got := slices.Collect(combinatorics.UniqueProgressiveIncrementalCombinations([]int{1, 2, 3}))

	assert.Equal(t, [][]int{
		{1},
		{2},
		{1, 2},
		{3},
		{1, 3},
		{2, 3},
		{1, 2, 3},
	}, got)
}

func TestCombinations_Empty(t *testing.T) {
	count := 0
	for range combinatorics.UniqueProgressiveIncrementalCombinations([]string{}) {
		count++
	}
	assert.Equal(t, 0, count)

	for range combinatorics.UniqueProgressiveIncrementalCombinations[string](nil) {
		t.Fatal("nil input should yield nothing")
	}
}

func TestCombinations_CountAndSubsequences(t *testing.T) {
	for n := 1; n <= 8; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			in := make([]int, n)
			for i := range in {
				in[i] = i
			}

			seen := map[string]bool{}
			count := 0
			for c := range combinatorics.UniqueProgressiveIncrementalCombinations(in) {
				count++
				require.NotEmpty(t, c)
				assert.True(t, slices.IsSorted(c), "relative order lost: %v", c)

				key := fmt.Sprint(c)
				assert.False(t, seen[key], "duplicate combination %v", c)
				seen[key] = true
			}
			assert.Equal(t, 1<<n-1, count)
		})
	}
}

func TestCombinations_DuplicatesAreDistinctByPosition(t *testing.T) {
	got := slices.Collect(combinatorics.UniqueProgressiveIncrementalCombinations([]string{"a", "a"}))
	assert.Equal(t, [][]string{{"a"}, {"a"}, {"a", "a"}}, got)
}

func TestCombinations_EarlyTermination(t *testing.T) {
	var got [][]int
	for c := range combinatorics.UniqueProgressiveIncrementalCombinations([]int{1, 2, 3, 4}) {
		got = append(got, c)
		if len(got) == 3 {
			break
		}
	}
	assert.Equal(t, [][]int{{1}, {2}, {1, 2}}, got)
}

func TestCombinations_CallerOwnsYieldedSlices(t *testing.T) {
	var got []string
	for c := range combinatorics.UniqueProgressiveIncrementalCombinations([]int{1, 2}) {
		got = append(got, fmt.Sprint(c))
		c[0] = 99
	}
	assert.Equal(t, []string{"[1]", "[2]", "[1 2]"}, got)
}

func TestCombinations_Reinvocable(t *testing.T) {
	seq := combinatorics.UniqueProgressiveIncrementalCombinations([]rune("xyz"))
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
}

func ExampleUniqueProgressiveIncrementalCombinations() {
	for c := range combinatorics.UniqueProgressiveIncrementalCombinations([]int{1, 2, 3}) {
		fmt.Println(c)
	}
	// Output:
	// [1]
	// [2]
	// [1 2]
	// [3]
	// [1 3]
	// [2 3]
	// [1 2 3]
}
