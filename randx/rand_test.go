package randx_test

import (
	"math"
	"strings"
	"testing"

	"github.com/on-the-ground/utilkit/randx"
	"github.com/stretchr/testify/assert"
)

func TestIntBetween_Bounds(t *testing.T) {
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := randx.IntBetween(-2, 2)
		assert.GreaterOrEqual(t, v, -2)
		assert.LessOrEqual(t, v, 2)
		seen[v] = true
	}
	assert.Len(t, seen, 5)

	assert.Equal(t, 7, randx.IntBetween(7, 7))
}

func TestIntBetween_ExtremeRanges(t *testing.T) {
	assert.NotPanics(t, func() { randx.IntBetween(math.MinInt, math.MaxInt) })
	assert.NotPanics(t, func() { randx.IntBetween(-1, math.MaxInt) })

	v := randx.IntBetween(math.MaxInt-1, math.MaxInt)
	assert.GreaterOrEqual(t, v, math.MaxInt-1)

	v = randx.IntBetween(math.MinInt, math.MinInt+1)
	assert.LessOrEqual(t, v, math.MinInt+1)
}

func TestIntBetween_PanicsOnInvertedRange(t *testing.T) {
	assert.Panics(t, func() { randx.IntBetween(3, 1) })
}

func TestString(t *testing.T) {
	alphabet := randx.Alphabet()
	assert.Len(t, alphabet, 62)
	assert.True(t, strings.HasPrefix(alphabet, "abc"))
	assert.True(t, strings.HasSuffix(alphabet, "789"))

	s := randx.String(randx.DefaultLength)
	assert.Len(t, s, randx.DefaultLength)
	for _, r := range s {
		assert.Contains(t, alphabet, string(r))
	}

	assert.Equal(t, "", randx.String(0))
	assert.Equal(t, "", randx.String(-1))
}

func TestString_Varies(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		seen[randx.String(32)] = true
	}
	assert.Greater(t, len(seen), 1)
}
