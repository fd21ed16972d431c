package intx_test

import (
	"math"
	"testing"

	"github.com/on-the-ground/utilkit/intx"
	"github.com/stretchr/testify/assert"
)

func TestOverflow32Bit(t *testing.T) {
	tests := []struct {
		in   int64
		want int32
	}{
		{0, 0},
		{math.MaxInt32, math.MaxInt32},
		{math.MaxInt32 + 1, math.MinInt32},
		{0xffffffff, -1},
		{0x1_0000_0005, 5},
		{-1, -1},
		{math.MinInt32 - 1, math.MaxInt32},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, intx.Overflow32Bit(tt.in), "Overflow32Bit(%d)", tt.in)
	}
}

type port uint16

func TestIsIntOrIntString(t *testing.T) {
	for _, v := range []any{0, -5, int8(3), uint64(7), port(80), "0", "12", "-12", "9007199254740993", "-0"} {
		assert.True(t, intx.IsIntOrIntString(v), "%#v", v)
	}
	for _, v := range []any{nil, 1.0, "", "-", "00", "007", "+1", "1e3", " 1", "12a", true, []int{1}} {
		assert.False(t, intx.IsIntOrIntString(v), "%#v", v)
	}
}
