// Package randx provides random integers and random alphanumeric strings.
package randx

import (
	"math/rand/v2"
	"sync"
)

// DefaultLength is the length used by callers that have no preference.
const DefaultLength = 15

// whitelist holds [a-z][A-Z][0-9], in that order.
var whitelist = sync.OnceValue(func() []byte {
	chars := make([]byte, 0, 26+26+10)
	for c := byte('a'); c <= 'z'; c++ {
		chars = append(chars, c)
	}
	for c := byte('A'); c <= 'Z'; c++ {
		chars = append(chars, c)
	}
	for c := byte('0'); c <= '9'; c++ {
		chars = append(chars, c)
	}
	return chars
})

// IntBetween returns a uniformly distributed integer in [min, max].
// It panics if min > max.
func IntBetween(min, max int) int {
	if min > max {
		panic("randx: min greater than max")
	}
	span := uint64(max) - uint64(min) + 1
	if span == 0 {
		// [min, max] covers every uint64 bit pattern.
		return int(rand.Uint64())
	}
	return min + int(rand.Uint64N(span))
}

// String returns a random string of length ASCII letters and digits.
func String(length int) string {
	if length <= 0 {
		return ""
	}
	chars := whitelist()
	last := len(chars) - 1
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = chars[IntBetween(0, last)]
	}
	return string(buf)
}

// Alphabet returns a copy of the characters String samples from.
func Alphabet() string {
	return string(whitelist())
}
