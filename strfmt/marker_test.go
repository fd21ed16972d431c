package strfmt_test

import (
	"strings"
	"testing"

	"github.com/on-the-ground/utilkit/hashx"
	"github.com/on-the-ground/utilkit/strfmt"
	"github.com/stretchr/testify/assert"
)

func TestMD5MarkerNotWithin(t *testing.T) {
	marker := strfmt.MD5MarkerNotWithin("hello")
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", marker)
	assert.Equal(t, marker, strfmt.MD5MarkerNotWithin("hello"))
}

func TestMarkerNotWithin_Collision(t *testing.T) {
	const template = "contains zz somewhere"
	calls := 0
	collides := hashx.Func{Name: "collides", Sum: func(b []byte) string {
		calls++
		if string(b) == template {
			return "zz"
		}
		return "q" + string(b)
	}}

	marker := strfmt.MarkerNotWithin(template, collides)
	assert.NotContains(t, template, marker)
	assert.True(t, strings.HasPrefix(marker, "q"))
	assert.Len(t, marker, 5) // first random string has length 4
	assert.Equal(t, 2, calls)
}

func TestMarkerNotWithin_GrowsRandomInput(t *testing.T) {
	// every digest of a string shorter than 6 collides
	const template = "Xx"
	collides := hashx.Func{Name: "short", Sum: func(b []byte) string {
		if len(b) < 6 {
			return "X"
		}
		return string(b)
	}}

	marker := strfmt.MarkerNotWithin(template, collides)
	assert.Len(t, marker, 6)
}

func TestMarkerNotWithin_EmptyDigestPanics(t *testing.T) {
	empty := hashx.Func{Name: "empty", Sum: func([]byte) string { return "" }}
	assert.Panics(t, func() { strfmt.MarkerNotWithin("abc", empty) })
}

func TestMarkerNotWithin_RegisteredHashes(t *testing.T) {
	for _, hash := range []hashx.Func{hashx.MD5, hashx.SHA1, hashx.XXH64} {
		assert.Equal(t, hash.SumString("some template"), strfmt.MarkerNotWithin("some template", hash), hash.Name)
	}
}

func TestMarkerNotWithin_CustomFuncSharingBuiltinName(t *testing.T) {
	calls := 0
	mine := hashx.Func{Name: hashx.MD5.Name, Sum: func(b []byte) string {
		calls++
		return "custom"
	}}

	assert.Equal(t, "custom", strfmt.MarkerNotWithin("some template", mine))
	assert.Equal(t, "custom", strfmt.MarkerNotWithin("some template", mine))
	assert.Equal(t, 2, calls)
	assert.Equal(t, hashx.MD5.SumString("some template"), strfmt.MD5MarkerNotWithin("some template"))
}
