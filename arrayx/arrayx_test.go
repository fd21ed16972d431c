package arrayx_test

import (
	"strings"
	"testing"

	"github.com/on-the-ground/utilkit/arrayx"
	"github.com/stretchr/testify/assert"
)

func fixture() map[string]any {
	return map[string]any{
		"a": map[string]any{
			"b": []any{"zero", map[string]any{"c": 3}},
			"n": nil,
		},
		"ids": map[int]any{7: "seven"},
	}
}

func TestMapPreserveKeys(t *testing.T) {
	got := arrayx.MapPreserveKeys(map[string]string{"x": "a", "y": "b"}, strings.ToUpper)
	assert.Equal(t, map[string]string{"x": "A", "y": "B"}, got)

	assert.Empty(t, arrayx.MapPreserveKeys(map[int]int{}, func(i int) int { return i }))
}

func TestKeysExist(t *testing.T) {
	data := fixture()

	assert.True(t, arrayx.KeysExist(data, "a"))
	assert.True(t, arrayx.KeysExist(data, "a", "b", 1, "c"))
	assert.True(t, arrayx.KeysExist(data, "a", "n"), "nil values exist")
	assert.True(t, arrayx.KeysExist(data, "ids", 7))

	assert.False(t, arrayx.KeysExist(data))
	assert.False(t, arrayx.KeysExist(data, "a", "b", 2))
	assert.False(t, arrayx.KeysExist(data, "a", "b", -1))
	assert.False(t, arrayx.KeysExist(data, "a", "b", 0, "c"), "strings have no keys")
	assert.False(t, arrayx.KeysExist(data, "a", "n", "deeper"))
	assert.False(t, arrayx.KeysExist(data, 1.5))
}

func TestNestedValue(t *testing.T) {
	data := fixture()

	v, ok := arrayx.NestedValue(data, "a", "b", 1, "c")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = arrayx.NestedValue(data, "a", "n")
	assert.False(t, ok)

	_, ok = arrayx.NestedValue(data, "missing", "x")
	assert.False(t, ok)

	v, ok = arrayx.NestedValue(data)
	assert.True(t, ok)
	assert.Equal(t, data, v)
}

func TestNestedValueOf(t *testing.T) {
	data := fixture()

	s, ok := arrayx.NestedValueOf[string](data, "ids", 7)
	assert.True(t, ok)
	assert.Equal(t, "seven", s)

	_, ok = arrayx.NestedValueOf[int](data, "ids", 7)
	assert.False(t, ok)

	list, ok := arrayx.NestedValueOf[[]any](data, "a", "b")
	assert.True(t, ok)
	assert.Len(t, list, 2)
}

func TestSetNested(t *testing.T) {
	m := map[string]any{"a": "scalar"}

	arrayx.SetNested(m, 1, "a", "b", "c")
	arrayx.SetNested(m, 2, "a", "b", "d")
	arrayx.SetNested(m, 3, "top")

	assert.Equal(t, map[string]any{
		"a": map[string]any{
			"b": map[string]any{"c": 1, "d": 2},
		},
		"top": 3,
	}, m)
}

func TestSetNested_NoKeys(t *testing.T) {
	m := map[string]any{"a": 1}
	arrayx.SetNested(m, 2)
	assert.Equal(t, map[string]any{"a": 1}, m)

	assert.NotPanics(t, func() { arrayx.SetNested(nil, 1, "a") })
}
