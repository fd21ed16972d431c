// Package arrayx works with loosely typed nested structures, the kind
// produced by decoding JSON or YAML into any: map[string]any for objects
// and []any for lists.
package arrayx

import "github.com/on-the-ground/utilkit/shared/helper"

// MapPreserveKeys applies fn to every value of m, keeping the keys.
func MapPreserveKeys[K comparable, V, W any](m map[K]V, fn func(V) W) map[K]W {
	out := make(map[K]W, len(m))
	for k, v := range m {
		out[k] = fn(v)
	}
	return out
}

// KeysExist reports whether v contains keys[0], whose value contains
// keys[1], and so on. string keys index map[string]any; int keys index
// []any and map[int]any. A key holding nil exists. Without keys it
// reports false.
func KeysExist(v any, keys ...any) bool {
	if len(keys) == 0 {
		return false
	}
	current := v
	for _, key := range keys {
		next, ok := child(current, key)
		if !ok {
			return false
		}
		current = next
	}
	return true
}

// NestedValue returns the value found by following keys from v. Missing
// keys and nil values both report false. Without keys it returns v.
func NestedValue(v any, keys ...any) (any, bool) {
	current := v
	for _, key := range keys {
		next, ok := child(current, key)
		if !ok || next == nil {
			return nil, false
		}
		current = next
	}
	return current, current != nil
}

// NestedValueOf is NestedValue with the result asserted to T.
func NestedValueOf[T any](v any, keys ...any) (T, bool) {
	return helper.GetTypedValueOf2[T](func() (any, bool) {
		return NestedValue(v, keys...)
	})
}

// SetNested stores value under the nested keys of m, creating intermediate
// maps and replacing intermediate values that are not map[string]any.
// It does nothing without keys.
func SetNested(m map[string]any, value any, keys ...string) {
	if m == nil || len(keys) == 0 {
		return
	}
	current := m
	for _, key := range keys[:len(keys)-1] {
		next, ok := current[key].(map[string]any)
		if !ok {
			next = map[string]any{}
			current[key] = next
		}
		current = next
	}
	current[keys[len(keys)-1]] = value
}

func child(v any, key any) (any, bool) {
	switch k := key.(type) {
	case string:
		if m, ok := v.(map[string]any); ok {
			next, found := m[k]
			return next, found
		}
	case int:
		switch c := v.(type) {
		case []any:
			if k >= 0 && k < len(c) {
				return c[k], true
			}
		case map[int]any:
			next, found := c[k]
			return next, found
		}
	}
	return nil, false
}
