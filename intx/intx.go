// Package intx holds integer helpers.
package intx

import "reflect"

// Overflow32Bit wraps n into a signed 32-bit integer the way 32-bit
// arithmetic would.
func Overflow32Bit(n int64) int32 {
	return int32(n)
}

// IsIntOrIntString reports whether v is an integer of any Go integer kind,
// or a string holding a canonical decimal integer: digits without a leading
// zero, optionally preceded by '-'. "0" and "-0" qualify, "00" and "+1" do not.
func IsIntOrIntString(v any) bool {
	if s, ok := v.(string); ok {
		if len(s) > 0 && s[0] == '-' {
			return isPositiveIntString(s[1:])
		}
		return isPositiveIntString(s)
	}
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.CanInt() || rv.CanUint()
}

func isPositiveIntString(s string) bool {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
