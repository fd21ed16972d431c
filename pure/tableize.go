package pure

import (
	"fmt"
)

// ComparableOrStringer is any value usable as a table key: either comparable
// or a fmt.Stringer whose String() identifies it.
type ComparableOrStringer any

// ComparableOrString is the key stored in a Trie.
type ComparableOrString any

func TableizeI1O1[I1 ComparableOrStringer, O1 any](
	pureFn func(I1) O1,
	maxTableSize uint32,
) func(I1) O1 {
	memo := NewTrie[O1](maxTableSize)
	return func(i1 I1) O1 {
		return cached(memo, func() O1 { return pureFn(i1) }, i1)
	}
}

func TableizeI2O1[I1, I2 ComparableOrStringer, O1 any](
	pureFn func(I1, I2) O1,
	maxTableSize uint32,
) func(I1, I2) O1 {
	memo := NewTrie[O1](maxTableSize)
	return func(i1 I1, i2 I2) O1 {
		return cached(memo, func() O1 { return pureFn(i1, i2) }, i1, i2)
	}
}

type result[O1 any, O2 any] struct {
	O1 O1
	O2 O2
}

// TableizeI1O2 memoizes a function with two results, typically (value, error).
// Errors are cached like any other result.
func TableizeI1O2[I1 ComparableOrStringer, O1, O2 any](
	pureFn func(I1) (O1, O2),
	maxTableSize uint32,
) func(I1) (O1, O2) {
	memo := NewTrie[result[O1, O2]](maxTableSize)
	return func(i1 I1) (O1, O2) {
		res := cached(memo, func() result[O1, O2] {
			v1, v2 := pureFn(i1)
			return result[O1, O2]{O1: v1, O2: v2}
		}, i1)
		return res.O1, res.O2
	}
}

func TableizeI2O2[I1, I2 ComparableOrStringer, O1, O2 any](
	pureFn func(I1, I2) (O1, O2),
	maxTableSize uint32,
) func(I1, I2) (O1, O2) {
	memo := NewTrie[result[O1, O2]](maxTableSize)
	return func(i1 I1, i2 I2) (O1, O2) {
		res := cached(memo, func() result[O1, O2] {
			v1, v2 := pureFn(i1, i2)
			return result[O1, O2]{O1: v1, O2: v2}
		}, i1, i2)
		return res.O1, res.O2
	}
}

func tableKey(i ComparableOrStringer) ComparableOrString {
	if stringer, ok := i.(fmt.Stringer); ok {
		return stringer.String()
	}
	return i
}

func cached[O any](memo *Trie[O], compute func() O, args ...ComparableOrStringer) O {
	keys := make([]ComparableOrString, len(args))
	for i, arg := range args {
		keys[i] = tableKey(arg)
	}
	v, ok := memo.Load(keys)
	if !ok {
		v = compute()
		memo.Store(keys, v)
	}
	return v
}
