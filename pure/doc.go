// Package pure memoizes pure functions.
//
// Tableize turns a pure function into a lazily filled table: the first call
// with a given input computes the result, later calls read it back. Wrapping a
// function with Tableize is a statement that it is referentially transparent.
// Do not tableize functions that depend on time, I/O or randomness whose
// outcome callers rely on being fresh.
//
// Tables are bounded. A Trie keeps two generations; when the active one
// reaches its limit the older generation is dropped and the roles swap, so at
// most 2*maxTableSize results are retained.
//
// Inputs must be comparable or implement fmt.Stringer; anything else panics
// when used as a key.
//
//	var lev func(string, string) int
//	lev = pure.TableizeI2O1(func(a, b string) int {
//	    ...
//	}, 32)
package pure
