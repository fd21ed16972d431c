package strfmt

import (
	"reflect"
	"strings"
	"sync"

	"github.com/on-the-ground/utilkit/hashx"
	"github.com/on-the-ground/utilkit/pure"
	"github.com/on-the-ground/utilkit/randx"
)

const markerTableSize = 256

type markerMemo struct {
	sum  uintptr
	memo func(string) string
}

// Markers of the built-in hash functions are memoized per string. A memo is
// keyed by name but only used when Sum is the built-in function itself.
var markerTables = sync.OnceValue(func() map[string]markerMemo {
	tables := map[string]markerMemo{}
	for _, hash := range []hashx.Func{hashx.MD5, hashx.SHA1, hashx.XXH64} {
		tables[hash.Name] = markerMemo{
			sum: funcID(hash.Sum),
			memo: pure.TableizeI1O1(func(str string) string {
				return markerNotWithin(str, hash)
			}, markerTableSize),
		}
	}
	return tables
})

func funcID(fn func([]byte) string) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

// MarkerNotWithin returns a digest of hash that does not occur in str.
// It starts from the digest of str itself and, should that occur in str,
// hashes random strings of growing length until one does not.
//
// Results for hashx.MD5, hashx.SHA1 and hashx.XXH64 are memoized, so repeated
// calls with the same str return the same marker.
func MarkerNotWithin(str string, hash hashx.Func) string {
	if m, ok := markerTables()[hash.Name]; ok && hash.Sum != nil && m.sum == funcID(hash.Sum) {
		return m.memo(str)
	}
	return markerNotWithin(str, hash)
}

// MD5MarkerNotWithin is MarkerNotWithin with hashx.MD5.
func MD5MarkerNotWithin(str string) string {
	return MarkerNotWithin(str, hashx.MD5)
}

func markerNotWithin(str string, hash hashx.Func) string {
	marker := hash.SumString(str)
	if marker == "" {
		panic("strfmt: hash " + hash.Name + " returned an empty digest")
	}
	for n := 4; strings.Contains(str, marker); n++ {
		marker = hash.SumString(randx.String(n))
	}
	return marker
}
