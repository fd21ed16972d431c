// Package hashx exposes the hash functions used across utilkit as named
// values, plus a CRC64 checksum.
package hashx

import (
	"crypto/md5"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// ErrUnknownHash is returned by ByName for unregistered names.
var ErrUnknownHash = errors.New("unknown hash function")

// Func is a named hash function returning a printable digest.
type Func struct {
	Name string
	Sum  func([]byte) string
}

// SumString hashes s.
func (f Func) SumString(s string) string {
	return f.Sum([]byte(s))
}

var (
	MD5 = Func{Name: "md5", Sum: func(b []byte) string {
		sum := md5.Sum(b)
		return hex.EncodeToString(sum[:])
	}}

	SHA1 = Func{Name: "sha1", Sum: func(b []byte) string {
		sum := sha1.Sum(b)
		return hex.EncodeToString(sum[:])
	}}

	// XXH64 is not cryptographic; it is fast and good enough for markers.
	XXH64 = Func{Name: "xxh64", Sum: func(b []byte) string {
		return strconv.FormatUint(xxhash.Sum64(b), 16)
	}}
)

// ByName looks up one of MD5, SHA1 or XXH64.
func ByName(name string) (Func, error) {
	switch name {
	case MD5.Name:
		return MD5, nil
	case SHA1.Name:
		return SHA1, nil
	case XXH64.Name:
		return XXH64, nil
	}
	return Func{}, fmt.Errorf("%w: %q", ErrUnknownHash, name)
}
