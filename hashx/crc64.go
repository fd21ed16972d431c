package hashx

import (
	"hash/crc64"
	"sync"
)

var ecmaTable = sync.OnceValue(func() *crc64.Table {
	return crc64.MakeTable(crc64.ECMA)
})

// CRC64 computes the 64-bit CRC of s with the reversed ECMA-182 polynomial,
// a zero initial value and no final inversion:
//
//	CRC64("php") == 0xafe4e823e7cef190
//
// This differs from crc64.Checksum, which inverts the register on entry and exit.
func CRC64(s string) uint64 {
	// crc64.Update inverts on entry and exit; cancel both.
	return ^crc64.Update(^uint64(0), ecmaTable(), []byte(s))
}
