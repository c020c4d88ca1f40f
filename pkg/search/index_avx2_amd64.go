package search

import (
	"bytes"
	"math/bits"
)

//go:generate go run asm_avx2.go -out bytes_avx2_amd64.s -stubs bytes_avx2_amd64.go

// minHaystack is the number of haystack positions candidates32 tests at once.
const minHaystack = 32

// indexAvx2 returns the first position the needle is in the haystack. Whole
// chunks are filtered on the rare needle bytes and the remainder is scanned by
// indexFrom.
func indexAvx2(haystack []byte, needle []byte) int64 {
	n := len(needle)
	if n == 0 || len(haystack) == 0 || n > len(haystack) {
		return -1
	}
	if len(haystack) < minHaystack+n-1 {
		return indexGeneric(haystack, needle)
	}

	rare := newRareNeedleBytes(needle)
	r1, r2 := needle[rare.rare1i], needle[rare.rare2i]

	i := 0
	// the last byte loaded for a chunk is haystack[i+n-1+minHaystack-1]
	for ; i+n+minHaystack-1 <= len(haystack); i += minHaystack {
		mask := candidates32(r1, r2, &haystack[i+rare.rare1i], &haystack[i+rare.rare2i])
		for mask != 0 {
			k := i + bits.TrailingZeros32(mask)
			if bytes.Equal(haystack[k:k+n], needle) {
				return int64(k)
			}
			mask &= mask - 1
		}
	}

	return indexFrom(haystack, needle, i)
}
