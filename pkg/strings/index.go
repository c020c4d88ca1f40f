package strings

import (
	"unsafe"

	"github.com/jeschkies/go-rawmatch/pkg/search"
)

// Index returns the index of the first instance of substr in s, or -1 if
// substr is not present. An empty substr or s never matches.
func Index(s, substr string) int {
	return int(search.Index(bytesOf(s), bytesOf(substr)))
}

// Rawmatch returns the 1-based position of needle in haystack and true, or
// 0 and false when there is no match.
func Rawmatch(needle, haystack string) (int, bool) {
	return search.Rawmatch(bytesOf(needle), bytesOf(haystack))
}

// bytesOf views s as a byte slice without copying. The search never writes
// to its inputs.
func bytesOf(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
