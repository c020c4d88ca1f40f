package search

var (
	index func([]byte, []byte) int64 = indexGeneric
)

// Index returns the first position the needle is in the haystack or -1 if
// needle was not found. An empty needle or haystack never matches.
func Index(haystack []byte, needle []byte) int64 {
	return index(haystack, needle)
}

// Rawmatch returns the 1-based position of the leftmost occurrence of needle
// in haystack. When there is no match it returns 0 and false; 0 is never a
// valid position.
func Rawmatch(needle []byte, haystack []byte) (int, bool) {
	i := index(haystack, needle)
	if i < 0 {
		return 0, false
	}
	return int(i) + 1, true
}
