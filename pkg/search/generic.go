package search

// indexGeneric scans the haystack for the first needle byte and compares the
// rest of the needle in place. The inner loop stops at the end of the
// haystack, so a candidate that runs off the end simply fails.
func indexGeneric(haystack []byte, needle []byte) int64 {
	return indexFrom(haystack, needle, 0)
}

// indexFrom is indexGeneric starting at offset start. The returned position
// is relative to the start of haystack.
func indexFrom(haystack []byte, needle []byte, start int) int64 {
	n := len(needle)
	if n == 0 || len(haystack) == 0 || n > len(haystack) {
		return -1
	}

	first := needle[0]
	for i := start; i < len(haystack); i++ {
		if haystack[i] != first {
			continue
		}
		j := 0
		for ; j < n; j++ {
			if i+j >= len(haystack) || haystack[i+j] != needle[j] {
				break
			}
		}
		if j == n {
			return int64(i)
		}
	}
	return -1
}
