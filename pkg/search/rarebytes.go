package search

// rareNeedleBytes holds the offsets of the two needle bytes that are least
// likely to show up in a haystack. The vectorised path filters candidates on
// these two bytes instead of the first and last one.
type rareNeedleBytes struct {
	rare1i int
	rare2i int
}

func newRareNeedleBytes(needle []byte) rareNeedleBytes {
	if len(needle) <= 1 {
		return rareNeedleBytes{0, 0}
	}

	rare1 := needle[0]
	rare1i := 0
	rare2 := needle[1]
	rare2i := 1
	if rank(rare2) < rank(rare1) {
		rare1, rare2 = rare2, rare1
		rare1i, rare2i = rare2i, rare1i
	}

	for i, b := range needle[2:] {
		i += 2
		if rank(b) < rank(rare1) {
			rare2, rare2i = rare1, rare1i
			rare1, rare1i = b, i
		} else if b != rare1 && rank(b) < rank(rare2) {
			rare2, rare2i = b, i
		}
	}

	return rareNeedleBytes{rare1i, rare2i}
}

func rank(b byte) uint8 {
	return byteFrequencies[b]
}

// byteFrequencies ranks every byte by how common it is in text and log
// haystacks. Higher is more common.
var byteFrequencies = func() (t [256]uint8) {
	for b := 0; b < 256; b++ {
		switch {
		case b == ' ':
			t[b] = 255
		case b >= 'a' && b <= 'z':
			t[b] = 230
		case b >= '0' && b <= '9':
			t[b] = 200
		case b >= 'A' && b <= 'Z':
			t[b] = 180
		case b == '\n' || b == '\t' || b == '\r':
			t[b] = 170
		case b == 0x00 || b == 0xff:
			t[b] = 160
		case b > ' ' && b < 0x7f:
			t[b] = 150
		case b >= 0x80:
			t[b] = 40
		default:
			t[b] = 20
		}
	}
	for _, b := range []byte("etaoinsr") {
		t[b] = 250
	}
	return t
}()
