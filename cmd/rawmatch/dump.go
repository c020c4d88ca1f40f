package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// writeDump prints haystack[start-context : start+n+context] as one hex line
// followed by its printable characters. The n matched bytes are rendered with
// c.
func writeDump(w io.Writer, haystack []byte, start, n, context int, c *color.Color) {
	lo := max(start-context, 0)
	hi := min(start+n+context, len(haystack))

	var hexPart, textPart strings.Builder
	for i := lo; i < hi; i++ {
		if i > lo {
			hexPart.WriteByte(' ')
		}
		h := fmt.Sprintf("%02x", haystack[i])
		ch := string(printable(haystack[i]))
		if i >= start && i < start+n {
			h = c.Sprint(h)
			ch = c.Sprint(ch)
		}
		hexPart.WriteString(h)
		textPart.WriteString(ch)
	}

	fmt.Fprintf(w, "%08x  %s  |%s|\n", lo, hexPart.String(), textPart.String())
}

func printable(b byte) byte {
	if b < 0x20 || b > 0x7e {
		return '.'
	}
	return b
}
