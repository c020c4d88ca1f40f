//go:build !nosimd

package search

import (
	"golang.org/x/sys/cpu"
)

func init() {
	if cpu.X86.HasAVX2 {
		index = indexAvx2
	}
}
