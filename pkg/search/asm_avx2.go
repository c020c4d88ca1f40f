//go:build ignore

package main

import (
	. "github.com/mmcloughlin/avo/build"
	. "github.com/mmcloughlin/avo/operand"
	"github.com/mmcloughlin/avo/reg"
)

func main() {
	TEXT("candidates32", NOSPLIT, "func(rare1, rare2 byte, p1, p2 *byte) uint32")
	Doc(
		"candidates32 compares the 32 bytes at p1 with rare1 and the 32 bytes at p2",
		"with rare2. Bit k of the result is set when both bytes at offset k match.",
	)
	Pragma("noescape")

	r1, r2 := inline_splat("rare1", "rare2")

	p1 := Load(Param("p1"), GP64())
	p2 := Load(Param("p2"), GP64())

	mask := inline_chunk_mask(r1, r2, p1, p2)

	VZEROUPPER()
	Store(mask, ReturnIndex(0))
	RET()

	Generate()
}

// inline_splat fills one 256bit register with the first rare needle byte and
// another with the second one.
func inline_splat(first, second string) (reg.VecVirtual, reg.VecVirtual) {
	Comment("create vectors filled with the rare bytes")
	f := YMM()
	l := YMM()

	b1, _ := Param(first).Resolve()
	b2, _ := Param(second).Resolve()
	VPBROADCASTB(b1.Addr, f)
	VPBROADCASTB(b2.Addr, l)

	return f, l
}

func inline_chunk_mask(first, last reg.VecVirtual, p1, p2 reg.Register) reg.Register {
	chunk0 := YMM()
	chunk1 := YMM()
	VMOVDQU(Mem{Base: p1}, chunk0)
	VMOVDQU(Mem{Base: p2}, chunk1)

	Comment("compare both rare bytes with their chunks")
	eq0 := YMM()
	eq1 := YMM()
	VPCMPEQB(first, chunk0, eq0)
	VPCMPEQB(last, chunk1, eq1)

	mask := YMM()
	VPAND(eq0, eq1, mask)

	offsets := GP32()
	VPMOVMSKB(mask, offsets)
	return offsets
}
