package asm

import (
	"maps"
	"slices"
)

// showPc displays the program counter a few times, as a smoke test of the
// output port.
const showPc = `
        WLOAD PC_L
        WSTORE OUT_A
        WLOAD PC_L
        WSTORE OUT_A
        WLOAD PC_L
        WSTORE OUT_A
        WLOAD PC_L
        WSTORE OUT_A
`

// Sample programs, by name.
var Samples = map[string]string{
	// Fibonacci, unrolled twice to avoid swapping.
	"fibonacci": showPc + `
.equ A 1
.equ B 2

        WLOAD IMM 0
        WSTORE REGS[IMM] A      ; reg[A] = 0
        WLOAD IMM 1
        WSTORE REGS[IMM] B      ; reg[B] = 1

loop:   WSTORE OUT_A
        WADD REGS[IMM] A        ; reg[A] += reg[B]
        WSTORE REGS[IMM] A

        WSTORE OUT_A
        WADD REGS[IMM] B        ; reg[B] += reg[A]
        WSTORE REGS[IMM] B
        JMP IMM16 loop
`,
	"sp": `
loop:   WLOAD PC_L
        WSTORE SP
        WSTORE REGS[SP]
        JMP IMM16 loop
`,
	"imm": showPc + `
loop:   WLOAD IMM $(1 << 0)
        WLOAD IMM $(1 << 1)
        WLOAD IMM $(1 << 2)
        WLOAD IMM $(1 << 3)
        WLOAD IMM $(1 << 4)
        WLOAD IMM $(1 << 5)
        WLOAD IMM $(1 << 6)
        WLOAD IMM $(1 << 7)
        JMP IMM16 loop
`,
}

// SampleNames returns the sample names, sorted.
func SampleNames() []string {
	return slices.Sorted(maps.Keys(Samples))
}
