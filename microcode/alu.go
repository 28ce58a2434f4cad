package microcode

import (
	"iter"
)

// AluOp is an accumulator operation, active while W is being latched.
type AluOp int

//go:generate go tool stringer -linecomment -type=AluOp
const (
	ALU_WADD  = AluOp(0) // WADD
	ALU_WSUB  = AluOp(1) // WSUB
	ALU_WNEG  = AluOp(2) // WNEG
	ALU_NOP   = AluOp(3) // NOP
	ALU_WAND  = AluOp(4) // WAND
	ALU_WOR   = AluOp(5) // WOR
	ALU_WXOR  = AluOp(6) // WXOR
	ALU_WLOAD = AluOp(7) // WLOAD

	ALU_BITS  = 3
	ALU_COUNT = 1 << ALU_BITS
)

var aluSymbols = map[AluOp]string{
	ALU_WADD:  "+",
	ALU_WSUB:  "-",
	ALU_WAND:  "&",
	ALU_WOR:   "|",
	ALU_WXOR:  "^",
	ALU_WLOAD: "",
}

// AluOps iterates all ALU operations in code order.
func AluOps() iter.Seq[AluOp] {
	return func(yield func(AluOp) bool) {
		for n := range ALU_COUNT {
			if !yield(AluOp(n)) {
				return
			}
		}
	}
}

// Valid returns true if op fits the ALU field.
func (op AluOp) Valid() bool {
	return op >= 0 && op < ALU_COUNT
}

// Code returns the ALU field value.
func (op AluOp) Code() uint8 {
	return uint8(op)
}

// Symbol returns the infix operator of the operation, for listings.
func (op AluOp) Symbol() (symbol string, ok bool) {
	symbol, ok = aluSymbols[op]
	return
}
