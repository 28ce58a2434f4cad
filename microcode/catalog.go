package microcode

import (
	"fmt"
	"io"
	"iter"
	"slices"

	"github.com/ezrec/ucrom/internal"
)

const (
	OPCODE_COUNT = 256 // Opcodes addressable by the instruction register.
	STEP_COUNT   = 16  // Steps addressable by the step counter.
)

// Catalog is the ordered instruction set. The position of an instruction is
// its opcode.
type Catalog struct {
	Instructions []Instruction // Exactly OPCODE_COUNT entries.
	Defined      int           // Number of entries before the filler.
}

// aluAllowed applies the exclusion rules for ALU instructions.
func aluAllowed(op AluOp, src Reg, writeback bool) bool {
	switch {
	case src == REG_W:
		return false
	case !src.CanSrc():
		return false
	case op == ALU_NOP:
		return false
	case op == ALU_WNEG && src.IsProgramCounter():
		return false
	}

	if writeback {
		switch {
		case !src.CanDst():
			return false
		case op == ALU_WLOAD:
			return false
		case src.IsProgramCounter():
			return false
		}
	}

	return true
}

func aluInstructions(writeback bool) iter.Seq[Instruction] {
	return func(yield func(Instruction) bool) {
		for op, src := range internal.IterSeqProduct(AluOps(), Registers()) {
			if !aluAllowed(op, src, writeback) {
				continue
			}
			if !yield(&AluInstruction{Op: op, Src: src, Writeback: writeback}) {
				return
			}
		}
	}
}

func storeAllowed(dst Reg) bool {
	return dst != REG_W && dst.CanDst()
}

func storeInstructions() iter.Seq[Instruction] {
	return func(yield func(Instruction) bool) {
		for dst := range internal.IterSeqFilter(Registers(), storeAllowed) {
			if !yield(&StoreInstruction{Dst: dst}) {
				return
			}
		}
	}
}

func jumpInstructions() iter.Seq[Instruction] {
	return func(yield func(Instruction) bool) {
		jumps := []*JumpInstruction{
			{Mnemonic: "JMP", Cond: COND_ALWAYS},
			{Mnemonic: "JZ", Cond: COND_ZERO},
			{Mnemonic: "JC", Cond: COND_CARRY},
			{Mnemonic: "JZC", Cond: COND_BOTH},
			{Mnemonic: "JNZ", Cond: COND_ZERO, Negate: true},
			{Mnemonic: "JNC", Cond: COND_CARRY, Negate: true},
		}
		for _, jump := range jumps {
			if !yield(jump) {
				return
			}
		}
	}
}

func controlInstructions() iter.Seq[Instruction] {
	return slices.Values([]Instruction{
		&NopInstruction{},
		&HaltInstruction{},
	})
}

// BuildCatalog creates the W8 instruction set.
func BuildCatalog() (cat *Catalog, err error) {
	err = CheckTransfers()
	if err != nil {
		return
	}

	defined := slices.Collect(internal.IterSeqConcat(
		aluInstructions(false),
		aluInstructions(true),
		storeInstructions(),
		jumpInstructions(),
		controlInstructions(),
	))

	return NewCatalog(defined)
}

// NewCatalog assigns opcodes in order and pads the rest of the opcode space
// with filler.
func NewCatalog(defined []Instruction) (cat *Catalog, err error) {
	if len(defined) > OPCODE_COUNT {
		err = &ErrTableOverflow{What: f("instructions"), Count: len(defined), Limit: OPCODE_COUNT}
		return
	}

	instructions := make([]Instruction, OPCODE_COUNT)
	copy(instructions, defined)
	for n := len(defined); n < OPCODE_COUNT; n++ {
		instructions[n] = &NopInstruction{Filler: true}
	}

	cat = &Catalog{
		Instructions: instructions,
		Defined:      len(defined),
	}

	return
}

// Instruction returns the instruction of an opcode.
func (cat *Catalog) Instruction(opcode uint8) Instruction {
	return cat.Instructions[opcode]
}

// Listing writes the step sequences of an opcode for every flag state.
func (cat *Catalog) Listing(w io.Writer, opcode uint8) (err error) {
	ins := cat.Instruction(opcode)

	rows, err := Expand(ins)
	if err != nil {
		return
	}

	_, err = fmt.Fprintf(w, "======= %03d =======\n%v\n", opcode, KeyOf(ins))
	if err != nil {
		return
	}

	alu, ok := ins.(*AluInstruction)
	if ok {
		symbol, ok := alu.Op.Symbol()
		if ok {
			_, err = fmt.Fprintf(w, "%v %v= %v\n", REG_W, symbol, alu.Src)
			if err != nil {
				return
			}
		}
	}

	for state, row := range rows {
		_, err = fmt.Fprintf(w, "-- flags %v\n", Flags(state))
		if err != nil {
			return
		}
		for n, step := range row {
			if step.Reset && n > 0 && row[n-1].Reset {
				break
			}
			_, err = fmt.Fprintf(w, "%2d: 0x%02x %v\n", n, step.Encode(), step)
			if err != nil {
				return
			}
		}
	}

	return
}
