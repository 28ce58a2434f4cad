package microcode

import (
	"iter"
)

// Reg is a physical register of the W8.
type Reg int

//go:generate go tool stringer -linecomment -type=Reg
const (
	REG_W           = Reg(0)  // W
	REG_TMP         = Reg(1)  // TMP
	REG_PC_L        = Reg(2)  // PC_L
	REG_PC_H        = Reg(3)  // PC_H
	REG_SP          = Reg(4)  // SP
	REG_REGS_OF_IMM = Reg(5)  // REGS[IMM]
	REG_REGS_OF_SP  = Reg(6)  // REGS[SP]
	REG_IMM         = Reg(7)  // IMM
	REG_IN          = Reg(8)  // IN
	REG_OUT_A       = Reg(9)  // OUT_A
	REG_OUT_B       = Reg(10) // OUT_B

	REG_COUNT = 11
)

// RegInfo describes the bus capabilities of a register.
type RegInfo struct {
	CanSrc bool // May drive the bus towards the accumulator path.
	CanDst bool // May be written from the accumulator path.
}

// regTable is indexed by Reg.
//
// TMP exists in the register file but has no bus decode in this revision;
// its codes are used by IN and OUT_A.
var regTable = [REG_COUNT]RegInfo{
	REG_W:           {true, true},
	REG_TMP:         {false, false},
	REG_PC_L:        {true, true},
	REG_PC_H:        {true, true},
	REG_SP:          {true, true},
	REG_REGS_OF_IMM: {true, true},
	REG_REGS_OF_SP:  {true, true},
	REG_IMM:         {true, false},
	REG_IN:          {true, false},
	REG_OUT_A:       {false, true},
	REG_OUT_B:       {false, true},
}

// Registers iterates all registers in catalog order.
func Registers() iter.Seq[Reg] {
	return func(yield func(Reg) bool) {
		for n := range REG_COUNT {
			if !yield(Reg(n)) {
				return
			}
		}
	}
}

// Valid returns true if reg is one of the defined registers.
func (reg Reg) Valid() bool {
	return reg >= 0 && reg < REG_COUNT
}

// Info returns the capabilities of the register.
func (reg Reg) Info() (info RegInfo) {
	if reg.Valid() {
		info = regTable[reg]
	}
	return
}

// CanSrc returns true if the register may be a transfer source.
func (reg Reg) CanSrc() bool {
	return reg.Info().CanSrc
}

// CanDst returns true if the register may be a transfer destination.
func (reg Reg) CanDst() bool {
	return reg.Info().CanDst
}

// IsProgramCounter returns true for either half of the program counter.
func (reg Reg) IsProgramCounter() bool {
	return reg == REG_PC_L || reg == REG_PC_H
}

// NeedsImmediate returns true if using the register as an operand requires
// fetching an immediate byte first.
func (reg Reg) NeedsImmediate() bool {
	return reg == REG_IMM || reg == REG_REGS_OF_IMM
}

// RegByName looks up a register by its operand spelling.
func RegByName(name string) (reg Reg, ok bool) {
	for r := range Registers() {
		if r.String() == name {
			reg, ok = r, true
			return
		}
	}
	return
}
