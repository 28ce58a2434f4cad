package microcode

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisters(t *testing.T) {
	assert := assert.New(t)

	regs := slices.Collect(Registers())
	assert.Len(regs, REG_COUNT)
	assert.Equal(REG_W, regs[0])
	assert.Equal(REG_OUT_B, regs[REG_COUNT-1])

	table := []struct {
		reg    Reg
		name   string
		canSrc bool
		canDst bool
	}{
		{REG_W, "W", true, true},
		{REG_TMP, "TMP", false, false},
		{REG_PC_L, "PC_L", true, true},
		{REG_PC_H, "PC_H", true, true},
		{REG_SP, "SP", true, true},
		{REG_REGS_OF_IMM, "REGS[IMM]", true, true},
		{REG_REGS_OF_SP, "REGS[SP]", true, true},
		{REG_IMM, "IMM", true, false},
		{REG_IN, "IN", true, false},
		{REG_OUT_A, "OUT_A", false, true},
		{REG_OUT_B, "OUT_B", false, true},
	}

	for _, entry := range table {
		assert.Equal(entry.name, entry.reg.String())
		assert.Equal(entry.canSrc, entry.reg.CanSrc(), entry.name)
		assert.Equal(entry.canDst, entry.reg.CanDst(), entry.name)

		reg, ok := RegByName(entry.name)
		assert.True(ok, entry.name)
		assert.Equal(entry.reg, reg)
	}
}

func TestRegInvalid(t *testing.T) {
	assert := assert.New(t)

	reg := Reg(REG_COUNT)
	assert.False(reg.Valid())
	assert.False(reg.CanSrc())
	assert.False(reg.CanDst())
	assert.Equal("Reg(11)", reg.String())
	assert.Equal("Reg(-1)", Reg(-1).String())

	_, ok := RegByName("R0")
	assert.False(ok)
}

func TestRegOperands(t *testing.T) {
	assert := assert.New(t)

	assert.True(REG_PC_L.IsProgramCounter())
	assert.True(REG_PC_H.IsProgramCounter())
	assert.False(REG_SP.IsProgramCounter())

	assert.True(REG_IMM.NeedsImmediate())
	assert.True(REG_REGS_OF_IMM.NeedsImmediate())
	assert.False(REG_REGS_OF_SP.NeedsImmediate())
}

func TestAluOps(t *testing.T) {
	assert := assert.New(t)

	ops := slices.Collect(AluOps())
	assert.Len(ops, ALU_COUNT)
	for n, op := range ops {
		assert.Equal(uint8(n), op.Code())
	}

	assert.Equal("WADD", ALU_WADD.String())
	assert.Equal("NOP", ALU_NOP.String())
	assert.Equal("WLOAD", ALU_WLOAD.String())
	assert.Equal("AluOp(8)", AluOp(8).String())
	assert.Equal("WXOR", ALU_WXOR.String())

	symbol, ok := ALU_WXOR.Symbol()
	assert.True(ok)
	assert.Equal("^", symbol)

	symbol, ok = ALU_WLOAD.Symbol()
	assert.True(ok)
	assert.Equal("", symbol)

	_, ok = ALU_WNEG.Symbol()
	assert.False(ok)
	_, ok = ALU_NOP.Symbol()
	assert.False(ok)
}
