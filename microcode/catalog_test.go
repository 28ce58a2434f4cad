package microcode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCatalog(t *testing.T) {
	assert := assert.New(t)

	cat, err := BuildCatalog()
	require.NoError(t, err)

	assert.Len(cat.Instructions, OPCODE_COUNT)
	assert.Equal(80, cat.Defined)

	for n, ins := range cat.Instructions {
		assert.Equal(n >= cat.Defined, IsFiller(ins), "opcode %d", n)
	}

	table := []struct {
		opcode uint8
		key    Key
	}{
		{0, Key{"WADD", "PC_L"}},
		{14, Key{"WNEG", "SP"}},
		{45, Key{"WLOAD", "IMM"}},
		{47, Key{"WADDWB", "SP"}},
		{70, Key{"WSTORE", "OUT_A"}},
		{72, Key{"JMP", "IMM16"}},
		{73, Key{"JZ", "IMM16"}},
		{78, Key{"NOP", ""}},
		{79, Key{"HALT", ""}},
	}

	for _, entry := range table {
		assert.Equal(entry.key, KeyOf(cat.Instruction(entry.opcode)), "opcode %d", entry.opcode)
	}
}

func TestCatalogExclusions(t *testing.T) {
	assert := assert.New(t)

	cat, err := BuildCatalog()
	require.NoError(t, err)

	for _, ins := range cat.Instructions[:cat.Defined] {
		switch ins := ins.(type) {
		case *AluInstruction:
			assert.NotEqual(REG_W, ins.Src)
			assert.True(ins.Src.CanSrc())
			assert.NotEqual(ALU_NOP, ins.Op)
			if ins.Op == ALU_WNEG {
				assert.False(ins.Src.IsProgramCounter())
			}
			if ins.Writeback {
				assert.True(ins.Src.CanDst())
				assert.NotEqual(ALU_WLOAD, ins.Op)
				assert.False(ins.Src.IsProgramCounter())
			}
		case *StoreInstruction:
			assert.NotEqual(REG_W, ins.Dst)
			assert.True(ins.Dst.CanDst())
		}

		for state := range FLAG_STATES {
			_, err := ins.Steps(Flags(state))
			assert.NoError(err, KeyOf(ins).String())
		}
	}
}

func TestNewCatalogOverflow(t *testing.T) {
	assert := assert.New(t)

	defined := make([]Instruction, OPCODE_COUNT)
	for n := range defined {
		defined[n] = &HaltInstruction{}
	}
	cat, err := NewCatalog(defined)
	assert.NoError(err)
	assert.Equal(OPCODE_COUNT, cat.Defined)

	defined = append(defined, &HaltInstruction{})
	_, err = NewCatalog(defined)
	assert.ErrorIs(err, ErrOverflow)
	var overflow *ErrTableOverflow
	assert.ErrorAs(err, &overflow)
	assert.Equal(OPCODE_COUNT+1, overflow.Count)
	assert.Equal(OPCODE_COUNT, overflow.Limit)
}

func TestCatalogListing(t *testing.T) {
	assert := assert.New(t)

	cat, err := BuildCatalog()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = cat.Listing(&buf, 73)
	assert.NoError(err)

	text := buf.String()
	assert.True(strings.HasPrefix(text, "======= 073 =======\nJZ IMM16\n"), text)
	assert.Equal(FLAG_STATES, strings.Count(text, "-- flags"))
	assert.Contains(text, " 5: 0xb5 NOP      W->PC_L\n")
	assert.Contains(text, " 5: 0xb0 INC_PC\n")
	// The first padding reset is listed, the rest are not.
	assert.Equal(FLAG_STATES, strings.Count(text, "RESET"))
	assert.NotContains(text, "\nW ")

	buf.Reset()
	err = cat.Listing(&buf, 0)
	assert.NoError(err)
	assert.True(strings.HasPrefix(buf.String(), "======= 000 =======\nWADD PC_L\nW += PC_L\n"), buf.String())

	buf.Reset()
	err = cat.Listing(&buf, 45)
	assert.NoError(err)
	assert.True(strings.HasPrefix(buf.String(), "======= 045 =======\nWLOAD IMM\nW = IMM\n"), buf.String())

	// WNEG has no infix operator, so only the key is shown.
	buf.Reset()
	err = cat.Listing(&buf, 14)
	assert.NoError(err)
	assert.True(strings.HasPrefix(buf.String(), "======= 014 =======\nWNEG SP\n-- flags 00\n"), buf.String())
}
