package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testProgram() *Program {
	return &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Addr: 0, Words: []string{"WLOAD", "IMM", "7"}, Mnemonic: "WLOAD IMM", Bytes: []uint8{45, 7}},
			{LineNo: 2, Addr: 2, Words: []string{"WSTORE", "OUT_A"}, Mnemonic: "WSTORE OUT_A", Bytes: []uint8{70}},
			{LineNo: 3, Addr: 3, Words: []string{"JMP", "IMM16", "0x0102"}, Mnemonic: "JMP IMM16", Bytes: []uint8{72, 0x02, 0x01}},
		},
	}
}

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	dbg := prog.Debug(0)
	assert.NotNil(dbg.Opcode)
	assert.Equal(1, dbg.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(1)
	assert.NotNil(dbg.Opcode)
	assert.Equal(1, dbg.LineNo)
	assert.Equal(1, dbg.Index)

	dbg = prog.Debug(5)
	assert.NotNil(dbg.Opcode)
	assert.Equal(3, dbg.LineNo)
	assert.Equal(2, dbg.Index)
}

func TestProgram_Debug_NotFound(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	dbg := prog.Debug(6)
	assert.Nil(dbg.Opcode)
	assert.Equal(0, dbg.Index)
}

func TestProgram_Bytes(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()
	assert.Equal(6, prog.Len())

	var addrs []uint16
	var data []uint8
	for addr, b := range prog.Bytes() {
		addrs = append(addrs, addr)
		data = append(data, b)
	}
	assert.Equal([]uint16{0, 1, 2, 3, 4, 5}, addrs)
	assert.Equal([]uint8{45, 7, 70, 72, 0x02, 0x01}, data)

	count := 0
	for range prog.Bytes() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(2, count)
}

func TestProgram_Image(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	image, notes, err := prog.Image(8, 0xff)
	assert.NoError(err)
	assert.Equal([]byte{45, 7, 70, 72, 0x02, 0x01, 0xff, 0xff}, image)
	assert.Equal([]string{"WLOAD IMM", "IMM", "WSTORE OUT_A", "JMP IMM16", "IMM", "IMM", "", ""}, notes)

	image, _, err = prog.Image(6, 0)
	assert.NoError(err)
	assert.Len(image, 6)

	_, _, err = prog.Image(5, 0)
	assert.ErrorIs(err, ErrImageFull)

	empty := &Program{}
	image, _, err = empty.Image(4, 9)
	assert.NoError(err)
	assert.Equal([]byte{9, 9, 9, 9}, image)
}
