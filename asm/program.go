package asm

import (
	"iter"
)

// IMMEDIATE_NOTE annotates operand bytes in image listings.
const IMMEDIATE_NOTE = "IMM"

// Opcode is one assembled source line.
type Opcode struct {
	LineNo    int
	Addr      int
	Words     []string
	Mnemonic  string  // Instruction key, as resolved.
	Bytes     []uint8 // Opcode followed by its operand bytes.
	LinkLabel string
}

// Program is an assembled instruction stream.
type Program struct {
	Opcodes []Opcode
}

// Debug locates a program address within its opcode.
type Debug struct {
	*Opcode
	Index int
}

// Debug locates the opcode covering an address.
func (prog *Program) Debug(addr uint16) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if int(addr) >= op.Addr && int(addr) < op.Addr+len(op.Bytes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(addr) - op.Addr,
			}
			break
		}
	}

	return
}

// Len returns the number of bytes of the program.
func (prog *Program) Len() (size int) {
	for _, op := range prog.Opcodes {
		size = max(size, op.Addr+len(op.Bytes))
	}
	return
}

// Bytes iterates the program bytes with their address.
func (prog *Program) Bytes() iter.Seq2[uint16, uint8] {
	return func(yield func(addr uint16, data uint8) bool) {
		for _, op := range prog.Opcodes {
			for n, data := range op.Bytes {
				if !yield(uint16(op.Addr+n), data) {
					return
				}
			}
		}
	}
}

// Image returns the program as a fixed size instruction memory, with the
// unused tail set to fill. The notes name the instruction or IMMEDIATE_NOTE
// for every byte of the program, and are empty for the fill.
func (prog *Program) Image(size int, fill uint8) (image []byte, notes []string, err error) {
	if prog.Len() > size {
		err = ErrImageFull
		return
	}

	image = make([]byte, size)
	notes = make([]string, size)
	for n := range image {
		image[n] = fill
	}

	for _, op := range prog.Opcodes {
		for n, data := range op.Bytes {
			image[op.Addr+n] = data
			if n == 0 {
				notes[op.Addr+n] = op.Mnemonic
			} else {
				notes[op.Addr+n] = IMMEDIATE_NOTE
			}
		}
	}

	return
}
