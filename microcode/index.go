package microcode

import (
	"iter"
)

// Index maps instruction keys to opcodes and back.
type Index struct {
	opcode map[Key]uint8
	key    [OPCODE_COUNT]Key
	filler [OPCODE_COUNT]bool
}

// NewIndex indexes a catalog. Filler entries are not resolvable.
func NewIndex(cat *Catalog) (idx *Index, err error) {
	index := &Index{
		opcode: make(map[Key]uint8, cat.Defined),
	}

	for n, ins := range cat.Instructions {
		key := KeyOf(ins)
		index.key[n] = key
		if IsFiller(ins) {
			index.filler[n] = true
			continue
		}
		first, ok := index.opcode[key]
		if ok {
			err = &ErrDuplicateInstruction{Key: key, First: int(first), Second: n}
			return
		}
		index.opcode[key] = uint8(n)
	}

	idx = index
	return
}

// Resolve returns the opcode of a non-filler instruction.
func (idx *Index) Resolve(name, operand string) (opcode uint8, err error) {
	key := Key{Name: name, Operand: operand}
	opcode, ok := idx.opcode[key]
	if !ok {
		err = ErrUnknownInstruction(key)
	}
	return
}

// Describe returns the mnemonic and operand of an opcode.
func (idx *Index) Describe(opcode uint8) (name, operand string) {
	key := idx.key[opcode]
	return key.Name, key.Operand
}

// IsFiller returns true if the opcode only pads the opcode space.
func (idx *Index) IsFiller(opcode uint8) bool {
	return idx.filler[opcode]
}

// Len returns the number of resolvable instructions.
func (idx *Index) Len() int {
	return len(idx.opcode)
}

// All iterates resolvable instructions in opcode order.
func (idx *Index) All() iter.Seq2[uint8, Key] {
	return func(yield func(uint8, Key) bool) {
		for n, key := range idx.key {
			if idx.filler[n] {
				continue
			}
			if !yield(uint8(n), key) {
				return
			}
		}
	}
}
