package microcode

import (
	"log"
)

// Table is the control ROM, indexed by opcode, flag state and step.
type Table [OPCODE_COUNT][FLAG_STATES][STEP_COUNT]uint8

// Row returns a copy of the control words of an opcode in a flag state.
func (table *Table) Row(opcode uint8, flags Flags) []uint8 {
	row := table[opcode][flags&FLAG_MASK]
	return row[:]
}

// Bytes returns the ROM image, opcode major, then flag state, then step.
func (table *Table) Bytes() (data []byte) {
	data = make([]byte, 0, OPCODE_COUNT*FLAG_STATES*STEP_COUNT)
	for op := range table {
		for state := range table[op] {
			data = append(data, table[op][state][:]...)
		}
	}
	return
}

// Expand runs an instruction for every flag state, checks the rows fit the
// step counter with identical lengths, and pads them with reset steps.
func Expand(ins Instruction) (rows [FLAG_STATES][]Step, err error) {
	var lengths [FLAG_STATES]int

	for state := range FLAG_STATES {
		var steps []Step
		steps, err = ins.Steps(Flags(state))
		if err != nil {
			return
		}
		for _, step := range steps {
			err = step.Validate()
			if err != nil {
				return
			}
		}
		if len(steps) > STEP_COUNT {
			err = &ErrTableOverflow{What: f("steps"), Count: len(steps), Limit: STEP_COUNT}
			return
		}
		lengths[state] = len(steps)
		rows[state] = steps
	}

	for _, length := range lengths {
		if length != lengths[0] {
			err = &ErrBranchLength{Lengths: lengths}
			return
		}
	}

	for state, steps := range rows {
		padded := make([]Step, STEP_COUNT)
		copy(padded, steps)
		for n := len(steps); n < STEP_COUNT; n++ {
			padded[n] = ResetStep()
		}
		rows[state] = padded
	}

	return
}

// Generator builds control tables from catalogs.
type Generator struct {
	Verbose bool // If set, logs every generated opcode.
}

// Generate builds and verifies the control table of a catalog. No table is
// returned unless every check passes.
func (gen *Generator) Generate(cat *Catalog) (table *Table, index *Index, err error) {
	if len(cat.Instructions) != OPCODE_COUNT {
		err = &ErrTableOverflow{What: f("opcodes"), Count: len(cat.Instructions), Limit: OPCODE_COUNT}
		return
	}

	idx, err := NewIndex(cat)
	if err != nil {
		return
	}

	out := &Table{}
	for op, ins := range cat.Instructions {
		var rows [FLAG_STATES][]Step
		rows, err = Expand(ins)
		if err != nil {
			err = &ErrOpcode{Opcode: op, Key: KeyOf(ins), Err: err}
			return
		}

		if gen.Verbose && !IsFiller(ins) {
			log.Printf("microcode: 0x%02x %v", op, KeyOf(ins))
		}

		for state, row := range rows {
			for n, step := range row {
				out[op][state][n] = step.Encode()
			}
		}
	}

	err = verifyIndex(idx)
	if err != nil {
		return
	}

	if gen.Verbose {
		log.Printf("microcode: %d of %d opcodes defined", idx.Len(), OPCODE_COUNT)
	}

	table = out
	index = idx

	return
}

// verifyIndex checks resolution of every described opcode is the identity.
func verifyIndex(idx *Index) (err error) {
	for n := range OPCODE_COUNT {
		op := uint8(n)
		if idx.IsFiller(op) {
			continue
		}
		name, operand := idx.Describe(op)
		var back uint8
		back, err = idx.Resolve(name, operand)
		if err != nil {
			return
		}
		if back != op {
			err = &ErrDuplicateInstruction{Key: Key{name, operand}, First: int(back), Second: int(op)}
			return
		}
	}

	return
}

// Generate builds the W8 catalog and its control table and index.
func Generate() (table *Table, index *Index, err error) {
	cat, err := BuildCatalog()
	if err != nil {
		return
	}

	gen := &Generator{}
	return gen.Generate(cat)
}

// GenerateControlTable returns the W8 control ROM contents.
func GenerateControlTable() (table *Table, err error) {
	table, _, err = Generate()
	return
}
