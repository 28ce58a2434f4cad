package microcode

// OPERAND_IMM16 is the operand of instructions followed by a 16-bit address.
const OPERAND_IMM16 = "IMM16"

// Instruction is one opcode of the W8.
type Instruction interface {
	Name() string    // Mnemonic.
	Operand() string // Operand spelling, empty if none.

	// Steps returns the micro-step sequence for the flag state, before
	// padding to the full step counter range.
	Steps(flags Flags) ([]Step, error)
}

// Key identifies an instruction by mnemonic and operand.
type Key struct {
	Name    string
	Operand string
}

// KeyOf returns the identity of an instruction.
func KeyOf(ins Instruction) Key {
	return Key{Name: ins.Name(), Operand: ins.Operand()}
}

func (key Key) String() string {
	if len(key.Operand) == 0 {
		return key.Name
	}
	return key.Name + " " + key.Operand
}

// IsFiller returns true if the instruction only pads unused opcodes.
func IsFiller(ins Instruction) bool {
	nop, ok := ins.(*NopInstruction)
	return ok && nop.Filler
}

// sequence collects steps, keeping the first construction error.
type sequence struct {
	steps []Step
	err   error
}

func (seq *sequence) add(steps ...Step) {
	seq.steps = append(seq.steps, steps...)
}

func (seq *sequence) move(src, dst Reg) {
	if seq.err != nil {
		return
	}
	step, err := Move(src, dst)
	if err != nil {
		seq.err = err
		return
	}
	seq.add(step)
}

func (seq *sequence) compute(src Reg, op AluOp) {
	if seq.err != nil {
		return
	}
	step, err := Compute(src, op)
	if err != nil {
		seq.err = err
		return
	}
	seq.add(step)
}

// fetch loads the immediate operand byte, if the register needs one.
func (seq *sequence) fetch(reg Reg) {
	if reg.NeedsImmediate() {
		seq.add(IncPcStep(), LoadImmStep())
	}
}

func (seq *sequence) done() ([]Step, error) {
	if seq.err != nil {
		return nil, seq.err
	}
	return seq.steps, nil
}

// AluInstruction combines W with a register, optionally writing the result
// back to that register.
type AluInstruction struct {
	Op        AluOp
	Src       Reg
	Writeback bool
}

var _ Instruction = (*AluInstruction)(nil)

func (ins *AluInstruction) Name() string {
	if ins.Writeback {
		return ins.Op.String() + "WB"
	}
	return ins.Op.String()
}

func (ins *AluInstruction) Operand() string {
	return ins.Src.String()
}

func (ins *AluInstruction) Steps(flags Flags) ([]Step, error) {
	seq := &sequence{}
	seq.fetch(ins.Src)
	seq.compute(ins.Src, ins.Op)
	if ins.Writeback {
		seq.move(REG_W, ins.Src)
	}
	seq.add(IncPcStep(), ResetStep())
	return seq.done()
}

// StoreInstruction writes W to a register.
type StoreInstruction struct {
	Dst Reg
}

var _ Instruction = (*StoreInstruction)(nil)

func (ins *StoreInstruction) Name() string {
	return "WSTORE"
}

func (ins *StoreInstruction) Operand() string {
	return ins.Dst.String()
}

func (ins *StoreInstruction) Steps(flags Flags) ([]Step, error) {
	seq := &sequence{}
	seq.fetch(ins.Dst)
	seq.move(REG_W, ins.Dst)
	seq.add(IncPcStep(), ResetStep())
	return seq.done()
}

// JumpInstruction loads the program counter with the 16-bit address that
// follows the opcode, if the condition holds.
type JumpInstruction struct {
	Mnemonic string
	Cond     Cond
	Negate   bool // Jump when the condition does not hold.
}

var _ Instruction = (*JumpInstruction)(nil)

func (ins *JumpInstruction) Name() string {
	return ins.Mnemonic
}

func (ins *JumpInstruction) Operand() string {
	return OPERAND_IMM16
}

// Taken returns true if the jump is taken in the flag state.
func (ins *JumpInstruction) Taken(flags Flags) bool {
	return ins.Cond.Taken(flags) != ins.Negate
}

func (ins *JumpInstruction) Steps(flags Flags) ([]Step, error) {
	// Both halves of the address are fetched on every path; the flags are
	// only consulted once the low half is in W and the high half in IMM.
	seq := &sequence{}
	seq.add(IncPcStep(), LoadImmStep())
	seq.compute(REG_IMM, ALU_WLOAD)
	seq.add(IncPcStep(), LoadImmStep())

	taken := &sequence{}
	taken.move(REG_W, REG_PC_L)
	taken.compute(REG_IMM, ALU_WLOAD)
	taken.move(REG_W, REG_PC_H)
	takenSteps, err := taken.done()
	if err != nil {
		return nil, err
	}

	notTaken := []Step{IncPcStep()}

	if ins.Negate {
		takenSteps, notTaken = notTaken, takenSteps
	}

	seq.add(ins.Cond.Branch(flags, takenSteps, notTaken)...)
	seq.add(ResetStep())

	return seq.done()
}

// NopInstruction only advances the program counter.
type NopInstruction struct {
	Filler bool // Pads an unassigned opcode.
}

var _ Instruction = (*NopInstruction)(nil)

func (ins *NopInstruction) Name() string {
	return "NOP"
}

func (ins *NopInstruction) Operand() string {
	return ""
}

func (ins *NopInstruction) Steps(flags Flags) ([]Step, error) {
	return []Step{IncPcStep(), ResetStep()}, nil
}

// HaltInstruction resets the sequencer without advancing the program
// counter, so the same opcode is executed forever.
type HaltInstruction struct{}

var _ Instruction = (*HaltInstruction)(nil)

func (ins *HaltInstruction) Name() string {
	return "HALT"
}

func (ins *HaltInstruction) Operand() string {
	return ""
}

func (ins *HaltInstruction) Steps(flags Flags) ([]Step, error) {
	return []Step{ResetStep()}, nil
}
