package microcode

import (
	"fmt"
	"iter"
)

// Control word layout.
const (
	STEP_RESET_SHIFT = 7 // Active low: 0 resets the step counter.
	STEP_ALU_SHIFT   = 4
	STEP_XFER_SHIFT  = 0

	STEP_RESET_MASK = uint8(1 << STEP_RESET_SHIFT)
	STEP_ALU_MASK   = uint8((ALU_COUNT - 1) << STEP_ALU_SHIFT)
	STEP_XFER_MASK  = uint8((TRANSFER_COUNT - 1) << STEP_XFER_SHIFT)
)

// Step is a single clock step control word.
type Step struct {
	Transfer Transfer // Bus transfer.
	Alu      AluOp    // ALU operation, NOP unless W is written.
	Reset    bool     // Reset the step counter.
}

// NewStep creates a validated step.
func NewStep(xfer Transfer, op AluOp) (step Step, err error) {
	step = Step{Transfer: xfer, Alu: op}
	err = step.Validate()
	return
}

// NopStep returns the idle step.
func NopStep() Step {
	return Step{Transfer: XFER_PCL_TO_W, Alu: ALU_NOP}
}

// ResetStep returns the step that restarts the sequencer.
func ResetStep() Step {
	return Step{Transfer: XFER_PCL_TO_W, Alu: ALU_NOP, Reset: true}
}

// IncPcStep returns the step advancing the program counter.
func IncPcStep() Step {
	return Step{Transfer: XFER_INC_PC, Alu: ALU_NOP}
}

// LoadImmStep returns the step loading the next program byte into IMM.
func LoadImmStep() Step {
	return Step{Transfer: XFER_LD_IMM, Alu: ALU_NOP}
}

// Move creates a step copying src to a register other than W.
func Move(src, dst Reg) (step Step, err error) {
	xfer, err := TransferOf(src, dst)
	if err != nil {
		return
	}
	return NewStep(xfer, ALU_NOP)
}

// Compute creates a step latching op(W, src) into W.
func Compute(src Reg, op AluOp) (step Step, err error) {
	xfer, err := TransferOf(src, REG_W)
	if err != nil {
		return
	}
	return NewStep(xfer, op)
}

// Validate checks the ALU/transfer consistency rules.
func (step Step) Validate() error {
	illegal := func(reason string) error {
		return &ErrIllegalStep{Transfer: step.Transfer, Alu: step.Alu, Reset: step.Reset, Reason: reason}
	}

	if !step.Alu.Valid() {
		return illegal(f("alu code out of range"))
	}
	if !step.Transfer.Valid() {
		return illegal(f("transfer code undefined"))
	}

	idle := step.Transfer == XFER_PCL_TO_W && step.Alu == ALU_NOP

	switch {
	case step.Reset:
		if !idle {
			return illegal(f("reset carries a payload"))
		}
	case step.Transfer.WritesW():
		if step.Alu == ALU_NOP && !idle {
			return illegal(f("write to W needs an alu operation"))
		}
	default:
		if step.Alu != ALU_NOP {
			return illegal(f("alu operation without write to W"))
		}
	}

	return nil
}

// IsNop returns true for the idle step.
func (step Step) IsNop() bool {
	return step == NopStep()
}

// Encode packs the step into its control byte.
func (step Step) Encode() (code uint8) {
	if !step.Reset {
		code |= STEP_RESET_MASK
	}
	code |= (step.Alu.Code() << STEP_ALU_SHIFT) & STEP_ALU_MASK
	code |= (step.Transfer.Code() << STEP_XFER_SHIFT) & STEP_XFER_MASK
	return
}

// DecodeStep unpacks a control byte.
func DecodeStep(code uint8) (step Step, err error) {
	step = Step{
		Reset:    (code & STEP_RESET_MASK) == 0,
		Alu:      AluOp((code & STEP_ALU_MASK) >> STEP_ALU_SHIFT),
		Transfer: Transfer((code & STEP_XFER_MASK) >> STEP_XFER_SHIFT),
	}

	err = step.Validate()
	if err != nil {
		err = fmt.Errorf("%w 0x%02x: %w", ErrStepDecode, code, err)
	}

	return
}

// LegalSteps iterates every step that passes validation.
func LegalSteps() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		if !yield(ResetStep()) {
			return
		}
		for xfer := range Transfers() {
			for op := range AluOps() {
				step := Step{Transfer: xfer, Alu: op}
				if step.Validate() != nil {
					continue
				}
				if !yield(step) {
					return
				}
			}
		}
	}
}

func (step Step) String() string {
	switch {
	case step.Reset:
		return "RESET"
	case step.IsNop():
		return "NOP"
	case step.Transfer.Pseudo():
		return step.Transfer.String()
	}
	return fmt.Sprintf("%-8v %v", step.Alu, step.Transfer)
}
