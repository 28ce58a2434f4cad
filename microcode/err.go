package microcode

import (
	"errors"

	"github.com/ezrec/ucrom/translate"
)

var f = translate.From

var (
	// Sentinels, matched by errors.Is on the typed errors below.
	ErrCapability = errors.New(f("register capability"))
	ErrStep       = errors.New(f("illegal step"))
	ErrBranch     = errors.New(f("branch length mismatch"))
	ErrOverflow   = errors.New(f("table overflow"))
	ErrUnknown    = errors.New(f("unknown instruction"))
	ErrDuplicate  = errors.New(f("duplicate instruction"))

	// Catalog configuration errors
	ErrTransferCode    = errors.New(f("transfer code out of range"))
	ErrTransferCollide = errors.New(f("transfer code collision"))
	ErrStepDecode      = errors.New(f("control word decode"))
)

// ErrRegisterCapability is returned when a transfer is requested against a
// register that cannot play that bus role.
type ErrRegisterCapability struct {
	Src Reg
	Dst Reg
}

func (err *ErrRegisterCapability) Error() string {
	return f("illegal move %v -> %v", err.Src, err.Dst)
}

func (err *ErrRegisterCapability) Is(target error) bool {
	return target == ErrCapability
}

// ErrIllegalStep is returned when a micro-step violates the accumulator
// write rule.
type ErrIllegalStep struct {
	Transfer Transfer
	Alu      AluOp
	Reset    bool
	Reason   string
}

func (err *ErrIllegalStep) Error() string {
	return f("illegal step %v/%v rst=%v: %v", err.Alu, err.Transfer, err.Reset, err.Reason)
}

func (err *ErrIllegalStep) Is(target error) bool {
	return target == ErrStep
}

// ErrBranchLength is returned when the flag rows of one opcode differ in
// length after balancing.
type ErrBranchLength struct {
	Lengths [FLAG_STATES]int
}

func (err *ErrBranchLength) Error() string {
	return f("flag rows have lengths %v", err.Lengths)
}

func (err *ErrBranchLength) Is(target error) bool {
	return target == ErrBranch
}

// ErrTableOverflow is returned when the catalog does not fit the opcode
// space, or a sequence does not fit the step counter.
type ErrTableOverflow struct {
	What  string
	Count int
	Limit int
}

func (err *ErrTableOverflow) Error() string {
	return f("%v: %d exceeds limit of %d", err.What, err.Count, err.Limit)
}

func (err *ErrTableOverflow) Is(target error) bool {
	return target == ErrOverflow
}

// ErrUnknownInstruction is returned by opcode resolution of an unknown key.
type ErrUnknownInstruction Key

func (err ErrUnknownInstruction) Error() string {
	return f("unknown instruction '%v'", Key(err).String())
}

func (err ErrUnknownInstruction) Is(target error) bool {
	return target == ErrUnknown
}

// ErrDuplicateInstruction is returned when two non-filler instructions share
// a (name, operand) key.
type ErrDuplicateInstruction struct {
	Key    Key
	First  int
	Second int
}

func (err *ErrDuplicateInstruction) Error() string {
	return f("'%v' defined at opcodes 0x%02x and 0x%02x", err.Key.String(), err.First, err.Second)
}

func (err *ErrDuplicateInstruction) Is(target error) bool {
	return target == ErrDuplicate
}

// ErrOpcode locates an error at a specific opcode of the table.
type ErrOpcode struct {
	Opcode int
	Key    Key
	Err    error
}

func (err *ErrOpcode) Error() string {
	return f("opcode 0x%02x '%v': %v", err.Opcode, err.Key.String(), err.Err)
}

func (err *ErrOpcode) Unwrap() error {
	return err.Err
}
