package microcode

import (
	"fmt"
)

// Flags is the latched ALU status presented to the control ROM.
type Flags uint8

const (
	FLAG_ZERO  = Flags(1 << 0)
	FLAG_CARRY = Flags(1 << 1)

	FLAG_MASK   = FLAG_ZERO | FLAG_CARRY
	FLAG_STATES = 4
)

// Zero returns the zero flag.
func (fl Flags) Zero() bool {
	return fl&FLAG_ZERO != 0
}

// Carry returns the carry flag.
func (fl Flags) Carry() bool {
	return fl&FLAG_CARRY != 0
}

func (fl Flags) String() string {
	return fmt.Sprintf("%02b", uint8(fl&FLAG_MASK))
}

// Cond selects which flag states take a branch.
type Cond int

//go:generate go tool stringer -linecomment -type=Cond
const (
	COND_ALWAYS = Cond(0) // always
	COND_NEVER  = Cond(1) // never
	COND_ZERO   = Cond(2) // zero
	COND_CARRY  = Cond(3) // carry
	COND_BOTH   = Cond(4) // both
)

// Taken returns true if the condition holds for the flag state.
func (cond Cond) Taken(flags Flags) bool {
	switch cond {
	case COND_ALWAYS:
		return true
	case COND_ZERO:
		return flags.Zero()
	case COND_CARRY:
		return flags.Carry()
	case COND_BOTH:
		return flags.Zero() && flags.Carry()
	}
	return false
}

// Branch returns the balanced steps for the flag state. A nil side is the
// idle step.
func (cond Cond) Branch(flags Flags, taken, notTaken []Step) []Step {
	var branches [FLAG_STATES][]Step
	for state := range FLAG_STATES {
		if cond.Taken(Flags(state)) {
			branches[state] = taken
		} else {
			branches[state] = notTaken
		}
	}

	return Select(flags, branches, nil)
}

// Select picks the branch of the flag state out of all four, substituting
// otherwise for nil branches, and pads it to the longest branch.
func Select(flags Flags, branches [FLAG_STATES][]Step, otherwise []Step) []Step {
	if otherwise == nil {
		otherwise = []Step{NopStep()}
	}

	all := make([][]Step, FLAG_STATES)
	for state, branch := range branches {
		if branch == nil {
			branch = otherwise
		}
		all[state] = branch
	}

	return Balance(int(flags&FLAG_MASK), all)
}

// Balance returns the selected branch padded with idle steps to the length
// of the longest branch.
func Balance(selected int, branches [][]Step) (steps []Step) {
	longest := 0
	for _, branch := range branches {
		longest = max(longest, len(branch))
	}

	steps = make([]Step, 0, longest)
	steps = append(steps, branches[selected]...)
	for len(steps) < longest {
		steps = append(steps, NopStep())
	}

	return
}
