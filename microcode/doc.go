// Package microcode generates the control ROM of the W8 processor.
//
// The W8 is an 8-bit accumulator machine whose control unit is a 16-step
// sequencer addressing a ROM by (opcode, flags, step). Each ROM byte is one
// control word: a sequencer reset line, the ALU operation and a bus transfer.
//
// Instructions are described as micro-step sequences per flag state. The
// branch helpers keep every flag state of an opcode the same length, since the
// step counter cannot tell which branch was taken. The table generator runs
// the whole catalog for all four flag states and verifies the result before
// handing it out.
package microcode
