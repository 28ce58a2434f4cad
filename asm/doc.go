// Package asm assembles W8 programs into instruction memory images.
//
// A source line is a mnemonic, an optional operand and, for the operands
// that fetch bytes from the program (IMM, REGS[IMM] and IMM16), a value.
// Opcodes are looked up by (mnemonic, operand) in the control table index.
//
// Lines may carry `label:` prefixes and `;` comments. `.equ NAME VALUE`
// defines an equate, `'c'` is a character value, and `$(expr)` is evaluated
// at assembly time with the equates in scope.
package asm
