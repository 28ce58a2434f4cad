package asm

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/ucrom/microcode"
)

// Resolver maps an instruction key to its opcode.
type Resolver interface {
	Resolve(name, operand string) (opcode uint8, err error)
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":       "0",
	"OPCODE_COUNT": fmt.Sprintf("%v", microcode.OPCODE_COUNT),
	"STEP_COUNT":   fmt.Sprintf("%v", microcode.STEP_COUNT),
}

// Assembler is a single pass assembler for the W8.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	Index Resolver // Opcode lookup.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of jump labels to addresses.
	Equate    map[string]string // Map of equates.
}

// NewAssembler creates an assembler resolving opcodes with index.
func NewAssembler(index Resolver) *Assembler {
	return &Assembler{Index: index}
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// operandSize returns the number of program bytes an operand fetches.
func operandSize(operand string) int {
	if operand == microcode.OPERAND_IMM16 {
		return 2
	}
	reg, ok := microcode.RegByName(operand)
	if ok && reg.NeedsImmediate() {
		return 1
	}
	return 0
}

// valueOf returns the value of a simple word, range checked to bits.
func (asm *Assembler) valueOf(word string, bits int) (value uint16, err error) {
	v64, err := strconv.ParseInt(word, 0, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	// Negative values are accepted as two's complement.
	limit := int64(1) << bits
	if v64 >= limit || v64 < -(limit/2) {
		err = ErrValueRange{Value: v64, Bits: bits}
		return
	}
	if v64 < 0 {
		v64 += limit
	}

	value = uint16(v64)
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "asm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			// Ignore non-integer equates. They may be operands.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

var (
	reCharacter  = regexp.MustCompile(`'\\?[^']'`)
	reExpression = regexp.MustCompile(`\$\([^\$]*\)`)
)

// parseLine expands a single line into words, defining equates and labels.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	line = reCharacter.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			switch str[1:] {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "0":
				str = "\000"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	line = reExpression.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)
	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		// Equates are substituted before labels are linked.
		_, ok = asm.Label[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	if strings.HasPrefix(words[0], ".") {
		err = ErrDirectiveInvalid
		return
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}
		_, ok = asm.Equate[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		asm.Label[label] = asm.currentAddr()
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	for n, word := range words {
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	return
}

// currentAddr gets the address of the next opcode.
func (asm *Assembler) currentAddr() int {
	if len(asm.Opcode) == 0 {
		return 0
	}

	last := asm.Opcode[len(asm.Opcode)-1]

	return last.Addr + len(last.Bytes)
}

// parseWords assembles the words of a line of source text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	if len(words) == 0 {
		return
	}

	key := microcode.Key{Name: words[0]}
	if len(words) > 1 {
		key.Operand = words[1]
	}

	opcode, err := asm.Index.Resolve(key.Name, key.Operand)
	if err != nil {
		return
	}

	op := Opcode{
		LineNo:   lineno,
		Addr:     asm.currentAddr(),
		Words:    words,
		Mnemonic: key.String(),
		Bytes:    []uint8{opcode},
	}

	size := operandSize(key.Operand)
	switch {
	case size > 0 && len(words) < 3:
		err = ErrValueMissing
		return
	case size == 0 && len(words) > 2:
		err = ErrValueUnexpected
		return
	case len(words) > 3:
		err = ErrOpcodeExtraArgs
		return
	}

	if size > 0 {
		word := words[2]
		var value uint16
		if size == 2 && isLabel(word) {
			op.LinkLabel = word
		} else {
			value, err = asm.valueOf(word, 8*size)
			if err != nil {
				return
			}
		}
		// Little endian: the low byte is fetched first.
		for n := range size {
			op.Bytes = append(op.Bytes, uint8(value>>(8*n)))
		}
	}

	if asm.Verbose {
		log.Printf("asm: %04x %v % x", op.Addr, op.Mnemonic, op.Bytes)
	}

	asm.Opcode = append(asm.Opcode, op)

	return
}

// isLabel returns true if the word can only be a label reference.
func isLabel(word string) bool {
	if len(word) == 0 {
		return false
	}
	c := word[0]
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Label = make(map[string]int, 16)
	asm.Opcode = asm.Opcode[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = strings.TrimSpace(strings.SplitN(text, ";", 2)[0])

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of jump labels.
	for n := range asm.Opcode {
		op := &asm.Opcode[n]

		if len(op.LinkLabel) == 0 {
			continue
		}
		addr, ok := asm.Label[op.LinkLabel]
		if !ok {
			lineno = op.LineNo
			line = strings.Join(op.Words, " ")
			err = ErrLabelMissing(op.LinkLabel)
			return
		}
		op.Bytes[1] = uint8(addr >> 0)
		op.Bytes[2] = uint8(addr >> 8)
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}
