package rom

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/ucrom/microcode"
)

const (
	DECODE_TABLE_NAME = "decode_table"
	INSTRUCTIONS_NAME = "instructions"
)

func joinBytes(data []uint8) string {
	words := make([]string, len(data))
	for n, b := range data {
		words[n] = fmt.Sprintf("%d", b)
	}
	return "{" + strings.Join(words, ", ") + "}"
}

// WriteDecodeTable writes the control table as a C array declaration, one
// line per opcode and flag state.
func WriteDecodeTable(w io.Writer, table *microcode.Table) (err error) {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "const PROGMEM uint8_t %s[%d][%d][%d] = {",
		DECODE_TABLE_NAME, microcode.OPCODE_COUNT, microcode.FLAG_STATES, microcode.STEP_COUNT)

	for op := range table {
		if op > 0 {
			bw.WriteString(",")
		}
		fmt.Fprintf(bw, "\n\t{ // 0x%02x", op)
		for state := range table[op] {
			if state > 0 {
				bw.WriteString(",")
			}
			fmt.Fprintf(bw, "\n\t\t%s", joinBytes(table[op][state][:]))
		}
		bw.WriteString("\n\t}")
	}

	bw.WriteString("\n};\n")

	return bw.Flush()
}

// WriteInstructions writes an instruction memory image as a C array
// declaration, one byte per line annotated with its note.
func WriteInstructions(w io.Writer, image []byte, notes []string) (err error) {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "const PROGMEM uint8_t %s[%d] = {\n", INSTRUCTIONS_NAME, len(image))
	for n, data := range image {
		var note string
		if n < len(notes) {
			note = notes[n]
		}
		if len(note) == 0 {
			fmt.Fprintf(bw, "%3d,\n", data)
		} else {
			fmt.Fprintf(bw, "%3d, // %s\n", data, note)
		}
	}
	bw.WriteString("};\n")

	return bw.Flush()
}

// WriteBinary writes a raw image.
func WriteBinary(w io.Writer, data []byte) (err error) {
	_, err = w.Write(data)
	return
}
