// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bytes"
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"github.com/k0kubun/pp/v3"
	"golang.org/x/text/language"

	"github.com/ezrec/ucrom/asm"
	"github.com/ezrec/ucrom/microcode"
	"github.com/ezrec/ucrom/rom"
	"github.com/ezrec/ucrom/translate"
)

type predefines map[string]string

func (pd predefines) String() string {
	var list []string
	for k, v := range pd {
		list = append(list, k+"="+v)
	}
	return strings.Join(list, ",")
}

func (pd predefines) Set(value string) error {
	name, val, ok := strings.Cut(value, "=")
	if !ok {
		val = "1"
	}
	pd[name] = val
	return nil
}

// render fills a buffer with write, so that no artifact is partially written.
func render(write func(w io.Writer) error) (data []byte, err error) {
	var buf bytes.Buffer
	err = write(&buf)
	if err != nil {
		return
	}
	data = buf.Bytes()
	return
}

func emit(dir rom.CreateFS, name string, data []byte, verbose bool) {
	err := rom.WriteFile(dir, name, func(w io.Writer) error {
		return rom.WriteBinary(w, data)
	})
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}
	if verbose {
		log.Printf("ucrom: wrote %v (%d bytes)", name, len(data))
	}
}

func main() {
	var output string
	var tableName string
	var compile string
	var progName string
	var size int
	var binary bool
	var listing bool
	var verbose bool
	var lang string
	defines := predefines{}

	flag.StringVar(&output, "o", ".", "Output directory")
	flag.StringVar(&tableName, "t", "decode-table.hpp", "Decode table header to write")
	flag.StringVar(&compile, "c", "", ".w8 file to compile (default: built-in fibonacci sample)")
	flag.StringVar(&progName, "p", "instructions.hpp", "Instruction image header to write")
	flag.IntVar(&size, "n", 16384, "Instruction image size")
	flag.BoolVar(&binary, "b", false, "Also write raw .bin images")
	flag.BoolVar(&listing, "l", false, "Print the opcode listing")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&lang, "lang", "", "Message language tag (default: host locale)")
	flag.Var(defines, "D", "Predefine an equate, as NAME=VALUE")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(lang) != 0 {
		tag, err := language.Parse(lang)
		if err != nil {
			log.Fatalf("%v: %v", lang, err)
		}
		translate.Use(tag)
	}

	cat, err := microcode.BuildCatalog()
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	gen := &microcode.Generator{Verbose: verbose}
	table, index, err := gen.Generate(cat)
	if err != nil {
		log.Fatalf("microcode: %v", err)
	}

	if verbose {
		pp.Println(cat.Instructions[:cat.Defined])
	}

	if listing {
		for op := range microcode.OPCODE_COUNT {
			if index.IsFiller(uint8(op)) {
				continue
			}
			err = cat.Listing(os.Stdout, uint8(op))
			if err != nil {
				log.Fatal(err)
			}
		}
	}

	// Assemble the program.
	var source io.Reader
	sourceName := compile
	if len(compile) == 0 {
		sourceName = "fibonacci"
		source = strings.NewReader(asm.Samples[sourceName])
	} else {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()
		source = inf
	}

	assembler := asm.NewAssembler(index)
	assembler.Verbose = verbose
	for k, v := range defines {
		assembler.Predefine(k, v)
	}

	prog, err := assembler.Parse(source)
	if err != nil {
		log.Fatalf("%v: %v", sourceName, err)
	}

	if verbose {
		pp.Println(prog.Opcodes)
	}

	halt, err := index.Resolve("HALT", "")
	if err != nil {
		log.Fatalf("%v: %v", sourceName, err)
	}

	image, notes, err := prog.Image(size, halt)
	if err != nil {
		log.Fatalf("%v: %v", sourceName, err)
	}

	// Render all artifacts before writing any of them.
	tableText, err := render(func(w io.Writer) error {
		return rom.WriteDecodeTable(w, table)
	})
	if err != nil {
		log.Fatalf("%v: %v", tableName, err)
	}

	progText, err := render(func(w io.Writer) error {
		return rom.WriteInstructions(w, image, notes)
	})
	if err != nil {
		log.Fatalf("%v: %v", progName, err)
	}

	dir := rom.DirFS(output)
	emit(dir, tableName, tableText, verbose)
	emit(dir, progName, progText, verbose)

	if binary {
		emit(dir, strings.TrimSuffix(tableName, ".hpp")+".bin", table.Bytes(), verbose)
		emit(dir, strings.TrimSuffix(progName, ".hpp")+".bin", image, verbose)
	}
}
