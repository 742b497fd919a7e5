package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grimdork/climate/arg"
	"github.com/k0kubun/pp/v3"

	"github.com/Urethramancer/hack/assembler"
	"github.com/Urethramancer/hack/cpu"
)

func main() {
	opt := arg.New("hackasm")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "o", "output", "Output file, or - for stdout. Defaults to FILE with a .hack extension.", "", false, arg.VarString, nil)
	opt.SetOption(arg.GroupDefault, "b", "binary", "Write big-endian machine words instead of text.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "x", "prefixed", "Read @0x, @0o and @0b operands as numbers instead of symbols.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "s", "symbols", "Print the resolved symbol table to stderr.", false, false, arg.VarBool, nil)
	opt.SetPositional("FILE", "Hack assembly source (.asm).", "", true, arg.VarString)

	err := opt.Parse(os.Args[1:])
	if err != nil {
		if err == arg.ErrNoArgs {
			opt.PrintHelp()
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if opt.GetBool("help") {
		opt.PrintHelp()
		return
	}

	inputFile := opt.GetPosString("FILE")
	data, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		os.Exit(1)
	}

	asm := assembler.New()
	asm.PrefixedLiterals = opt.GetBool("prefixed")
	code, err := asm.Assemble(assembler.SplitLines(string(data)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", inputFile, err)
		os.Exit(1)
	}

	if opt.GetBool("symbols") {
		pp.Fprintln(os.Stderr, asm.Symbols().Symbols())
	}

	var out []byte
	if opt.GetBool("binary") {
		words, err := assembler.Words(code)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		out = cpu.WordsToBytes(words)
	} else {
		out = []byte(strings.Join(code, "\n") + "\n")
	}

	outputFile := opt.GetString("output")
	if outputFile == "" {
		outputFile = strings.TrimSuffix(inputFile, filepath.Ext(inputFile)) + ".hack"
	}
	if outputFile == "-" {
		os.Stdout.Write(out)
		return
	}
	if err := os.WriteFile(outputFile, out, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
}
