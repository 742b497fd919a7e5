package main

import (
	"fmt"
	"os"

	"github.com/grimdork/climate/arg"

	"github.com/Urethramancer/hack/cpu"
	"github.com/Urethramancer/hack/disassembler"
)

func main() {
	opt := arg.New("hackdis")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "o", "output", "Write the disassembly to this file instead of stdout.", "", false, arg.VarString, nil)
	opt.SetOption(arg.GroupDefault, "b", "binary", "Input holds big-endian machine words instead of text.", false, false, arg.VarBool, nil)
	opt.SetPositional("FILE", "Assembled program (.hack).", "", true, arg.VarString)

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

	var text string
	if opt.GetBool("binary") {
		var words []uint16
		if words, err = cpu.BytesToWords(data); err == nil {
			text, err = disassembler.Disassemble(words)
		}
	} else {
		text, err = disassembler.DisassembleText(string(data))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Disassembly error: %v\n", err)
		os.Exit(1)
	}

	outputFile := opt.GetString("output")
	if outputFile == "" {
		fmt.Print(text)
		return
	}
	if err := os.WriteFile(outputFile, []byte(text), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Disassembly written to %s\n", outputFile)
}
