package assembler

import (
	"fmt"

	"github.com/Urethramancer/hack/cpu"
)

// Assembler holds the state of the most recent assembly run.
type Assembler struct {
	// PrefixedLiterals makes "@0x20", "@0o17" and "@0b101" numbers rather
	// than symbols.
	PrefixedLiterals bool

	symbols *SymbolTable
}

// New creates a new Assembler instance.
func New() *Assembler {
	return &Assembler{}
}

// Assemble translates Hack assembly lines into 16-character binary words,
// one per non-label instruction.
func (asm *Assembler) Assemble(lines []string) ([]string, error) {
	asm.symbols = nil

	instructions, err := parseLines(lines, asm.PrefixedLiterals)
	if err != nil {
		return nil, err
	}

	rom := 0
	for _, inst := range instructions {
		if inst.EmitsCode() {
			rom++
		}
	}
	if rom > cpu.ROMSize {
		return nil, fmt.Errorf("%w: program of %d instructions does not fit in ROM", ErrNumericOverflow, rom)
	}

	symbols := BuildSymbolTable(instructions)
	code, err := Encode(symbols, instructions)
	if err != nil {
		return nil, err
	}

	asm.symbols = symbols
	return code, nil
}

// Symbols returns the table built by the last successful run.
func (asm *Assembler) Symbols() *SymbolTable {
	return asm.symbols
}

// parseLines preprocesses and classifies a source unit.
func parseLines(lines []string, prefixed bool) ([]Instruction, error) {
	sig := preprocess(lines)
	instructions := make([]Instruction, 0, len(sig))
	for _, l := range sig {
		inst, err := parseInstruction(l.Text, prefixed)
		if err != nil {
			return nil, &LineError{Line: l.Number, Source: l.Text, Err: err}
		}
		inst.Line = l.Number
		inst.Source = l.Text
		instructions = append(instructions, inst)
	}
	return instructions, nil
}

// Assemble runs a fresh Assembler over lines.
func Assemble(lines []string) ([]string, error) {
	return New().Assemble(lines)
}

// AssembleSource splits src into lines and assembles it.
func AssembleSource(src string) ([]string, error) {
	return Assemble(SplitLines(src))
}

// AssembleWords assembles lines into machine words.
func AssembleWords(lines []string) ([]uint16, error) {
	code, err := Assemble(lines)
	if err != nil {
		return nil, err
	}
	return Words(code)
}

// Words converts binary word strings into machine words.
func Words(code []string) ([]uint16, error) {
	words := make([]uint16, len(code))
	for i, s := range code {
		w, err := ParseWord(s)
		if err != nil {
			return nil, fmt.Errorf("word %d: %w", i, err)
		}
		words[i] = w
	}
	return words, nil
}
