package assembler

import (
	"fmt"
	"strconv"

	"github.com/Urethramancer/hack/cpu"
)

// wordWidth is the number of bits in one machine word.
const wordWidth = 16

// Encode turns a classified program into one binary word string per
// instruction, in source order. Labels emit nothing.
func Encode(symbols *SymbolTable, instructions []Instruction) ([]string, error) {
	out := make([]string, 0, len(instructions))
	for _, inst := range instructions {
		if !inst.EmitsCode() {
			continue
		}
		bits, err := encodeInstruction(symbols, inst)
		if err != nil {
			return nil, lineError(inst, err)
		}
		out = append(out, bits)
	}
	return out, nil
}

func encodeInstruction(symbols *SymbolTable, inst Instruction) (string, error) {
	switch inst.Type {
	case AddressValue:
		return addressBits(int(inst.Value))
	case AddressSymbol:
		addr, ok := symbols.Address(inst.Name)
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrUndefinedSymbol, inst.Name)
		}
		return addressBits(addr)
	case Compute:
		return computeBits(inst.Dest, inst.Comp, inst.Jump)
	default:
		return "", fmt.Errorf("%w: %s emits no code", ErrMalformedInstruction, inst.Type)
	}
}

// addressBits zero-extends a 15-bit address to a full word.
func addressBits(v int) (string, error) {
	if v < 0 || v > cpu.MaxAddress {
		return "", fmt.Errorf("%w: address %d does not fit in 15 bits", ErrNumericOverflow, v)
	}
	return fmt.Sprintf("%0*b", wordWidth, v), nil
}

// ParseWord converts a binary word string back into its value.
func ParseWord(s string) (uint16, error) {
	if len(s) != wordWidth {
		return 0, fmt.Errorf("word %q is not %d bits wide", s, wordWidth)
	}
	v, err := strconv.ParseUint(s, 2, wordWidth)
	if err != nil {
		return 0, fmt.Errorf("word %q is not binary", s)
	}
	return uint16(v), nil
}

func lineError(inst Instruction, err error) error {
	if inst.Line == 0 {
		return err
	}
	return &LineError{Line: inst.Line, Source: inst.Source, Err: err}
}
