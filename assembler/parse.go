package assembler

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/japanoise/numparse"

	"github.com/Urethramancer/hack/cpu"
)

// reCompute matches [dest=]comp[;jump]. Jump is exactly three characters.
var reCompute = regexp.MustCompile(`^(?:([AMD]+)=)?([^=;]*)(?:;(\w{3}))?$`)

// ParseInstruction classifies one significant line. Symbols are not
// resolved here. Only decimal digits form a number; "@0x20" is a symbol.
func ParseInstruction(line string) (Instruction, error) {
	return parseInstruction(line, false)
}

// ParsePrefixedInstruction is ParseInstruction with 0x, 0o and 0b address
// literals read as numbers instead of symbols.
func ParsePrefixedInstruction(line string) (Instruction, error) {
	return parseInstruction(line, true)
}

func parseInstruction(line string, prefixed bool) (Instruction, error) {
	switch {
	case strings.HasPrefix(line, "@"):
		return parseAddress(line[1:], prefixed)
	case len(line) >= 2 && line[0] == '(' && line[len(line)-1] == ')':
		return Instruction{Type: Label, Name: line[1 : len(line)-1]}, nil
	}

	m := reCompute.FindStringSubmatch(line)
	if m == nil {
		return Instruction{}, fmt.Errorf("%w: %q is not an address, label or compute instruction", ErrMalformedInstruction, line)
	}
	return Instruction{Type: Compute, Dest: m[1], Comp: m[2], Jump: m[3]}, nil
}

// parseAddress handles the operand of an A-instruction. A decimal operand
// is a number; anything else is a symbol, unless prefixed literals are
// enabled and the operand parses as one.
func parseAddress(operand string, prefixed bool) (Instruction, error) {
	if operand == "" {
		return Instruction{}, fmt.Errorf("%w: missing address operand", ErrMalformedInstruction)
	}

	if operand[0] == '-' && len(operand) > 1 && isDigit(operand[1]) {
		return Instruction{}, fmt.Errorf("%w: negative address %s", ErrNumericOverflow, operand)
	}

	// Plain digits are always decimal, leading zeros included.
	if allDigits(operand) {
		v, err := strconv.ParseUint(operand, 10, 64)
		if err != nil || v > cpu.MaxAddress {
			return Instruction{}, fmt.Errorf("%w: %s does not fit in 15 bits", ErrNumericOverflow, operand)
		}
		return Instruction{Type: AddressValue, Value: uint16(v)}, nil
	}

	if prefixed && hasRadixPrefix(operand) {
		if v, err := numparse.UNumParse(operand); err == nil {
			if v > cpu.MaxAddress {
				return Instruction{}, fmt.Errorf("%w: %s does not fit in 15 bits", ErrNumericOverflow, operand)
			}
			return Instruction{Type: AddressValue, Value: uint16(v)}, nil
		}
	}
	return Instruction{Type: AddressSymbol, Name: operand}, nil
}

// hasRadixPrefix reports whether s looks like 0x, 0o or 0b followed by at
// least one more character.
func hasRadixPrefix(s string) bool {
	if len(s) < 3 || s[0] != '0' {
		return false
	}
	switch s[1] {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
