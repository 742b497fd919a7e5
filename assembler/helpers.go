package assembler

import (
	"fmt"
	"strings"
)

//
// Mnemonic lookup tables
//

var (
	destBits = map[string]string{
		"":    "000",
		"M":   "001",
		"D":   "010",
		"MD":  "011",
		"A":   "100",
		"AM":  "101",
		"AD":  "110",
		"AMD": "111",
	}

	jumpBits = map[string]string{
		"":    "000",
		"JGT": "001",
		"JEQ": "010",
		"JGE": "011",
		"JLT": "100",
		"JNE": "101",
		"JLE": "110",
		"JMP": "111",
	}

	// compBits includes the a-bit, so M forms start with 1.
	compBits = map[string]string{
		"0":   "0101010",
		"1":   "0111111",
		"-1":  "0111010",
		"D":   "0001100",
		"A":   "0110000",
		"!D":  "0001101",
		"!A":  "0110001",
		"-D":  "0001111",
		"-A":  "0110011",
		"D+1": "0011111",
		"A+1": "0110111",
		"D-1": "0001110",
		"A-1": "0110010",
		"D+A": "0000010",
		"D-A": "0010011",
		"A-D": "0000111",
		"D&A": "0000000",
		"D|A": "0010101",
		"M":   "1110000",
		"!M":  "1110001",
		"-M":  "1110011",
		"M+1": "1110111",
		"M-1": "1110010",
		"D+M": "1000010",
		"D-M": "1010011",
		"M-D": "1000111",
		"D&M": "1000000",
		"D|M": "1010101",
	}
)

// computePrefix marks a C-instruction.
const computePrefix = "111"

// canonicalDest orders the registers of a destination as A, M, D so that
// "DM" and "MD" name the same mask. A register may appear only once.
func canonicalDest(dest string) (string, error) {
	var a, m, d bool
	for _, r := range dest {
		var seen *bool
		switch r {
		case 'A':
			seen = &a
		case 'M':
			seen = &m
		case 'D':
			seen = &d
		default:
			return "", fmt.Errorf("%w: unknown destination register %q", ErrMalformedInstruction, r)
		}
		if *seen {
			return "", fmt.Errorf("%w: destination %q repeats %c", ErrMalformedInstruction, dest, r)
		}
		*seen = true
	}

	var sb strings.Builder
	if a {
		sb.WriteByte('A')
	}
	if m {
		sb.WriteByte('M')
	}
	if d {
		sb.WriteByte('D')
	}
	return sb.String(), nil
}

// computeBits encodes the three mnemonic fields of a C-instruction.
func computeBits(dest, comp, jump string) (string, error) {
	c, ok := compBits[comp]
	if !ok {
		return "", fmt.Errorf("%w: unknown computation %q", ErrMalformedInstruction, comp)
	}
	cd, err := canonicalDest(dest)
	if err != nil {
		return "", err
	}
	d, ok := destBits[cd]
	if !ok {
		return "", fmt.Errorf("%w: unknown destination %q", ErrMalformedInstruction, dest)
	}
	j, ok := jumpBits[jump]
	if !ok {
		return "", fmt.Errorf("%w: unknown jump %q", ErrMalformedInstruction, jump)
	}
	return computePrefix + c + d + j, nil
}
