package assembler

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInstruction is returned for lines that fit no instruction
	// form, or compute instructions with unknown mnemonics.
	ErrMalformedInstruction = errors.New("malformed instruction")
	// ErrUndefinedSymbol is returned when a symbol has no address at encode time.
	ErrUndefinedSymbol = errors.New("undefined symbol")
	// ErrNumericOverflow is returned for values outside the 15-bit address range.
	ErrNumericOverflow = errors.New("numeric overflow")
)

// LineError ties an assembly failure to the source line that caused it.
type LineError struct {
	// Line is the 1-based line number in the source unit.
	Line int
	// Source is the significant text of the line.
	Source string
	Err    error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Source, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
