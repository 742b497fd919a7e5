package assembler

import "fmt"

// InstructionType tags the variant held by an Instruction.
type InstructionType int

const (
	// AddressValue is "@<number>".
	AddressValue InstructionType = iota
	// AddressSymbol is "@<name>", resolved through the symbol table.
	AddressSymbol
	// Label is "(<name>)". It marks the ROM address of the next instruction
	// and emits no code.
	Label
	// Compute is "dest=comp;jump".
	Compute
)

func (t InstructionType) String() string {
	switch t {
	case AddressValue:
		return "AddressValue"
	case AddressSymbol:
		return "AddressSymbol"
	case Label:
		return "Label"
	case Compute:
		return "Compute"
	default:
		return fmt.Sprintf("InstructionType(%d)", int(t))
	}
}

// Instruction is one classified source line. Which fields are meaningful
// depends on Type.
type Instruction struct {
	Type InstructionType
	// Value of an AddressValue.
	Value uint16
	// Name of an AddressSymbol or Label.
	Name string
	// Dest, Comp and Jump of a Compute. An absent field is empty.
	Dest string
	Comp string
	Jump string

	// Line is the 1-based source line, or 0 when the instruction was not
	// read from a source unit.
	Line   int
	Source string
}

// EmitsCode reports whether the instruction occupies a ROM word.
func (i Instruction) EmitsCode() bool {
	return i.Type != Label
}

func (i Instruction) String() string {
	switch i.Type {
	case AddressValue:
		return fmt.Sprintf("@%d", i.Value)
	case AddressSymbol:
		return "@" + i.Name
	case Label:
		return "(" + i.Name + ")"
	case Compute:
		s := i.Comp
		if i.Dest != "" {
			s = i.Dest + "=" + s
		}
		if i.Jump != "" {
			s += ";" + i.Jump
		}
		return s
	default:
		return i.Type.String()
	}
}
