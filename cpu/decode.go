package cpu

// Instruction is one decoded machine word.
type Instruction struct {
	Word uint16
	// Compute is false for A-instructions.
	Compute bool
	// Value loaded by an A-instruction.
	Value uint16
	// UseM is the a-bit of a C-instruction.
	UseM bool
	Comp uint16
	Dest uint16
	Jump uint16
}

// Decode splits a word into its fields.
func Decode(w uint16) Instruction {
	if w&MaskCompute == 0 {
		return Instruction{Word: w, Value: w & MaskValue}
	}
	return Instruction{
		Word:    w,
		Compute: true,
		UseM:    w&ABit != 0,
		Comp:    (w >> CompShift) & CompMask,
		Dest:    (w >> DestShift) & DestMask,
		Jump:    w & JumpMask,
	}
}

// IsJump reports whether the instruction can transfer control.
func (i Instruction) IsJump() bool {
	return i.Compute && i.Jump != 0
}

// IsUnconditionalJump reports whether the instruction always jumps.
func (i Instruction) IsUnconditionalJump() bool {
	return i.Compute && i.Jump == JumpGT|JumpEQ|JumpLT
}
