package cpu

// ALU computes the Hack ALU output for the six control bits in comp.
func ALU(comp, x, y uint16) uint16 {
	if comp&ALUZx != 0 {
		x = 0
	}
	if comp&ALUNx != 0 {
		x = ^x
	}
	if comp&ALUZy != 0 {
		y = 0
	}
	if comp&ALUNy != 0 {
		y = ^y
	}
	var out uint16
	if comp&ALUF != 0 {
		out = x + y
	} else {
		out = x & y
	}
	if comp&ALUNo != 0 {
		out = ^out
	}
	return out
}

// jumps reports whether out satisfies the jump condition bits.
func jumps(cond, out uint16) bool {
	v := int16(out)
	switch {
	case v < 0:
		return cond&JumpLT != 0
	case v == 0:
		return cond&JumpEQ != 0
	default:
		return cond&JumpGT != 0
	}
}
