package cpu

// Instruction word layout. A-instructions have bit 15 clear and carry a
// 15-bit value; C-instructions are 111a cccc ccdd djjj.
const (
	OPAddress uint16 = 0x0000
	OPCompute uint16 = 0xE000

	MaskCompute uint16 = 0x8000
	MaskValue   uint16 = 0x7FFF

	// ABit selects M instead of A as the ALU's y input.
	ABit uint16 = 0x1000

	CompShift        = 6
	CompMask  uint16 = 0x3F
	DestShift        = 3
	DestMask  uint16 = 0x7
	JumpMask  uint16 = 0x7
)

// Destination bits.
const (
	DestM uint16 = 1 << 0
	DestD uint16 = 1 << 1
	DestA uint16 = 1 << 2
)

// Jump condition bits.
const (
	JumpGT uint16 = 1 << 0
	JumpEQ uint16 = 1 << 1
	JumpLT uint16 = 1 << 2
)

// ALU control bits, as they appear in the six-bit comp field.
const (
	ALUNo uint16 = 1 << iota
	ALUF
	ALUNy
	ALUZy
	ALUNx
	ALUZx
)
