package disassembler

// compABit marks the M forms in compNames keys.
const compABit = 1 << 6

var (
	destNames = [8]string{"", "M", "D", "MD", "A", "AM", "AD", "AMD"}
	jumpNames = [8]string{"", "JGT", "JEQ", "JGE", "JLT", "JNE", "JLE", "JMP"}

	// compNames is keyed by the a-bit followed by the six ALU control bits.
	compNames = map[uint16]string{
		0b0101010: "0",
		0b0111111: "1",
		0b0111010: "-1",
		0b0001100: "D",
		0b0110000: "A",
		0b0001101: "!D",
		0b0110001: "!A",
		0b0001111: "-D",
		0b0110011: "-A",
		0b0011111: "D+1",
		0b0110111: "A+1",
		0b0001110: "D-1",
		0b0110010: "A-1",
		0b0000010: "D+A",
		0b0010011: "D-A",
		0b0000111: "A-D",
		0b0000000: "D&A",
		0b0010101: "D|A",
		0b1110000: "M",
		0b1110001: "!M",
		0b1110011: "-M",
		0b1110111: "M+1",
		0b1110010: "M-1",
		0b1000010: "D+M",
		0b1010011: "D-M",
		0b1000111: "M-D",
		0b1000000: "D&M",
		0b1010101: "D|M",
	}
)
