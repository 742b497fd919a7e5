package cpu

import "fmt"

// Memory map.
const (
	// ScreenBase is the first word of the memory-mapped screen.
	ScreenBase = 16384
	// KBD is the memory-mapped keyboard register.
	KBD = 24576
	// RAMSize covers data memory, the screen and the keyboard register.
	RAMSize = KBD + 1
	// ROMSize is the number of addressable instruction words.
	ROMSize = 32768
	// MaxAddress is the largest value an A-instruction can load.
	MaxAddress = 0x7FFF
	// VariableBase is the first RAM word handed out to variables.
	VariableBase = 16
)

// CPU registers and memory.
type CPU struct {
	// A is the address register.
	A uint16
	// D is the data register.
	D uint16
	// PC is the program counter.
	PC uint16

	ROM []uint16
	RAM []uint16

	// Cycles count.
	Cycles int64
	// Running or not.
	Running bool
	// Halted is set once the program reaches a jump-to-self loop.
	Halted bool
}

// New creates a CPU with empty ROM and zeroed RAM.
func New() *CPU {
	return &CPU{
		RAM: make([]uint16, RAMSize),
	}
}

// LoadCode copies a program into ROM and resets the registers.
func (c *CPU) LoadCode(code []uint16) error {
	if len(code) > ROMSize {
		return fmt.Errorf("program of %d words does not fit in ROM", len(code))
	}
	c.ROM = make([]uint16, len(code))
	copy(c.ROM, code)
	c.Reset()
	return nil
}

// Reset clears the registers but leaves memory alone.
func (c *CPU) Reset() {
	c.A, c.D, c.PC = 0, 0, 0
	c.Cycles = 0
	c.Halted = false
	c.Running = true
}

// M returns the RAM word addressed by A.
func (c *CPU) M() (uint16, error) {
	if int(c.A) >= len(c.RAM) {
		return 0, fmt.Errorf("read from RAM[%d] outside memory", c.A)
	}
	return c.RAM[c.A], nil
}

func (c *CPU) setM(addr, v uint16) error {
	if int(addr) >= len(c.RAM) {
		return fmt.Errorf("write to RAM[%d] outside memory", addr)
	}
	c.RAM[addr] = v
	return nil
}
