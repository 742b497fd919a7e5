package cpu

import (
	"errors"
	"fmt"
)

// ErrCycleLimit is returned by Run when the program did not halt in time.
var ErrCycleLimit = errors.New("cycle limit reached")

// Execute fetches, decodes, and executes a single instruction.
func (c *CPU) Execute() error {
	if !c.Running || c.Halted {
		return nil
	}

	// Fetch
	if int(c.PC) >= len(c.ROM) {
		c.Running = false
		return fmt.Errorf("pc %d outside program of %d words", c.PC, len(c.ROM))
	}
	pc := c.PC
	inst := Decode(c.ROM[pc])
	c.Cycles++

	if !inst.Compute {
		c.A = inst.Value
		c.PC++
		return nil
	}

	y := c.A
	if inst.UseM {
		m, err := c.M()
		if err != nil {
			return fmt.Errorf("execution failed at %d: %w", pc, err)
		}
		y = m
	}
	out := ALU(inst.Comp, c.D, y)

	// M and the jump target use the A value the instruction started with.
	addr := c.A
	if inst.Dest&DestM != 0 {
		if err := c.setM(addr, out); err != nil {
			return fmt.Errorf("execution failed at %d: %w", pc, err)
		}
	}
	if inst.Dest&DestA != 0 {
		c.A = out
	}
	if inst.Dest&DestD != 0 {
		c.D = out
	}

	if jumps(inst.Jump, out) {
		if c.isHaltLoop(pc, addr) {
			c.Halted = true
		}
		c.PC = addr
		return nil
	}
	c.PC++
	return nil
}

// isHaltLoop recognises a jump onto itself, including the "@n / 0;JMP"
// pair that jumps back to its own address load.
func (c *CPU) isHaltLoop(pc, target uint16) bool {
	if target == pc {
		return true
	}
	if target+1 != pc {
		return false
	}
	load := Decode(c.ROM[target])
	return !load.Compute && load.Value == target && Decode(c.ROM[pc]).IsUnconditionalJump()
}

// Run executes instructions until the program halts, fails or uses up
// maxCycles. A maxCycles of zero or less runs without limit.
func (c *CPU) Run(maxCycles int64) error {
	for c.Running && !c.Halted {
		if maxCycles > 0 && c.Cycles >= maxCycles {
			return ErrCycleLimit
		}
		if err := c.Execute(); err != nil {
			return err
		}
	}
	return nil
}
