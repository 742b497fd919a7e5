package disassembler

import (
	"fmt"
	"strings"

	"github.com/Urethramancer/hack/assembler"
	"github.com/Urethramancer/hack/cpu"
)

// instruction is a single decoded word.
type instruction struct {
	Word uint16
	Text string
	// Target is the ROM address this A-instruction feeds to a jump, or -1.
	Target int
}

// Disassemble turns machine words back into Hack assembly. Addresses loaded
// right before a jump are given labels, so the result reassembles to the
// same words.
func Disassemble(words []uint16) (string, error) {
	if len(words) == 0 {
		return "", nil
	}

	// --- STAGE 1: Linear Sweep ---
	instructions := make([]*instruction, len(words))
	for pc, w := range words {
		text, err := Decode(w)
		if err != nil {
			return "", fmt.Errorf("word %d: %w", pc, err)
		}
		instructions[pc] = &instruction{Word: w, Text: text, Target: -1}
	}

	// --- STAGE 2: Jump Targets ---
	labels := make(map[int]bool)
	for pc := 1; pc < len(instructions); pc++ {
		if !cpu.Decode(instructions[pc].Word).IsJump() {
			continue
		}
		load := cpu.Decode(instructions[pc-1].Word)
		if load.Compute || int(load.Value) > len(words) {
			continue
		}
		instructions[pc-1].Target = int(load.Value)
		labels[int(load.Value)] = true
	}

	// --- STAGE 3: Render Final Output ---
	var out strings.Builder
	for pc, inst := range instructions {
		if labels[pc] {
			fmt.Fprintf(&out, "(%s)\n", labelName(pc))
		}
		if inst.Target >= 0 {
			fmt.Fprintf(&out, "    @%s\n", labelName(inst.Target))
			continue
		}
		fmt.Fprintf(&out, "    %s\n", inst.Text)
	}
	if labels[len(instructions)] {
		fmt.Fprintf(&out, "(%s)\n", labelName(len(instructions)))
	}
	return out.String(), nil
}

// DisassembleText disassembles the contents of a .hack file: one binary
// word per line, blank lines ignored.
func DisassembleText(src string) (string, error) {
	var words []uint16
	for i, line := range assembler.SplitLines(src) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		w, err := assembler.ParseWord(line)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		words = append(words, w)
	}
	return Disassemble(words)
}

// Decode returns the assembly text of a single word.
func Decode(w uint16) (string, error) {
	inst := cpu.Decode(w)
	if !inst.Compute {
		return fmt.Sprintf("@%d", inst.Value), nil
	}
	if w&cpu.OPCompute != cpu.OPCompute {
		return "", fmt.Errorf("%016b is not a compute instruction", w)
	}

	key := inst.Comp
	if inst.UseM {
		key |= compABit
	}
	comp, ok := compNames[key]
	if !ok {
		return "", fmt.Errorf("unknown computation %07b", key)
	}

	s := comp
	if d := destNames[inst.Dest]; d != "" {
		s = d + "=" + s
	}
	if j := jumpNames[inst.Jump]; j != "" {
		s += ";" + j
	}
	return s, nil
}

func labelName(addr int) string {
	return fmt.Sprintf("L%d", addr)
}
