package cpu_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Urethramancer/hack/assembler"
	"github.com/Urethramancer/hack/cpu"
)

// runSource assembles src, runs it to a halt and returns the CPU.
func runSource(t *testing.T, src string, maxCycles int64) *cpu.CPU {
	t.Helper()

	words, err := assembler.AssembleWords(assembler.SplitLines(src))
	if err != nil {
		t.Fatalf("failed to assemble:\n%s\nerror: %v", src, err)
	}
	c := cpu.New()
	if err := c.LoadCode(words); err != nil {
		t.Fatal(err)
	}
	if err := c.Run(maxCycles); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !c.Halted {
		t.Fatalf("program did not halt")
	}
	return c
}

func TestALU(t *testing.T) {
	tests := []struct {
		name       string
		comp, x, y uint16
		want       uint16
	}{
		{"Zero", 0b101010, 7, 3, 0},
		{"One", 0b111111, 7, 3, 1},
		{"MinusOne", 0b111010, 7, 3, 0xFFFF},
		{"X", 0b001100, 7, 3, 7},
		{"Y", 0b110000, 7, 3, 3},
		{"NotX", 0b001101, 7, 3, ^uint16(7)},
		{"NegY", 0b110011, 7, 3, 0xFFFD},
		{"XPlus1", 0b011111, 7, 3, 8},
		{"YMinus1", 0b110010, 7, 3, 2},
		{"XPlusY", 0b000010, 7, 3, 10},
		{"XMinusY", 0b010011, 7, 3, 4},
		{"YMinusX", 0b000111, 7, 3, 0xFFFC},
		{"XAndY", 0b000000, 6, 3, 2},
		{"XOrY", 0b010101, 6, 3, 7},
	}
	for _, tc := range tests {
		if got := cpu.ALU(tc.comp, tc.x, tc.y); got != tc.want {
			t.Errorf("[%s] ALU(%06b, %d, %d) = %#04x, want %#04x", tc.name, tc.comp, tc.x, tc.y, got, tc.want)
		}
	}
}

func TestDecode(t *testing.T) {
	a := cpu.Decode(0x0005)
	if a.Compute || a.Value != 5 {
		t.Errorf("Decode(@5) = %+v", a)
	}
	c := cpu.Decode(0xFCA8) // AM=M-1
	if !c.Compute || !c.UseM || c.Comp != 0b110010 || c.Dest != cpu.DestA|cpu.DestM || c.Jump != 0 {
		t.Errorf("Decode(AM=M-1) = %+v", c)
	}
	j := cpu.Decode(0xEA87) // 0;JMP
	if !j.IsJump() || !j.IsUnconditionalJump() {
		t.Errorf("Decode(0;JMP) = %+v", j)
	}
}

func TestAdd(t *testing.T) {
	c := runSource(t, `
@2
D=A
@3
D=D+A
@0
M=D
(END)
@END
0;JMP
`, 100)
	if c.RAM[0] != 5 {
		t.Errorf("RAM[0] = %d, want 5", c.RAM[0])
	}
	if c.PC != 6 {
		t.Errorf("halted at %d, want 6", c.PC)
	}
}

func TestSumLoop(t *testing.T) {
	c := runSource(t, `
// sum = 1 + 2 + ... + 10
	@i
	M=1
	@sum
	M=0
(LOOP)
	@i
	D=M
	@10
	D=D-A
	@END
	D;JGT
	@i
	D=M
	@sum
	M=D+M
	@i
	M=M+1
	@LOOP
	0;JMP
(END)
	@END
	0;JMP
`, 10000)
	if c.RAM[16] != 11 || c.RAM[17] != 55 {
		t.Errorf("i = %d, sum = %d, want 11 and 55", c.RAM[16], c.RAM[17])
	}
}

func TestMax(t *testing.T) {
	src := `
@R0
D=M
@R1
D=D-M
@FIRST
D;JGT
@R1
D=M
@R2
M=D
@END
0;JMP
(FIRST)
@R0
D=M
@R2
M=D
(END)
@END
0;JMP
`
	words, err := assembler.AssembleWords(assembler.SplitLines(src))
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct{ r0, r1, want uint16 }{{3, 9, 9}, {12, 4, 12}, {7, 7, 7}} {
		c := cpu.New()
		if err := c.LoadCode(words); err != nil {
			t.Fatal(err)
		}
		c.RAM[0], c.RAM[1] = tc.r0, tc.r1
		if err := c.Run(1000); err != nil {
			t.Fatal(err)
		}
		if c.RAM[2] != tc.want {
			t.Errorf("max(%d, %d) = %d, want %d", tc.r0, tc.r1, c.RAM[2], tc.want)
		}
	}
}

func TestScreenWrite(t *testing.T) {
	c := runSource(t, "@SCREEN\nM=-1\n@KBD\nD=M\n(END)\n@END\n0;JMP", 100)
	if c.RAM[cpu.ScreenBase] != 0xFFFF {
		t.Errorf("screen word = %#04x, want 0xffff", c.RAM[cpu.ScreenBase])
	}
}

func TestCycleLimit(t *testing.T) {
	words, err := assembler.AssembleWords([]string{"(A)", "@B", "0;JMP", "(B)", "@A", "0;JMP"})
	if err != nil {
		t.Fatal(err)
	}
	c := cpu.New()
	if err := c.LoadCode(words); err != nil {
		t.Fatal(err)
	}
	if err := c.Run(100); !errors.Is(err, cpu.ErrCycleLimit) {
		t.Fatalf("Run = %v, want ErrCycleLimit", err)
	}
	if c.Cycles != 100 || c.Halted {
		t.Errorf("cycles = %d, halted = %t", c.Cycles, c.Halted)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		src  []string
	}{
		{"RAMOutOfRange", []string{"@32767", "M=1"}},
		{"FallOffEnd", []string{"@1", "D=A"}},
	}
	for _, tc := range tests {
		words, err := assembler.AssembleWords(tc.src)
		if err != nil {
			t.Fatal(err)
		}
		c := cpu.New()
		if err := c.LoadCode(words); err != nil {
			t.Fatal(err)
		}
		if err := c.Run(100); err == nil || errors.Is(err, cpu.ErrCycleLimit) {
			t.Errorf("[%s] Run = %v, want execution error", tc.name, err)
		}
	}
}

func TestWordsBytesRoundTrip(t *testing.T) {
	words := []uint16{0x0002, 0xEC10, 0xFFFF}
	b := cpu.WordsToBytes(words)
	if !reflect.DeepEqual(b, []byte{0x00, 0x02, 0xEC, 0x10, 0xFF, 0xFF}) {
		t.Errorf("WordsToBytes = % X", b)
	}
	back, err := cpu.BytesToWords(b)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(back, words) {
		t.Errorf("BytesToWords = %#04x", back)
	}
	if _, err := cpu.BytesToWords([]byte{0x00, 0x02, 0x12}); err == nil {
		t.Error("expected an error for a truncated image")
	}
	if _, err := cpu.BytesToWords(make([]byte, 2*cpu.ROMSize+2)); err == nil {
		t.Error("expected an error for an image larger than ROM")
	}
}
