package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/Urethramancer/hack/assembler"
	"github.com/Urethramancer/hack/cpu"
)

var (
	maxCycles int64
	dumpState bool
)

var rootCmd = &cobra.Command{
	Use:   "runhack program",
	Short: "Run a Hack program on the CPU emulator",
	Long: `Runhack loads a Hack program and executes it until it reaches a
jump-to-self halt loop or the cycle limit runs out.

Files ending in .asm are assembled first, .hack files hold one binary
word per line, and anything else is read as big-endian machine words.
The registers and RAM[0..15] are printed when the program stops.
`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0])
	},
}

func init() {
	rootCmd.Flags().Int64VarP(&maxCycles, "cycles", "c", 1_000_000, "Stop after this many instructions (0 for no limit).")
	rootCmd.Flags().BoolVar(&dumpState, "dump", false, "Pretty-print the final CPU registers.")
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
}

func main() {
	defer glog.Flush()
	if err := rootCmd.Execute(); err != nil {
		glog.Error(err)
		glog.Flush()
		os.Exit(1)
	}
}

func run(name string) error {
	words, err := loadProgram(name)
	if err != nil {
		return err
	}
	glog.V(1).Infof("loaded %d words from %s", len(words), name)

	c := cpu.New()
	if err := c.LoadCode(words); err != nil {
		return err
	}
	err = c.Run(maxCycles)
	switch {
	case errors.Is(err, cpu.ErrCycleLimit):
		glog.Warningf("%s: stopped after %d cycles without halting", name, c.Cycles)
	case err != nil:
		return fmt.Errorf("%s: %w", name, err)
	default:
		glog.V(1).Infof("halted at pc %d after %d cycles", c.PC, c.Cycles)
	}

	fmt.Printf("A=%d D=%d PC=%d cycles=%d halted=%t\n", c.A, int16(c.D), c.PC, c.Cycles, c.Halted)
	for i := 0; i < 16; i++ {
		fmt.Printf("RAM[%d]=%d\n", i, int16(c.RAM[i]))
	}
	if dumpState {
		pp.Println(struct {
			A, D, PC uint16
			Cycles   int64
			Halted   bool
		}{c.A, c.D, c.PC, c.Cycles, c.Halted})
	}
	return nil
}

// loadProgram reads a source or machine-code file into ROM words.
func loadProgram(name string) ([]uint16, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".asm":
		words, err := assembler.AssembleWords(assembler.SplitLines(string(data)))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return words, nil
	case ".hack":
		var code []string
		for _, line := range assembler.SplitLines(string(data)) {
			if line = strings.TrimSpace(line); line != "" {
				code = append(code, line)
			}
		}
		return assembler.Words(code)
	default:
		return cpu.BytesToWords(data)
	}
}
