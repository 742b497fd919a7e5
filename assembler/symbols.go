package assembler

import (
	"fmt"
	"sort"

	"github.com/Urethramancer/hack/cpu"
)

// Symbol is one name/address binding.
type Symbol struct {
	Name    string
	Address int
}

// SymbolTable maps symbol names to addresses. An entry is never reassigned
// once set. Building never fails: addresses past the 15-bit range are kept
// as counted and rejected when encoded.
type SymbolTable struct {
	addresses map[string]int
}

// NewSymbolTable returns a table holding only the predefined symbols.
func NewSymbolTable() *SymbolTable {
	st := &SymbolTable{addresses: make(map[string]int, 23)}
	st.addresses["SP"] = 0
	st.addresses["LCL"] = 1
	st.addresses["ARG"] = 2
	st.addresses["THIS"] = 3
	st.addresses["THAT"] = 4
	for i := 0; i < 16; i++ {
		st.addresses[fmt.Sprintf("R%d", i)] = i
	}
	st.addresses["SCREEN"] = cpu.ScreenBase
	st.addresses["KBD"] = cpu.KBD
	return st
}

// Add binds name to addr unless the name is already bound. It reports
// whether the binding was made.
func (st *SymbolTable) Add(name string, addr int) bool {
	if _, ok := st.addresses[name]; ok {
		return false
	}
	st.addresses[name] = addr
	return true
}

// Contains reports whether name is bound.
func (st *SymbolTable) Contains(name string) bool {
	_, ok := st.addresses[name]
	return ok
}

// Address returns the address bound to name.
func (st *SymbolTable) Address(name string) (int, bool) {
	addr, ok := st.addresses[name]
	return addr, ok
}

// Len returns the number of bound symbols.
func (st *SymbolTable) Len() int {
	return len(st.addresses)
}

// Symbols lists every binding ordered by address, then name.
func (st *SymbolTable) Symbols() []Symbol {
	list := make([]Symbol, 0, len(st.addresses))
	for name, addr := range st.addresses {
		list = append(list, Symbol{Name: name, Address: addr})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Address != list[j].Address {
			return list[i].Address < list[j].Address
		}
		return list[i].Name < list[j].Name
	})
	return list
}

// BuildSymbolTable resolves labels and variables for a classified program.
// Labels must all be known before variables are handed out, so the two
// passes stay separate.
func BuildSymbolTable(instructions []Instruction) *SymbolTable {
	st := NewSymbolTable()
	st.addLabels(instructions)
	st.addVariables(instructions)
	return st
}

// addLabels binds each label to the ROM address of the next real
// instruction. The first definition of a name wins.
func (st *SymbolTable) addLabels(instructions []Instruction) {
	rom := 0
	for _, inst := range instructions {
		if inst.Type == Label {
			st.Add(inst.Name, rom)
			continue
		}
		rom++
	}
}

// addVariables gives every still-unbound symbol reference the next free RAM
// word, in order of first appearance.
func (st *SymbolTable) addVariables(instructions []Instruction) {
	ram := cpu.VariableBase
	for _, inst := range instructions {
		if inst.Type != AddressSymbol {
			continue
		}
		if st.Add(inst.Name, ram) {
			ram++
		}
	}
}
