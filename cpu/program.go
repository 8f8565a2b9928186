package cpu

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Line is a line of program source.
type Line struct {
	LineNo int
	Text   string
}

// Program is an assembled program: its instructions, label table, and
// entry point.
type Program struct {
	Instructions []Instruction
	Lines        []Line // Source line of each instruction.
	Labels       map[string]int
	Entry        int
}

// LineNo returns the source line number of the instruction at ip, or 0.
func (prog *Program) LineNo(ip int) int {
	if ip < 0 || ip >= len(prog.Lines) {
		return 0
	}

	return prog.Lines[ip].LineNo
}

// All iterates over the instructions and their indexes.
func (prog *Program) All() iter.Seq2[int, Instruction] {
	return slices.All(prog.Instructions)
}

// String returns a listing of the program, with labels.
func (prog *Program) String() (text string) {
	at := map[int][]string{}
	for _, label := range slices.Sorted(maps.Keys(prog.Labels)) {
		ip := prog.Labels[label]
		at[ip] = append(at[ip], label)
	}

	for ip, inst := range prog.All() {
		for _, label := range at[ip] {
			text += fmt.Sprintf("!%v\n", label)
		}
		text += fmt.Sprintf("%03d: %v\n", ip, Disassemble(inst))
	}

	// Labels past the last instruction.
	for _, label := range at[len(prog.Instructions)] {
		text += fmt.Sprintf("!%v\n", label)
	}

	return
}
