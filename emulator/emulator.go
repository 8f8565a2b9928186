// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"iter"
	"maps"

	"github.com/ezrec/regvm/cpu"
	"github.com/ezrec/regvm/internal"
	"github.com/ezrec/regvm/io"
)

// Emulator state. CPU + program + console.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Console  io.Console     // Console for in and out, unless LineEdit is set.
	LineEdit bool           // Read lines from an interactive Terminal.
	Defined  map[string]int // Extra constants for load-time expressions.

	terminal *io.Terminal
}

// NewEmulator creates a new emulator with the given initial stack cells.
func NewEmulator(cells int) (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(map[string]int{}, cells),
		Program: &cpu.Program{Labels: map[string]int{}},
	}

	return
}

// Defines returns an iterator over the machine constants and the extra
// constants, for use as assembler predefines.
func (emu *Emulator) Defines() iter.Seq2[string, int] {
	machine := map[string]int{
		"STACK_CELLS":   emu.Cpu.StackCells,
		"SPEED":         emu.Cpu.Speed,
		"GENERAL_COUNT": cpu.GENERAL_COUNT,
	}

	return internal.IterSeq2Concat(maps.All(machine), maps.All(emu.Defined))
}

// Device returns the line device the CPU is attached to.
func (emu *Emulator) Device() io.Device {
	if emu.terminal != nil {
		return emu.terminal
	}

	return &emu.Console
}

// Close the emulator
func (emu *Emulator) Close() (err error) {
	if emu.terminal != nil {
		err = emu.terminal.Close()
		emu.terminal = nil
	}

	cerr := emu.Console.Close()
	if err == nil {
		err = cerr
	}

	return
}

// Reset the emulator, loading the program and pointing ip at its entry.
func (emu *Emulator) Reset() (err error) {
	if emu.Program == nil {
		err = cpu.ErrProgramEmpty
		return
	}

	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()

	emu.Cpu.Code = emu.Program.Instructions
	emu.Cpu.Labels = emu.Program.Labels

	if emu.LineEdit && emu.terminal == nil {
		emu.terminal = io.NewTerminal("")
		emu.terminal.Output = emu.Console.Output
	}

	device := emu.Device()
	emu.Cpu.Input = device
	emu.Cpu.Output = device
	emu.Cpu.Debug = device

	emu.Cpu.SetIp(emu.Program.Entry)
	emu.Cpu.Running = true

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Ip returns current instruction pointer, or -1 if it is not an integer.
func (emu *Emulator) Ip() int {
	ip, err := emu.Cpu.Ip()
	if err != nil {
		return -1
	}

	return ip
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	ip := emu.Ip()
	if ip >= len(emu.Program.Instructions) {
		ip = 0
	}

	return emu.Program.LineNo(ip)
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	if !emu.Cpu.Running {
		done = true
		return
	}

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			emu.Cpu.Running = false
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = !emu.Cpu.Running

	return
}

// Run resets the emulator and ticks until exit or a fault.
func (emu *Emulator) Run() (err error) {
	err = emu.Reset()
	if err != nil {
		return
	}

	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return err
		}
	}

	return
}
