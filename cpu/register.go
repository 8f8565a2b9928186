package cpu

import (
	"fmt"
	"iter"
)

// Register file indexes.
const (
	REG_IP = 0 // Instruction pointer.
	REG_SP = 1 // Stack top pointer.
	REG_BP = 2 // Stack base pointer.
	REG_AX = 3 // First general purpose register, the accumulator.

	REGISTER_COUNT = 9 // ip, sp, bp, and six general purpose registers.
	GENERAL_COUNT  = 6 // General purpose registers r0-r5.
)

var registerNames = [REGISTER_COUNT]string{
	"ip", "sp", "bp",
	"ax", "bx", "cx", "dx", "ex", "fx",
}

// Register is a named cell of the register file.
type Register struct {
	Name  string
	Value Value
}

// Int returns the integer held by the register.
func (reg *Register) Int() (n int, err error) {
	n, err = reg.Value.Int()
	if err != nil {
		err = fmt.Errorf("%v: %w", reg.Name, err)
	}
	return
}

// RegisterFile is the fixed set of machine registers.
type RegisterFile struct {
	reg [REGISTER_COUNT]Register
}

// Reset names every register and zeros its value.
func (rf *RegisterFile) Reset() {
	for n, name := range registerNames {
		rf.reg[n] = Register{Name: name}
	}
}

// Get returns the register with the given name.
func (rf *RegisterFile) Get(name string) (reg *Register, err error) {
	for n := range rf.reg {
		if rf.reg[n].Name == name {
			reg = &rf.reg[n]
			return
		}
	}

	err = ErrUnknownRegister(name)
	return
}

// General returns general purpose register n, where 0 is ax and 5 is fx.
func (rf *RegisterFile) General(n int) (reg *Register, err error) {
	if n < 0 || n >= GENERAL_COUNT {
		err = ErrUnknownRegister(fmt.Sprintf("r%d", n))
		return
	}

	reg = &rf.reg[REG_AX+n]
	return
}

// Ip returns the instruction pointer register.
func (rf *RegisterFile) Ip() *Register {
	return &rf.reg[REG_IP]
}

// Sp returns the stack top register.
func (rf *RegisterFile) Sp() *Register {
	return &rf.reg[REG_SP]
}

// Bp returns the stack base register.
func (rf *RegisterFile) Bp() *Register {
	return &rf.reg[REG_BP]
}

// Accumulator returns ax, the destination of arithmetic results.
func (rf *RegisterFile) Accumulator() *Register {
	return &rf.reg[REG_AX]
}

// All iterates over the registers in file order.
func (rf *RegisterFile) All() iter.Seq[*Register] {
	return func(yield func(reg *Register) bool) {
		for n := range rf.reg {
			if !yield(&rf.reg[n]) {
				return
			}
		}
	}
}

// String returns a snapshot of the register file.
func (rf *RegisterFile) String() (text string) {
	for reg := range rf.All() {
		text += fmt.Sprintf("% 5s: %v\n", reg.Name, reg.Value.Quote())
	}

	return
}
