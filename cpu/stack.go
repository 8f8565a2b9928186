package cpu

import (
	"fmt"
	"strings"
)

const (
	STACK_CELLS = 5 // Default initial stack cells.
)

// Stack is a growable sequence of cells. Its base and top pointers are
// held in the bp and sp registers.
//
// Indexed access is relative to the base, while Push and Pop work at the
// physical end of the sequence.
type Stack struct {
	data []Value
	size int

	top  *Register
	base *Register
}

// NewStack creates a stack of zeroed cells, with base and top set to the
// last cell.
func NewStack(regs *RegisterFile, cells int) (s *Stack) {
	s = &Stack{
		data: make([]Value, cells),
		size: cells,
		top:  regs.Sp(),
		base: regs.Bp(),
	}

	s.base.Value = IntegerValue(cells - 1)
	s.top.Value = s.base.Value

	return
}

// Len returns the physical length of the stack.
func (s *Stack) Len() int {
	return len(s.data)
}

// Size returns the logical size, counting pushes and pops only.
func (s *Stack) Size() int {
	return s.size
}

// Base returns the base pointer.
func (s *Stack) Base() (int, error) {
	return s.base.Int()
}

// Top returns the top pointer.
func (s *Stack) Top() (int, error) {
	return s.top.Int()
}

// Push appends a value at the physical end.
func (s *Stack) Push(value Value) (err error) {
	top, err := s.Top()
	if err != nil {
		return
	}

	s.data = append(s.data, value)
	s.top.Value = IntegerValue(top + 1)
	s.size++

	return
}

// Pop removes the value at the physical end.
func (s *Stack) Pop() (value Value, err error) {
	if len(s.data) == 0 {
		err = ErrStackUnderflow
		return
	}

	top, err := s.Top()
	if err != nil {
		return
	}

	value = s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	s.top.Value = IntegerValue(top - 1)
	s.size--

	return
}

// GrowTo extends the stack with zero cells until the physical index
// address exists.
func (s *Stack) GrowTo(address int) (err error) {
	if address < 0 {
		err = fmt.Errorf("%w: %d", ErrStackAddress, address)
		return
	}

	for len(s.data) <= address {
		s.data = append(s.data, Value{})
	}

	return
}

// address converts an offset from the base into a physical index.
func (s *Stack) address(offset int) (address int, err error) {
	base, err := s.Base()
	if err != nil {
		return
	}

	address = base + offset
	err = s.GrowTo(address)
	return
}

// ReadIndexed returns the cell at base + offset, growing the stack as
// needed.
func (s *Stack) ReadIndexed(offset int) (value Value, err error) {
	address, err := s.address(offset)
	if err != nil {
		return
	}

	value = s.data[address]
	return
}

// WriteIndexed sets the cell at base + offset, growing the stack as
// needed.
func (s *Stack) WriteIndexed(offset int, value Value) (err error) {
	address, err := s.address(offset)
	if err != nil {
		return
	}

	s.data[address] = value
	return
}

// String returns a snapshot of the stack cells, followed by the base and
// top pointers.
func (s *Stack) String() string {
	cells := make([]string, len(s.data))
	for n, value := range s.data {
		cells[n] = value.Quote()
	}

	return fmt.Sprintf("[%v] %v %v", strings.Join(cells, " "), s.base.Value.Quote(), s.top.Value.Quote())
}
