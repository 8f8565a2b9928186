package cpu

import (
	"fmt"
	"io"
	"log"
	"math"
	"time"
	"unicode/utf8"
)

const (
	SPEED = 100 // Default steps per second.
)

// LineReader supplies lines of input to the in opcode.
type LineReader interface {
	ReadLine() (line string, err error)
}

// Cpu is the register machine: registers, stack, labels, and the program
// being executed.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Registers  RegisterFile   // Register file.
	Stack      *Stack         // Stack, with base and top in bp and sp.
	StackCells int            // Initial stack cells for Reset.
	Labels     map[string]int // Label names to instruction indexes.
	Code       []Instruction  // Program being executed.
	Running    bool           // Cleared by the exit opcode.
	Speed      int            // Steps per second.

	Input  LineReader // Source for the in opcode.
	Output io.Writer  // Destination for the out opcode.
	Debug  io.Writer  // Destination for vm_debug snapshots.

	Sleep func(d time.Duration) // Delay between steps, and for halt.

	Ticks int // Steps executed since reset.
}

// NewCpu creates a stopped CPU with the given label table and initial
// stack cells.
func NewCpu(labels map[string]int, cells int) (cpu *Cpu) {
	cpu = &Cpu{
		StackCells: cells,
		Labels:     labels,
		Speed:      SPEED,
		Output:     io.Discard,
		Debug:      io.Discard,
		Sleep:      time.Sleep,
	}

	cpu.Reset()

	return
}

// Reset the CPU state.
// - Zeros all registers.
// - Rebuilds the stack with its initial cells.
// - Stops the machine and zeros the tick counter.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Registers.Reset()
	cpu.Stack = NewStack(&cpu.Registers, cpu.StackCells)
	cpu.Running = false
	cpu.Ticks = 0
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() string {
	return cpu.Registers.String() + fmt.Sprintf("% 5s: %v\n", "stack", cpu.Stack)
}

// Ip returns the instruction pointer.
func (cpu *Cpu) Ip() (int, error) {
	return cpu.Registers.Ip().Int()
}

// SetIp sets the instruction pointer.
func (cpu *Cpu) SetIp(ip int) {
	cpu.Registers.Ip().Value = IntegerValue(ip)
}

// delay sleeps for steps/speed seconds. A delay too long to represent
// sleeps for the longest time.Duration.
func (cpu *Cpu) delay(steps int) (err error) {
	if steps < 0 {
		err = fmt.Errorf("%w: %d", ErrValueRange, steps)
		return
	}

	if cpu.Sleep == nil || cpu.Speed <= 0 {
		return
	}

	speed := time.Duration(cpu.Speed)
	seconds := time.Duration(steps) / speed
	if seconds > time.Duration(math.MaxInt64)/time.Second {
		cpu.Sleep(time.Duration(math.MaxInt64))
		return
	}

	cpu.Sleep(seconds*time.Second + (time.Duration(steps)%speed)*time.Second/speed)
	return
}

// Fetch returns the index of the next instruction, wrapping to the start
// of the program when ip runs past the end.
func (cpu *Cpu) Fetch() (ip int, err error) {
	if len(cpu.Code) == 0 {
		err = ErrProgramEmpty
		return
	}

	ip, err = cpu.Ip()
	if err != nil {
		return
	}

	if ip >= len(cpu.Code) {
		ip = 0
		cpu.SetIp(ip)
	}

	if ip < 0 {
		err = fmt.Errorf("%w: %d", ErrIpRange, ip)
		return
	}

	return
}

// Tick executes a single instruction, then delays for one step.
func (cpu *Cpu) Tick() (err error) {
	ip, err := cpu.Fetch()
	if err != nil {
		return
	}

	inst := cpu.Code[ip]
	cpu.SetIp(ip + 1)

	err = cpu.Execute(ip, inst)
	if err != nil {
		return
	}

	cpu.Ticks++
	err = cpu.delay(1)

	return
}

// Start runs from entry until the exit opcode clears Running, or an
// instruction faults.
func (cpu *Cpu) Start(entry int) (err error) {
	cpu.Running = true
	cpu.SetIp(entry)

	for cpu.Running {
		err = cpu.Tick()
		if err != nil {
			cpu.Running = false
			return
		}
	}

	return
}

// operands resolves instruction operand tokens in order.
func (cpu *Cpu) operands(tokens ...string) (ops []Operand, err error) {
	ops = make([]Operand, len(tokens))
	for n, token := range tokens {
		ops[n], err = cpu.Resolve(token)
		if err != nil {
			return
		}
	}

	return
}

// arithmetic stores op(a, b) in the accumulator.
func (cpu *Cpu) arithmetic(ops []Operand, op func(a, b Value) (Value, error)) (err error) {
	value, err := op(ops[0].Get(), ops[1].Get())
	if err != nil {
		return
	}

	cpu.Registers.Accumulator().Value = value
	return
}

// Execute executes a single instruction. ip is the instruction's index,
// used for diagnostics.
func (cpu *Cpu) Execute(ip int, inst Instruction) (err error) {
	defer func() {
		if err != nil {
			err = &ErrInstruction{Ip: ip, Text: Disassemble(inst), Err: err}
		}
	}()

	if cpu.Verbose {
		log.Printf("%03d: %v", ip, Disassemble(inst))
	}

	ops, err := cpu.operands(inst.Operands()...)
	if err != nil {
		return
	}

	switch inst := inst.(type) {
	case Mov:
		err = ops[0].Set(ops[1].Get())
	case Out:
		err = cpu.out(ops[0].Get())
	case ToString:
		err = ops[0].Set(TextValue(ops[1].Get().String()))
	case Add:
		err = cpu.arithmetic(ops, Value.Add)
	case Sub:
		err = cpu.arithmetic(ops, Value.Sub)
	case Mul:
		err = cpu.arithmetic(ops, Value.Mul)
	case Div:
		err = cpu.arithmetic(ops, Value.FloorDiv)
	case Halt:
		var steps int
		steps, err = ops[0].Get().Int()
		if err != nil {
			return
		}
		err = cpu.delay(steps)
	case Exit:
		cpu.Running = false
	case In:
		err = cpu.in(ops[0])
	case Push:
		err = cpu.Stack.Push(ops[0].Get())
	case Pop:
		var value Value
		value, err = cpu.Stack.Pop()
		if err != nil {
			return
		}
		err = ops[0].Set(value)
	case Lea:
		sa, ok := ops[1].(*StackAddress)
		if !ok {
			err = ErrOperandAddress
			return
		}
		err = ops[0].Set(IntegerValue(sa.Address))
	case Jmp:
		err = cpu.jump(ops[0].Get())
	case Call:
		var target int
		target, err = ops[0].Get().Int()
		if err != nil {
			return
		}
		err = cpu.Stack.Push(cpu.Registers.Ip().Value)
		if err != nil {
			return
		}
		cpu.SetIp(target)
	case Ret:
		var value Value
		value, err = cpu.Stack.Pop()
		if err != nil {
			return
		}
		err = cpu.jump(value)
	case VmDebug:
		err = cpu.debug(ops[0].Get())
	case Alloc:
		var offset int
		offset, err = ops[0].Get().Int()
		if err != nil {
			return
		}
		var base int
		base, err = cpu.Stack.Base()
		if err != nil {
			return
		}
		err = cpu.Stack.GrowTo(base + offset)
	default:
		err = ErrUnknownOpcode(inst.Opcode().String())
	}

	return
}

// jump sets ip to an integer value.
func (cpu *Cpu) jump(target Value) (err error) {
	ip, err := target.Int()
	if err != nil {
		return
	}

	cpu.SetIp(ip)
	return
}

// out writes an integer as the character with that code point, or text
// verbatim.
func (cpu *Cpu) out(value Value) (err error) {
	text := value.Text
	if value.Kind == KIND_INTEGER {
		r := rune(value.Integer)
		if int(r) != value.Integer || !utf8.ValidRune(r) {
			err = fmt.Errorf("%w: %d", ErrCodePoint, value.Integer)
			return
		}
		text = string(r)
	}

	_, err = io.WriteString(cpu.Output, text)
	return
}

// in reads one line of input into the operand.
func (cpu *Cpu) in(op Operand) (err error) {
	if cpu.Input == nil {
		err = ErrInputClosed
		return
	}

	line, err := cpu.Input.ReadLine()
	if err == io.EOF {
		err = ErrInputClosed
	}
	if err != nil {
		return
	}

	err = op.Set(TextValue(line))
	return
}

// debug writes a stack (1) or register (2) snapshot.
func (cpu *Cpu) debug(selector Value) (err error) {
	switch selector {
	case IntegerValue(1):
		_, err = fmt.Fprintln(cpu.Debug, cpu.Stack)
	case IntegerValue(2):
		_, err = fmt.Fprint(cpu.Debug, cpu.Registers.String())
	}

	return
}
