package cpu

import (
	"strings"
)

// Opcode is an instruction operation.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_IN       = Opcode(0)  // in
	OP_OUT      = Opcode(1)  // out
	OP_MOV      = Opcode(2)  // mov
	OP_ALLOC    = Opcode(3)  // alloc
	OP_EXIT     = Opcode(4)  // exit
	OP_TOSTRING = Opcode(5)  // tostring
	OP_ADD      = Opcode(6)  // add
	OP_SUB      = Opcode(7)  // sub
	OP_MUL      = Opcode(8)  // mul
	OP_DIV      = Opcode(9)  // div
	OP_HALT     = Opcode(10) // halt
	OP_PUSH     = Opcode(11) // push
	OP_POP      = Opcode(12) // pop
	OP_LEA      = Opcode(13) // lea
	OP_CALL     = Opcode(14) // call
	OP_JMP      = Opcode(15) // jmp
	OP_RET      = Opcode(16) // ret
	OP_VM_DEBUG = Opcode(17) // vm_debug

	OPCODE_COUNT = 18
)

// OPERAND_LIMIT is the most operand tokens an instruction line may carry.
const OPERAND_LIMIT = 3

var opcodeArity = [OPCODE_COUNT]int{
	OP_IN:       1,
	OP_OUT:      1,
	OP_MOV:      2,
	OP_ALLOC:    1,
	OP_EXIT:     0,
	OP_TOSTRING: 2,
	OP_ADD:      2,
	OP_SUB:      2,
	OP_MUL:      2,
	OP_DIV:      2,
	OP_HALT:     1,
	OP_PUSH:     1,
	OP_POP:      1,
	OP_LEA:      2,
	OP_CALL:     1,
	OP_JMP:      1,
	OP_RET:      0,
	OP_VM_DEBUG: 1,
}

// Arity returns the number of operands the opcode consumes.
func (op Opcode) Arity() int {
	return opcodeArity[op]
}

// ParseOpcode returns the opcode named by text.
func ParseOpcode(text string) (op Opcode, err error) {
	for n := range OPCODE_COUNT {
		op = Opcode(n)
		if op.String() == text {
			return
		}
	}

	op = 0
	err = ErrUnknownOpcode(text)
	return
}

// Instruction is one of the opcode variants below. Each variant carries
// exactly the operand tokens its opcode uses; tokens are resolved when the
// instruction executes.
type Instruction interface {
	Opcode() Opcode
	Operands() []string
	isInstruction()
}

type nullary struct{}

func (nullary) Operands() []string { return nil }
func (nullary) isInstruction()     {}

type unary struct {
	A string
}

func (in unary) Operands() []string { return []string{in.A} }
func (unary) isInstruction()        {}

type binary struct {
	A string
	B string
}

func (in binary) Operands() []string { return []string{in.A, in.B} }
func (binary) isInstruction()        {}

type (
	In       struct{ unary }  // Read a line of input into A.
	Out      struct{ unary }  // Write A as a character or text.
	Mov      struct{ binary } // A = B
	Alloc    struct{ unary }  // Grow the stack to hold indexed cell A.
	Exit     struct{ nullary }
	ToString struct{ binary } // A = text of B
	Add      struct{ binary } // ax = A + B
	Sub      struct{ binary } // ax = A - B
	Mul      struct{ binary } // ax = A * B
	Div      struct{ binary } // ax = A / B, floored
	Halt     struct{ unary }  // Pause for A steps.
	Push     struct{ unary }
	Pop      struct{ unary }
	Lea      struct{ binary } // A = stack address of B
	Call     struct{ unary }
	Jmp      struct{ unary }
	Ret      struct{ nullary }
	VmDebug  struct{ unary } // Snapshot the stack (1) or registers (2).
)

func (In) Opcode() Opcode       { return OP_IN }
func (Out) Opcode() Opcode      { return OP_OUT }
func (Mov) Opcode() Opcode      { return OP_MOV }
func (Alloc) Opcode() Opcode    { return OP_ALLOC }
func (Exit) Opcode() Opcode     { return OP_EXIT }
func (ToString) Opcode() Opcode { return OP_TOSTRING }
func (Add) Opcode() Opcode      { return OP_ADD }
func (Sub) Opcode() Opcode      { return OP_SUB }
func (Mul) Opcode() Opcode      { return OP_MUL }
func (Div) Opcode() Opcode      { return OP_DIV }
func (Halt) Opcode() Opcode     { return OP_HALT }
func (Push) Opcode() Opcode     { return OP_PUSH }
func (Pop) Opcode() Opcode      { return OP_POP }
func (Lea) Opcode() Opcode      { return OP_LEA }
func (Call) Opcode() Opcode     { return OP_CALL }
func (Jmp) Opcode() Opcode      { return OP_JMP }
func (Ret) Opcode() Opcode      { return OP_RET }
func (VmDebug) Opcode() Opcode  { return OP_VM_DEBUG }

// NewInstruction builds the variant for op from its operand tokens.
// Tokens past the opcode's arity are ignored.
func NewInstruction(op Opcode, operands ...string) (inst Instruction, err error) {
	if op < 0 || op >= OPCODE_COUNT {
		err = ErrUnknownOpcode(op.String())
		return
	}
	if len(operands) > OPERAND_LIMIT {
		err = ErrOperandExtra
		return
	}
	if len(operands) < op.Arity() {
		err = ErrOperandMissing
		return
	}

	var u unary
	var b binary
	switch op.Arity() {
	case 1:
		u = unary{A: operands[0]}
	case 2:
		b = binary{A: operands[0], B: operands[1]}
	}

	switch op {
	case OP_IN:
		inst = In{u}
	case OP_OUT:
		inst = Out{u}
	case OP_MOV:
		inst = Mov{b}
	case OP_ALLOC:
		inst = Alloc{u}
	case OP_EXIT:
		inst = Exit{}
	case OP_TOSTRING:
		inst = ToString{b}
	case OP_ADD:
		inst = Add{b}
	case OP_SUB:
		inst = Sub{b}
	case OP_MUL:
		inst = Mul{b}
	case OP_DIV:
		inst = Div{b}
	case OP_HALT:
		inst = Halt{u}
	case OP_PUSH:
		inst = Push{u}
	case OP_POP:
		inst = Pop{u}
	case OP_LEA:
		inst = Lea{b}
	case OP_CALL:
		inst = Call{u}
	case OP_JMP:
		inst = Jmp{u}
	case OP_RET:
		inst = Ret{}
	case OP_VM_DEBUG:
		inst = VmDebug{u}
	}

	return
}

// Disassemble returns the program text form of an instruction.
func Disassemble(inst Instruction) string {
	words := append([]string{inst.Opcode().String()}, inst.Operands()...)
	for n, word := range words {
		words[n] = strings.ReplaceAll(word, "\n", `\n`)
	}

	return strings.Join(words, ":")
}
