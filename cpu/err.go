package cpu

import (
	"errors"

	"github.com/ezrec/regvm/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrProgramEmpty    = errors.New(f("program empty"))
	ErrIpRange         = errors.New(f("ip out of range"))
	ErrStackUnderflow  = errors.New(f("stack underflow"))
	ErrStackAddress    = errors.New(f("stack address negative"))
	ErrDivisionByZero  = errors.New(f("division by zero"))
	ErrValueKind       = errors.New(f("value kind mismatch"))
	ErrValueRange      = errors.New(f("value out of range"))
	ErrCodePoint       = errors.New(f("code point out of range"))
	ErrInputClosed     = errors.New(f("input closed"))
	ErrOperandReadOnly = errors.New(f("operand read only"))
	ErrOperandAddress  = errors.New(f("operand has no stack address"))

	// Instruction decode errors
	ErrOperandMissing = errors.New(f("operand missing"))
	ErrOperandExtra   = errors.New(f("excessive operands"))

	// Assembler errors
	ErrLabelDuplicate = errors.New(f("label duplicated"))
	ErrLabelSyntax    = errors.New(f("label name missing"))
)

type ErrUnknownOpcode string

func (err ErrUnknownOpcode) Error() string {
	return f("unknown opcode '%v'", string(err))
}

type ErrUnknownRegister string

func (err ErrUnknownRegister) Error() string {
	return f("unknown register '%v'", string(err))
}

type ErrUnknownLabel string

func (err ErrUnknownLabel) Error() string {
	return f("unknown label '%v'", string(err))
}

// ErrEntryMissing is returned when a program has no entry label.
type ErrEntryMissing string

func (err ErrEntryMissing) Error() string {
	return f("entry label %v missing", string(err))
}

type ErrAddressExpression string

func (err ErrAddressExpression) Error() string {
	return f("[%v] is not a valid address", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrSyntax locates a load time fault in the program text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrInstruction locates an execution fault at an instruction.
type ErrInstruction struct {
	Ip   int    // Index of the faulting instruction.
	Text string // Instruction in program text form.
	Err  error
}

func (err *ErrInstruction) Error() string {
	return f("%03d %v: %v", err.Ip, err.Text, err.Err)
}

func (err *ErrInstruction) Unwrap() error {
	return err.Err
}
