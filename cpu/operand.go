package cpu

import (
	"regexp"
	"strconv"
	"strings"
)

// Operand is a resolved operand token.
type Operand interface {
	Get() Value
	Set(value Value) error
}

// Constant is an immediate integer, quoted text, or label index.
type Constant struct {
	Value Value
}

func (c *Constant) Get() Value {
	return c.Value
}

func (c *Constant) Set(value Value) error {
	return ErrOperandReadOnly
}

// RegisterRef is a live handle into the register file.
type RegisterRef struct {
	Register *Register
}

func (r *RegisterRef) Get() Value {
	return r.Register.Value
}

func (r *RegisterRef) Set(value Value) error {
	r.Register.Value = value
	return nil
}

// StackAddress is a physical stack index, and the value held there when the
// operand was resolved. Set writes through to the stack.
type StackAddress struct {
	Address int
	Value   Value

	stack *Stack
}

func (sa *StackAddress) Get() Value {
	return sa.Value
}

func (sa *StackAddress) Set(value Value) (err error) {
	base, err := sa.stack.Base()
	if err != nil {
		return
	}

	err = sa.stack.WriteIndexed(sa.Address-base, value)
	if err != nil {
		return
	}

	sa.Value = value
	return
}

// addressRe matches a stack address expression: a register or label,
// optionally offset by a single signed digit.
var addressRe = regexp.MustCompile(`^([a-zA-Z_][a-zA-Z0-9_]*)(?:([+-])([0-9]))?$`)

func isDigits(text string) bool {
	if len(text) == 0 {
		return false
	}
	for _, c := range text {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isQuoted(text string) bool {
	if len(text) < 2 {
		return false
	}
	first := text[0]
	return (first == '"' || first == '\'') && text[len(text)-1] == first
}

// Resolve maps an operand token to a constant, a register, or a stack
// address. The first matching form wins:
//
//	r<digits>       general purpose register by index
//	r<name>         register by name, without the r prefix (rax, rsp, rip)
//	<digits>        integer constant
//	[<reg>+<digit>] stack address
//	"text", 'text'  text constant
//	<label>         label index constant
func (cpu *Cpu) Resolve(token string) (op Operand, err error) {
	switch {
	case len(token) == 0:
		err = ErrOperandMissing
	case token[0] == 'r' && isDigits(token[1:]):
		n, perr := strconv.Atoi(token[1:])
		if perr != nil {
			err = ErrUnknownRegister(token)
			return
		}
		var reg *Register
		reg, err = cpu.Registers.General(n)
		if err != nil {
			return
		}
		op = &RegisterRef{Register: reg}
	case token[0] == 'r':
		reg, rerr := cpu.Registers.Get(token[1:])
		if rerr != nil {
			err = ErrUnknownRegister(token)
			return
		}
		op = &RegisterRef{Register: reg}
	case isDigits(token):
		n, perr := strconv.Atoi(token)
		if perr != nil {
			err = ErrParseNumber(token)
			return
		}
		op = &Constant{Value: IntegerValue(n)}
	case len(token) >= 2 && strings.HasPrefix(token, "[") && strings.HasSuffix(token, "]"):
		op, err = cpu.resolveAddress(token[1 : len(token)-1])
	case isQuoted(token):
		op = &Constant{Value: TextValue(token[1 : len(token)-1])}
	default:
		ip, ok := cpu.Labels[token]
		if !ok {
			err = ErrUnknownLabel(token)
			return
		}
		op = &Constant{Value: IntegerValue(ip)}
	}

	return
}

// CalculateAddress evaluates a stack address expression to a physical
// stack index.
func (cpu *Cpu) CalculateAddress(expr string) (address int, err error) {
	match := addressRe.FindStringSubmatch(expr)
	if match == nil {
		err = ErrAddressExpression(expr)
		return
	}

	op, err := cpu.Resolve(match[1])
	if err != nil {
		return
	}

	address, err = op.Get().Int()
	if err != nil {
		return
	}

	if len(match[2]) != 0 {
		digit := int(match[3][0] - '0')
		if match[2] == "-" {
			digit = -digit
		}
		address += digit
	}

	return
}

// resolveAddress resolves the inside of a [...] operand.
func (cpu *Cpu) resolveAddress(expr string) (op Operand, err error) {
	address, err := cpu.CalculateAddress(expr)
	if err != nil {
		return
	}

	base, err := cpu.Stack.Base()
	if err != nil {
		return
	}

	value, err := cpu.Stack.ReadIndexed(address - base)
	if err != nil {
		return
	}

	op = &StackAddress{Address: address, Value: value, stack: cpu.Stack}
	return
}
