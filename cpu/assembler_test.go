package cpu

import (
	"bufio"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func doParse(asm *Assembler, program ...string) (*Program, error) {
	return asm.Parse(strings.NewReader(strings.Join(program, "\n")))
}

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := doParse(asm,
		"// Print H",
		"",
		"!_start",
		"mov:rax:72   // H",
		"   out:rax",
		"exit",
	)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(map[string]int{"_start": 0}, prog.Labels)
	assert.Equal(0, prog.Entry)
	assert.Equal([]Instruction{
		Mov{binary{"rax", "72"}},
		Out{unary{"rax"}},
		Exit{},
	}, prog.Instructions)
	assert.Equal([]Line{
		{4, "mov:rax:72   // H"},
		{5, "   out:rax"},
		{6, "exit"},
	}, prog.Lines)
}

func TestAssemblerLabels(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := doParse(asm,
		"!helper // comment",
		"ret",
		"!_start",
		"call:helper",
		"!done",
		"exit",
		"!end",
	)
	assert.NoError(err)
	assert.Equal(map[string]int{"helper": 0, "_start": 1, "done": 2, "end": 3}, prog.Labels)
	assert.Equal(1, prog.Entry)
	assert.Equal(prog.Labels, asm.Label)
}

func TestAssemblerEntryLabel(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{EntryLabel: "main"}

	prog, err := doParse(asm, "exit", "!main", "exit")
	assert.NoError(err)
	assert.Equal(1, prog.Entry)

	_, err = doParse(asm, "!_start", "exit")
	assert.ErrorIs(err, ErrEntryMissing("main"))
}

func TestAssemblerEntryMissing(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := doParse(asm, "mov:rax:72", "out:rax", "exit")
	assert.Nil(prog)
	assert.ErrorIs(err, ErrEntryMissing("_start"))
}

func TestAssemblerEscapes(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := doParse(asm, "!_start", `out:"a\nb"`, "exit")
	assert.NoError(err)
	assert.Equal([]string{"\"a\nb\""}, prog.Instructions[0].Operands())
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program []string
		lineno  int
		err     error
	}){
		{"unknown_opcode", []string{"!_start", "nop"}, 2, ErrUnknownOpcode("nop")},
		{"missing_operand", []string{"!_start", "mov:rax"}, 2, ErrOperandMissing},
		{"extra_operand", []string{"!_start", "mov:a:b:c:d"}, 2, ErrOperandExtra},
		{"duplicate_label", []string{"!_start", "exit", "!_start"}, 3, ErrLabelDuplicate},
		{"empty_label", []string{"!_start", "! // nothing"}, 2, ErrLabelSyntax},
		{"bad_expression", []string{"!_start", "mov:rax:$(1 +)", "exit"}, 2, ErrParseExpression("1 +")},
		{"negative_expression", []string{"!_start", "mov:rax:$(0 - 1)"}, 2, ErrParseExpression("0 - 1")},
		{"list_expression", []string{"!_start", "mov:rax:$([1])"}, 2, ErrParseExpression("[1]")},
	}

	for _, entry := range table {
		asm := &Assembler{}
		_, err := doParse(asm, entry.program...)
		assert.ErrorIs(err, entry.err, entry.name)

		var syntax *ErrSyntax
		if assert.True(errors.As(err, &syntax), entry.name) {
			assert.Equal(entry.lineno, syntax.LineNo, entry.name)
			assert.Equal(entry.program[entry.lineno-1], syntax.Line, entry.name)
		}
	}
}

func TestAssemblerExpressions(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("WIDTH", 3)
	asm.Predefine("HEIGHT", 4)
	asm.Predefine("WIDTH", 5)

	prog, err := doParse(asm,
		"!_start",
		"mov:rax:$(WIDTH * HEIGHT)",
		"jmp:$(done + 0)",
		`out:$("a" + "b")`,
		"!done",
		"exit",
	)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal([]Instruction{
		Mov{binary{"rax", "20"}},
		Jmp{unary{"3"}},
		Out{unary{`"ab"`}},
		Exit{},
	}, prog.Instructions)
}

func TestAssemblerReuse(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	_, err := doParse(asm, "!_start", "!other", "exit")
	assert.NoError(err)

	prog, err := doParse(asm, "!_start", "exit")
	assert.NoError(err)
	assert.Equal(map[string]int{"_start": 0}, prog.Labels)
	assert.Len(prog.Instructions, 1)
}

func TestAssemblerLineTooLong(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	long := "mov:rax:\"" + strings.Repeat("x", bufio.MaxScanTokenSize) + "\""
	_, err := doParse(asm, "!_start", "exit", long, "exit")
	assert.ErrorIs(err, bufio.ErrTooLong)

	var syntax *ErrSyntax
	if assert.ErrorAs(err, &syntax) {
		assert.Equal(3, syntax.LineNo)
	}
}
