// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/regvm/internal"
)

const (
	ENTRY_LABEL = "_start" // Default entry label.
)

var commentRe = regexp.MustCompile(`//.*`)

// source is a scanned instruction line, not yet built.
type source struct {
	Line
	Op    Opcode
	Words []string
}

// Assembler loads program text into a Program.
//
// Each line is 'opcode[:operand]*', or '!label'. Comments start with '//'.
// An operand written as $(expr) is evaluated once all labels are known,
// with labels and predefines available as integers.
type Assembler struct {
	Verbose    bool           // If set, verbosely logs the assembler actions.
	EntryLabel string         // Entry label, ENTRY_LABEL if empty.
	Label      map[string]int // Map of labels to instruction indexes.

	predefine map[string]int // Predefines for $(...) expressions.
	sources   []source
}

// Predefine defines a new constant or redefines an existing one.
func (asm *Assembler) Predefine(name string, value int) {
	if asm.predefine == nil {
		asm.predefine = map[string]int{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// entryLabel returns the label that marks the program entry.
func (asm *Assembler) entryLabel() string {
	if len(asm.EntryLabel) == 0 {
		return ENTRY_LABEL
	}

	return asm.EntryLabel
}

// parseLine scans a single line, recording a label or an instruction.
func (asm *Assembler) parseLine(text string, lineno int) (err error) {
	line := strings.TrimSpace(commentRe.ReplaceAllString(text, ""))
	if len(line) == 0 {
		return
	}

	if strings.HasPrefix(line, "!") {
		label := strings.TrimSpace(line[1:])
		if len(label) == 0 {
			err = ErrLabelSyntax
			return
		}
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}
		asm.Label[label] = len(asm.sources)
		return
	}

	words := strings.Split(line, ":")
	op, err := ParseOpcode(strings.TrimSpace(words[0]))
	if err != nil {
		return
	}

	args := words[1:]
	for n, arg := range args {
		args[n] = strings.ReplaceAll(arg, `\n`, "\n")
	}

	asm.sources = append(asm.sources, source{
		Line:  Line{LineNo: lineno, Text: text},
		Op:    op,
		Words: args,
	})

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	asm.Label = make(map[string]int, 16)
	asm.sources = asm.sources[:0]

	var lineno int
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("asm: %v: %v\n", lineno, text)
		}

		err = asm.parseLine(text, lineno)
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: text, Err: err}
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		err = &ErrSyntax{LineNo: lineno + 1, Err: err}
		return
	}

	entry, ok := asm.Label[asm.entryLabel()]
	if !ok {
		err = ErrEntryMissing(asm.entryLabel())
		return
	}

	prog = &Program{
		Labels: maps.Clone(asm.Label),
		Entry:  entry,
	}

	// Final evaluation of expressions, once all labels are known.
	for _, src := range asm.sources {
		var inst Instruction
		inst, err = asm.build(src)
		if err != nil {
			err = &ErrSyntax{LineNo: src.LineNo, Line: src.Text, Err: err}
			prog = nil
			return
		}
		prog.Instructions = append(prog.Instructions, inst)
		prog.Lines = append(prog.Lines, src.Line)
	}

	return
}

// build makes the instruction for a scanned line.
func (asm *Assembler) build(src source) (inst Instruction, err error) {
	words := make([]string, len(src.Words))
	for n, word := range src.Words {
		if strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")") {
			word, err = asm.parenEval(word[2 : len(word)-1])
			if err != nil {
				return
			}
		}
		words[n] = word
	}

	inst, err = NewInstruction(src.Op, words...)
	return
}

// parenEval does load-time $(...) evaluations, returning an operand token.
func (asm *Assembler) parenEval(expr string) (token string, err error) {
	thread := starlark.Thread{Name: "asm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for name, value := range internal.IterSeq2Concat(maps.All(asm.predefine), maps.All(asm.Label)) {
		pred[name] = starlark.MakeInt(value)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrParseExpression(expr), err)
		return
	}

	switch rc := dict["rc"].(type) {
	case starlark.Int:
		value, ok := rc.Int64()
		if !ok || value < 0 {
			err = ErrParseExpression(expr)
			return
		}
		token = strconv.FormatInt(value, 10)
	case starlark.String:
		token = `"` + string(rc) + `"`
	default:
		err = ErrParseExpression(expr)
	}

	return
}
