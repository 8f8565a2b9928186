package cpu

import (
	"math"
	"strconv"
	"strings"
)

// ValueKind is the type of a value held in a register or stack cell.
type ValueKind int

//go:generate go tool stringer -linecomment -type=ValueKind
const (
	KIND_INTEGER = ValueKind(0) // integer
	KIND_TEXT    = ValueKind(1) // text
)

// Value is an integer or a text. The zero value is the integer 0.
type Value struct {
	Kind    ValueKind
	Integer int
	Text    string
}

// IntegerValue makes an integer value.
func IntegerValue(n int) Value {
	return Value{Kind: KIND_INTEGER, Integer: n}
}

// TextValue makes a text value.
func TextValue(s string) Value {
	return Value{Kind: KIND_TEXT, Text: s}
}

// Int returns the integer of an integer value.
func (v Value) Int() (n int, err error) {
	if v.Kind != KIND_INTEGER {
		err = ErrValueKind
		return
	}

	n = v.Integer
	return
}

// String returns the text form of the value: decimal for integers,
// verbatim for text.
func (v Value) String() string {
	if v.Kind == KIND_TEXT {
		return v.Text
	}

	return strconv.Itoa(v.Integer)
}

// Quote returns the value as it would be written as an operand.
func (v Value) Quote() string {
	if v.Kind == KIND_TEXT {
		return strconv.Quote(v.Text)
	}

	return strconv.Itoa(v.Integer)
}

// Add returns a + b. Two texts concatenate.
func (a Value) Add(b Value) (out Value, err error) {
	switch {
	case a.Kind == KIND_INTEGER && b.Kind == KIND_INTEGER:
		out = IntegerValue(a.Integer + b.Integer)
	case a.Kind == KIND_TEXT && b.Kind == KIND_TEXT:
		out = TextValue(a.Text + b.Text)
	default:
		err = ErrValueKind
	}

	return
}

// Sub returns a - b.
func (a Value) Sub(b Value) (out Value, err error) {
	if a.Kind != KIND_INTEGER || b.Kind != KIND_INTEGER {
		err = ErrValueKind
		return
	}

	out = IntegerValue(a.Integer - b.Integer)
	return
}

// Mul returns a * b. A text times an integer repeats the text.
func (a Value) Mul(b Value) (out Value, err error) {
	switch {
	case a.Kind == KIND_INTEGER && b.Kind == KIND_INTEGER:
		out = IntegerValue(a.Integer * b.Integer)
	case a.Kind == KIND_TEXT && b.Kind == KIND_INTEGER:
		out, err = repeat(a.Text, b.Integer)
	case a.Kind == KIND_INTEGER && b.Kind == KIND_TEXT:
		out, err = repeat(b.Text, a.Integer)
	default:
		err = ErrValueKind
	}

	return
}

// repeat returns count copies of text, or none if count is negative.
func repeat(text string, count int) (out Value, err error) {
	count = max(count, 0)
	if count > 0 && len(text) > math.MaxInt/count {
		err = ErrValueRange
		return
	}

	out = TextValue(strings.Repeat(text, count))
	return
}

// FloorDiv returns a / b rounded toward negative infinity.
func (a Value) FloorDiv(b Value) (out Value, err error) {
	if a.Kind != KIND_INTEGER || b.Kind != KIND_INTEGER {
		err = ErrValueKind
		return
	}

	if b.Integer == 0 {
		err = ErrDivisionByZero
		return
	}

	out = IntegerValue(floorDiv(a.Integer, b.Integer))
	return
}

func floorDiv(n, d int) int {
	q := n / d
	if n%d != 0 && (n < 0) != (d < 0) {
		q--
	}
	return q
}
