package cpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	assert := assert.New(t)

	var zero Value
	assert.Equal(KIND_INTEGER, zero.Kind)
	assert.Equal(IntegerValue(0), zero)
	assert.Equal("0", zero.String())

	assert.Equal("-12", IntegerValue(-12).String())
	assert.Equal("hello", TextValue("hello").String())
	assert.Equal(`"hello"`, TextValue("hello").Quote())
	assert.Equal("7", IntegerValue(7).Quote())

	n, err := IntegerValue(9).Int()
	assert.NoError(err)
	assert.Equal(9, n)

	_, err = TextValue("9").Int()
	assert.ErrorIs(err, ErrValueKind)

	assert.Equal("integer", KIND_INTEGER.String())
	assert.Equal("text", KIND_TEXT.String())
	assert.Equal("ValueKind(5)", ValueKind(5).String())
}

func TestValueArithmetic(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		op     func(a, b Value) (Value, error)
		a, b   Value
		result Value
		err    error
	}){
		{"add", Value.Add, IntegerValue(2), IntegerValue(3), IntegerValue(5), nil},
		{"add_text", Value.Add, TextValue("ab"), TextValue("cd"), TextValue("abcd"), nil},
		{"add_mixed", Value.Add, TextValue("ab"), IntegerValue(1), Value{}, ErrValueKind},
		{"sub", Value.Sub, IntegerValue(2), IntegerValue(3), IntegerValue(-1), nil},
		{"sub_text", Value.Sub, TextValue("a"), TextValue("b"), Value{}, ErrValueKind},
		{"mul", Value.Mul, IntegerValue(6), IntegerValue(7), IntegerValue(42), nil},
		{"mul_text", Value.Mul, TextValue("ab"), IntegerValue(3), TextValue("ababab"), nil},
		{"mul_text_rev", Value.Mul, IntegerValue(2), TextValue("x"), TextValue("xx"), nil},
		{"mul_text_neg", Value.Mul, TextValue("x"), IntegerValue(-2), TextValue(""), nil},
		{"mul_text_overflow", Value.Mul, TextValue("ab"), IntegerValue(math.MaxInt), Value{}, ErrValueRange},
		{"mul_text_overflow_rev", Value.Mul, IntegerValue(math.MaxInt / 2), TextValue("abc"), Value{}, ErrValueRange},
		{"mul_empty_text_large", Value.Mul, TextValue(""), IntegerValue(math.MaxInt), TextValue(""), nil},
		{"mul_texts", Value.Mul, TextValue("x"), TextValue("y"), Value{}, ErrValueKind},
		{"div", Value.FloorDiv, IntegerValue(7), IntegerValue(2), IntegerValue(3), nil},
		{"div_neg", Value.FloorDiv, IntegerValue(-7), IntegerValue(2), IntegerValue(-4), nil},
		{"div_neg_divisor", Value.FloorDiv, IntegerValue(7), IntegerValue(-2), IntegerValue(-4), nil},
		{"div_both_neg", Value.FloorDiv, IntegerValue(-7), IntegerValue(-2), IntegerValue(3), nil},
		{"div_exact", Value.FloorDiv, IntegerValue(-8), IntegerValue(2), IntegerValue(-4), nil},
		{"div_zero", Value.FloorDiv, IntegerValue(7), IntegerValue(0), Value{}, ErrDivisionByZero},
		{"div_text", Value.FloorDiv, TextValue("7"), IntegerValue(1), Value{}, ErrValueKind},
	}

	for _, entry := range table {
		result, err := entry.op(entry.a, entry.b)
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.name)
			continue
		}
		assert.NoError(err, entry.name)
		assert.Equal(entry.result, result, entry.name)
	}
}
