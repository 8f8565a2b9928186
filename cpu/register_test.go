package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterFile(t *testing.T) {
	assert := assert.New(t)

	var rf RegisterFile
	rf.Reset()

	for _, name := range []string{"ip", "sp", "bp", "ax", "bx", "cx", "dx", "ex", "fx"} {
		reg, err := rf.Get(name)
		assert.NoError(err, name)
		assert.Equal(name, reg.Name)
		assert.Equal(IntegerValue(0), reg.Value)
	}

	_, err := rf.Get("gx")
	assert.ErrorIs(err, ErrUnknownRegister("gx"))

	assert.Equal("ip", rf.Ip().Name)
	assert.Equal("sp", rf.Sp().Name)
	assert.Equal("bp", rf.Bp().Name)
	assert.Equal("ax", rf.Accumulator().Name)
}

func TestRegisterFile_General(t *testing.T) {
	assert := assert.New(t)

	var rf RegisterFile
	rf.Reset()

	for n, name := range []string{"ax", "bx", "cx", "dx", "ex", "fx"} {
		reg, err := rf.General(n)
		assert.NoError(err)
		assert.Equal(name, reg.Name)
	}

	_, err := rf.General(6)
	assert.ErrorIs(err, ErrUnknownRegister("r6"))

	_, err = rf.General(-1)
	assert.ErrorIs(err, ErrUnknownRegister("r-1"))
}

func TestRegisterFile_Shared(t *testing.T) {
	assert := assert.New(t)

	var rf RegisterFile
	rf.Reset()

	reg, _ := rf.Get("bx")
	reg.Value = IntegerValue(12)

	same, _ := rf.General(1)
	assert.Same(reg, same)
	assert.Equal(IntegerValue(12), same.Value)
}

func TestRegister_Int(t *testing.T) {
	assert := assert.New(t)

	reg := &Register{Name: "cx", Value: TextValue("x")}
	_, err := reg.Int()
	assert.ErrorIs(err, ErrValueKind)
	assert.Contains(err.Error(), "cx")

	reg.Value = IntegerValue(3)
	n, err := reg.Int()
	assert.NoError(err)
	assert.Equal(3, n)
}

func TestRegisterFile_String(t *testing.T) {
	assert := assert.New(t)

	var rf RegisterFile
	rf.Reset()
	rf.Accumulator().Value = TextValue("hi")

	text := rf.String()
	assert.Contains(text, "   ip: 0\n")
	assert.Contains(text, "   ax: \"hi\"\n")
	assert.Contains(text, "   fx: 0\n")
}
