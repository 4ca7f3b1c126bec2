package ast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueString(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{name: "int", value: IntValue(42), want: "42"},
		{name: "negative int", value: IntValue(-7), want: "-7"},
		{name: "float", value: FloatValue(0.75), want: "0.75"},
		{name: "integral float", value: FloatValue(2), want: "2.0"},
		{name: "million", value: FloatValue(1e6), want: "1000000.0"},
		{name: "negative million", value: FloatValue(-2e6), want: "-2000000.0"},
		{name: "fraction", value: FloatValue(123456.5), want: "123456.5"},
		{name: "largest plain float", value: FloatValue(1234567890123456), want: "1234567890123456.0"},
		{name: "large float", value: FloatValue(1e16), want: "1e+16"},
		{name: "huge float", value: FloatValue(1e21), want: "1e+21"},
		{name: "small float", value: FloatValue(0.0001), want: "0.0001"},
		{name: "tiny float", value: FloatValue(1.5e-5), want: "1.5e-05"},
		{name: "float zero", value: FloatValue(0), want: "0.0"},
		{name: "zero value", value: Value{}, want: "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}

func TestOpApply(t *testing.T) {
	tests := []struct {
		name string
		op   Op
		l, r Value
		want Value
	}{
		{name: "int add", op: OpAdd, l: IntValue(3), r: IntValue(4), want: IntValue(7)},
		{name: "int sub", op: OpSub, l: IntValue(2), r: IntValue(5), want: IntValue(-3)},
		{name: "int mul", op: OpMul, l: IntValue(6), r: IntValue(7), want: IntValue(42)},
		{name: "int div is float", op: OpDiv, l: IntValue(3), r: IntValue(4), want: FloatValue(0.75)},
		{name: "exact int div is float", op: OpDiv, l: IntValue(4), r: IntValue(2), want: FloatValue(2)},
		{name: "mixed add", op: OpAdd, l: IntValue(1), r: FloatValue(0.5), want: FloatValue(1.5)},
		{name: "mixed mul", op: OpMul, l: FloatValue(2.5), r: IntValue(2), want: FloatValue(5)},
		{name: "float sub", op: OpSub, l: FloatValue(1.5), r: FloatValue(0.5), want: FloatValue(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op.Apply(tt.l, tt.r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Type(), got.Type())
		})
	}
}

func TestOpApplyErrors(t *testing.T) {
	_, err := OpDiv.Apply(IntValue(1), IntValue(0))
	require.ErrorIs(t, err, ErrDivisionByZero)

	_, err = OpDiv.Apply(FloatValue(1), FloatValue(0))
	require.ErrorIs(t, err, ErrDivisionByZero)

	_, err = Op("%").Apply(IntValue(1), IntValue(2))
	var opErr *UnknownOperatorError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, Op("%"), opErr.Op)
	assert.EqualError(t, err, `unknown operator "%"`)
}

func TestOpApplyOverflow(t *testing.T) {
	tests := []struct {
		name string
		op   Op
		l, r int64
	}{
		{name: "add", op: OpAdd, l: math.MaxInt64, r: 1},
		{name: "add negative", op: OpAdd, l: math.MinInt64, r: -1},
		{name: "sub", op: OpSub, l: math.MinInt64, r: 1},
		{name: "sub negative", op: OpSub, l: math.MaxInt64, r: -1},
		{name: "mul", op: OpMul, l: math.MaxInt64 / 2, r: 3},
		{name: "mul min by minus one", op: OpMul, l: -1, r: math.MinInt64},
		{name: "mul minus one by min", op: OpMul, l: math.MinInt64, r: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.op.Apply(IntValue(tt.l), IntValue(tt.r))
			require.ErrorIs(t, err, ErrIntegerOverflow)
		})
	}

	// Results right at the bounds still fold.
	got, err := OpAdd.Apply(IntValue(math.MaxInt64-1), IntValue(1))
	require.NoError(t, err)
	assert.Equal(t, IntValue(math.MaxInt64), got)
	got, err = OpMul.Apply(IntValue(math.MinInt64/2), IntValue(2))
	require.NoError(t, err)
	assert.Equal(t, IntValue(math.MinInt64), got)
	got, err = OpSub.Apply(IntValue(0), IntValue(math.MaxInt64))
	require.NoError(t, err)
	assert.Equal(t, IntValue(-math.MaxInt64), got)
}

func TestParseType(t *testing.T) {
	typ, ok := ParseType("int")
	assert.True(t, ok)
	assert.Equal(t, TypeInt, typ)

	typ, ok = ParseType("float")
	assert.True(t, ok)
	assert.Equal(t, TypeFloat, typ)

	_, ok = ParseType("string")
	assert.False(t, ok)
}
