package ast

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Type is a declared or inferred type. The zero value means "not known".
type Type int

const (
	TypeUnknown Type = iota
	TypeInt
	TypeFloat
)

func (t Type) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	}
	return "unknown"
}

// ParseType maps a type keyword to its Type.
func ParseType(name string) (Type, bool) {
	switch name {
	case "int":
		return TypeInt, true
	case "float":
		return TypeFloat, true
	}
	return TypeUnknown, false
}

// Value is a numeric value, either an integer or a floating-point number.
type Value struct {
	typ Type
	i   int64
	f   float64
}

func IntValue(i int64) Value     { return Value{typ: TypeInt, i: i} }
func FloatValue(f float64) Value { return Value{typ: TypeFloat, f: f} }

// Type reports whether the value is an int or a float.
func (v Value) Type() Type { return v.typ }

// Float returns the value widened to float64.
func (v Value) Float() float64 {
	if v.typ == TypeInt {
		return float64(v.i)
	}
	return v.f
}

// String formats integers plainly and floats with at least one decimal place,
// so 2.0 stays distinguishable from 2 in emitted code. Floats switch to
// exponent form below 1e-4 and from 1e16 on.
func (v Value) String() string {
	if v.typ != TypeFloat {
		return strconv.FormatInt(v.i, 10)
	}
	if abs := math.Abs(v.f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v.f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v.f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Op is a binary arithmetic operator.
type Op string

const (
	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "*"
	OpDiv Op = "/"
)

var (
	// ErrDivisionByZero is returned when folding a division by a zero literal.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrIntegerOverflow is returned when folding two ints leaves the int64 range.
	ErrIntegerOverflow = errors.New("integer overflow")
)

// UnknownOperatorError reports an operator outside of + - * /.
type UnknownOperatorError struct {
	Op Op
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown operator %q", string(e.Op))
}

// Apply evaluates l op r. Addition, subtraction and multiplication of two
// integers stay integral, any float operand widens the result. Division always
// yields a float.
func (op Op) Apply(l, r Value) (Value, error) {
	switch op {
	case OpAdd, OpSub, OpMul:
		if l.typ == TypeInt && r.typ == TypeInt {
			return applyInt(op, l.i, r.i)
		}
		lf, rf := l.Float(), r.Float()
		switch op {
		case OpAdd:
			return FloatValue(lf + rf), nil
		case OpSub:
			return FloatValue(lf - rf), nil
		default:
			return FloatValue(lf * rf), nil
		}
	case OpDiv:
		if r.Float() == 0 {
			return Value{}, ErrDivisionByZero
		}
		return FloatValue(l.Float() / r.Float()), nil
	}
	return Value{}, &UnknownOperatorError{Op: op}
}

func applyInt(op Op, l, r int64) (Value, error) {
	var res int64
	var overflow bool
	switch op {
	case OpAdd:
		res = l + r
		overflow = (r > 0 && res < l) || (r < 0 && res > l)
	case OpSub:
		res = l - r
		overflow = (r > 0 && res > l) || (r < 0 && res < l)
	default:
		res = l * r
		overflow = l != 0 && (res/l != r || (l == -1 && r == math.MinInt64))
	}
	if overflow {
		return Value{}, fmt.Errorf("%d %s %d: %w", l, op, r, ErrIntegerOverflow)
	}
	return IntValue(res), nil
}
