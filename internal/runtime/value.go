// Package runtime holds the value model and variable environment shared by
// the evaluator and the builtin function registry.
package runtime

import (
	"fmt"
	"strconv"
)

type ValueKind int

const (
	INT ValueKind = iota
	FLOAT
	STRING
	BOOL
	VOID
)

// Value is the evaluator's tagged union. The discriminant is set at
// construction and never inferred from field contents.
type Value struct {
	Kind  ValueKind
	Int   int64
	Float float64
	Str   string
	Bool  bool
}

func IntValue(v int64) Value {
	return Value{Kind: INT, Int: v}
}

func FloatValue(v float64) Value {
	return Value{Kind: FLOAT, Float: v}
}

func StringValue(v string) Value {
	return Value{Kind: STRING, Str: v}
}

func BoolValue(v bool) Value {
	return Value{Kind: BOOL, Bool: v}
}

func VoidValue() Value {
	return Value{Kind: VOID}
}

// String renders the value the way program output shows it: integers in
// decimal, floats with six fractional digits, booleans as true/false,
// strings verbatim.
func (v Value) String() string {
	switch v.Kind {
	case INT:
		return strconv.FormatInt(v.Int, 10)
	case FLOAT:
		return fmt.Sprintf("%f", v.Float)
	case STRING:
		return v.Str
	case BOOL:
		return strconv.FormatBool(v.Bool)
	default:
		return "void"
	}
}

// AsFloat widens numeric values for mixed-type arithmetic.
func (v Value) AsFloat() float64 {
	switch v.Kind {
	case INT:
		return float64(v.Int)
	case FLOAT:
		return v.Float
	case BOOL:
		if v.Bool {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// AsInt truncates toward an integer for comparisons on mixed types.
func (v Value) AsInt() int64 {
	switch v.Kind {
	case INT:
		return v.Int
	case FLOAT:
		return int64(v.Float)
	case BOOL:
		if v.Bool {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// IsTruthy is the condition coercion used by if/while and unary '!'.
func (v Value) IsTruthy() bool {
	switch v.Kind {
	case INT:
		return v.Int != 0
	case FLOAT:
		return v.Float != 0
	case STRING:
		return v.Str != ""
	case BOOL:
		return v.Bool
	default:
		return false
	}
}

// IsNumeric reports whether the value takes part in numeric promotion.
func (v Value) IsNumeric() bool {
	return v.Kind == INT || v.Kind == FLOAT
}
