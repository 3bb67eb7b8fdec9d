package ast

import (
	"fmt"
	"strconv"
)

// LiteralKind discriminates the payload of a Literal node. The kind is fixed
// at construction; consumers must never infer it from field contents.
type LiteralKind int

const (
	LIT_INT LiteralKind = iota
	LIT_FLOAT
	LIT_STRING
	LIT_BOOL
)

// LiteralValue is the tagged payload carried by a Literal node.
type LiteralValue struct {
	Kind  LiteralKind
	Int   int64
	Float float64
	Str   string
	Bool  bool
}

func IntValue(v int64) LiteralValue {
	return LiteralValue{Kind: LIT_INT, Int: v}
}

func FloatValue(v float64) LiteralValue {
	return LiteralValue{Kind: LIT_FLOAT, Float: v}
}

func StringValue(v string) LiteralValue {
	return LiteralValue{Kind: LIT_STRING, Str: v}
}

func BoolValue(v bool) LiteralValue {
	return LiteralValue{Kind: LIT_BOOL, Bool: v}
}

func (lv LiteralValue) String() string {
	switch lv.Kind {
	case LIT_INT:
		return strconv.FormatInt(lv.Int, 10)
	case LIT_FLOAT:
		return fmt.Sprintf("%f", lv.Float)
	case LIT_STRING:
		return fmt.Sprintf("%q", lv.Str)
	case LIT_BOOL:
		return strconv.FormatBool(lv.Bool)
	default:
		return "<invalid literal>"
	}
}
