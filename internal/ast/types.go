package ast

type NodeType int

//go:generate stringer -type=NodeType
const (
	ILLEGAL NodeType = iota

	// Structure
	PROGRAM
	BLOCK

	// Statements
	VAR_DECL
	ASSIGN
	FUNC_DECL
	IF_STMT
	WHILE_STMT
	DO_STMT

	// Expressions
	FUNC_CALL
	LITERAL
	IDENT
	BINARY_EXPR
	UNARY_EXPR
	TYPE_CAST

	// Types
	TYPE_REF
)

type Position struct {
	Filename string
	Offset   int // 0-based absolute index in input
	Line     int // 1-based
	Column   int // 1-based
}
