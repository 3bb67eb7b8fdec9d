// Package ast SPDX-License-Identifier: Apache-2.0
package ast

// Program is the root of one compilation unit. Every subtree reachable from
// Stmts is owned exactly once; the tree is never shared or cyclic.
type Program struct {
	Pos    Position
	EndPos Position
	Stmts  []Stmt
}

// Block is a braced statement sequence.
type Block struct {
	Pos    Position
	EndPos Position
	Stmts  []Stmt
}

// VarDecl is a `bind`/`bindm` declaration in either dialect:
// `bind x as int = 1` (Vel) or `bindm x: int := 1` (Vex).
type VarDecl struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Mut    bool
	Type   *TypeRef // optional annotation, nil when omitted
	Value  Expr
}

// Assign stores into an existing (or fresh) variable. It appears both in
// statement position and inside expression chains.
type Assign struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Value  Expr
}

// FuncDecl declares a named function. The current grammar revision accepts
// no parameter syntax, so Params is always empty.
type FuncDecl struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Params []Ident
	Body   *Block
}

// FuncCall invokes a user function or a built-in by name.
type FuncCall struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Args   []Expr
}

type If struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Then   *Block
	Else   *Block // nil when no else branch
}

type While struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Body   *Block
}

// Do executes its body exactly once. The grammar has no trailing condition,
// which makes it equivalent to a plain block; it stays a distinct variant
// so a future condition syntax does not reshape the tree.
type Do struct {
	Pos    Position
	EndPos Position
	Body   *Block
}

type Literal struct {
	Pos    Position
	EndPos Position
	Value  LiteralValue
}

type Ident struct {
	Pos    Position
	EndPos Position
	Name   string
}

type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Left   Expr
	Right  Expr
}

type UnaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Value  Expr
}

// TypeCast is the postfix `expr@type` annotation. It carries no runtime
// coercion; the evaluator passes the inner value through unchanged.
type TypeCast struct {
	Pos    Position
	EndPos Position
	Value  Expr
	Target string
}

// TypeRef names a type in a declaration annotation (`int`, `i32`, `string`,
// `bool`, `float`, `any`, ...).
type TypeRef struct {
	Pos    Position
	EndPos Position
	Name   string
}
