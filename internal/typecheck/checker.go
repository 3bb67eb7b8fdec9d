// Package typecheck runs a best-effort static pass over the AST. It never
// blocks evaluation: its diagnostics are advisory, aimed at editors and
// the CLI's pre-run report.
package typecheck

import (
	"fmt"

	"velvet/internal/ast"
	"velvet/internal/errors"
)

// Checker infers coarse static types for literal-rooted expressions and
// flags conditions that can never be boolean. Variable and call result
// types are not tracked (always unknown), so most real errors go
// undetected; this is an intentional current limitation, not an
// oversight to paper over.
type Checker struct {
	diags []errors.CompilerError
}

// Check walks the program and returns its diagnostics. The second
// result reports whether the program is clean.
func Check(program *ast.Program) ([]errors.CompilerError, bool) {
	c := &Checker{}
	if program != nil {
		for _, stmt := range program.Stmts {
			c.checkStmt(stmt)
		}
	}
	return c.diags, len(c.diags) == 0
}

func (c *Checker) checkStmt(stmt ast.Stmt) {
	switch n := stmt.(type) {
	case *ast.Block:
		for _, s := range n.Stmts {
			c.checkStmt(s)
		}

	case *ast.FuncDecl:
		c.checkStmt(n.Body)

	case *ast.If:
		c.checkCondition(n.Cond, "if")
		c.checkStmt(n.Then)
		if n.Else != nil {
			c.checkStmt(n.Else)
		}

	case *ast.While:
		c.checkCondition(n.Cond, "while")
		c.checkStmt(n.Body)

	case *ast.Do:
		c.checkStmt(n.Body)
	}
}

func (c *Checker) checkCondition(cond ast.Expr, construct string) {
	t := inferType(cond)
	if t != "bool" && t != "unknown" {
		c.diags = append(c.diags, errors.NewWarning(
			errors.ErrorNonBooleanCondition,
			fmt.Sprintf("%s condition has type %s, not bool", construct, t),
			cond.NodePos()).
			WithNote("non-boolean conditions are coerced by truthiness at run time").
			WithHelp("compare explicitly, e.g. 'x != 0'"))
	}
}

// inferType returns one of int, float, string, bool, or unknown when
// the expression's type cannot be decided without running it.
func inferType(expr ast.Expr) string {
	switch n := expr.(type) {
	case *ast.Literal:
		switch n.Value.Kind {
		case ast.LIT_INT:
			return "int"
		case ast.LIT_FLOAT:
			return "float"
		case ast.LIT_STRING:
			return "string"
		default:
			return "bool"
		}

	case *ast.BinaryExpr:
		return inferBinary(n)

	case *ast.UnaryExpr:
		if n.Op == "!" {
			return "bool"
		}
		return inferType(n.Value)

	case *ast.TypeCast:
		// Annotation only; the value's type is the inner expression's.
		return inferType(n.Value)

	case *ast.Assign:
		return inferType(n.Value)

	default:
		// Identifiers and calls: not tracked.
		return "unknown"
	}
}

func inferBinary(expr *ast.BinaryExpr) string {
	left := inferType(expr.Left)
	right := inferType(expr.Right)

	switch expr.Op {
	case "<", ">", "==", "!=", "&&", "||":
		return "bool"
	case "+":
		if left == "string" || right == "string" {
			return "string"
		}
		return numericResult(left, right)
	case "-", "*", "/":
		return numericResult(left, right)
	default:
		return "unknown"
	}
}

func numericResult(left, right string) string {
	if left == "unknown" || right == "unknown" {
		return "unknown"
	}
	if left == "float" || right == "float" {
		return "float"
	}
	if left == "int" && right == "int" {
		return "int"
	}
	return "unknown"
}
