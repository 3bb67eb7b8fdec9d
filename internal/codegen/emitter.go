// Package codegen lowers a checked program to a single C translation
// unit. It deliberately covers the integer-and-strings subset of the
// language; anything it cannot render faithfully is a hard error rather
// than silently wrong output.
package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"velvet/internal/ast"
)

type emitter struct {
	buf    strings.Builder
	indent int
}

// Emit renders the program as C source. User functions become void
// functions; top-level statements are gathered into a synthetic main.
func Emit(program *ast.Program) (string, error) {
	if program == nil {
		return "", fmt.Errorf("no program to compile")
	}

	e := &emitter{}
	e.line("#include <stdio.h>")
	e.line("#include <stdlib.h>")
	e.line("#include <string.h>")
	e.line("#include <math.h>")
	e.line("")

	var funcs []*ast.FuncDecl
	var top []ast.Stmt
	for _, stmt := range program.Stmts {
		if fn, ok := stmt.(*ast.FuncDecl); ok {
			funcs = append(funcs, fn)
		} else {
			top = append(top, stmt)
		}
	}

	for _, fn := range funcs {
		e.line("void %s(void);", fn.Name.Name)
	}
	if len(funcs) > 0 {
		e.line("")
	}

	for _, fn := range funcs {
		e.line("void %s(void) {", fn.Name.Name)
		e.indent++
		for _, stmt := range fn.Body.Stmts {
			if err := e.emitStmt(stmt); err != nil {
				return "", err
			}
		}
		e.indent--
		e.line("}")
		e.line("")
	}

	e.line("int main(void) {")
	e.indent++
	for _, stmt := range top {
		if err := e.emitStmt(stmt); err != nil {
			return "", err
		}
	}
	e.line("return 0;")
	e.indent--
	e.line("}")

	return e.buf.String(), nil
}

func (e *emitter) emitStmt(stmt ast.Stmt) error {
	switch n := stmt.(type) {
	case *ast.Block:
		for _, s := range n.Stmts {
			if err := e.emitStmt(s); err != nil {
				return err
			}
		}
		return nil

	case *ast.VarDecl:
		expr, err := e.renderExpr(n.Value)
		if err != nil {
			return err
		}
		e.line("int %s = %s;", n.Name.Name, expr)
		return nil

	case *ast.Assign:
		expr, err := e.renderExpr(n.Value)
		if err != nil {
			return err
		}
		e.line("%s = %s;", n.Name.Name, expr)
		return nil

	case *ast.If:
		cond, err := e.renderExpr(n.Cond)
		if err != nil {
			return err
		}
		e.line("if (%s) {", cond)
		e.indent++
		if err := e.emitStmt(n.Then); err != nil {
			return err
		}
		e.indent--
		if n.Else != nil {
			e.line("} else {")
			e.indent++
			if err := e.emitStmt(n.Else); err != nil {
				return err
			}
			e.indent--
		}
		e.line("}")
		return nil

	case *ast.While:
		cond, err := e.renderExpr(n.Cond)
		if err != nil {
			return err
		}
		e.line("while (%s) {", cond)
		e.indent++
		if err := e.emitStmt(n.Body); err != nil {
			return err
		}
		e.indent--
		e.line("}")
		return nil

	case *ast.Do:
		e.line("do {")
		e.indent++
		if err := e.emitStmt(n.Body); err != nil {
			return err
		}
		e.indent--
		e.line("} while (0);")
		return nil

	case *ast.FuncDecl:
		return e.unsupported(n, "nested function declarations")

	case *ast.FuncCall:
		return e.emitCall(n)

	case ast.Expr:
		expr, err := e.renderExpr(n)
		if err != nil {
			return err
		}
		e.line("%s;", expr)
		return nil

	default:
		return e.unsupported(stmt, stmt.NodeType().String())
	}
}

// emitCall translates print and println into printf and keeps every
// other call as a plain C call to a void function.
func (e *emitter) emitCall(call *ast.FuncCall) error {
	name := call.Name.Name

	if name == "println" || name == "print" {
		suffix := ""
		if name == "println" {
			suffix = "\\n"
		}
		if len(call.Args) == 0 {
			e.line(`printf("%s");`, suffix)
			return nil
		}
		if lit, ok := call.Args[0].(*ast.Literal); ok && lit.Value.Kind == ast.LIT_STRING {
			e.line(`printf("%%s%s", %s);`, suffix, strconv.Quote(lit.Value.Str))
			return nil
		}
		expr, err := e.renderExpr(call.Args[0])
		if err != nil {
			return err
		}
		e.line(`printf("%%d%s", %s);`, suffix, expr)
		return nil
	}

	if len(call.Args) > 0 {
		return e.unsupported(call, "calls with arguments")
	}
	e.line("%s();", name)
	return nil
}

func (e *emitter) renderExpr(expr ast.Expr) (string, error) {
	switch n := expr.(type) {
	case *ast.Literal:
		switch n.Value.Kind {
		case ast.LIT_INT:
			return strconv.FormatInt(n.Value.Int, 10), nil
		case ast.LIT_BOOL:
			if n.Value.Bool {
				return "1", nil
			}
			return "0", nil
		case ast.LIT_FLOAT:
			return "", e.unsupported(n, "float literals")
		default:
			return "", e.unsupported(n, "string values outside print")
		}

	case *ast.Ident:
		return n.Name, nil

	case *ast.BinaryExpr:
		left, err := e.renderExpr(n.Left)
		if err != nil {
			return "", err
		}
		right, err := e.renderExpr(n.Right)
		if err != nil {
			return "", err
		}
		switch n.Op {
		case "+", "-", "*", "/", "<", ">", "==", "!=":
			return fmt.Sprintf("(%s %s %s)", left, n.Op, right), nil
		default:
			return "", e.unsupported(n, fmt.Sprintf("the '%s' operator", n.Op))
		}

	case *ast.UnaryExpr:
		operand, err := e.renderExpr(n.Value)
		if err != nil {
			return "", err
		}
		switch n.Op {
		case "-", "!":
			return fmt.Sprintf("(%s%s)", n.Op, operand), nil
		default:
			return "", e.unsupported(n, fmt.Sprintf("the unary '%s' operator", n.Op))
		}

	case *ast.Assign:
		value, err := e.renderExpr(n.Value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s = %s)", n.Name.Name, value), nil

	case *ast.TypeCast:
		return "", e.unsupported(n, "type casts")

	case *ast.FuncCall:
		return "", e.unsupported(n, "calls in expression position")

	default:
		return "", e.unsupported(expr, expr.NodeType().String())
	}
}

func (e *emitter) unsupported(node ast.Node, what string) error {
	pos := node.NodePos()
	return fmt.Errorf("line %d: cannot generate C for %s", pos.Line, what)
}

func (e *emitter) line(format string, args ...interface{}) {
	e.buf.WriteString(strings.Repeat("    ", e.indent))
	fmt.Fprintf(&e.buf, format, args...)
	e.buf.WriteString("\n")
}
