// Package eval walks the AST directly. There is no intermediate form:
// every statement node is executed in place against a flat environment,
// and runtime faults are reported and swallowed so a script keeps going.
package eval

import (
	"fmt"
	"io"

	"velvet/internal/ast"
	"velvet/internal/builtins"
	"velvet/internal/runtime"
)

// Interpreter executes one program against one environment. Build a
// fresh Interpreter per run; the REPL keeps a single one alive so
// bindings persist between lines.
type Interpreter struct {
	env      *runtime.Environment
	funcs    map[string]*ast.FuncDecl
	registry *builtins.Registry
	ctx      *builtins.Context

	Stderr io.Writer
}

func NewInterpreter(stdin io.Reader, stdout, stderr io.Writer) *Interpreter {
	return &Interpreter{
		env:      runtime.NewEnvironment(),
		funcs:    make(map[string]*ast.FuncDecl),
		registry: builtins.NewRegistry(),
		ctx:      builtins.NewContext(stdin, stdout),
		Stderr:   stderr,
	}
}

// Env exposes the variable environment for inspection in tests and the
// REPL's session introspection.
func (i *Interpreter) Env() *runtime.Environment {
	return i.env
}

// Run executes every top-level statement in order. Runtime faults are
// reported to Stderr and evaluation continues with the next statement.
func (i *Interpreter) Run(program *ast.Program) {
	if program == nil {
		return
	}
	for _, stmt := range program.Stmts {
		i.eval(stmt)
	}
}

func (i *Interpreter) eval(node ast.Node) runtime.Value {
	switch n := node.(type) {
	case *ast.Program:
		for _, stmt := range n.Stmts {
			i.eval(stmt)
		}
		return runtime.VoidValue()

	case *ast.Block:
		for _, stmt := range n.Stmts {
			i.eval(stmt)
		}
		return runtime.VoidValue()

	case *ast.VarDecl:
		value := i.eval(n.Value)
		i.env.Set(n.Name.Name, value)
		return runtime.VoidValue()

	case *ast.Assign:
		value := i.eval(n.Value)
		i.env.Set(n.Name.Name, value)
		return value

	case *ast.FuncDecl:
		i.funcs[n.Name.Name] = n
		return runtime.VoidValue()

	case *ast.If:
		if i.eval(n.Cond).IsTruthy() {
			i.eval(n.Then)
		} else if n.Else != nil {
			i.eval(n.Else)
		}
		return runtime.VoidValue()

	case *ast.While:
		for i.eval(n.Cond).IsTruthy() {
			i.eval(n.Body)
		}
		return runtime.VoidValue()

	case *ast.Do:
		i.eval(n.Body)
		return runtime.VoidValue()

	case *ast.FuncCall:
		return i.evalCall(n)

	case *ast.Literal:
		return literalValue(n.Value)

	case *ast.Ident:
		value, ok := i.env.Get(n.Name)
		if !ok {
			i.reportf("undefined variable '%s'", n.Name)
			return runtime.VoidValue()
		}
		return value

	case *ast.BinaryExpr:
		return i.evalBinary(n)

	case *ast.UnaryExpr:
		return i.evalUnary(n)

	case *ast.TypeCast:
		// Casts are annotations: the inner value passes through untouched.
		return i.eval(n.Value)

	default:
		i.reportf("cannot evaluate %s node", node.NodeType())
		return runtime.VoidValue()
	}
}

func literalValue(lit ast.LiteralValue) runtime.Value {
	switch lit.Kind {
	case ast.LIT_INT:
		return runtime.IntValue(lit.Int)
	case ast.LIT_FLOAT:
		return runtime.FloatValue(lit.Float)
	case ast.LIT_STRING:
		return runtime.StringValue(lit.Str)
	default:
		return runtime.BoolValue(lit.Bool)
	}
}

// evalCall resolves user functions before builtins, so a script can
// shadow a standard name with its own definition.
func (i *Interpreter) evalCall(call *ast.FuncCall) runtime.Value {
	args := make([]runtime.Value, 0, len(call.Args))
	for _, arg := range call.Args {
		args = append(args, i.eval(arg))
	}

	if fn, ok := i.funcs[call.Name.Name]; ok {
		i.eval(fn.Body)
		return runtime.VoidValue()
	}

	if i.registry.IsBuiltin(call.Name.Name) {
		result, err := i.registry.Call(i.ctx, call.Name.Name, args)
		if err != nil {
			i.reportf("%s", err)
			return runtime.VoidValue()
		}
		return result
	}

	i.reportf("undefined function '%s'", call.Name.Name)
	return runtime.VoidValue()
}

func (i *Interpreter) evalBinary(expr *ast.BinaryExpr) runtime.Value {
	left := i.eval(expr.Left)
	right := i.eval(expr.Right)

	switch expr.Op {
	case "+":
		return i.evalAdd(left, right)
	case "-":
		return i.evalArith(left, right, expr.Op)
	case "*":
		return i.evalArith(left, right, expr.Op)
	case "/":
		return i.evalDivide(left, right)
	case "<":
		return i.evalCompare(left, right, expr.Op)
	case ">":
		return i.evalCompare(left, right, expr.Op)
	case "==":
		return runtime.BoolValue(valuesEqual(left, right))
	case "!=":
		return runtime.BoolValue(!valuesEqual(left, right))
	default:
		i.reportf("unknown operator '%s'", expr.Op)
		return runtime.VoidValue()
	}
}

// evalAdd is the one operator with a string path: when either side is a
// string the other is rendered and the two are concatenated.
func (i *Interpreter) evalAdd(left, right runtime.Value) runtime.Value {
	if left.Kind == runtime.STRING || right.Kind == runtime.STRING {
		return runtime.StringValue(left.String() + right.String())
	}
	if left.Kind == runtime.FLOAT || right.Kind == runtime.FLOAT {
		return runtime.FloatValue(left.AsFloat() + right.AsFloat())
	}
	return runtime.IntValue(left.AsInt() + right.AsInt())
}

func (i *Interpreter) evalArith(left, right runtime.Value, op string) runtime.Value {
	if left.Kind == runtime.STRING || right.Kind == runtime.STRING {
		i.reportf("unknown operator '%s' for strings", op)
		return runtime.VoidValue()
	}
	if left.Kind == runtime.FLOAT || right.Kind == runtime.FLOAT {
		a, b := left.AsFloat(), right.AsFloat()
		if op == "-" {
			return runtime.FloatValue(a - b)
		}
		return runtime.FloatValue(a * b)
	}
	a, b := left.AsInt(), right.AsInt()
	if op == "-" {
		return runtime.IntValue(a - b)
	}
	return runtime.IntValue(a * b)
}

// evalDivide checks for zero only on the integer path; float division
// follows IEEE semantics.
func (i *Interpreter) evalDivide(left, right runtime.Value) runtime.Value {
	if left.Kind == runtime.STRING || right.Kind == runtime.STRING {
		i.reportf("unknown operator '/' for strings")
		return runtime.VoidValue()
	}
	if left.Kind == runtime.FLOAT || right.Kind == runtime.FLOAT {
		return runtime.FloatValue(left.AsFloat() / right.AsFloat())
	}
	divisor := right.AsInt()
	if divisor == 0 {
		i.reportf("division by zero")
		return runtime.VoidValue()
	}
	return runtime.IntValue(left.AsInt() / divisor)
}

// evalCompare orders floats as floats and everything else after integer
// truncation, so mixed and non-numeric operands still produce a bool.
func (i *Interpreter) evalCompare(left, right runtime.Value, op string) runtime.Value {
	if left.Kind == runtime.FLOAT && right.Kind == runtime.FLOAT {
		if op == "<" {
			return runtime.BoolValue(left.Float < right.Float)
		}
		return runtime.BoolValue(left.Float > right.Float)
	}
	a, b := left.AsInt(), right.AsInt()
	if op == "<" {
		return runtime.BoolValue(a < b)
	}
	return runtime.BoolValue(a > b)
}

func valuesEqual(left, right runtime.Value) bool {
	if left.Kind == runtime.STRING && right.Kind == runtime.STRING {
		return left.Str == right.Str
	}
	if left.Kind == runtime.STRING || right.Kind == runtime.STRING {
		return false
	}
	if left.Kind == runtime.FLOAT && right.Kind == runtime.FLOAT {
		return left.Float == right.Float
	}
	return left.AsInt() == right.AsInt()
}

func (i *Interpreter) evalUnary(expr *ast.UnaryExpr) runtime.Value {
	operand := i.eval(expr.Value)

	switch expr.Op {
	case "-":
		switch operand.Kind {
		case runtime.INT:
			return runtime.IntValue(-operand.Int)
		case runtime.FLOAT:
			return runtime.FloatValue(-operand.Float)
		default:
			i.reportf("cannot negate a %s value", kindName(operand.Kind))
			return runtime.VoidValue()
		}
	case "!":
		return runtime.BoolValue(!operand.IsTruthy())
	default:
		i.reportf("unknown operator '%s'", expr.Op)
		return runtime.VoidValue()
	}
}

func kindName(kind runtime.ValueKind) string {
	switch kind {
	case runtime.INT:
		return "int"
	case runtime.FLOAT:
		return "float"
	case runtime.STRING:
		return "string"
	case runtime.BOOL:
		return "bool"
	default:
		return "void"
	}
}

func (i *Interpreter) reportf(format string, args ...interface{}) {
	fmt.Fprintf(i.Stderr, "Error: %s\n", fmt.Sprintf(format, args...))
}
