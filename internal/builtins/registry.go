// Package builtins SPDX-License-Identifier: Apache-2.0
package builtins

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"

	"velvet/internal/runtime"
)

// Context carries the host resources a builtin may touch. The random
// source is injectable so tests stay deterministic.
type Context struct {
	Stdin  *bufio.Reader
	Stdout io.Writer
	Rand   *rand.Rand
}

func NewContext(stdin io.Reader, stdout io.Writer) *Context {
	return &Context{
		Stdin:  bufio.NewReader(stdin),
		Stdout: stdout,
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Func is a host-provided function. Arguments arrive already evaluated;
// builtins never see raw AST nodes.
type Func func(ctx *Context, args []runtime.Value) (runtime.Value, error)

// Registry is the name-indexed table of host functions callable from
// Velvet source without user declaration.
type Registry struct {
	funcs map[string]Func
}

// NewRegistry returns the standard function table.
func NewRegistry() *Registry {
	r := &Registry{funcs: make(map[string]Func)}

	r.register("println", stdPrintln)
	r.register("print", stdPrint)
	r.register("input", stdInput)
	r.register("random", stdRandom)
	r.register("sqrt", stdSqrt)
	r.register("pow", stdPow)
	r.register("len", stdLen)
	r.register("substr", stdSubstr)
	r.register("parse_int", stdParseInt)
	r.register("parse_float", stdParseFloat)
	r.register("to_string", stdToString)

	return r
}

func (r *Registry) register(name string, fn Func) {
	r.funcs[name] = fn
}

// IsBuiltin reports whether name resolves to a host function.
func (r *Registry) IsBuiltin(name string) bool {
	_, ok := r.funcs[name]
	return ok
}

// Call dispatches to a builtin by name.
func (r *Registry) Call(ctx *Context, name string, args []runtime.Value) (runtime.Value, error) {
	fn, ok := r.funcs[name]
	if !ok {
		return runtime.VoidValue(), fmt.Errorf("unknown function '%s'", name)
	}
	return fn(ctx, args)
}

// Names returns all builtin names in sorted order, for completion and
// documentation surfaces.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Standard library implementations. print and println render exactly their
// first argument; with no arguments println still emits the terminator.

func stdPrintln(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if len(args) > 0 {
		fmt.Fprint(ctx.Stdout, args[0].String())
	}
	fmt.Fprint(ctx.Stdout, "\n")
	return runtime.VoidValue(), nil
}

func stdPrint(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if len(args) > 0 {
		fmt.Fprint(ctx.Stdout, args[0].String())
	}
	return runtime.VoidValue(), nil
}

func stdInput(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	line, err := ctx.Stdin.ReadString('\n')
	if err != nil && line == "" {
		return runtime.StringValue(""), nil
	}
	return runtime.StringValue(strings.TrimRight(line, "\r\n")), nil
}

func stdRandom(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	bound := int64(100)
	if len(args) > 0 && args[0].Kind == runtime.INT {
		bound = args[0].Int
	}
	if bound <= 0 {
		return runtime.VoidValue(), fmt.Errorf("random: bound must be positive, got %d", bound)
	}
	return runtime.IntValue(ctx.Rand.Int63n(bound)), nil
}

func stdSqrt(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if len(args) < 1 || !args[0].IsNumeric() {
		return runtime.VoidValue(), fmt.Errorf("sqrt: expected a numeric argument")
	}
	return runtime.FloatValue(math.Sqrt(args[0].AsFloat())), nil
}

func stdPow(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if len(args) < 2 || !args[0].IsNumeric() || !args[1].IsNumeric() {
		return runtime.VoidValue(), fmt.Errorf("pow: expected two numeric arguments")
	}
	return runtime.FloatValue(math.Pow(args[0].AsFloat(), args[1].AsFloat())), nil
}

func stdLen(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if len(args) < 1 || args[0].Kind != runtime.STRING {
		return runtime.VoidValue(), fmt.Errorf("len: expected a string argument")
	}
	return runtime.IntValue(int64(len(args[0].Str))), nil
}

func stdSubstr(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if len(args) < 3 || args[0].Kind != runtime.STRING {
		return runtime.VoidValue(), fmt.Errorf("substr: expected (string, start, length)")
	}
	str := args[0].Str
	start := args[1].AsInt()
	length := args[2].AsInt()

	if start < 0 || start >= int64(len(str)) || length <= 0 {
		return runtime.StringValue(""), nil
	}
	end := start + length
	if end > int64(len(str)) {
		end = int64(len(str))
	}
	return runtime.StringValue(str[start:end]), nil
}

func stdParseInt(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if len(args) < 1 || args[0].Kind != runtime.STRING {
		return runtime.VoidValue(), fmt.Errorf("parse_int: expected a string argument")
	}
	// Unparsable text yields zero, like C's atoi.
	v, _ := strconv.ParseInt(strings.TrimSpace(args[0].Str), 10, 64)
	return runtime.IntValue(v), nil
}

func stdParseFloat(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if len(args) < 1 || args[0].Kind != runtime.STRING {
		return runtime.VoidValue(), fmt.Errorf("parse_float: expected a string argument")
	}
	v, _ := strconv.ParseFloat(strings.TrimSpace(args[0].Str), 64)
	return runtime.FloatValue(v), nil
}

func stdToString(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if len(args) < 1 {
		return runtime.StringValue(""), nil
	}
	return runtime.StringValue(args[0].String()), nil
}
