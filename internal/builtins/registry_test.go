package builtins

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velvet/internal/runtime"
)

func testContext(input string) (*Context, *bytes.Buffer) {
	var out bytes.Buffer
	ctx := NewContext(strings.NewReader(input), &out)
	ctx.Rand = rand.New(rand.NewSource(1))
	return ctx, &out
}

func callOK(t *testing.T, ctx *Context, name string, args ...runtime.Value) runtime.Value {
	t.Helper()
	result, err := NewRegistry().Call(ctx, name, args)
	require.NoError(t, err)
	return result
}

func TestIsBuiltin(t *testing.T) {
	r := NewRegistry()
	assert.True(t, r.IsBuiltin("println"))
	assert.True(t, r.IsBuiltin("substr"))
	assert.False(t, r.IsBuiltin("launch_missiles"))
}

func TestNamesSortedAndComplete(t *testing.T) {
	names := NewRegistry().Names()
	assert.Equal(t, []string{
		"input", "len", "parse_float", "parse_int", "pow",
		"print", "println", "random", "sqrt", "substr", "to_string",
	}, names)
}

func TestPrintlnFirstArgumentOnly(t *testing.T) {
	ctx, out := testContext("")
	callOK(t, ctx, "println", runtime.IntValue(7), runtime.IntValue(8))
	assert.Equal(t, "7\n", out.String(), "Only the first argument prints")
}

func TestPrintlnNoArguments(t *testing.T) {
	ctx, out := testContext("")
	callOK(t, ctx, "println")
	assert.Equal(t, "\n", out.String())
}

func TestPrintOmitsNewline(t *testing.T) {
	ctx, out := testContext("")
	callOK(t, ctx, "print", runtime.StringValue("abc"))
	assert.Equal(t, "abc", out.String())
}

func TestInputStripsLineEnding(t *testing.T) {
	ctx, _ := testContext("hello\nnext")
	result := callOK(t, ctx, "input")
	assert.Equal(t, runtime.StringValue("hello"), result)
}

func TestInputAtEOF(t *testing.T) {
	ctx, _ := testContext("")
	result := callOK(t, ctx, "input")
	assert.Equal(t, runtime.StringValue(""), result)
}

func TestRandomStaysBelowBound(t *testing.T) {
	ctx, _ := testContext("")
	for range [50]struct{}{} {
		result := callOK(t, ctx, "random", runtime.IntValue(10))
		assert.GreaterOrEqual(t, result.Int, int64(0))
		assert.Less(t, result.Int, int64(10))
	}
}

func TestRandomDefaultBound(t *testing.T) {
	ctx, _ := testContext("")
	result := callOK(t, ctx, "random")
	assert.Less(t, result.Int, int64(100))
}

func TestRandomRejectsNonPositiveBound(t *testing.T) {
	ctx, _ := testContext("")
	_, err := NewRegistry().Call(ctx, "random", []runtime.Value{runtime.IntValue(0)})
	assert.Error(t, err)
}

func TestSqrt(t *testing.T) {
	ctx, _ := testContext("")
	result := callOK(t, ctx, "sqrt", runtime.IntValue(9))
	assert.Equal(t, runtime.FloatValue(3), result)
}

func TestPow(t *testing.T) {
	ctx, _ := testContext("")
	result := callOK(t, ctx, "pow", runtime.IntValue(2), runtime.IntValue(10))
	assert.Equal(t, runtime.FloatValue(1024), result)
}

func TestLen(t *testing.T) {
	ctx, _ := testContext("")
	result := callOK(t, ctx, "len", runtime.StringValue("hello"))
	assert.Equal(t, runtime.IntValue(5), result)
}

func TestLenRejectsNonString(t *testing.T) {
	ctx, _ := testContext("")
	_, err := NewRegistry().Call(ctx, "len", []runtime.Value{runtime.IntValue(5)})
	assert.Error(t, err)
}

func TestSubstr(t *testing.T) {
	ctx, _ := testContext("")
	result := callOK(t, ctx, "substr",
		runtime.StringValue("hello"), runtime.IntValue(1), runtime.IntValue(3))
	assert.Equal(t, runtime.StringValue("ell"), result)
}

func TestSubstrOutOfRangeYieldsEmpty(t *testing.T) {
	ctx, _ := testContext("")
	result := callOK(t, ctx, "substr",
		runtime.StringValue("hi"), runtime.IntValue(9), runtime.IntValue(3))
	assert.Equal(t, runtime.StringValue(""), result)
}

func TestSubstrClampsLength(t *testing.T) {
	ctx, _ := testContext("")
	result := callOK(t, ctx, "substr",
		runtime.StringValue("hi"), runtime.IntValue(1), runtime.IntValue(99))
	assert.Equal(t, runtime.StringValue("i"), result)
}

func TestParseInt(t *testing.T) {
	ctx, _ := testContext("")
	assert.Equal(t, runtime.IntValue(42), callOK(t, ctx, "parse_int", runtime.StringValue("42")))
	assert.Equal(t, runtime.IntValue(0), callOK(t, ctx, "parse_int", runtime.StringValue("junk")),
		"Unparsable text yields zero")
}

func TestParseFloat(t *testing.T) {
	ctx, _ := testContext("")
	assert.Equal(t, runtime.FloatValue(3.5), callOK(t, ctx, "parse_float", runtime.StringValue("3.5")))
}

func TestToString(t *testing.T) {
	ctx, _ := testContext("")
	assert.Equal(t, runtime.StringValue("12"), callOK(t, ctx, "to_string", runtime.IntValue(12)))
	assert.Equal(t, runtime.StringValue("true"), callOK(t, ctx, "to_string", runtime.BoolValue(true)))
}

func TestCallUnknownName(t *testing.T) {
	ctx, _ := testContext("")
	_, err := NewRegistry().Call(ctx, "nope", nil)
	assert.Error(t, err)
}
