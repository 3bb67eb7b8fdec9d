package typecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velvet/internal/errors"
	"velvet/internal/parser"
)

func check(t *testing.T, source string) ([]errors.CompilerError, bool) {
	t.Helper()
	program, parseErrors, scanErrors := parser.ParseSource("test.vex", source)
	require.Empty(t, scanErrors)
	require.Empty(t, parseErrors)
	require.NotNil(t, program)
	return Check(program)
}

func TestCleanProgramHasNoDiagnostics(t *testing.T) {
	diags, ok := check(t, `
bind x as int = 10
if 1 < 2 { println("small") }
`)
	assert.True(t, ok)
	assert.Empty(t, diags)
}

func TestNonBooleanIfCondition(t *testing.T) {
	diags, ok := check(t, `if 42 { println("hm") }`)
	assert.False(t, ok)
	require.Len(t, diags, 1)
	assert.Equal(t, errors.ErrorNonBooleanCondition, diags[0].Code)
	assert.Contains(t, diags[0].Message, "if condition has type int")
}

func TestNonBooleanWhileCondition(t *testing.T) {
	diags, ok := check(t, `while "loop" { println("hm") }`)
	assert.False(t, ok)
	require.Len(t, diags, 1)
	assert.Equal(t, errors.ErrorNonBooleanCondition, diags[0].Code)
	assert.Contains(t, diags[0].Message, "while condition")
}

func TestComparisonConditionIsBoolean(t *testing.T) {
	diags, ok := check(t, `while x < 10 { x = x + 1 }`)
	assert.True(t, ok, "Comparisons infer as bool: %v", diags)
}

// Identifier and call types are not tracked; unknown never flags.
func TestUnknownTypesStaySilent(t *testing.T) {
	_, ok := check(t, `
bind flag = 42
if flag { println("maybe") }
if parse_int("1") { println("maybe") }
`)
	assert.True(t, ok)
}

func TestEqualityConditionIsBoolean(t *testing.T) {
	_, ok := check(t, `if 1 == 1 { println("eq") }`)
	assert.True(t, ok)
}

func TestStringConcatInfersString(t *testing.T) {
	diags, ok := check(t, `if "a" + 1 { println("hm") }`)
	assert.False(t, ok)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "type string")
}

// A cast is an annotation; the checker types the value underneath it.
func TestCastDoesNotChangeInferredType(t *testing.T) {
	diags, ok := check(t, `if 1@bool { println("hm") }`)
	assert.False(t, ok)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "type int")
}

func TestConditionsInsideNestedBodies(t *testing.T) {
	diags, ok := check(t, `
fn loop() {
    while 1 { println("spin") }
}
`)
	assert.False(t, ok)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "while condition")
}

func TestDiagnosticsAreAdvisoryWarnings(t *testing.T) {
	diags, _ := check(t, `if 1 { println("hm") }`)
	require.Len(t, diags, 1)
	assert.Equal(t, errors.Warning, diags[0].Level)
}

func TestNilProgramIsClean(t *testing.T) {
	diags, ok := Check(nil)
	assert.True(t, ok)
	assert.Empty(t, diags)
}
