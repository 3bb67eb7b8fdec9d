package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velvet/internal/parser"
)

func emit(t *testing.T, source string) string {
	t.Helper()
	program, parseErrors, scanErrors := parser.ParseSource("test.vex", source)
	require.Empty(t, scanErrors)
	require.Empty(t, parseErrors)
	require.NotNil(t, program)

	output, err := Emit(program)
	require.NoError(t, err)
	return output
}

func emitError(t *testing.T, source string) error {
	t.Helper()
	program, _, _ := parser.ParseSource("test.vex", source)
	require.NotNil(t, program)
	_, err := Emit(program)
	require.Error(t, err)
	return err
}

func TestEmitPrelude(t *testing.T) {
	output := emit(t, `bind x = 1`)
	assert.Contains(t, output, "#include <stdio.h>")
	assert.Contains(t, output, "int main(void) {")
	assert.Contains(t, output, "return 0;")
}

func TestEmitDeclarationAsInt(t *testing.T) {
	output := emit(t, `bind x as int = 10`)
	assert.Contains(t, output, "int x = 10;")
}

func TestEmitAssignment(t *testing.T) {
	output := emit(t, `x = 1 + 2`)
	assert.Contains(t, output, "x = (1 + 2);")
}

func TestEmitForwardDeclarations(t *testing.T) {
	output := emit(t, `
fn tick() { counter = counter + 1 }
tick()
`)
	// The prototype appears before the definition, the call inside main.
	assert.Contains(t, output, "void tick(void);")
	assert.Contains(t, output, "void tick(void) {")
	assert.Contains(t, output, "tick();")
	assert.Less(t,
		strings.Index(output, "void tick(void);"),
		strings.Index(output, "void tick(void) {"))
}

func TestEmitTopLevelStatementsGoIntoMain(t *testing.T) {
	output := emit(t, `
fn noop() { x = 0 }
bind y = 1
`)
	mainStart := strings.Index(output, "int main(void) {")
	assert.Greater(t, strings.Index(output, "int y = 1;"), mainStart)
}

func TestEmitDoAsSingleShotLoop(t *testing.T) {
	output := emit(t, `do { x = 1 }`)
	assert.Contains(t, output, "do {")
	assert.Contains(t, output, "} while (0);")
}

func TestEmitWhile(t *testing.T) {
	output := emit(t, `while x < 3 { x = x + 1 }`)
	assert.Contains(t, output, "while ((x < 3)) {")
}

func TestEmitIfElse(t *testing.T) {
	output := emit(t, `if x == 1 { y = 2 } else { y = 3 }`)
	assert.Contains(t, output, "if ((x == 1)) {")
	assert.Contains(t, output, "} else {")
}

func TestEmitPrintln(t *testing.T) {
	output := emit(t, `println("hi")`)
	assert.Contains(t, output, `printf("%s\n", "hi");`)

	output = emit(t, `println(x + 1)`)
	assert.Contains(t, output, `printf("%d\n", (x + 1));`)
}

func TestEmitFlatChainGrouping(t *testing.T) {
	output := emit(t, `bind r = 2 + 3 * 4`)
	assert.Contains(t, output, "int r = ((2 + 3) * 4);",
		"Generated grouping must preserve left-to-right chaining")
}

func TestEmitFailsOnTypeCast(t *testing.T) {
	err := emitError(t, `bind x = 1@i32`)
	assert.Contains(t, err.Error(), "type casts")
}

func TestEmitFailsOnStringOutsidePrint(t *testing.T) {
	err := emitError(t, `bind s = "hello"`)
	assert.Contains(t, err.Error(), "string")
}

func TestEmitFailsOnLogicalOperators(t *testing.T) {
	err := emitError(t, `bind x = 1 && 1`)
	assert.Contains(t, err.Error(), "'&&'")
}
