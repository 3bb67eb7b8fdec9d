package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velvet/internal/ast"
)

func parseOK(t *testing.T, source string) *ast.Program {
	t.Helper()
	program, parseErrors, scanErrors := ParseSource("test.vex", source)
	require.Empty(t, scanErrors, "Should have no scan errors")
	require.Empty(t, parseErrors, "Should have no parse errors")
	require.NotNil(t, program)
	return program
}

func TestParseVelDeclaration(t *testing.T) {
	program := parseOK(t, `bind x as int = 10`)
	require.Len(t, program.Stmts, 1)

	decl, ok := program.Stmts[0].(*ast.VarDecl)
	require.True(t, ok, "Statement should be a declaration")
	assert.Equal(t, "x", decl.Name.Name)
	assert.False(t, decl.Mut)
	require.NotNil(t, decl.Type)
	assert.Equal(t, "int", decl.Type.Name)

	lit, ok := decl.Value.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, ast.LIT_INT, lit.Value.Kind)
	assert.Equal(t, int64(10), lit.Value.Int)
}

func TestParseVexDeclaration(t *testing.T) {
	program := parseOK(t, `bindm y: int := 20`)
	require.Len(t, program.Stmts, 1)

	decl, ok := program.Stmts[0].(*ast.VarDecl)
	require.True(t, ok)
	assert.Equal(t, "y", decl.Name.Name)
	assert.True(t, decl.Mut)
	require.NotNil(t, decl.Type)
	assert.Equal(t, "int", decl.Type.Name)
}

func TestParseDeclarationWithoutAnnotation(t *testing.T) {
	program := parseOK(t, `bind x = 1`)
	decl := program.Stmts[0].(*ast.VarDecl)
	assert.Nil(t, decl.Type, "Annotation should be optional")
}

// The grammar has no precedence table: chains combine strictly left to
// right, so `2 + 3 * 4` parses as `(2 + 3) * 4`.
func TestParseFlatLeftAssociativeChain(t *testing.T) {
	program := parseOK(t, `bind r = 2 + 3 * 4`)
	decl := program.Stmts[0].(*ast.VarDecl)

	outer, ok := decl.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "*", outer.Op, "Outermost node should be the last operator")

	inner, ok := outer.Left.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "+", inner.Op)

	rightLit := outer.Right.(*ast.Literal)
	assert.Equal(t, int64(4), rightLit.Value.Int)
}

func TestParseAssignmentRightAssociative(t *testing.T) {
	program := parseOK(t, `a = b = 1`)
	require.Len(t, program.Stmts, 1)

	outer, ok := program.Stmts[0].(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "a", outer.Name.Name)

	inner, ok := outer.Value.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "b", inner.Name.Name)
}

func TestParseAssignmentTargetMustBeIdentifier(t *testing.T) {
	program, parseErrors, _ := ParseSource("test.vex", `1 + 2 = 3`)
	assert.Nil(t, program, "Parse should fail")
	require.NotEmpty(t, parseErrors)
	assert.Contains(t, parseErrors[0].Message, "left side of assignment")
}

func TestParseIfElse(t *testing.T) {
	program := parseOK(t, `if 1 < 2 { println("yes") } else { println("no") }`)
	require.Len(t, program.Stmts, 1)

	stmt, ok := program.Stmts[0].(*ast.If)
	require.True(t, ok)
	require.NotNil(t, stmt.Else)

	cond, ok := stmt.Cond.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "<", cond.Op)
	require.Len(t, stmt.Then.Stmts, 1)

	call, ok := stmt.Then.Stmts[0].(*ast.FuncCall)
	require.True(t, ok)
	assert.Equal(t, "println", call.Name.Name)
}

func TestParseWhile(t *testing.T) {
	program := parseOK(t, `while x < 3 { x = x + 1 }`)
	stmt, ok := program.Stmts[0].(*ast.While)
	require.True(t, ok)
	require.Len(t, stmt.Body.Stmts, 1)
}

func TestParseDoRunsBodyOnce(t *testing.T) {
	program := parseOK(t, `do { println("once") }`)
	stmt, ok := program.Stmts[0].(*ast.Do)
	require.True(t, ok)
	require.Len(t, stmt.Body.Stmts, 1)
}

func TestParseFuncDeclEmptyParams(t *testing.T) {
	program := parseOK(t, `fn greet() { println("hi") }`)
	fn, ok := program.Stmts[0].(*ast.FuncDecl)
	require.True(t, ok)
	assert.Equal(t, "greet", fn.Name.Name)
	assert.Empty(t, fn.Params, "Parameter lists parse as empty")
}

func TestParseCallWithArguments(t *testing.T) {
	program := parseOK(t, `substr("hello", 1, 3)`)
	call, ok := program.Stmts[0].(*ast.FuncCall)
	require.True(t, ok)
	require.Len(t, call.Args, 3)

	first := call.Args[0].(*ast.Literal)
	assert.Equal(t, ast.LIT_STRING, first.Value.Kind)
	assert.Equal(t, "hello", first.Value.Str)
}

func TestParseTightCastOnNumber(t *testing.T) {
	program := parseOK(t, `bind x = 1@i32 + 2`)
	decl := program.Stmts[0].(*ast.VarDecl)

	// The cast binds to the literal, then the chain continues.
	chain, ok := decl.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	cast, ok := chain.Left.(*ast.TypeCast)
	require.True(t, ok)
	assert.Equal(t, "i32", cast.Target)
}

func TestParseTrailingCastWrapsChain(t *testing.T) {
	program := parseOK(t, `bind x = a + b@float`)
	decl := program.Stmts[0].(*ast.VarDecl)

	cast, ok := decl.Value.(*ast.TypeCast)
	require.True(t, ok, "Trailing cast should wrap the whole chain")
	assert.Equal(t, "float", cast.Target)

	_, ok = cast.Value.(*ast.BinaryExpr)
	assert.True(t, ok)
}

func TestParseSemicolonSeparators(t *testing.T) {
	program := parseOK(t, `bind x = 10; bindm y = 20; x = x + y; println(x);`)
	assert.Len(t, program.Stmts, 4)
}

func TestParseFailureReturnsNilProgram(t *testing.T) {
	program, parseErrors, _ := ParseSource("test.vex", `bind = 10`)
	assert.Nil(t, program, "First expectation failure aborts the parse")
	require.Len(t, parseErrors, 1)
	assert.Contains(t, parseErrors[0].Message, "expected identifier")
}

func TestParseNoParenthesizedExpressions(t *testing.T) {
	program, parseErrors, _ := ParseSource("test.vex", `bind x = (1 + 2)`)
	assert.Nil(t, program, "Grouping parentheses are not part of the grammar")
	assert.NotEmpty(t, parseErrors)
}

// Every reachable node carries a position and non-nil required children.
func TestParsedTreeShape(t *testing.T) {
	program := parseOK(t, `
fn tick() { counter = counter + 1 }
bindm counter: int := 0
while counter < 3 { tick() }
if counter == 3 { println("done") }
do { println(counter) }
`)
	require.Len(t, program.Stmts, 5)
	var walk func(node ast.Node)
	walk = func(node ast.Node) {
		require.NotNil(t, node)
		assert.NotZero(t, node.NodePos().Line, "%s should carry a position", node.NodeType())
		switch n := node.(type) {
		case *ast.Program:
			for _, s := range n.Stmts {
				walk(s)
			}
		case *ast.Block:
			for _, s := range n.Stmts {
				walk(s)
			}
		case *ast.VarDecl:
			walk(n.Value)
		case *ast.FuncDecl:
			walk(n.Body)
		case *ast.While:
			walk(n.Cond)
			walk(n.Body)
		case *ast.If:
			walk(n.Cond)
			walk(n.Then)
			if n.Else != nil {
				walk(n.Else)
			}
		case *ast.Do:
			walk(n.Body)
		case *ast.Assign:
			walk(n.Value)
		case *ast.BinaryExpr:
			walk(n.Left)
			walk(n.Right)
		case *ast.FuncCall:
			for _, arg := range n.Args {
				walk(arg)
			}
		}
	}
	walk(program)
}
