// Package parser SPDX-License-Identifier: Apache-2.0
package parser

import (
	"fmt"

	"velvet/internal/ast"
)

type ParseError struct {
	Message  string
	Position Position
}

// AstPosition converts the error location for diagnostic rendering.
func (e ParseError) AstPosition() ast.Position {
	return ast.Position{Offset: e.Position.Offset, Line: e.Position.Line, Column: e.Position.Column}
}

// AstPosition converts the error location for diagnostic rendering.
func (e ScanError) AstPosition() ast.Position {
	return ast.Position{Offset: e.Position.Offset, Line: e.Position.Line, Column: e.Position.Column}
}

// Parser consumes the scanner's token stream with one token of lookahead
// and produces one Program per input. Any expectation failure aborts the
// whole parse: the first ParseError is recorded and the program is nil.
type Parser struct {
	filename string
	sc       *Scanner
	cur      Token
	errors   []ParseError
}

// ParseSource parses a complete source buffer. A nil program together with
// a non-empty error list means the parse failed; the host decides whether
// that is fatal.
func ParseSource(filename string, source string) (*ast.Program, []ParseError, []ScanError) {
	sc := NewScanner(source)
	p := &Parser{filename: filename, sc: sc}
	p.advance()

	program := p.parseProgram()
	return program, p.errors, sc.Errors()
}

// bailout unwinds the parser on the first structural violation.
type bailout struct{}

func (p *Parser) parseProgram() (program *ast.Program) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); ok {
				program = nil
				return
			}
			panic(r)
		}
	}()

	start := p.cur
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		// Statement terminators are optional; stray ones are skipped.
		if p.match(SEMICOLON) {
			continue
		}
		stmts = append(stmts, p.parseStatement())
	}

	return &ast.Program{
		Pos:    p.makePos(start),
		EndPos: p.makePos(p.cur),
		Stmts:  stmts,
	}
}

func (p *Parser) parseStatement() ast.Stmt {
	switch p.cur.Type {
	case BIND, BINDM:
		return p.parseVarDecl()
	case FN:
		return p.parseFuncDecl()
	case IF:
		return p.parseIf()
	case WHILE:
		return p.parseWhile()
	case DO:
		return p.parseDo()
	case LEFT_BRACE:
		return p.parseBlock()
	default:
		return p.parseExpression()
	}
}

func (p *Parser) parseBlock() *ast.Block {
	open := p.expect(LEFT_BRACE, "expected '{'")

	var stmts []ast.Stmt
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		if p.match(SEMICOLON) {
			continue
		}
		stmts = append(stmts, p.parseStatement())
	}
	rbrace := p.expect(RIGHT_BRACE, "expected '}' to close block")

	return &ast.Block{
		Pos:    p.makePos(open),
		EndPos: p.makeEndPos(rbrace),
		Stmts:  stmts,
	}
}

// parseVarDecl handles both declaration dialects:
//
//	bind x as int = 10     (Vel: 'as' annotation)
//	bindm y: int := 20     (Vex: ':' annotation, ':=' inference)
//
// The annotation is optional either way; the initializer uses '=' unless
// the Vex ':=' form appears.
func (p *Parser) parseVarDecl() ast.Stmt {
	keyword := p.cur
	mut := p.cur.Type == BINDM
	p.advance()

	nameTok := p.expect(IDENTIFIER, "expected identifier after bind/bindm")
	name := p.makeIdent(nameTok)

	var typeRef *ast.TypeRef
	if p.check(AS) || p.check(COLON) {
		p.advance()
		// The annotation is tolerated as absent when no type name follows,
		// matching the reference grammar.
		if p.check(TYPE) || p.check(IDENTIFIER) {
			tok := p.advance()
			typeRef = &ast.TypeRef{
				Pos:    p.makePos(tok),
				EndPos: p.makeEndPos(tok),
				Name:   tok.Lexeme,
			}
		}
	}

	if !p.match(COLON_EQUAL) {
		p.expect(EQUAL, "expected '=' or ':=' in declaration")
	}

	value := p.parseExpression()

	return &ast.VarDecl{
		Pos:    p.makePos(keyword),
		EndPos: value.NodeEndPos(),
		Name:   name,
		Mut:    mut,
		Type:   typeRef,
		Value:  value,
	}
}

func (p *Parser) parseIf() ast.Stmt {
	keyword := p.advance()
	cond := p.parseExpression()
	then := p.parseBlock()

	var elseBlock *ast.Block
	if p.match(ELSE) {
		elseBlock = p.parseBlock()
	}

	end := then.EndPos
	if elseBlock != nil {
		end = elseBlock.EndPos
	}

	return &ast.If{
		Pos:    p.makePos(keyword),
		EndPos: end,
		Cond:   cond,
		Then:   then,
		Else:   elseBlock,
	}
}

func (p *Parser) parseWhile() ast.Stmt {
	keyword := p.advance()
	cond := p.parseExpression()
	body := p.parseBlock()

	return &ast.While{
		Pos:    p.makePos(keyword),
		EndPos: body.EndPos,
		Cond:   cond,
		Body:   body,
	}
}

// parseDo accepts `do { ... }` with no trailing condition; the body runs
// exactly once.
func (p *Parser) parseDo() ast.Stmt {
	keyword := p.advance()
	body := p.parseBlock()

	return &ast.Do{
		Pos:    p.makePos(keyword),
		EndPos: body.EndPos,
		Body:   body,
	}
}

// parseFuncDecl parses `fn name() { ... }`. This grammar revision accepts
// no parameter syntax; the list between the parentheses must be empty.
func (p *Parser) parseFuncDecl() ast.Stmt {
	keyword := p.advance()

	nameTok := p.expect(IDENTIFIER, "expected identifier after fn")
	name := p.makeIdent(nameTok)

	p.expect(LEFT_PAREN, "expected '(' after function name")
	p.expect(RIGHT_PAREN, "expected ')' after function name")

	body := p.parseBlock()

	return &ast.FuncDecl{
		Pos:    p.makePos(keyword),
		EndPos: body.EndPos,
		Name:   name,
		Body:   body,
	}
}

// chainOperators are the tokens that extend a flat expression chain. There
// is deliberately no precedence table: `a + b * c` combines strictly left
// to right as `(a + b) * c`.
func isChainOperator(t TokenType) bool {
	switch t {
	case PLUS, MINUS, STAR, SLASH, LESS, GREATER,
		EQUAL_EQUAL, BANG_EQUAL, AND, OR, BANG, EQUAL:
		return true
	default:
		return false
	}
}

func (p *Parser) parseExpression() ast.Expr {
	left := p.parsePrimary()

	for isChainOperator(p.cur.Type) {
		if p.cur.Type == EQUAL {
			// Assignment is right-associative and only targets identifiers.
			target, ok := left.(*ast.Ident)
			if !ok {
				p.fail("left side of assignment must be an identifier")
			}
			p.advance()
			right := p.parseExpression()
			left = &ast.Assign{
				Pos:    target.Pos,
				EndPos: right.NodeEndPos(),
				Name:   *target,
				Value:  right,
			}
			continue
		}

		op := p.advance()
		right := p.parsePrimary()
		left = &ast.BinaryExpr{
			Pos:    left.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     op.Lexeme,
			Left:   left,
			Right:  right,
		}
	}

	// Trailing cast annotates the whole chain: `a + b@int`.
	if p.check(AT) {
		return p.parseTypeCast(left)
	}

	return left
}

func (p *Parser) parseTypeCast(value ast.Expr) ast.Expr {
	p.advance() // '@'
	if !p.check(IDENTIFIER) && !p.check(TYPE) {
		p.fail("expected type name after '@'")
	}
	target := p.advance()

	return &ast.TypeCast{
		Pos:    value.NodePos(),
		EndPos: p.makeEndPos(target),
		Value:  value,
		Target: target.Lexeme,
	}
}

func (p *Parser) parsePrimary() ast.Expr {
	switch p.cur.Type {
	case NUMBER:
		tok := p.advance()
		lit := &ast.Literal{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Value:  ast.IntValue(tok.Int),
		}
		// A cast directly after a number binds to the literal itself.
		if p.check(AT) {
			return p.parseTypeCast(lit)
		}
		return lit

	case STRING:
		tok := p.advance()
		return &ast.Literal{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Value:  ast.StringValue(tok.Lexeme),
		}

	case IDENTIFIER:
		tok := p.advance()
		name := p.makeIdent(tok)

		if p.match(LEFT_PAREN) {
			var args []ast.Expr
			if !p.check(RIGHT_PAREN) {
				for {
					args = append(args, p.parseExpression())
					if !p.match(COMMA) {
						break
					}
				}
			}
			rparen := p.expect(RIGHT_PAREN, "expected ')' after arguments")
			return &ast.FuncCall{
				Pos:    name.Pos,
				EndPos: p.makeEndPos(rparen),
				Name:   name,
				Args:   args,
			}
		}

		return &name

	default:
		p.fail(fmt.Sprintf("unexpected token in expression: %s", p.cur.Type))
		return nil // unreachable, fail panics
	}
}
