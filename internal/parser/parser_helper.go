package parser

import "velvet/internal/ast"

func (p *Parser) advance() Token {
	tok := p.cur
	p.cur = p.sc.Next()
	return tok
}

func (p *Parser) check(tt TokenType) bool {
	return p.cur.Type == tt
}

func (p *Parser) match(tt TokenType) bool {
	if p.check(tt) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(tt TokenType, message string) Token {
	if p.check(tt) {
		return p.advance()
	}
	p.fail(message)
	return Token{} // unreachable, fail panics
}

func (p *Parser) isAtEnd() bool {
	return p.cur.Type == EOF
}

// fail records the structural violation and aborts the parse.
func (p *Parser) fail(message string) {
	p.errors = append(p.errors, ParseError{
		Message:  message,
		Position: p.cur.Position,
	})
	panic(bailout{})
}

func (p *Parser) makePos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column,
	}
}

func (p *Parser) makeEndPos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset + len(tok.Lexeme),
		Line:     tok.Position.Line,
		Column:   tok.Position.Column + len(tok.Lexeme),
	}
}

func (p *Parser) makeIdent(tok Token) ast.Ident {
	return ast.Ident{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Name:   tok.Lexeme,
	}
}
