package parser

import (
	"fmt"
	"strconv"
	"unicode"
)

type Token struct {
	Type     TokenType
	Lexeme   string
	Int      int64 // numeric payload, set for NUMBER tokens
	Position Position
}

// Scanner produces tokens one at a time; no token list is materialized.
// Once the input is exhausted, Next keeps returning the EOF token.
// Restart by constructing a fresh Scanner over a new buffer.
type Scanner struct {
	source      string
	current     int
	line        int
	column      int
	start       int
	startLine   int
	startColumn int
	errors      []ScanError
}

type ScanError struct {
	Message  string
	Position Position // line, column, offset
	Length   int      // how many characters it covers
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

// Errors returns the scan errors collected so far. The list grows as the
// consumer pulls tokens, so read it only after scanning is done.
func (s *Scanner) Errors() []ScanError {
	return s.errors
}

// Next returns the next token and advances the cursor. Whitespace and all
// three comment forms (`//`, `/* */`, `;;`) are skipped before every token.
func (s *Scanner) Next() Token {
	for {
		s.skipWhitespaceAndComments()
		s.start = s.current
		s.startLine = s.line
		s.startColumn = s.column

		if s.isAtEnd() {
			return Token{Type: EOF, Position: s.startPos()}
		}

		c := s.peek()
		switch {
		case isAlpha(c):
			return s.scanIdentifier()
		case isDigit(c):
			return s.scanNumber()
		case c == '"':
			return s.scanString()
		}

		if tok, ok := s.scanOperator(); ok {
			return tok
		}

		// Unrecognized character: surface a diagnostic and keep scanning
		// instead of terminating the stream.
		s.advance()
		s.reportError(fmt.Sprintf("unexpected character: %q", c))
	}
}

func (s *Scanner) skipWhitespaceAndComments() {
	for {
		for !s.isAtEnd() && isSpace(s.peek()) {
			s.advance()
		}
		switch {
		case s.peek() == '/' && s.peekNext() == '/':
			for !s.isAtEnd() && s.peek() != '\n' {
				s.advance()
			}
		case s.peek() == '/' && s.peekNext() == '*':
			s.advance()
			s.advance()
			for !s.isAtEnd() && !(s.peek() == '*' && s.peekNext() == '/') {
				s.advance()
			}
			if s.peek() == '*' {
				s.advance()
				s.advance()
			}
		case s.peek() == ';' && s.peekNext() == ';':
			for !s.isAtEnd() && s.peek() != '\n' {
				s.advance()
			}
		default:
			return
		}
	}
}

func (s *Scanner) scanIdentifier() Token {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	text := s.source[s.start:s.current]
	return s.makeToken(lookupIdentifier(text), text)
}

func (s *Scanner) scanNumber() Token {
	for isDigit(s.peek()) {
		s.advance()
	}
	text := s.source[s.start:s.current]

	// The grammar has no negative or float literal syntax; out-of-range
	// magnitudes keep strconv's truncated value, mirroring host-width
	// truncation.
	value, _ := strconv.ParseInt(text, 10, 64)

	tok := s.makeToken(NUMBER, text)
	tok.Int = value
	return tok
}

func (s *Scanner) scanString() Token {
	s.advance() // opening quote
	for !s.isAtEnd() && s.peek() != '"' {
		s.advance()
	}

	// No escape processing. An unterminated string consumes to end of
	// input; the token is still produced so downstream stages see it, but
	// the condition is diagnosed.
	if s.isAtEnd() {
		s.reportError("unterminated string")
		return s.makeToken(STRING, s.source[s.start+1:s.current])
	}

	value := s.source[s.start+1 : s.current]
	s.advance() // closing quote
	return s.makeToken(STRING, value)
}

// Multi-character operators are matched greedily before their
// single-character prefixes.
var operators = []struct {
	text string
	kind TokenType
}{
	{":=", COLON_EQUAL},
	{"==", EQUAL_EQUAL},
	{"!=", BANG_EQUAL},
	{"&&", AND},
	{"||", OR},
	{"->", ARROW},
	{"=>", FAT_ARROW},
	{"=", EQUAL},
	{":", COLON},
	{"@", AT},
	{"!", BANG},
	{"[", LEFT_BRACKET},
	{"]", RIGHT_BRACKET},
	{".", DOT},
	{"{", LEFT_BRACE},
	{"}", RIGHT_BRACE},
	{"(", LEFT_PAREN},
	{")", RIGHT_PAREN},
	{";", SEMICOLON},
	{",", COMMA},
	{"+", PLUS},
	{"-", MINUS},
	{"*", STAR},
	{"/", SLASH},
	{"<", LESS},
	{">", GREATER},
}

func (s *Scanner) scanOperator() (Token, bool) {
	for _, op := range operators {
		if s.matchText(op.text) {
			return s.makeToken(op.kind, op.text), true
		}
	}
	return Token{}, false
}

func (s *Scanner) matchText(text string) bool {
	if s.current+len(text) > len(s.source) {
		return false
	}
	if s.source[s.current:s.current+len(text)] != text {
		return false
	}
	for range text {
		s.advance()
	}
	return true
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) startPos() Position {
	return Position{Line: s.startLine, Column: s.startColumn, Offset: s.start}
}

func (s *Scanner) makeToken(tokenType TokenType, lexeme string) Token {
	return Token{
		Type:     tokenType,
		Lexeme:   lexeme,
		Position: s.startPos(),
	}
}

func (s *Scanner) reportError(message string) {
	s.errors = append(s.errors, ScanError{
		Message:  message,
		Position: s.startPos(),
		Length:   s.current - s.start,
	})
}

// Helper functions.

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return unicode.IsLetter(rune(c)) || c == '_'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
