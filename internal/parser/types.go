package parser

type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Identifiers + literals
	IDENTIFIER
	NUMBER
	STRING

	// Keywords
	BIND
	BINDM
	FN
	IF
	ELSE
	WHILE
	DO
	AS
	WRITE

	// Type names (int, i32, i8, string, str, float, number, bool, any)
	TYPE

	// Operators
	PLUS
	MINUS
	STAR
	SLASH
	LESS
	GREATER
	EQUAL_EQUAL
	BANG_EQUAL
	AND
	OR
	BANG

	// Declaration / annotation punctuation
	EQUAL
	COLON_EQUAL
	COLON
	AT
	ARROW
	FAT_ARROW

	// Separators
	COMMA
	DOT
	SEMICOLON

	// Brackets
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	LEFT_BRACKET
	RIGHT_BRACKET
)

var tokenNames = map[TokenType]string{
	ILLEGAL:       "ILLEGAL",
	EOF:           "EOF",
	IDENTIFIER:    "identifier",
	NUMBER:        "number",
	STRING:        "string",
	BIND:          "'bind'",
	BINDM:         "'bindm'",
	FN:            "'fn'",
	IF:            "'if'",
	ELSE:          "'else'",
	WHILE:         "'while'",
	DO:            "'do'",
	AS:            "'as'",
	WRITE:         "'write'",
	TYPE:          "type name",
	PLUS:          "'+'",
	MINUS:         "'-'",
	STAR:          "'*'",
	SLASH:         "'/'",
	LESS:          "'<'",
	GREATER:       "'>'",
	EQUAL_EQUAL:   "'=='",
	BANG_EQUAL:    "'!='",
	AND:           "'&&'",
	OR:            "'||'",
	BANG:          "'!'",
	EQUAL:         "'='",
	COLON_EQUAL:   "':='",
	COLON:         "':'",
	AT:            "'@'",
	ARROW:         "'->'",
	FAT_ARROW:     "'=>'",
	COMMA:         "','",
	DOT:           "'.'",
	SEMICOLON:     "';'",
	LEFT_PAREN:    "'('",
	RIGHT_PAREN:   "')'",
	LEFT_BRACE:    "'{'",
	RIGHT_BRACE:   "'}'",
	LEFT_BRACKET:  "'['",
	RIGHT_BRACKET: "']'",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}
