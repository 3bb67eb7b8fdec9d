package parser

// KEYWORDS maps reserved words to their token types.
var KEYWORDS = map[string]TokenType{
	"bind":  BIND,
	"bindm": BINDM,
	"fn":    FN,
	"if":    IF,
	"else":  ELSE,
	"while": WHILE,
	"do":    DO,
	"as":    AS,
	"write": WRITE,
}

// TYPE_NAMES holds the identifiers the scanner classifies as type names.
// Both dialects share one table.
var TYPE_NAMES = map[string]bool{
	"int":    true,
	"i32":    true,
	"i8":     true,
	"string": true,
	"str":    true,
	"float":  true,
	"number": true,
	"bool":   true,
	"any":    true,
}

func lookupIdentifier(text string) TokenType {
	if t, ok := KEYWORDS[text]; ok {
		return t
	}
	if TYPE_NAMES[text] {
		return TYPE
	}
	return IDENTIFIER
}
