package token

type TokenType string

const (
	ILLEGAL      = "ILLEGAL"
	UNTERMINATED = "UNTERMINATED" // a string literal missing its closing quote
	EOF          = "EOF"

	// literals
	NUMBER = "NUMBER" // 1343456
	STRING = "STRING" // "foobar"

	// Delimiters
	COMMA = ","
	COLON = ":"

	LBRACE   = "{"
	RBRACE   = "}"
	LBRACKET = "["
	RBRACKET = "]"

	// Keywords
	TRUE  = "TRUE"
	FALSE = "FALSE"
	NULL  = "NULL"
)

type Token struct {
	Type     TokenType
	Literal  string
	Position int // the src index of the token
}

var keywords = map[string]TokenType{
	"null":  NULL,
	"true":  TRUE,
	"false": FALSE,
}

// LookupKeyword returns the keyword type for word, or ILLEGAL when the word
// is not one of the three literal keywords.
func LookupKeyword(word string) TokenType {
	if tok, ok := keywords[word]; ok {
		return tok
	}
	return ILLEGAL
}
