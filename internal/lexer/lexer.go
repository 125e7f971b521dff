package lexer

import (
	"jl/internal/token"
	"unicode"
	"unicode/utf8"
)

type Lexer struct {
	input        string
	position     int  // current byte position in input (points to start of current rune)
	readPosition int  // next byte position in input (start of next rune)
	ch           rune // current rune under examination; 0 means EOF
}

func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	l.skipWhitespace()

	startPosition := l.position

	switch l.ch {
	case '[':
		tok = newToken(token.LBRACKET, l.ch, startPosition)
	case ']':
		tok = newToken(token.RBRACKET, l.ch, startPosition)
	case '{':
		tok = newToken(token.LBRACE, l.ch, startPosition)
	case '}':
		tok = newToken(token.RBRACE, l.ch, startPosition)
	case ',':
		tok = newToken(token.COMMA, l.ch, startPosition)
	case ':':
		tok = newToken(token.COLON, l.ch, startPosition)
	case '"':
		str, ok := l.readString()
		if !ok {
			return token.Token{Type: token.UNTERMINATED, Literal: l.input[startPosition:], Position: startPosition}
		}
		return token.Token{Type: token.STRING, Literal: str, Position: startPosition}
	case 0:
		if l.position >= len(l.input) {
			return token.Token{Type: token.EOF, Literal: "", Position: startPosition}
		}
		tok = newToken(token.ILLEGAL, l.ch, startPosition)
	default:
		if isDigit(l.ch) {
			return token.Token{Type: token.NUMBER, Literal: l.readNumber(), Position: startPosition}
		}
		if isLetter(l.ch) {
			word := l.readWord()
			return token.Token{Type: token.LookupKeyword(word), Literal: word, Position: startPosition}
		}
		tok = newToken(token.ILLEGAL, l.ch, startPosition)
	}

	l.readChar()
	return tok
}

func (l *Lexer) skipWhitespace() {
	for unicode.IsSpace(l.ch) {
		l.readChar()
	}
}

// readChar advances by one UTF-8 rune, updating byte positions
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += size
}

// readString consumes a double-quoted string. There is no escape processing:
// the literal is every rune between the two quotes.
func (l *Lexer) readString() (string, bool) {
	l.readChar() // consume opening "
	start := l.position
	for l.ch != '"' {
		if l.position >= len(l.input) {
			return "", false
		}
		l.readChar()
	}
	str := l.input[start:l.position]
	l.readChar() // consume closing "
	return str, true
}

// readNumber reads an unsigned run of ASCII digits.
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readWord() string {
	start := l.position
	for isLetter(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func newToken(tokenType token.TokenType, ch rune, position int) token.Token {
	return token.Token{Type: tokenType, Literal: string(ch), Position: position}
}
