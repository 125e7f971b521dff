package parser

import (
	"errors"
	"fmt"
	"jl/internal/lexer"
	"jl/internal/object"
	"jl/internal/token"
	"log/slog"
	"strconv"
	"strings"
)

// Parser is a recursive-descent reader turning source text into a single
// object tree. The tree it builds is both the program and its data.
type Parser struct {
	l      *lexer.Lexer
	src    string // source code here
	errors []string

	curToken  token.Token
	peekToken token.Token
}

func New(l *lexer.Lexer, source string) *Parser {
	p := &Parser{
		l:      l,
		src:    source,
		errors: []string{},
	}

	// Read two tokens, so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()

	return p
}

// Parse reads exactly one value from src. Input after that value is ignored
// and empty input reads as null.
func Parse(src string) (object.Object, error) {
	p := New(lexer.New(src), src)
	obj := p.ParseValue()
	if errs := p.Errors(); len(errs) != 0 {
		return nil, errors.New(strings.Join(errs, "\n"))
	}
	return obj, nil
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken.Type == t
}

func (p *Parser) addError(message string, args ...interface{}) {
	line, col := GetLineAndColumn(p.src, p.curToken.Position)
	m := fmt.Sprintf(message, args...)
	msg := fmt.Sprintf("[%3d:%2d] %s", line, col, m)
	p.errors = append(p.errors, msg)
}

func (p *Parser) peekError(t token.TokenType) {
	p.nextToken()
	p.addError("expected next token to be %s, got %s instead", t, p.curToken.Type)
}

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	} else {
		p.peekError(t)
		return false
	}
}

func (p *Parser) Errors() []string {
	return p.errors
}

// ParseValue parses the value starting at the current token. On return the
// current token is the last token of that value.
func (p *Parser) ParseValue() object.Object {
	switch p.curToken.Type {
	case token.NULL:
		return object.NULL
	case token.TRUE:
		return object.TRUE
	case token.FALSE:
		return object.FALSE
	case token.NUMBER:
		return p.parseNumber()
	case token.STRING:
		return object.NewString(p.curToken.Literal)
	case token.LBRACKET:
		return p.parseList()
	case token.LBRACE:
		return p.parseMap()
	case token.UNTERMINATED:
		p.addError("unterminated string %q", p.curToken.Literal)
		return nil
	default:
		return object.NULL
	}
}

func (p *Parser) parseNumber() object.Object {
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.addError("could not parse %q as integer", p.curToken.Literal)
		return nil
	}
	return object.NewNumber(value)
}

func (p *Parser) parseList() object.Object {
	list := &object.List{Elements: []object.Object{}}

	for {
		p.nextToken()
		if !p.startsValue() {
			break
		}
		el := p.ParseValue()
		if el == nil {
			return nil
		}
		list.Elements = append(list.Elements, el)
		p.nextToken()
		if !p.curTokenIs(token.COMMA) {
			break
		}
	}

	if !p.curTokenIs(token.RBRACKET) {
		line, col := GetLineAndColumn(p.src, p.curToken.Position)
		slog.Warn("skipping trailing list content", slog.Int("line", line), slog.Int("column", col))
	}

	// anything after the last element is skipped up to the bracket closing
	// this list; nested brackets in the skipped content are balanced
	depth := 0
	for depth > 0 || !p.curTokenIs(token.RBRACKET) {
		switch p.curToken.Type {
		case token.EOF:
			p.addError("unterminated list, expected %s", token.RBRACKET)
			return nil
		case token.UNTERMINATED:
			p.addError("unterminated string %q", p.curToken.Literal)
			return nil
		case token.LBRACKET, token.LBRACE:
			depth++
		case token.RBRACKET, token.RBRACE:
			if depth > 0 {
				depth--
			}
		}
		p.nextToken()
	}
	return list
}

func (p *Parser) parseMap() object.Object {
	pairs := make(map[string]object.Object)

	for !p.peekTokenIs(token.RBRACE) {
		if !p.expectPeek(token.STRING) {
			return nil
		}
		key := p.curToken.Literal

		if !p.expectPeek(token.COLON) {
			return nil
		}

		p.nextToken()
		value := p.ParseValue()
		if value == nil {
			return nil
		}
		pairs[key] = value

		if !p.peekTokenIs(token.RBRACE) && !p.expectPeek(token.COMMA) {
			return nil
		}
	}
	p.nextToken()

	return &object.Map{Pairs: pairs}
}

// startsValue reports whether the current token can begin a value. Inside a
// list anything else ends the element sequence.
func (p *Parser) startsValue() bool {
	switch p.curToken.Type {
	case token.NULL, token.TRUE, token.FALSE, token.NUMBER, token.STRING,
		token.LBRACKET, token.LBRACE, token.UNTERMINATED:
		return true
	}
	return false
}

func GetLineAndColumn(src string, pos int) (line int, column int) {
	line = 1
	column = 1
	for i, char := range src {
		if i == pos {
			break
		}
		if char == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return
}
