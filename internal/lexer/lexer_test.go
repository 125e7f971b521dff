package lexer

import (
	"jl/internal/token"
	"testing"
)

func TestNextToken(t *testing.T) {
	input := `["def", "x",
	  [12, null, true, false],
	  {"key": 0}
	]`

	tests := []struct {
		expectedType    token.TokenType
		expectedLiteral string
	}{
		{token.LBRACKET, "["},
		{token.STRING, "def"},
		{token.COMMA, ","},
		{token.STRING, "x"},
		{token.COMMA, ","},
		{token.LBRACKET, "["},
		{token.NUMBER, "12"},
		{token.COMMA, ","},
		{token.NULL, "null"},
		{token.COMMA, ","},
		{token.TRUE, "true"},
		{token.COMMA, ","},
		{token.FALSE, "false"},
		{token.RBRACKET, "]"},
		{token.COMMA, ","},
		{token.LBRACE, "{"},
		{token.STRING, "key"},
		{token.COLON, ":"},
		{token.NUMBER, "0"},
		{token.RBRACE, "}"},
		{token.RBRACKET, "]"},
		{token.EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q '%q', got=%q: '%q'",
				i, tt.expectedType, tt.expectedLiteral, tok.Type, tok.Literal)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextStringToken(t *testing.T) {
	input := `"\n" "" "a b:c,[d]" "é"`

	tests := []struct {
		expectedType    token.TokenType
		expectedLiteral string
	}{
		// no escape processing
		{token.STRING, `\n`},
		{token.STRING, ""},
		{token.STRING, "a b:c,[d]"},
		{token.STRING, "é"},
		{token.EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	l := New(`["abc`)

	if tok := l.NextToken(); tok.Type != token.LBRACKET {
		t.Fatalf("expected [, got %q", tok.Type)
	}
	tok := l.NextToken()
	if tok.Type != token.UNTERMINATED {
		t.Fatalf("expected UNTERMINATED, got %q", tok.Type)
	}
	if tok.Literal != `"abc` {
		t.Fatalf("expected literal %q, got %q", `"abc`, tok.Literal)
	}
	if tok := l.NextToken(); tok.Type != token.EOF {
		t.Fatalf("expected EOF after unterminated string, got %q", tok.Type)
	}
}

func TestIllegalTokens(t *testing.T) {
	tests := []struct {
		input   string
		literal string
	}{
		{"-", "-"},
		{"nil", "nil"},
		{"@", "@"},
	}

	for _, tt := range tests {
		tok := New(tt.input).NextToken()
		if tok.Type != token.ILLEGAL {
			t.Errorf("%q: expected ILLEGAL, got %q", tt.input, tok.Type)
		}
		if tok.Literal != tt.literal {
			t.Errorf("%q: expected literal %q, got %q", tt.input, tt.literal, tok.Literal)
		}
	}
}

func TestTokenPositions(t *testing.T) {
	l := New(`  [ "ab" ,12]`)
	expected := []int{2, 4, 9, 10, 12}
	for i, pos := range expected {
		tok := l.NextToken()
		if tok.Position != pos {
			t.Errorf("token %d (%q): expected position %d, got %d", i, tok.Literal, pos, tok.Position)
		}
	}
}
