package parser

import (
	"jl/internal/lexer"
	"jl/internal/object"
	"strings"
	"testing"
)

func str(s string) object.Object { return object.NewString(s) }

func num(n int64) object.Object { return object.NewNumber(n) }

func list(els ...object.Object) object.Object { return object.NewList(els...) }

func TestParseAtoms(t *testing.T) {
	tests := []struct {
		input    string
		expected object.Object
	}{
		{"null", object.NULL},
		{"true", object.TRUE},
		{"false", object.FALSE},
		{"0", num(0)},
		{"12", num(12)},
		{"9223372036854775807", num(9223372036854775807)},
		{`"x"`, str("x")},
		{`""`, str("")},
		{`"a\nb"`, str(`a\nb`)},
		{"", object.NULL},
		{"   ", object.NULL},
		{"nonsense", object.NULL},
		{"12 34", num(12)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !object.Equal(got, tt.expected) {
				t.Errorf("expected %s, got %s", tt.expected.Inspect(), got.Inspect())
			}
		})
	}
}

func TestParseList(t *testing.T) {
	tests := []struct {
		input    string
		expected object.Object
	}{
		{"[]", list()},
		{"[1]", list(num(1))},
		{"[12]", list(num(12))},
		{"[1, 2]", list(num(1), num(2))},
		{"[[]]", list(list())},
		{"[[[]]]", list(list(list()))},
		{"[[1]]", list(list(num(1)))},
		{"[[1, 1]]", list(list(num(1), num(1)))},
		{"[[1], 1]", list(list(num(1)), num(1))},
		{`[["f", ["x"], 1], 1]`, list(list(str("f"), list(str("x")), num(1)), num(1))},
		{"[ 1 ,\n 2 ]", list(num(1), num(2))},
		// trailing content after the last element is ignored up to ]
		{"[1 2 3]", list(num(1))},
		{"[1, 2,]", list(num(1), num(2))},
		{"[1 oops]", list(num(1))},
		{"[[1 [2]], 3]", list(list(num(1)), num(3))},
		{"[[1 {\"a\": [2]}], 3]", list(list(num(1)), num(3))},
		{"[[1 ]], 3]", list(list(num(1)))},
		{`["program", ["def", "x", 1] ["oops"], ["def", "y", 2]]`, list(str("program"), list(str("def"), str("x"), num(1)))},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !object.Equal(got, tt.expected) {
				t.Errorf("expected %s, got %s", tt.expected.Inspect(), got.Inspect())
			}
		})
	}
}

func TestParseMap(t *testing.T) {
	got, err := Parse(`{"a": 1, "b": ["x", {"c": null}]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := object.NewMap().
		With("a", num(1)).
		With("b", list(str("x"), object.NewMap().With("c", object.NULL)))
	if !object.Equal(got, expected) {
		t.Errorf("expected %s, got %s", expected.Inspect(), got.Inspect())
	}

	empty, err := Parse("{}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !object.Equal(empty, object.NewMap()) {
		t.Errorf("expected empty map, got %s", empty.Inspect())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"unterminated string", `"abc`, "unterminated string"},
		{"unterminated string in list", `[1, "abc]`, "unterminated string"},
		{"unterminated list", `[1, 2`, "unterminated list"},
		{"unterminated nested list", `[[1]`, "unterminated list"},
		{"unterminated list after skipped nested list", `[1 [2]`, "unterminated list"},
		{"non-string map key", `{1: 2}`, "expected next token to be STRING"},
		{"missing colon", `{"a" 2}`, "expected next token to be :"},
		{"missing comma", `{"a": 1 "b": 2}`, "expected next token to be ,"},
		{"number overflow", `99999999999999999999`, "could not parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("expected error for %q", tt.input)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("expected error containing %q, got %q", tt.message, err.Error())
			}
		})
	}
}

func TestParserErrorsAccumulate(t *testing.T) {
	input := `[1, "abc`
	p := New(lexer.New(input), input)
	if obj := p.ParseValue(); obj != nil {
		t.Fatalf("expected no value, got %s", obj.Inspect())
	}
	errors := p.Errors()
	if len(errors) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errors), errors)
	}
	if !strings.HasPrefix(errors[0], "[  1: 5]") {
		t.Errorf("expected error at 1:5, got %q", errors[0])
	}

	p = New(lexer.New("[1]"), "[1]")
	p.ParseValue()
	if len(p.Errors()) != 0 {
		t.Errorf("unexpected errors %v", p.Errors())
	}
}

func TestRoundTrip(t *testing.T) {
	values := []object.Object{
		object.TRUE,
		object.FALSE,
		num(0),
		num(123456789),
		str("hello world"),
		list(),
		list(num(1), list(str("a"), object.FALSE), object.NewMap()),
		object.NewMap().With("k", list(num(1), num(2))).With("other", str("v")),
	}

	for _, v := range values {
		printed := v.Inspect()
		t.Run(printed, func(t *testing.T) {
			got, err := Parse(printed)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !object.Equal(got, v) {
				t.Errorf("round trip of %s produced %s", printed, got.Inspect())
			}
		})
	}
}

func TestGetLineAndColumn(t *testing.T) {
	line, col := GetLineAndColumn("ab\ncd", 4)
	if line != 2 || col != 2 {
		t.Errorf("expected 2:2, got %d:%d", line, col)
	}
}
