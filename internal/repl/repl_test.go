package repl

import (
	"bytes"
	"jl/internal/evaluator"
	"strings"
	"testing"
)

func newSession(t *testing.T, out *bytes.Buffer) *evaluator.Evaluator {
	t.Helper()
	env := evaluator.NewEnvironment()
	evaluator.SeedSymbols(env)
	return evaluator.New(env, out)
}

func TestStart(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty input", "", PROMPT},
		{"single value", "1\n", "; 1\n; "},
		{"blank lines skipped", "\n   \n2\n", "; ; ; 2\n; "},
		{"null prints as empty list", "null\n", "; []\n; "},
		{"definitions persist", `["def", "x", 5]` + "\n" + `"x"` + "\n", "; 5\n; 5\n; "},
		{"seeded symbols", `"pi"` + "\n", "; 3\n; "},
		{"quit", ":quit\n1\n", "; "},
		{"function printed", `["f", ["a"], "a"]` + "\n", `; ["f",["a"],"a"]` + "\n; "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			Start(strings.NewReader(tt.input), out, newSession(t, out))
			if got := out.String(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestStartPrintsWithIo(t *testing.T) {
	out := &bytes.Buffer{}
	input := `["import", "std::io"]` + "\n" + `["println", "hi"]` + "\n"
	Start(strings.NewReader(input), out, newSession(t, out))

	expected := `; "ok"` + "\n; \"hi\"\n[]\n; "
	if got := out.String(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestStartParseErrorAborts(t *testing.T) {
	out := &bytes.Buffer{}
	defer func() {
		r := recover()
		fatal, ok := r.(*evaluator.FatalError)
		if !ok {
			t.Fatalf("expected *FatalError, got %v", r)
		}
		if !strings.Contains(fatal.Message, "parse error") {
			t.Errorf("unexpected message %q", fatal.Message)
		}
	}()
	Start(strings.NewReader(`["unterminated`+"\n"), out, newSession(t, out))
}

func TestEnvCommand(t *testing.T) {
	out := &bytes.Buffer{}
	e := evaluator.New(evaluator.NewEnvironment(), out)
	Start(strings.NewReader(`["def", "b", 2]`+"\n"+`["def", "a", 1]`+"\n:env\n"), out, e)

	if !strings.Contains(out.String(), "a = 1\nb = 2\n") {
		t.Errorf("unexpected :env output %q", out.String())
	}
}

func TestModulesCommand(t *testing.T) {
	out := &bytes.Buffer{}
	Start(strings.NewReader(":modules\n"), out, newSession(t, out))
	if !strings.Contains(out.String(), "std::array") || !strings.Contains(out.String(), "std::yaml") {
		t.Errorf("unexpected :modules output %q", out.String())
	}
}
