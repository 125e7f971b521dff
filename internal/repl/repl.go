package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"jl/internal/evaluator"
	"jl/internal/parser"
	"log/slog"
	"os"
	"strings"

	"github.com/peterh/liner"
)

const PROMPT = "; "

// Start reads one value per line from in, evaluates it and prints the result
// to out. It returns when in is exhausted. A line that does not parse aborts
// the evaluator.
func Start(in io.Reader, out io.Writer, e *evaluator.Evaluator) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				slog.Error("reading input", slog.Any("error", err))
			}
			return
		}
		if quit := evalLine(out, e, scanner.Text()); quit {
			return
		}
	}
}

// StartInteractive runs the loop on the terminal with line editing. History is
// loaded from and saved to historyFile when it is set.
func StartInteractive(out io.Writer, e *evaluator.Evaluator, historyFile string) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer saveHistory(ln, historyFile)
	}

	for {
		line, err := ln.Prompt(PROMPT)
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, liner.ErrPromptAborted) {
				slog.Error("reading input", slog.Any("error", err))
			}
			fmt.Fprintln(out)
			return
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if quit := evalLine(out, e, line); quit {
			return
		}
	}
}

func saveHistory(ln *liner.State, path string) {
	f, err := os.Create(path)
	if err != nil {
		slog.Warn("could not save history", slog.String("file", path), slog.Any("error", err))
		return
	}
	defer f.Close()
	if _, err := ln.WriteHistory(f); err != nil {
		slog.Warn("could not save history", slog.String("file", path), slog.Any("error", err))
	}
}

// evalLine handles one line of input and reports whether the loop should end.
func evalLine(out io.Writer, e *evaluator.Evaluator, line string) bool {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return false
	case trimmed == ":quit":
		return true
	case trimmed == ":env":
		printEnv(out, e)
		return false
	case trimmed == ":modules":
		io.WriteString(out, strings.Join(evaluator.ModuleNames(), " ")+"\n")
		return false
	}

	value, err := parser.Parse(line)
	if err != nil {
		e.Abort("parse error: %v", err)
	}
	io.WriteString(out, e.Eval(value).Inspect())
	io.WriteString(out, "\n")
	return false
}

func printEnv(out io.Writer, e *evaluator.Evaluator) {
	env := e.Env()
	for _, name := range env.Names() {
		fmt.Fprintf(out, "%s = %s\n", name, env.Get(name).Inspect())
	}
}
