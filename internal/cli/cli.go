package cli

import (
	"fmt"
	"io"
	"jl/internal/evaluator"
	"jl/internal/parser"
	"jl/internal/repl"
	"jl/internal/util"
	"log/slog"
	"os"
)

const (
	ExitOK    = 0
	ExitFatal = 1
	ExitUsage = 2
)

// Cli evaluates a single file or runs the REPL depending on how many
// positional arguments it is given.
type Cli struct {
	Config util.Configuration
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Interactive selects the line editing REPL.
	Interactive bool
}

func New(config util.Configuration) *Cli {
	return &Cli{
		Config:      config,
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Interactive: isTerminal(os.Stdin),
	}
}

// Run dispatches on args and returns the process exit code. A fatal abort
// raised by the evaluator is reported here; any other panic propagates.
func (c *Cli) Run(args []string) (code int) {
	if len(args) > 1 {
		c.printUsage()
		return ExitUsage
	}

	defer func() {
		if r := recover(); r != nil {
			fatal, ok := r.(*evaluator.FatalError)
			if !ok {
				panic(r)
			}
			slog.Error("fatal", slog.String("message", fatal.Message))
			fmt.Fprintf(c.Stderr, "fatal: %s\n", fatal.Message)
			code = ExitFatal
		}
	}()

	e := c.newEvaluator()
	defer func() {
		if err := e.Close(); err != nil {
			slog.Warn("closing evaluator", slog.Any("error", err))
		}
	}()
	if len(args) == 0 {
		if c.Interactive {
			repl.StartInteractive(c.Stdout, e, c.Config.HistoryFile)
		} else {
			repl.Start(c.Stdin, c.Stdout, e)
		}
		return ExitOK
	}

	c.runFile(e, args[0])
	return ExitOK
}

func (c *Cli) newEvaluator() *evaluator.Evaluator {
	env := evaluator.NewEnvironment()
	evaluator.SeedSymbols(env)
	e := evaluator.New(env, c.Stdout)
	for _, mod := range c.Config.Prelude {
		if err := evaluator.ImportModule(env, mod); err != nil {
			e.Abort("prelude: %v", err)
		}
	}
	return e
}

func (c *Cli) runFile(e *evaluator.Evaluator, path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		e.Abort("reading %s: %v", path, err)
	}
	program, err := parser.Parse(string(src))
	if err != nil {
		e.Abort("parse error in %s: %v", path, err)
	}
	slog.Debug("evaluating file", slog.String("file", path))
	fmt.Fprintln(c.Stdout, e.Eval(program).Inspect())
}

func (c *Cli) printUsage() {
	fmt.Fprintln(c.Stderr, "usage: jl [options] [file]")
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
