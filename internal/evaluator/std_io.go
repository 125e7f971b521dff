package evaluator

import (
	"fmt"
	"jl/internal/object"
	"jl/internal/parser"
	"log/slog"
	"os"
	"strings"
)

const ErrIO = "io"

func ioModule() map[string]object.Builtin {
	return map[string]object.Builtin{
		"println":   fnIoPrintLn(),
		"print":     fnIoPrint(),
		"read-file": fnIoReadFile(),
		"load":      fnIoLoad(),
	}
}

// fnIoPrintLn writes the printed form of each argument on its own line.
func fnIoPrintLn() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		for _, arg := range args {
			fmt.Fprintln(ctx.Out(), ctx.Eval(arg).Inspect())
		}
		return object.NULL
	}
}

// fnIoPrint writes the printed forms separated by spaces, without a newline.
func fnIoPrint() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		parts := make([]string, len(args))
		for i, arg := range evalArgs(ctx, args) {
			parts[i] = arg.Inspect()
		}
		fmt.Fprint(ctx.Out(), strings.Join(parts, " "))
		return object.NULL
	}
}

func fnIoReadFile() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.BadArity(len(args), 1)
		}
		path, ok := ctx.Eval(args[0]).(*object.String)
		if !ok {
			return object.NewSoftError(object.ErrBadArg, "read-file expects a string path")
		}
		data, err := os.ReadFile(path.Value)
		if err != nil {
			return object.NewSoftError(ErrIO, err.Error())
		}
		return object.NewString(string(data))
	}
}

// fnIoLoad reads a file as a single value and evaluates it in the current
// environment. A reader fault in the file aborts like any other.
func fnIoLoad() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.BadArity(len(args), 1)
		}
		path, ok := ctx.Eval(args[0]).(*object.String)
		if !ok {
			return object.NewSoftError(object.ErrBadArg, "load expects a string path")
		}
		data, err := os.ReadFile(path.Value)
		if err != nil {
			return object.NewSoftError(ErrIO, err.Error())
		}
		program, err := parser.Parse(string(data))
		if err != nil {
			ctx.Abort("%s: %v", path.Value, err)
		}
		slog.Debug("loading file", slog.String("path", path.Value))
		return ctx.Eval(program)
	}
}
