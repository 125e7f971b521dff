package evaluator

import (
	"fmt"
	"io"
	"jl/internal/object"
	"log/slog"
	"os"
)

// FatalError is raised by Abort. It is never turned into a value: the
// interpreter has no recovery mechanism and the process stops.
type FatalError struct {
	Message string
}

func (f *FatalError) Error() string { return f.Message }

// Evaluator is a recursive tree-walking interpreter over a single global
// environment. It is not safe for concurrent use.
type Evaluator struct {
	env *object.Environment
	out io.Writer
	dbs *dbHandles
}

// New creates an evaluator over env. Output produced by builtins such as
// println is written to out (stdout when nil).
func New(env *object.Environment, out io.Writer) *Evaluator {
	if out == nil {
		out = os.Stdout
	}
	return &Evaluator{env: env, out: out}
}

func (e *Evaluator) Env() *object.Environment { return e.env }

func (e *Evaluator) Out() io.Writer { return e.out }

// Close releases the database connections opened through this evaluator.
func (e *Evaluator) Close() error {
	if e.dbs == nil {
		return nil
	}
	return e.dbs.closeAll()
}

func (e *Evaluator) databases() *dbHandles {
	if e.dbs == nil {
		e.dbs = newDBHandles()
	}
	return e.dbs
}

func (e *Evaluator) Abort(format string, a ...interface{}) {
	panic(&FatalError{Message: fmt.Sprintf(format, a...)})
}

func (e *Evaluator) Eval(obj object.Object) object.Object {
	switch obj := obj.(type) {

	case *object.String:
		return e.env.Resolve(obj.Value)

	case *object.Map:
		pairs := make(map[string]object.Object, len(obj.Pairs))
		for k, v := range obj.Pairs {
			pairs[k] = e.Eval(v)
		}
		return &object.Map{Pairs: pairs}

	case *object.List:
		return e.evalList(obj)

	default:
		// null, booleans, numbers, functions and macros
		return obj
	}
}

func (e *Evaluator) evalList(list *object.List) object.Object {
	if len(list.Elements) == 0 {
		return list
	}

	head, tail := list.Elements[0], list.Elements[1:]
	substituted := map[string]bool{}

	for {
		switch h := head.(type) {

		case *object.Function:
			args := make([]object.Object, len(tail))
			for i, arg := range tail {
				args[i] = e.Eval(arg)
			}
			return e.applyFunction(h, args)

		case *object.Macro:
			return e.applyMacro(h, tail)

		case *object.String:
			// a bound name is replaced by its value and the call retried
			if val, ok := e.env.Lookup(h.Value); ok && !substituted[h.Value] {
				substituted[h.Value] = true
				head = val
				continue
			}
			if fn, ok := e.env.Builtin(h.Value); ok {
				return fn(e, tail...)
			}
			slog.Warn("unknown builtin", slog.String("name", h.Value))
			return object.NULL

		case *object.List:
			if len(h.Elements) == 0 {
				slog.Warn("head not callable", slog.String("head", h.Inspect()))
				return object.NULL
			}
			head = e.Eval(h)

		default:
			slog.Warn("head not callable", slog.String("head", head.Inspect()))
			return object.NULL
		}
	}
}

// bindParameters writes args straight into the global environment. There
// are no call frames, so a binding made here is visible to (and clobbers)
// every other evaluation using the same name.
func (e *Evaluator) bindParameters(kind string, params []string, args []object.Object) {
	if len(params) != len(args) {
		e.Abort("%s expects %d arguments, got %d", kind, len(params), len(args))
	}
	for i, param := range params {
		e.env.Define(param, args[i])
	}
}

func (e *Evaluator) applyFunction(fn *object.Function, args []object.Object) object.Object {
	e.bindParameters("function", fn.Parameters, args)
	return e.Eval(fn.Body)
}

// applyMacro binds the raw argument forms, evaluates the body to produce an
// expansion and then evaluates the expansion. An expansion that is itself a
// macro call is expanded again by that evaluation.
func (e *Evaluator) applyMacro(m *object.Macro, forms []object.Object) object.Object {
	e.bindParameters("macro", m.Parameters, forms)
	expansion := e.Eval(m.Body)
	slog.Debug("macro expanded", slog.String("expansion", expansion.Inspect()))
	return e.Eval(expansion)
}
