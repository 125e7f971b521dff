package evaluator

import (
	"jl/internal/object"
	"unsafe"
)

var coreBuiltins = map[string]object.Builtin{
	"quote":      fnQuote(),
	"quasiquote": fnQuasiquote(),
	"def":        fnDef(),
	"f":          fnFunction(),
	"macro":      fnMacro(),
	"if":         fnIf(),
	"program":    fnProgram(),
	"apply":      fnApply(),
	"crash":      fnCrash(),
	"import":     fnImport(),
	"type":       fnType(),
	"->string":   fnToString(),
}

// RegisterCore installs the special forms every environment starts with.
func RegisterCore(env *object.Environment) {
	for name, fn := range coreBuiltins {
		env.RegisterBuiltin(name, fn)
	}
}

// SeedSymbols binds the demo symbols the interpreter has always started with.
func SeedSymbols(env *object.Environment) {
	env.Define("f0", &object.Function{Parameters: []string{}, Body: object.NewNumber(12)})
	env.Define("f1", &object.Function{Parameters: []string{"x"}, Body: object.NewString("x")})
	env.Define("pi", object.NewNumber(3))
	env.Define("pie", object.NewString("3.14159265359"))
}

// NewEnvironment returns an environment with the core forms registered.
func NewEnvironment() *object.Environment {
	env := object.NewEnvironment()
	RegisterCore(env)
	return env
}

func fnQuote() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.BadArity(len(args), 1)
		}
		return args[0]
	}
}

func fnQuasiquote() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.BadArity(len(args), 1)
		}
		return quasiquote(ctx, args[0])
	}
}

func fnDef() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		if len(args) != 2 {
			return object.BadArity(len(args), 2)
		}
		name, ok := args[0].(*object.String)
		if !ok {
			ctx.Abort("cannot assign to non-string %s", args[0].Inspect())
		}
		return ctx.Env().Define(name.Value, ctx.Eval(args[1]))
	}
}

func fnFunction() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		if len(args) != 2 {
			return object.BadArity(len(args), 2)
		}
		params, ok := parameterNames(ctx, "function", args[0])
		if !ok {
			return object.NULL
		}
		return &object.Function{Parameters: params, Body: args[1]}
	}
}

func fnMacro() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		if len(args) != 2 {
			return object.BadArity(len(args), 2)
		}
		params, ok := parameterNames(ctx, "macro", args[0])
		if !ok {
			return object.NULL
		}
		return &object.Macro{Parameters: params, Body: args[1]}
	}
}

// parameterNames reads a raw parameter list. A non-list yields ok=false; a
// list holding anything other than strings aborts.
func parameterNames(ctx object.EvaluatorContext, kind string, arg object.Object) ([]string, bool) {
	list, ok := arg.(*object.List)
	if !ok {
		return nil, false
	}
	params := make([]string, len(list.Elements))
	for i, el := range list.Elements {
		s, ok := el.(*object.String)
		if !ok {
			ctx.Abort("cannot use %s as %s parameter", el.Inspect(), kind)
		}
		params[i] = s.Value
	}
	return params, true
}

// fnIf evaluates the predicate and exactly one branch.
func fnIf() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		if len(args) != 3 {
			return object.BadArity(len(args), 3)
		}
		if object.Truthy(ctx.Eval(args[0])) {
			return ctx.Eval(args[1])
		}
		return ctx.Eval(args[2])
	}
}

func fnProgram() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		var last object.Object = object.NULL
		for _, arg := range args {
			last = ctx.Eval(arg)
		}
		return last
	}
}

// fnApply evaluates its argument to a list and then evaluates that list as
// a call.
func fnApply() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.BadArity(len(args), 1)
		}
		call, ok := ctx.Eval(args[0]).(*object.List)
		if !ok {
			return object.NewSoftError(object.ErrBadArg, "apply expects a list")
		}
		return ctx.Eval(call)
	}
}

// fnCrash writes through an invalid address. It exists to exercise abnormal
// process termination and must never be recovered.
func fnCrash() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		var target uintptr
		*(*int8)(unsafe.Pointer(target)) = 1
		return object.NULL
	}
}

func fnType() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		if len(args) == 1 {
			return object.NewString(object.TypeName(ctx.Eval(args[0])))
		}
		names := make([]object.Object, len(args))
		for i, arg := range args {
			names[i] = object.NewString(object.TypeName(ctx.Eval(arg)))
		}
		return &object.List{Elements: names}
	}
}

func fnToString() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.BadArity(len(args), 1)
		}
		return object.NewString(ctx.Eval(args[0]).Inspect())
	}
}
