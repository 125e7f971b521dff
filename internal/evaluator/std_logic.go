package evaluator

import "jl/internal/object"

func logicModule() map[string]object.Builtin {
	return map[string]object.Builtin{
		"if":  fnIf(),
		"or":  fnLogicOr(),
		"and": fnLogicAnd(),
		"not": fnLogicNot(),
		"=":   fnLogicEqual(),

		"assert":  fnLogicAssert(),
		"assert=": fnLogicAssertEqual(),
	}
}

// fnLogicOr evaluates arguments left to right and stops at the first truthy one.
func fnLogicOr() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		for _, arg := range args {
			if object.Truthy(ctx.Eval(arg)) {
				return object.TRUE
			}
		}
		return object.FALSE
	}
}

func fnLogicAnd() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		for _, arg := range args {
			if !object.Truthy(ctx.Eval(arg)) {
				return object.FALSE
			}
		}
		return object.TRUE
	}
}

func fnLogicNot() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.BadArity(len(args), 1)
		}
		return object.NativeBoolToBooleanObject(!object.Truthy(ctx.Eval(args[0])))
	}
}

func fnLogicEqual() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		if len(args) != 2 {
			return object.BadArity(len(args), 2)
		}
		return object.NativeBoolToBooleanObject(object.Equal(ctx.Eval(args[0]), ctx.Eval(args[1])))
	}
}

// fnLogicAssert aborts unless its argument is truthy.
func fnLogicAssert() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.BadArity(len(args), 1)
		}
		if !object.Truthy(ctx.Eval(args[0])) {
			ctx.Abort("assert failed for %s", args[0].Inspect())
		}
		return object.TRUE
	}
}

// fnLogicAssertEqual aborts unless both arguments evaluate to equal values.
func fnLogicAssertEqual() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		if len(args) != 2 {
			return object.BadArity(len(args), 2)
		}
		a, b := ctx.Eval(args[0]), ctx.Eval(args[1])
		if !object.Equal(a, b) {
			ctx.Abort("assert= failed for %s: %s != %s", object.NewList(args...).Inspect(), a.Inspect(), b.Inspect())
		}
		return object.TRUE
	}
}
