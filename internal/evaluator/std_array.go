package evaluator

import "jl/internal/object"

func arrayModule() map[string]object.Builtin {
	return map[string]object.Builtin{
		"head": fnArrayHead(),
		"tail": fnArrayTail(),
		"len":  fnArrayLen(),
		"map":  fnArrayMap(),
	}
}

// fnArrayHead returns the first element, null for an empty list and an
// empty list for anything that is not a list.
func fnArrayHead() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.BadArity(len(args), 1)
		}
		list, ok := ctx.Eval(args[0]).(*object.List)
		if !ok {
			return object.NewList()
		}
		if len(list.Elements) == 0 {
			return object.NULL
		}
		return list.Elements[0]
	}
}

func fnArrayTail() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.BadArity(len(args), 1)
		}
		list, ok := ctx.Eval(args[0]).(*object.List)
		if !ok || len(list.Elements) == 0 {
			return object.NewList()
		}
		rest := make([]object.Object, len(list.Elements)-1)
		copy(rest, list.Elements[1:])
		return &object.List{Elements: rest}
	}
}

// fnArrayLen counts list elements. Any other value has length 1.
func fnArrayLen() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.BadArity(len(args), 1)
		}
		list, ok := ctx.Eval(args[0]).(*object.List)
		if !ok {
			return object.NewNumber(1)
		}
		return object.NewNumber(int64(len(list.Elements)))
	}
}

// fnArrayMap applies fn to every element by evaluating [fn, element].
func fnArrayMap() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		if len(args) != 2 {
			return object.BadArity(len(args), 2)
		}
		fn := ctx.Eval(args[0])
		list, ok := ctx.Eval(args[1]).(*object.List)
		if !ok {
			return object.NULL
		}
		mapped := make([]object.Object, len(list.Elements))
		for i, el := range list.Elements {
			mapped[i] = ctx.Eval(object.NewList(fn, el))
		}
		return &object.List{Elements: mapped}
	}
}
