package evaluator

import (
	"fmt"
	"jl/internal/object"
)

const ErrDivisionByZero = "division-by-zero"

func mathModule() map[string]object.Builtin {
	return map[string]object.Builtin{
		"+": fnMathFold(0, func(acc, n int64) int64 { return acc + n }),
		"*": fnMathFold(1, func(acc, n int64) int64 { return acc * n }),
		"-": fnMathSub(),
		"/": fnMathDiv(),
		"<": fnMathLess(),
	}
}

// numbers evaluates args and unwraps them. The second result is a soft
// error when some argument is not a number.
func numbers(ctx object.EvaluatorContext, args []object.Object) ([]int64, object.Object) {
	values := make([]int64, len(args))
	for i, arg := range evalArgs(ctx, args) {
		n, ok := arg.(*object.Number)
		if !ok {
			return nil, object.NewSoftError(object.ErrBadArg, fmt.Sprintf("expected number, got %s", object.TypeName(arg)))
		}
		values[i] = n.Value
	}
	return values, nil
}

func fnMathFold(identity int64, op func(acc, n int64) int64) object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		values, errObj := numbers(ctx, args)
		if errObj != nil {
			return errObj
		}
		acc := identity
		for _, n := range values {
			acc = op(acc, n)
		}
		return object.NewNumber(acc)
	}
}

// fnMathSub negates a single argument and subtracts the rest from the first otherwise.
func fnMathSub() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		if len(args) == 0 {
			return object.BadArity(0, 1)
		}
		values, errObj := numbers(ctx, args)
		if errObj != nil {
			return errObj
		}
		if len(values) == 1 {
			return object.NewNumber(-values[0])
		}
		acc := values[0]
		for _, n := range values[1:] {
			acc -= n
		}
		return object.NewNumber(acc)
	}
}

func fnMathDiv() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		if len(args) != 2 {
			return object.BadArity(len(args), 2)
		}
		values, errObj := numbers(ctx, args)
		if errObj != nil {
			return errObj
		}
		if values[1] == 0 {
			return object.NewSoftError(ErrDivisionByZero)
		}
		return object.NewNumber(values[0] / values[1])
	}
}

func fnMathLess() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		if len(args) != 2 {
			return object.BadArity(len(args), 2)
		}
		values, errObj := numbers(ctx, args)
		if errObj != nil {
			return errObj
		}
		return object.NativeBoolToBooleanObject(values[0] < values[1])
	}
}
