package evaluator

import (
	"jl/internal/object"
	"strconv"
)

func objectModule() map[string]object.Builtin {
	return map[string]object.Builtin{
		"contains-key": fnObjectContainsKey(),
		"insert":       fnObjectInsert(),
		"keys":         fnObjectKeys(),
		"get":          fnObjectGet(),
	}
}

func fnObjectContainsKey() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		if len(args) != 2 {
			return object.BadArity(len(args), 2)
		}
		m, key, ok := mapAndKey(ctx.Eval(args[0]), ctx.Eval(args[1]))
		if !ok {
			return object.FALSE
		}
		_, found := m.Pairs[key]
		return object.NativeBoolToBooleanObject(found)
	}
}

// fnObjectInsert returns a copy of the map with the key bound. Number keys
// are stored under their decimal form.
func fnObjectInsert() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		if len(args) != 3 {
			return object.BadArity(len(args), 3)
		}
		evaluated := evalArgs(ctx, args)
		m, key, ok := mapAndKey(evaluated[0], evaluated[1])
		if !ok {
			return object.NULL
		}
		return m.With(key, evaluated[2])
	}
}

func fnObjectKeys() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.BadArity(len(args), 1)
		}
		m, ok := ctx.Eval(args[0]).(*object.Map)
		if !ok {
			return object.NewList()
		}
		keys := m.Keys()
		elements := make([]object.Object, len(keys))
		for i, k := range keys {
			elements[i] = object.NewString(k)
		}
		return &object.List{Elements: elements}
	}
}

func fnObjectGet() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		if len(args) != 2 {
			return object.BadArity(len(args), 2)
		}
		m, key, ok := mapAndKey(ctx.Eval(args[0]), ctx.Eval(args[1]))
		if !ok {
			return object.NULL
		}
		return m.Get(key)
	}
}

func mapAndKey(target, key object.Object) (*object.Map, string, bool) {
	m, ok := target.(*object.Map)
	if !ok {
		return nil, "", false
	}
	switch key := key.(type) {
	case *object.String:
		return m, key.Value, true
	case *object.Number:
		return m, strconv.FormatInt(key.Value, 10), true
	}
	return nil, "", false
}
