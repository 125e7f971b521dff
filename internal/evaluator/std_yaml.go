package evaluator

import (
	"fmt"
	"jl/internal/object"
	"math"

	"gopkg.in/yaml.v3"
)

const ErrYAML = "yaml"

func yamlModule() map[string]object.Builtin {
	return map[string]object.Builtin{
		"yaml-decode": fnYamlDecode(),
		"yaml-encode": fnYamlEncode(),
	}
}

func fnYamlDecode() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.BadArity(len(args), 1)
		}
		text, ok := ctx.Eval(args[0]).(*object.String)
		if !ok {
			return object.NewSoftError(object.ErrBadArg, "yaml-decode expects a string")
		}
		var doc interface{}
		if err := yaml.Unmarshal([]byte(text.Value), &doc); err != nil {
			return object.NewSoftError(ErrYAML, err.Error())
		}
		obj, err := fromNative(doc)
		if err != nil {
			return object.NewSoftError(ErrYAML, err.Error())
		}
		return obj
	}
}

func fnYamlEncode() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.BadArity(len(args), 1)
		}
		out, err := yaml.Marshal(toNative(ctx.Eval(args[0])))
		if err != nil {
			return object.NewSoftError(ErrYAML, err.Error())
		}
		return object.NewString(string(out))
	}
}

// fromNative converts a decoded document. Fractional numbers are rejected
// since values only carry integers.
func fromNative(v interface{}) (object.Object, error) {
	switch x := v.(type) {
	case nil:
		return object.NULL, nil
	case bool:
		return object.NativeBoolToBooleanObject(x), nil
	case int:
		return object.NewNumber(int64(x)), nil
	case int64:
		return object.NewNumber(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("integer %d out of range", x)
		}
		return object.NewNumber(int64(x)), nil
	case float64:
		if x != math.Trunc(x) || math.IsInf(x, 0) || math.IsNaN(x) {
			return nil, fmt.Errorf("fractional number %v is not supported", x)
		}
		// 2^63 is exactly representable; int64(x) is undefined outside this range
		if x < -9.223372036854775808e18 || x >= 9.223372036854775808e18 {
			return nil, fmt.Errorf("number %v out of range", x)
		}
		return object.NewNumber(int64(x)), nil
	case string:
		return object.NewString(x), nil
	case []interface{}:
		elements := make([]object.Object, len(x))
		for i, el := range x {
			obj, err := fromNative(el)
			if err != nil {
				return nil, err
			}
			elements[i] = obj
		}
		return &object.List{Elements: elements}, nil
	case map[string]interface{}:
		pairs := make(map[string]object.Object, len(x))
		for k, el := range x {
			obj, err := fromNative(el)
			if err != nil {
				return nil, err
			}
			pairs[k] = obj
		}
		return &object.Map{Pairs: pairs}, nil
	case map[interface{}]interface{}:
		pairs := make(map[string]object.Object, len(x))
		for k, el := range x {
			obj, err := fromNative(el)
			if err != nil {
				return nil, err
			}
			pairs[fmt.Sprint(k)] = obj
		}
		return &object.Map{Pairs: pairs}, nil
	default:
		return object.NewString(fmt.Sprint(x)), nil
	}
}

// toNative converts a value for encoding. Functions and macros encode as
// their printed form.
func toNative(o object.Object) interface{} {
	switch o := o.(type) {
	case *object.Null:
		return nil
	case *object.Boolean:
		return o.Value
	case *object.Number:
		return o.Value
	case *object.String:
		return o.Value
	case *object.List:
		elements := make([]interface{}, len(o.Elements))
		for i, el := range o.Elements {
			elements[i] = toNative(el)
		}
		return elements
	case *object.Map:
		pairs := make(map[string]interface{}, len(o.Pairs))
		for k, v := range o.Pairs {
			pairs[k] = toNative(v)
		}
		return pairs
	default:
		return o.Inspect()
	}
}
