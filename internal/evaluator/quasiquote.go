package evaluator

import "jl/internal/object"

const (
	UNQUOTE        = "unquote"
	SPLICE_UNQUOTE = "splice-unquote"
)

// quasiquote walks one level of a template. ["unquote", x] as the whole
// template evaluates x. Otherwise each top-level element of the form
// ["splice-unquote", x] is replaced by the single value of x; it is not
// flattened into the surrounding list. Nested lists are not walked.
func quasiquote(ctx object.EvaluatorContext, template object.Object) object.Object {
	list, ok := template.(*object.List)
	if !ok {
		return template
	}

	if len(list.Elements) > 1 && object.IsString(list.Elements[0], UNQUOTE) {
		return ctx.Eval(list.Elements[1])
	}

	walked := make([]object.Object, len(list.Elements))
	for i, el := range list.Elements {
		walked[i] = el
		inner, ok := el.(*object.List)
		if !ok || len(inner.Elements) < 2 || !object.IsString(inner.Elements[0], SPLICE_UNQUOTE) {
			continue
		}
		walked[i] = ctx.Eval(inner.Elements[1])
	}
	return &object.List{Elements: walked}
}
