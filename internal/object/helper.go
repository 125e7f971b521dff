package object

import "fmt"

const (
	ERROR_TAG = "error"

	ErrBadArity  = "bad-arity"
	ErrBadImport = "bad-import"
	ErrBadArg    = "bad-argument"
)

// NewSoftError builds the first-class error value ["error", kind, detail...]
// returned by utility builtins instead of aborting.
func NewSoftError(kind string, detail ...string) *List {
	elements := []Object{NewString(ERROR_TAG), NewString(kind)}
	for _, d := range detail {
		elements = append(elements, NewString(d))
	}
	return &List{Elements: elements}
}

// BadArity is ["error", "bad-arity", "<got> != <want>"].
func BadArity(got, want int) *List {
	return NewSoftError(ErrBadArity, fmt.Sprintf("%d != %d", got, want))
}

// IsSoftError reports whether o has the shape of a soft error value.
func IsSoftError(o Object) bool {
	l, ok := o.(*List)
	return ok && len(l.Elements) >= 2 && IsString(l.Elements[0], ERROR_TAG)
}
