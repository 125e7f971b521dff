package object

import (
	"bytes"
	"io"
	"sort"
	"strconv"
	"strings"
)

const (
	NULL_OBJ     = "NULL"
	BOOLEAN_OBJ  = "BOOLEAN"
	NUMBER_OBJ   = "NUMBER"
	STRING_OBJ   = "STRING"
	LIST_OBJ     = "LIST"
	MAP_OBJ      = "MAP"
	FUNCTION_OBJ = "FUNCTION"
	MACRO_OBJ    = "MACRO"
)

// typeNames are the names reported to programs by the `type` builtin.
var typeNames = map[ObjectType]string{
	NULL_OBJ:     "null",
	BOOLEAN_OBJ:  "bool",
	NUMBER_OBJ:   "number",
	STRING_OBJ:   "string",
	LIST_OBJ:     "list",
	MAP_OBJ:      "map",
	FUNCTION_OBJ: "function",
	MACRO_OBJ:    "macro",
}

var (
	NULL  = &Null{}
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
)

// EvaluatorContext provides the bridge between native builtins and the
// interpreter. Builtins receive their arguments unevaluated and use Eval to
// reduce whichever of them they need.
type EvaluatorContext interface {
	Eval(obj Object) Object
	Env() *Environment
	Out() io.Writer
	// Abort stops the interpreter. It never returns.
	Abort(format string, a ...interface{})
}

// Builtin is a native handler reachable by name from the evaluator.
type Builtin func(ctx EvaluatorContext, args ...Object) Object

type ObjectType string

type Object interface {
	Type() ObjectType
	Inspect() string
}

type Null struct{}

func (n *Null) Type() ObjectType { return NULL_OBJ }
func (n *Null) Inspect() string  { return "[]" }

type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string  { return strconv.FormatBool(b.Value) }

type Number struct {
	Value int64
}

func (n *Number) Type() ObjectType { return NUMBER_OBJ }
func (n *Number) Inspect() string  { return strconv.FormatInt(n.Value, 10) }

// String is both a literal string and, syntactically, the only form a
// variable name takes.
type String struct {
	Value string
}

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect() string  { return `"` + s.Value + `"` }

type List struct {
	Elements []Object
}

func (l *List) Type() ObjectType { return LIST_OBJ }
func (l *List) Inspect() string {
	var out bytes.Buffer
	out.WriteString("[")
	for i, el := range l.Elements {
		if i > 0 {
			out.WriteString(",")
		}
		out.WriteString(el.Inspect())
	}
	out.WriteString("]")
	return out.String()
}

type Map struct {
	Pairs map[string]Object
}

func (m *Map) Type() ObjectType { return MAP_OBJ }
func (m *Map) Inspect() string {
	var out bytes.Buffer
	out.WriteString("{")
	for i, key := range m.Keys() {
		if i > 0 {
			out.WriteString(",")
		}
		out.WriteString(`"` + key + `":`)
		out.WriteString(m.Pairs[key].Inspect())
	}
	out.WriteString("}")
	return out.String()
}

// Keys returns the map keys in sorted order.
func (m *Map) Keys() []string {
	keys := make([]string, 0, len(m.Pairs))
	for k := range m.Pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value stored under key, or NULL.
func (m *Map) Get(key string) Object {
	if v, ok := m.Pairs[key]; ok {
		return v
	}
	return NULL
}

// With returns a copy of m with key bound to value.
func (m *Map) With(key string, value Object) *Map {
	pairs := make(map[string]Object, len(m.Pairs)+1)
	for k, v := range m.Pairs {
		pairs[k] = v
	}
	pairs[key] = value
	return &Map{Pairs: pairs}
}

// Function is a call-by-value callable. It carries no environment: its
// parameters are bound into the single global environment when applied.
type Function struct {
	Parameters []string
	Body       Object
}

func (f *Function) Type() ObjectType { return FUNCTION_OBJ }
func (f *Function) Inspect() string  { return inspectCallable("f", f.Parameters, f.Body) }

// Macro has the same shape as Function but binds its parameters to the
// unevaluated argument forms.
type Macro struct {
	Parameters []string
	Body       Object
}

func (m *Macro) Type() ObjectType { return MACRO_OBJ }
func (m *Macro) Inspect() string  { return inspectCallable("macro", m.Parameters, m.Body) }

func inspectCallable(kind string, params []string, body Object) string {
	quoted := make([]string, len(params))
	for i, p := range params {
		quoted[i] = `"` + p + `"`
	}
	return `["` + kind + `",[` + strings.Join(quoted, ",") + `],` + body.Inspect() + `]`
}

func NewString(s string) *String { return &String{Value: s} }

func NewNumber(n int64) *Number { return &Number{Value: n} }

func NewList(elements ...Object) *List { return &List{Elements: elements} }

func NewMap() *Map { return &Map{Pairs: map[string]Object{}} }

func NativeBoolToBooleanObject(input bool) *Boolean {
	if input {
		return TRUE
	}
	return FALSE
}

// TypeName is the language level name of o's type.
func TypeName(o Object) string {
	return typeNames[o.Type()]
}

// Truthy reports whether o selects the "then" branch of an `if`: null, false
// and the empty list are false, everything else is true.
func Truthy(o Object) bool {
	switch o := o.(type) {
	case *Null:
		return false
	case *Boolean:
		return o.Value
	case *List:
		return len(o.Elements) > 0
	default:
		return true
	}
}

// IsString reports whether o is a String equal to s.
func IsString(o Object, s string) bool {
	str, ok := o.(*String)
	return ok && str.Value == s
}

// Equal is deep structural equality.
func Equal(a, b Object) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch a := a.(type) {
	case *Null:
		return true
	case *Boolean:
		return a.Value == b.(*Boolean).Value
	case *Number:
		return a.Value == b.(*Number).Value
	case *String:
		return a.Value == b.(*String).Value
	case *List:
		return equalElements(a.Elements, b.(*List).Elements)
	case *Map:
		bm := b.(*Map)
		if len(a.Pairs) != len(bm.Pairs) {
			return false
		}
		for k, v := range a.Pairs {
			other, ok := bm.Pairs[k]
			if !ok || !Equal(v, other) {
				return false
			}
		}
		return true
	case *Function:
		bf := b.(*Function)
		return equalParams(a.Parameters, bf.Parameters) && Equal(a.Body, bf.Body)
	case *Macro:
		bm := b.(*Macro)
		return equalParams(a.Parameters, bm.Parameters) && Equal(a.Body, bm.Body)
	}
	return false
}

func equalElements(a, b []Object) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalParams(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
