package object

import (
	"log/slog"
	"sort"
	"sync"
)

// Environment is the single global namespace. There are no enclosing
// scopes: every define, including parameter binding during application,
// overwrites the one shared table and is visible everywhere immediately.
type Environment struct {
	Bindings map[string]Object
	builtins map[string]Builtin

	mu sync.RWMutex
}

func NewEnvironment() *Environment {
	return &Environment{
		Bindings: make(map[string]Object),
		builtins: make(map[string]Builtin),
	}
}

// Define binds name to val, replacing any previous binding.
func (e *Environment) Define(name string, val Object) Object {
	e.mu.Lock()
	defer e.mu.Unlock()
	slog.Debug("define", slog.String("name", name), slog.String("type", string(val.Type())))
	e.Bindings[name] = val
	return val
}

func (e *Environment) Lookup(name string) (Object, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	val, ok := e.Bindings[name]
	return val, ok
}

// Get returns the bound value, or NULL when name is unbound.
func (e *Environment) Get(name string) Object {
	if val, ok := e.Lookup(name); ok {
		return val
	}
	return NULL
}

// Resolve is the lookup used when a String is evaluated as a possible
// variable reference: unbound names evaluate to themselves.
func (e *Environment) Resolve(name string) Object {
	if val, ok := e.Lookup(name); ok {
		return val
	}
	return NewString(name)
}

// Names returns every bound symbol in sorted order.
func (e *Environment) Names() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	names := make([]string, 0, len(e.Bindings))
	for name := range e.Bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterBuiltin adds a native handler. Builtins are never removed.
func (e *Environment) RegisterBuiltin(name string, fn Builtin) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.builtins[name] = fn
}

func (e *Environment) Builtin(name string) (Builtin, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	fn, ok := e.builtins[name]
	return fn, ok
}
