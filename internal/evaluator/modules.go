package evaluator

import (
	"fmt"
	"jl/internal/object"
	"log/slog"
	"sort"
)

const IMPORT_OK = "ok"

// modules maps an importable library name to the builtins it registers.
var modules = map[string]func() map[string]object.Builtin{
	"std::array":  arrayModule,
	"std::object": objectModule,
	"std::io":     ioModule,
	"std::logic":  logicModule,
	"std::math":   mathModule,
	"std::db":     dbModule,
	"std::yaml":   yamlModule,
}

// ModuleNames lists every importable library.
func ModuleNames() []string {
	names := make([]string, 0, len(modules))
	for name := range modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ImportModule registers the builtins of the named library into env.
func ImportModule(env *object.Environment, name string) error {
	load, ok := modules[name]
	if !ok {
		return fmt.Errorf("builtin library not found: %s", name)
	}
	for fnName, fn := range load() {
		env.RegisterBuiltin(fnName, fn)
	}
	slog.Debug("imported module", slog.String("module", name))
	return nil
}

// fnImport registers each named library. Arguments are not evaluated. The
// result is the outcome of the last import: "ok" or ["error","bad-import"].
func fnImport() object.Builtin {
	return func(ctx object.EvaluatorContext, args ...object.Object) object.Object {
		var last object.Object = object.NewString(IMPORT_OK)
		for _, arg := range args {
			name, ok := arg.(*object.String)
			if !ok {
				slog.Warn("not a module name", slog.String("arg", arg.Inspect()))
				return object.NewSoftError(object.ErrBadImport)
			}
			if err := ImportModule(ctx.Env(), name.Value); err != nil {
				slog.Warn(err.Error())
				last = object.NewSoftError(object.ErrBadImport)
				continue
			}
			last = object.NewString(IMPORT_OK)
		}
		return last
	}
}

// evalArgs evaluates every argument in order.
func evalArgs(ctx object.EvaluatorContext, args []object.Object) []object.Object {
	evaluated := make([]object.Object, len(args))
	for i, arg := range args {
		evaluated[i] = ctx.Eval(arg)
	}
	return evaluated
}
