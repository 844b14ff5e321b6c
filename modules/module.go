package modules

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// ArgType represents the expected type of a function argument.
type ArgType int

const (
	String ArgType = iota
	Int
	Float
	Bool
	Any
	// Numeric passes the argument through untouched; the module method
	// classifies it (int, float or complex).
	Numeric
)

// FuncDef describes a function exposed by a module.
// The implementation is the method named PascalCase(Name) on the module's
// Receiver, with typed parameters matching Args
// (e.g. func (*Math) Pow(base, exp float64) interface{}).
type FuncDef struct {
	// Name is the function name (e.g. "sqrt").
	Name string
	// Args lists the expected typed arguments. Call converts interface{}
	// args to these types before invoking the method.
	Args []ArgType
	// Variadic, when true, passes remaining args beyond Args as ...interface{}.
	// The implementation method should accept extra ...interface{} as its last parameter.
	Variadic bool
	// Doc is a one-line description shown by the doc command.
	Doc string
}

// Module represents a stdlib module that can be called by name.
type Module struct {
	// Name is the import name (e.g. "math", "cmath").
	Name string
	// Type is the Go struct type name used as the method receiver (e.g. "Math", "CMath").
	Type string
	// Doc is a one-line module description.
	Doc string
	// Funcs describes the functions this module exposes.
	Funcs []FuncDef
	// Includes names modules whose functions are reachable through this
	// one when it does not define them itself.
	Includes []string
	// Receiver is the value whose methods implement Funcs.
	Receiver interface{}
}

var registry = make(map[string]*Module)

// Register adds a module to the global registry.
func Register(m *Module) {
	registry[m.Name] = m
}

// Get returns a registered module by name.
func Get(name string) (*Module, bool) {
	m, ok := registry[name]
	return m, ok
}

// IsModule returns true if name is a registered module.
func IsModule(name string) bool {
	_, ok := registry[name]
	return ok
}

// LookupFunc resolves a module function, following Includes, and returns
// the module that defines it.
func LookupFunc(module, funcName string) (*Module, FuncDef, bool) {
	return lookup(module, funcName, map[string]bool{})
}

func lookup(module, funcName string, seen map[string]bool) (*Module, FuncDef, bool) {
	m, ok := registry[module]
	if !ok || seen[module] {
		return nil, FuncDef{}, false
	}
	seen[module] = true
	for _, f := range m.Funcs {
		if f.Name == funcName {
			return m, f, true
		}
	}
	for _, inc := range m.Includes {
		if owner, f, ok := lookup(inc, funcName, seen); ok {
			return owner, f, true
		}
	}
	return nil, FuncDef{}, false
}

// Names returns sorted names of all registered modules.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call invokes funcName on module with interface{} args, converting each
// argument per the function's Args. Panics raised by the implementation
// are returned as errors prefixed with "<module>.<func>: ".
func Call(module, funcName string, args ...interface{}) (result interface{}, err error) {
	if !IsModule(module) {
		return nil, fmt.Errorf("unknown module %q", module)
	}
	owner, f, ok := LookupFunc(module, funcName)
	if !ok {
		return nil, fmt.Errorf("%s: undefined function %q", module, funcName)
	}
	qualified := fmt.Sprintf("%s.%s", module, funcName)

	minArgs := len(f.Args)
	if len(args) < minArgs {
		return nil, fmt.Errorf("%s: requires at least %d argument(s)", qualified, minArgs)
	}
	if !f.Variadic && len(args) > minArgs {
		return nil, fmt.Errorf("%s: takes %d argument(s), got %d", qualified, minArgs, len(args))
	}

	method := reflect.ValueOf(owner.Receiver).MethodByName(toPascalCase(f.Name))
	if !method.IsValid() {
		return nil, fmt.Errorf("%s: %s has no method %s", qualified, owner.Type, toPascalCase(f.Name))
	}

	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("%s: %w", qualified, e)
				return
			}
			err = fmt.Errorf("%s: %v", qualified, r)
		}
	}()

	in := make([]reflect.Value, 0, len(args))
	for i, t := range f.Args {
		in = append(in, argConversion(args[i], t))
	}
	for _, extra := range args[minArgs:] {
		in = append(in, argValue(extra))
	}

	out := method.Call(in)
	if len(out) == 0 {
		return nil, nil
	}
	return out[0].Interface(), nil
}

// argValue wraps v so that nil and concrete values both bind to
// interface{} parameters.
func argValue(v interface{}) reflect.Value {
	return reflect.ValueOf(&v).Elem()
}

func argConversion(v interface{}, t ArgType) reflect.Value {
	switch t {
	case String:
		return reflect.ValueOf(ToString(v))
	case Int:
		return reflect.ValueOf(ToInt(v))
	case Float:
		return reflect.ValueOf(ToFloat(v))
	case Bool:
		return reflect.ValueOf(ToBool(v))
	default:
		return argValue(v)
	}
}

// toPascalCase converts a snake_case name to PascalCase.
// "get" → "Get", "to_s" → "ToS", "is_nan" → "IsNan"
func toPascalCase(s string) string {
	parts := strings.Split(s, "_")
	for i, p := range parts {
		if len(p) > 0 {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, "")
}
