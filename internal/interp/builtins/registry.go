// Package builtins implements the built-in operator set and the
// registry that installs it into an interpreter's system dictionary.
// Every operator is expressed purely in terms of values.Context so this
// package never imports internal/interp — internal/interp imports this
// package instead, the same direction go-dws's internal/interp/builtins
// relates to internal/interp.
package builtins

import "github.com/cwbudde/go-pslang/internal/values"

// Category groups built-in operators for documentation and introspection.
type Category string

const (
	CategoryStack      Category = "stack"
	CategoryArithmetic Category = "arithmetic"
	CategoryComparison Category = "comparison"
	CategoryDictionary Category = "dictionary"
	CategoryControl    Category = "control"
	CategoryIO         Category = "io"
)

// FunctionInfo holds one registered built-in.
type FunctionInfo struct {
	Name     string
	Fn       values.BuiltinFunc
	Category Category
}

// Registry is an ordered, named collection of built-in operators.
type Registry struct {
	order     []string
	functions map[string]*FunctionInfo
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{functions: make(map[string]*FunctionInfo)}
}

// Register adds or replaces a built-in operator.
func (r *Registry) Register(name string, fn values.BuiltinFunc, category Category) {
	if _, exists := r.functions[name]; !exists {
		r.order = append(r.order, name)
	}
	r.functions[name] = &FunctionInfo{Name: name, Fn: fn, Category: category}
}

// Get looks up a built-in by name.
func (r *Registry) Get(name string) (values.BuiltinFunc, bool) {
	info, ok := r.functions[name]
	if !ok {
		return nil, false
	}
	return info.Fn, true
}

// Names returns every registered name in registration order.
func (r *Registry) Names() []string {
	return r.order
}

// DefaultRegistry is populated with every built-in operator this
// language defines, at package init.
var DefaultRegistry = NewRegistry()

func init() {
	RegisterAll(DefaultRegistry)
}

// RegisterAll registers every category of built-in operator with r.
func RegisterAll(r *Registry) {
	RegisterStackOperators(r)
	RegisterArithmeticOperators(r)
	RegisterComparisonOperators(r)
	RegisterDictionaryOperators(r)
	RegisterControlOperators(r)
	RegisterIOOperators(r)
}

// Install defines every built-in in r into ctx's current dictionary.
// Called once, at interpreter construction, while the current
// dictionary is still the system dictionary.
func Install(ctx values.Context, r *Registry) {
	for _, name := range r.Names() {
		fn, _ := r.Get(name)
		ctx.Define(name, &values.BuiltinValue{Name: name, Fn: fn})
	}
}
