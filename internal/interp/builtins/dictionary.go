package builtins

import (
	"github.com/cwbudde/go-pslang/internal/errors"
	"github.com/cwbudde/go-pslang/internal/values"
)

// RegisterDictionaryOperators installs dict, begin, end, and def.
func RegisterDictionaryOperators(r *Registry) {
	r.Register("dict", opDict, CategoryDictionary)
	r.Register("begin", opBegin, CategoryDictionary)
	r.Register("end", opEnd, CategoryDictionary)
	r.Register("def", opDef, CategoryDictionary)
}

// opDict pops a size hint (ignored — this dictionary grows freely) and
// pushes a new empty dictionary.
func opDict(ctx values.Context) error {
	if _, err := ctx.Pop(); err != nil {
		return err
	}
	ctx.Push(values.NewDictionary())
	return nil
}

func opBegin(ctx values.Context) error {
	v, err := ctx.Pop()
	if err != nil {
		return err
	}
	d, ok := v.(*values.DictionaryValue)
	if !ok {
		return ctx.NewError(errors.ErrTypeMismatch, "begin expects a dictionary, got %s", v.Kind())
	}
	ctx.PushDict(d)
	return nil
}

func opEnd(ctx values.Context) error {
	return ctx.PopDict()
}

// opDef pops a value then a literal name and installs the binding in
// the current (top) dictionary.
func opDef(ctx values.Context) error {
	v, err := ctx.Pop()
	if err != nil {
		return err
	}
	nameVal, err := ctx.Pop()
	if err != nil {
		return err
	}
	name, ok := nameVal.(*values.LiteralNameValue)
	if !ok {
		return ctx.NewError(errors.ErrTypeMismatch, "def expects a literal name, got %s", nameVal.Kind())
	}
	ctx.Define(name.Text, v)
	return nil
}
