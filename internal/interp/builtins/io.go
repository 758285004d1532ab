package builtins

import (
	"github.com/cwbudde/go-pslang/internal/errors"
	"github.com/cwbudde/go-pslang/internal/values"
)

// RegisterIOOperators installs quit, print, =, and ==.
func RegisterIOOperators(r *Registry) {
	r.Register("quit", opQuit, CategoryIO)
	r.Register("print", opPrint, CategoryIO)
	r.Register("=", opPrintLine, CategoryIO)
	r.Register("==", opPrintPretty, CategoryIO)
}

func opQuit(ctx values.Context) error {
	ctx.SetQuit()
	return nil
}

func opPrint(ctx values.Context) error {
	v, err := ctx.Pop()
	if err != nil {
		return err
	}
	s, ok := v.(*values.StringValue)
	if !ok {
		return ctx.NewError(errors.ErrTypeMismatch, "print expects a string, got %s", v.Kind())
	}
	ctx.Write(s.Value)
	return nil
}

func opPrintLine(ctx values.Context) error {
	v, err := ctx.Pop()
	if err != nil {
		return err
	}
	ctx.Write(v.String() + "\n")
	return nil
}

func opPrintPretty(ctx values.Context) error {
	v, err := ctx.Pop()
	if err != nil {
		return err
	}
	ctx.Write(values.Pretty(v) + "\n")
	return nil
}
