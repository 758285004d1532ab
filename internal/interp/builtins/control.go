package builtins

import (
	"github.com/cwbudde/go-pslang/internal/errors"
	"github.com/cwbudde/go-pslang/internal/values"
)

// RegisterControlOperators installs if, ifelse, repeat, and for.
func RegisterControlOperators(r *Registry) {
	r.Register("if", opIf, CategoryControl)
	r.Register("ifelse", opIfElse, CategoryControl)
	r.Register("repeat", opRepeat, CategoryControl)
	r.Register("for", opFor, CategoryControl)
}

func popProcedure(ctx values.Context, op string) (*values.ProcedureValue, error) {
	v, err := ctx.Pop()
	if err != nil {
		return nil, err
	}
	proc, ok := v.(*values.ProcedureValue)
	if !ok {
		return nil, ctx.NewError(errors.ErrTypeMismatch, "%s expects a procedure, got %s", op, v.Kind())
	}
	return proc, nil
}

func popBoolean(ctx values.Context, op string) (bool, error) {
	v, err := ctx.Pop()
	if err != nil {
		return false, err
	}
	b, ok := v.(*values.BooleanValue)
	if !ok {
		return false, ctx.NewError(errors.ErrTypeMismatch, "%s expects a boolean, got %s", op, v.Kind())
	}
	return b.Value, nil
}

func opIf(ctx values.Context) error {
	proc, err := popProcedure(ctx, "if")
	if err != nil {
		return err
	}
	cond, err := popBoolean(ctx, "if")
	if err != nil {
		return err
	}
	if cond {
		return ctx.Exec(proc)
	}
	return nil
}

func opIfElse(ctx values.Context) error {
	falseProc, err := popProcedure(ctx, "ifelse")
	if err != nil {
		return err
	}
	trueProc, err := popProcedure(ctx, "ifelse")
	if err != nil {
		return err
	}
	cond, err := popBoolean(ctx, "ifelse")
	if err != nil {
		return err
	}
	if cond {
		return ctx.Exec(trueProc)
	}
	return ctx.Exec(falseProc)
}

func opRepeat(ctx values.Context) error {
	proc, err := popProcedure(ctx, "repeat")
	if err != nil {
		return err
	}
	nv, err := ctx.Pop()
	if err != nil {
		return err
	}
	n, ok := nv.(*values.IntegerValue)
	if !ok {
		return ctx.NewError(errors.ErrTypeMismatch, "repeat expects an integer count, got %s", nv.Kind())
	}

	for i := int32(0); i < n.Value; i++ {
		if ctx.Quitting() {
			return nil
		}
		if err := ctx.Exec(proc); err != nil {
			return err
		}
	}
	return nil
}

// opFor pops body, limit, increment, initial — in that order, mirroring
// the push order `initial increment limit body for`. It pushes the
// current index before each body invocation and, if the body leaves a
// number on top equal to that index within tolerance, pops it — this
// lets a body that never consumes the index still terminate with a
// balanced stack.
func opFor(ctx values.Context) error {
	body, err := popProcedure(ctx, "for")
	if err != nil {
		return err
	}
	limitVal, err := ctx.Pop()
	if err != nil {
		return err
	}
	limit, ok := asNumber(limitVal)
	if !ok {
		return ctx.NewError(errors.ErrTypeMismatch, "for expects a numeric limit, got %s", limitVal.Kind())
	}
	incVal, err := ctx.Pop()
	if err != nil {
		return err
	}
	increment, ok := asNumber(incVal)
	if !ok {
		return ctx.NewError(errors.ErrTypeMismatch, "for expects a numeric increment, got %s", incVal.Kind())
	}
	if increment == 0 {
		return ctx.NewError(errors.ErrInvalidIncrement, "for increment must not be zero")
	}
	initialVal, err := ctx.Pop()
	if err != nil {
		return err
	}
	index, ok := asNumber(initialVal)
	if !ok {
		return ctx.NewError(errors.ErrTypeMismatch, "for expects a numeric initial value, got %s", initialVal.Kind())
	}

	for (increment > 0 && index <= limit) || (increment < 0 && index >= limit) {
		if ctx.Quitting() {
			return nil
		}
		ctx.Push(numericResult(index))
		if err := ctx.Exec(body); err != nil {
			return err
		}
		if top, err := ctx.Peek(); err == nil {
			if n, ok := asNumber(top); ok && values.AlmostEqual(n, index) {
				_, _ = ctx.Pop()
			}
		}
		index += increment
	}
	return nil
}
