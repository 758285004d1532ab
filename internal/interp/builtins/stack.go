package builtins

import (
	"github.com/cwbudde/go-pslang/internal/errors"
	"github.com/cwbudde/go-pslang/internal/values"
)

// RegisterStackOperators installs pop, exch, dup, clear, count, and
// copy into r.
func RegisterStackOperators(r *Registry) {
	r.Register("pop", opPop, CategoryStack)
	r.Register("exch", opExch, CategoryStack)
	r.Register("dup", opDup, CategoryStack)
	r.Register("clear", opClear, CategoryStack)
	r.Register("count", opCount, CategoryStack)
	r.Register("copy", opCopy, CategoryStack)
}

func opPop(ctx values.Context) error {
	_, err := ctx.Pop()
	return err
}

func opExch(ctx values.Context) error {
	top, err := ctx.Pop()
	if err != nil {
		return err
	}
	second, err := ctx.Pop()
	if err != nil {
		return err
	}
	ctx.Push(top)
	ctx.Push(second)
	return nil
}

func opDup(ctx values.Context) error {
	top, err := ctx.Peek()
	if err != nil {
		return err
	}
	ctx.Push(top)
	return nil
}

func opClear(ctx values.Context) error {
	ctx.Clear()
	return nil
}

func opCount(ctx values.Context) error {
	ctx.Push(&values.IntegerValue{Value: int32(ctx.Depth())})
	return nil
}

func opCopy(ctx values.Context) error {
	nv, err := ctx.Pop()
	if err != nil {
		return err
	}
	n, ok := nv.(*values.IntegerValue)
	if !ok {
		return ctx.NewError(errors.ErrTypeMismatch, "copy expects an integer count, got %s", nv.Kind())
	}

	count := int(n.Value)
	depth := ctx.Depth()
	if count < 0 || count > depth {
		return ctx.NewError(errors.ErrRangeError, "copy count %d out of range [0, %d]", count, depth)
	}
	if count == 0 {
		return nil
	}

	items, err := ctx.PeekN(count)
	if err != nil {
		return err
	}
	for _, v := range items {
		ctx.Push(v)
	}
	return nil
}
