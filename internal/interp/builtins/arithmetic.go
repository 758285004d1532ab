package builtins

import (
	"github.com/cwbudde/go-pslang/internal/errors"
	"github.com/cwbudde/go-pslang/internal/values"
)

// RegisterArithmeticOperators installs add, sub, mul, div, and mod.
func RegisterArithmeticOperators(r *Registry) {
	r.Register("add", opAdd, CategoryArithmetic)
	r.Register("sub", opSub, CategoryArithmetic)
	r.Register("mul", opMul, CategoryArithmetic)
	r.Register("div", opDiv, CategoryArithmetic)
	r.Register("mod", opMod, CategoryArithmetic)
}

// numericOperands pops the RHS (pushed second, on top) then the LHS
// (pushed first), matching the operand order every arithmetic and
// comparison operator in this language shares.
func numericOperands(ctx values.Context, op string) (lhs, rhs float64, err error) {
	rhsVal, err := ctx.Pop()
	if err != nil {
		return 0, 0, err
	}
	lhsVal, err := ctx.Pop()
	if err != nil {
		return 0, 0, err
	}
	rhs, ok := asNumber(rhsVal)
	if !ok {
		return 0, 0, ctx.NewError(errors.ErrTypeMismatch, "%s expects a numeric operand, got %s", op, rhsVal.Kind())
	}
	lhs, ok = asNumber(lhsVal)
	if !ok {
		return 0, 0, ctx.NewError(errors.ErrTypeMismatch, "%s expects a numeric operand, got %s", op, lhsVal.Kind())
	}
	return lhs, rhs, nil
}

func asNumber(v values.Value) (float64, bool) {
	switch n := v.(type) {
	case *values.IntegerValue:
		return float64(n.Value), true
	case *values.RealValue:
		return n.Value, true
	default:
		return 0, false
	}
}

// numericResult returns an Integer when f is within tolerance of a
// representable int32, otherwise a Real — the rule every arithmetic
// operator here uses uniformly, including for operands that divide
// evenly.
func numericResult(f float64) values.Value {
	if n, ok := values.Int32Equal(f); ok {
		return &values.IntegerValue{Value: n}
	}
	return &values.RealValue{Value: f}
}

func opAdd(ctx values.Context) error {
	lhs, rhs, err := numericOperands(ctx, "add")
	if err != nil {
		return err
	}
	ctx.Push(numericResult(lhs + rhs))
	return nil
}

func opSub(ctx values.Context) error {
	lhs, rhs, err := numericOperands(ctx, "sub")
	if err != nil {
		return err
	}
	ctx.Push(numericResult(lhs - rhs))
	return nil
}

func opMul(ctx values.Context) error {
	lhs, rhs, err := numericOperands(ctx, "mul")
	if err != nil {
		return err
	}
	ctx.Push(numericResult(lhs * rhs))
	return nil
}

func opDiv(ctx values.Context) error {
	lhs, rhs, err := numericOperands(ctx, "div")
	if err != nil {
		return err
	}
	if rhs == 0 {
		return ctx.NewError(errors.ErrRangeError, "div by zero")
	}
	ctx.Push(numericResult(lhs / rhs))
	return nil
}

func opMod(ctx values.Context) error {
	rhsVal, err := ctx.Pop()
	if err != nil {
		return err
	}
	lhsVal, err := ctx.Pop()
	if err != nil {
		return err
	}
	rhs, ok := rhsVal.(*values.IntegerValue)
	if !ok {
		return ctx.NewError(errors.ErrTypeMismatch, "mod expects integer operands, got %s", rhsVal.Kind())
	}
	lhs, ok := lhsVal.(*values.IntegerValue)
	if !ok {
		return ctx.NewError(errors.ErrTypeMismatch, "mod expects integer operands, got %s", lhsVal.Kind())
	}
	if rhs.Value == 0 {
		return ctx.NewError(errors.ErrRangeError, "mod by zero")
	}
	ctx.Push(&values.IntegerValue{Value: lhs.Value % rhs.Value})
	return nil
}
