package builtins

import "github.com/cwbudde/go-pslang/internal/values"

// RegisterComparisonOperators installs eq, ne, gt, and lt.
func RegisterComparisonOperators(r *Registry) {
	r.Register("eq", opEq, CategoryComparison)
	r.Register("ne", opNe, CategoryComparison)
	r.Register("gt", opGt, CategoryComparison)
	r.Register("lt", opLt, CategoryComparison)
}

func opEq(ctx values.Context) error {
	rhs, lhs, err := popPair(ctx)
	if err != nil {
		return err
	}
	ctx.Push(&values.BooleanValue{Value: values.Equal(lhs, rhs)})
	return nil
}

func opNe(ctx values.Context) error {
	rhs, lhs, err := popPair(ctx)
	if err != nil {
		return err
	}
	ctx.Push(&values.BooleanValue{Value: !values.Equal(lhs, rhs)})
	return nil
}

func opGt(ctx values.Context) error {
	lhs, rhs, err := numericOperands(ctx, "gt")
	if err != nil {
		return err
	}
	ctx.Push(&values.BooleanValue{Value: lhs > rhs})
	return nil
}

func opLt(ctx values.Context) error {
	lhs, rhs, err := numericOperands(ctx, "lt")
	if err != nil {
		return err
	}
	ctx.Push(&values.BooleanValue{Value: lhs < rhs})
	return nil
}

func popPair(ctx values.Context) (rhs, lhs values.Value, err error) {
	rhs, err = ctx.Pop()
	if err != nil {
		return nil, nil, err
	}
	lhs, err = ctx.Pop()
	if err != nil {
		return nil, nil, err
	}
	return rhs, lhs, nil
}
