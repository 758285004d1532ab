package values

// Equal implements the structural equality used by `eq`/`ne` (the `for`
// auto-pop heuristic compares numbers with AlmostEqual directly). Integers and Reals compare numerically
// within Tolerance (Int<->Real permitted); Booleans by value;
// String/Name/LiteralName by text; Arrays element-wise using the same
// rule recursively. Procedures, Dictionaries, Marks, Nulls, and
// Builtins compare by identity.
func Equal(a, b Value) bool {
	if an, aok := numericOf(a); aok {
		if bn, bok := numericOf(b); bok {
			return AlmostEqual(an, bn)
		}
		return false
	}

	if a.Kind() != b.Kind() {
		return false
	}

	switch av := a.(type) {
	case *BooleanValue:
		return av.Value == b.(*BooleanValue).Value
	case *StringValue:
		return av.Value == b.(*StringValue).Value
	case *NameValue:
		return av.Text == b.(*NameValue).Text
	case *LiteralNameValue:
		return av.Text == b.(*LiteralNameValue).Text
	case *ArrayValue:
		bv := b.(*ArrayValue)
		if len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equal(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *ProcedureValue:
		return av == b.(*ProcedureValue)
	case *DictionaryValue:
		return av == b.(*DictionaryValue)
	case *MarkValue:
		return av == b.(*MarkValue)
	case *NullValue:
		return av == b.(*NullValue)
	case *BuiltinValue:
		return av == b.(*BuiltinValue)
	default:
		return false
	}
}

func numericOf(v Value) (float64, bool) {
	switch n := v.(type) {
	case *IntegerValue:
		return float64(n.Value), true
	case *RealValue:
		return n.Value, true
	default:
		return 0, false
	}
}
