package values

import (
	"strconv"

	"github.com/cwbudde/go-pslang/internal/lexer"
)

// Value is the interface every runtime value implements. It deliberately
// stays tiny: Kind for dispatch, String for the `=` one-line printed
// form. Pretty-printing for `==` is a free function (see pretty.go)
// because it needs to recurse into Array/Procedure/Dictionary elements.
type Value interface {
	Kind() Kind
	String() string
}

// IntegerValue is a 32-bit signed integer.
type IntegerValue struct {
	Value int32
}

func (v *IntegerValue) Kind() Kind     { return KindInteger }
func (v *IntegerValue) String() string { return strconv.FormatInt(int64(v.Value), 10) }

// RealValue is an IEEE double.
type RealValue struct {
	Value float64
}

func (v *RealValue) Kind() Kind     { return KindReal }
func (v *RealValue) String() string { return strconv.FormatFloat(v.Value, 'g', -1, 64) }

// BooleanValue is a boolean.
type BooleanValue struct {
	Value bool
}

func (v *BooleanValue) Kind() Kind { return KindBoolean }
func (v *BooleanValue) String() string {
	if v.Value {
		return "true"
	}
	return "false"
}

// StringValue is a byte sequence; the enclosing parentheses from source
// are never part of the payload.
type StringValue struct {
	Value string
}

func (v *StringValue) Kind() Kind     { return KindString }
func (v *StringValue) String() string { return "(" + v.Value + ")" }

// NameValue is an executable name: on evaluation it triggers lookup and
// execution of whatever it resolves to. Pos records where the name
// appeared in source, so an undefined-name error can point back at it.
type NameValue struct {
	Text string
	Pos  lexer.Position
}

func (v *NameValue) Kind() Kind     { return KindName }
func (v *NameValue) String() string { return v.Text }

// LiteralNameValue is a name pushed as data (the leading '/' from source
// is not stored). It never triggers lookup.
type LiteralNameValue struct {
	Text string
}

func (v *LiteralNameValue) Kind() Kind     { return KindLiteralName }
func (v *LiteralNameValue) String() string { return "/" + v.Text }

// Int32Equal reports whether f is within tolerance of an exact int32,
// and returns that integer. Used by builtins that must decide whether
// an arithmetic result is an Integer or a Real (see
// internal/interp/builtins); the parser does not use it, since integers
// are recognized lexically there.
func Int32Equal(f float64) (int32, bool) {
	r := int64(roundHalfAwayFromZero(f))
	if AlmostEqual(f, float64(r)) && r >= minInt32 && r <= maxInt32 {
		return int32(r), true
	}
	return 0, false
}

const (
	minInt32 = -2147483648
	maxInt32 = 2147483647
)

func roundHalfAwayFromZero(f float64) float64 {
	if f < 0 {
		return -roundHalfAwayFromZero(-f)
	}
	i := float64(int64(f))
	if f-i >= 0.5 {
		return i + 1
	}
	return i
}

// Tolerance is the numeric comparison slop used throughout the
// evaluator: Integer/Real equality, the `for` auto-pop heuristic, and
// the Integer-vs-Real decision for arithmetic results all compare
// within this tolerance rather than for exact equality.
const Tolerance = 1e-12

// AlmostEqual reports whether a and b differ by no more than Tolerance.
func AlmostEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= Tolerance
}
