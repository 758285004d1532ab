package errors

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-pslang/internal/lexer"
)

func TestErrorWithoutOpOmitsColon(t *testing.T) {
	err := New(ErrStackUnderflow, "", "operand stack is empty")
	got := err.Error()
	want := "stack underflow: operand stack is empty"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestErrorWithOpIncludesIt(t *testing.T) {
	err := New(ErrTypeMismatch, "add", "expects a numeric operand, got Boolean")
	got := err.Error()
	want := "type error: add: expects a numeric operand, got Boolean"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatWithoutPositionFallsBackToError(t *testing.T) {
	err := New(ErrRangeError, "div", "div by zero")
	if got := err.Format("3 0 div", ""); got != err.Error() {
		t.Fatalf("got %q, want %q", got, err.Error())
	}
}

func TestFormatWithPositionRendersCaret(t *testing.T) {
	err := NewAt(ErrUndefinedName, "frobnicate", lexer.Position{Line: 2, Column: 5}, "undefined name %q", "frobnicate")
	source := "3 4 add =\nfrobnicate"
	got := err.Format(source, "example.ps")

	if !strings.Contains(got, "Error in example.ps:2:5") {
		t.Fatalf("missing location header: %q", got)
	}
	if !strings.Contains(got, "frobnicate") {
		t.Fatalf("missing source line: %q", got)
	}
	if !strings.Contains(got, "^") {
		t.Fatalf("missing caret: %q", got)
	}
}

func TestKindStringsAreDistinct(t *testing.T) {
	kinds := []Kind{
		ErrUndefinedName, ErrTypeMismatch, ErrStackUnderflow, ErrRangeError,
		ErrDictUnderflow, ErrInvalidIncrement, ErrNotExecutable,
	}
	seen := make(map[string]bool)
	for _, k := range kinds {
		s := k.String()
		if seen[s] {
			t.Fatalf("duplicate Kind string %q", s)
		}
		seen[s] = true
	}
}
