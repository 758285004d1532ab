package interp

import (
	"strings"
	"testing"
)

func testEval(t *testing.T, source string, opts ...Option) string {
	t.Helper()
	var out strings.Builder
	interp := New(&out, opts...)
	if err := interp.Run(source); err != nil {
		t.Fatalf("run %q: %v", source, err)
	}
	return out.String()
}

func TestArithmeticAndPrint(t *testing.T) {
	got := testEval(t, "3 4 add =")
	if got != "7\n" {
		t.Fatalf("got %q, want %q", got, "7\n")
	}
}

func TestDefAndLookupDynamic(t *testing.T) {
	got := testEval(t, "/x 10 def x 2 mul =")
	if got != "20\n" {
		t.Fatalf("got %q, want %q", got, "20\n")
	}
}

func TestIfElse(t *testing.T) {
	got := testEval(t, "true { 1 } { 2 } ifelse =")
	if got != "1\n" {
		t.Fatalf("got %q, want %q", got, "1\n")
	}
	got = testEval(t, "false { 1 } { 2 } ifelse =")
	if got != "2\n" {
		t.Fatalf("got %q, want %q", got, "2\n")
	}
}

func TestForCountsIterations(t *testing.T) {
	got := testEval(t, "0 1 3 { dup } for count =")
	if got != "4\n" {
		t.Fatalf("got %q, want %q", got, "4\n")
	}
}

func TestDynamicScopingSeesCallerBinding(t *testing.T) {
	got := testEval(t, "/x 10 def /f { x } def /g { /x 99 def f } def g =", WithScopingMode(Dynamic))
	if got != "99\n" {
		t.Fatalf("dynamic: got %q, want %q", got, "99\n")
	}
}

func TestLexicalScopingSeesDefinitionSiteBinding(t *testing.T) {
	got := testEval(t, "/x 10 def /f { x } def /g { /x 99 def f } def g =", WithScopingMode(Lexical))
	if got != "10\n" {
		t.Fatalf("lexical: got %q, want %q", got, "10\n")
	}
}

func TestClearResetsCount(t *testing.T) {
	got := testEval(t, "1 2 3 count =")
	if got != "3\n" {
		t.Fatalf("got %q, want %q", got, "3\n")
	}
	got = testEval(t, "1 2 3 clear count =")
	if got != "0\n" {
		t.Fatalf("got %q, want %q", got, "0\n")
	}
}

func TestQuitStopsTopLevelEvaluation(t *testing.T) {
	got := testEval(t, "1 = quit 2 =")
	if got != "1\n" {
		t.Fatalf("got %q, want %q", got, "1\n")
	}
}

func TestUndefinedNameErrors(t *testing.T) {
	var out strings.Builder
	interp := New(&out)
	if err := interp.Run("nosuchname"); err == nil {
		t.Fatal("expected undefined name error")
	}
}

func TestDictBeginEndScoping(t *testing.T) {
	got := testEval(t, "3 dict begin /y 5 def y = end")
	if got != "5\n" {
		t.Fatalf("got %q, want %q", got, "5\n")
	}
}

func TestPrettyPrintArray(t *testing.T) {
	got := testEval(t, "[ 1 2 3 ] ==")
	if got != "[1 2 3]\n" {
		t.Fatalf("got %q, want %q", got, "[1 2 3]\n")
	}
}
