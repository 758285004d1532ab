package cmd

import (
	"os"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwbudde/go-pslang/internal/interp"
)

// TestMain lets go-snaps prune snapshots no longer produced by any test
// in this package.
func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

// runForSnapshot drives the interpreter the same way runScript does,
// without going through cobra or os.Stdout, so output can be captured
// for snapshotting.
func runForSnapshot(t *testing.T, source string, mode interp.ScopingMode) string {
	t.Helper()
	var out strings.Builder
	interpreter := interp.New(&out, interp.WithScopingMode(mode))
	if err := interpreter.Run(source); err != nil {
		t.Fatalf("run %q: %v", source, err)
	}
	return out.String()
}

func TestRunProgramsDynamic(t *testing.T) {
	programs := map[string]string{
		"arithmetic": "3 4 add =",
		"def_lookup": "/x 10 def x 2 mul =",
		"ifelse":     "true { 1 } { 2 } ifelse =",
		"for_dup":    "0 1 3 { dup } for count =",
		"pretty":     "[ 1 [ 2 3 ] (hi) ] ==",
	}
	for name, source := range programs {
		t.Run(name, func(t *testing.T) {
			got := runForSnapshot(t, source, interp.Dynamic)
			snaps.MatchSnapshot(t, got)
		})
	}
}

func TestRunScopingDivergesBetweenModes(t *testing.T) {
	source := "/x 10 def /f { x } def /g { /x 99 def f } def g ="

	dynamic := runForSnapshot(t, source, interp.Dynamic)
	lexical := runForSnapshot(t, source, interp.Lexical)

	if dynamic == lexical {
		t.Fatalf("expected dynamic and lexical output to diverge, both were %q", dynamic)
	}
	snaps.MatchSnapshot(t, dynamic)
	snaps.MatchSnapshot(t, lexical)
}
