// Package interp implements the evaluator: the operand stack, the
// dictionary stack, scoping-mode dispatch, and the built-in registry
// installation that together run a parsed code list. It imports
// internal/interp/builtins to populate the system dictionary but is
// never imported by it, the same direction go-dws's internal/interp
// relates to internal/interp/builtins.
package interp

import (
	"io"

	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/go-pslang/internal/env"
	"github.com/cwbudde/go-pslang/internal/errors"
	"github.com/cwbudde/go-pslang/internal/interp/builtins"
	"github.com/cwbudde/go-pslang/internal/lexer"
	"github.com/cwbudde/go-pslang/internal/parser"
	"github.com/cwbudde/go-pslang/internal/values"
)

// ScopingMode selects how a Name resolves to a procedure's closing
// environment when that procedure is later invoked.
type ScopingMode int

const (
	// Dynamic resolves names by searching the live dictionary stack,
	// top to bottom, at call time.
	Dynamic ScopingMode = iota
	// Lexical resolves names against the frame chain captured at the
	// procedure literal's evaluation site, falling back to the live
	// system dictionary on a chain miss.
	Lexical
)

// Interpreter holds the operand stack, the dictionary stack, the
// current scoping mode, and the I/O sink the `print`/`=`/`==`
// built-ins write to. It implements values.Context so the builtins
// package can drive it without importing it.
type Interpreter struct {
	stack []values.Value
	dicts *env.DictStack
	mode  ScopingMode
	quit  bool
	out   io.Writer

	registry *builtins.Registry
	log      logrus.FieldLogger
	trace    bool
	sessionID uuid.UUID

	// currentScope is the captured frame chain of the procedure
	// currently executing under lexical mode, or nil at the top level
	// or under dynamic mode. Exec sets and restores it around each
	// invocation so a nested call's resolve() sees its own closure
	// rather than its caller's.
	currentScope values.Scope
}

// Option configures an Interpreter at construction.
type Option func(*Interpreter)

// WithScopingMode selects dynamic or lexical name resolution. Dynamic
// is the default.
func WithScopingMode(mode ScopingMode) Option {
	return func(i *Interpreter) { i.mode = mode }
}

// WithLogger overrides the default (silent) logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(i *Interpreter) { i.log = log }
}

// WithTrace enables per-step tracing to the logger.
func WithTrace(enabled bool) Option {
	return func(i *Interpreter) { i.trace = enabled }
}

// WithRegistry overrides the built-in registry installed into the
// system dictionary. Defaults to builtins.DefaultRegistry.
func WithRegistry(r *builtins.Registry) Option {
	return func(i *Interpreter) { i.registry = r }
}

// New constructs an Interpreter writing program output to out, with
// every built-in operator installed into a fresh system dictionary.
func New(out io.Writer, opts ...Option) *Interpreter {
	sessionID, err := uuid.NewV4()
	if err != nil {
		sessionID = uuid.Nil
	}

	i := &Interpreter{
		out:       out,
		registry:  builtins.DefaultRegistry,
		log:       logrus.New(),
		sessionID: sessionID,
	}
	if l, ok := i.log.(*logrus.Logger); ok {
		l.SetLevel(logrus.WarnLevel)
	}

	for _, opt := range opts {
		opt(i)
	}

	system := values.NewDictionary()
	i.dicts = env.NewDictStack(system)
	builtins.Install(i, i.registry)

	i.log = i.log.WithField("session", i.sessionID.String())
	return i
}

// Run tokenizes, parses, and evaluates source top to bottom, stopping
// early if the program invokes quit.
func (i *Interpreter) Run(source string) error {
	i.log.Debug("run: tokenizing source")
	tokens := lexer.Tokenize(source)
	code := parser.New(tokens).Parse()
	i.log.WithField("ops", len(code)).Debug("run: parsed program")

	return i.EvalAll(code)
}

// EvalAll evaluates each value of code in order against the top-level
// environment, honoring the quit flag at each step boundary.
func (i *Interpreter) EvalAll(code []values.Value) error {
	for _, v := range code {
		if i.quit {
			return nil
		}
		if err := i.Eval(v); err != nil {
			return err
		}
	}
	return nil
}

// Eval evaluates a single value per §4.4's dispatch rule: every kind
// other than Name and Builtin is self-evaluating (it is pushed), a
// Name resolves and recurses into the resolved value's own evaluation,
// and a Builtin fires immediately.
func (i *Interpreter) Eval(v values.Value) error {
	switch val := v.(type) {
	case *values.NameValue:
		return i.evalName(val)
	case *values.BuiltinValue:
		if i.trace {
			i.log.WithField("op", val.Name).Trace("exec builtin")
		}
		return val.Fn(i)
	case *values.ProcedureValue:
		i.Push(i.capturedIfLexical(val))
		return nil
	default:
		i.Push(v)
		return nil
	}
}

// capturedIfLexical returns p unchanged in dynamic mode. In lexical
// mode, the first time p is evaluated as a literal it sets p.Env to a
// frozen snapshot of the current dictionary stack and returns p. A
// procedure that already carries an Env (captured earlier, or shared
// from an array/dict literal) is never recaptured.
func (i *Interpreter) capturedIfLexical(p *values.ProcedureValue) *values.ProcedureValue {
	if i.mode != Lexical || p.Env != nil {
		return p
	}
	p.Env = i.dicts.Capture()
	return p
}

// evalName resolves val per the active scoping mode and evaluates
// whatever it resolves to. Undefined names are a runtime error
// carrying val's source position.
func (i *Interpreter) evalName(val *values.NameValue) error {
	resolved, ok := i.resolve(val.Text)
	if !ok {
		return errors.NewAt(errors.ErrUndefinedName, val.Text, val.Pos, "undefined name %q", val.Text)
	}
	if i.trace {
		i.log.WithField("name", val.Text).Trace("resolved name")
	}
	return i.evalResolved(resolved)
}

// evalResolved dispatches on the resolved value itself: procedures
// execute (their Code runs), builtins fire, and anything else pushes
// as a literal result — the same rule Eval applies to the value that
// named it.
func (i *Interpreter) evalResolved(v values.Value) error {
	switch val := v.(type) {
	case *values.ProcedureValue:
		return i.Exec(val)
	case *values.BuiltinValue:
		if i.trace {
			i.log.WithField("op", val.Name).Trace("exec builtin")
		}
		return val.Fn(i)
	default:
		i.Push(v)
		return nil
	}
}

// resolve looks up name under the active scoping mode. In dynamic
// mode it searches the live dictionary stack top to bottom. In
// lexical mode, procedures invoked with a captured Env search that
// frozen chain first and, on a miss, consult the live system
// dictionary directly — procedures without a captured Env (never
// evaluated as a literal under lexical mode, e.g. one installed
// directly via `def` from outside any procedure body) fall back to
// the ordinary dynamic search.
func (i *Interpreter) resolve(name string) (values.Value, bool) {
	if i.mode == Lexical {
		if scope := i.currentScope; scope != nil {
			if v, ok := scope.Lookup(name); ok {
				return v, true
			}
			if v, ok := i.dicts.System().Entries[name]; ok {
				return v, true
			}
			return nil, false
		}
	}
	return i.dicts.LookupDynamic(name)
}
