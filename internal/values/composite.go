package values

import (
	"strings"
	"sync/atomic"

	"github.com/cwbudde/go-pslang/internal/errors"
)

// ArrayValue is an ordered, self-evaluating sequence of values.
type ArrayValue struct {
	Elements []Value
}

func (v *ArrayValue) Kind() Kind { return KindArray }
func (v *ArrayValue) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range v.Elements {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Scope is the minimal interface a captured lexical frame chain must
// satisfy for a ProcedureValue to reference one without this package
// importing internal/env — which must import this package for the
// dictionary contents it snapshots. Breaking the cycle this way mirrors
// go-dws's ClassInfoEntry.Info any field, which exists for the same
// reason (avoiding a package cycle with the value types it wraps).
type Scope interface {
	Lookup(name string) (Value, bool)
}

// ProcedureValue is a code list delimited by `{ ... }` in source. It is
// self-evaluating as a literal (it gets pushed) but is executed — its
// Code is run — when it is the result of resolving a Name, or when a
// control operator invokes it directly.
//
// Env is nil until the procedure literal is first evaluated in lexical
// mode (state machine: uncaptured -> captured, firing at most once); it
// stays nil forever in dynamic mode, and for procedures installed
// without ever being evaluated as a literal.
type ProcedureValue struct {
	Code []Value
	Env  Scope
}

func (v *ProcedureValue) Kind() Kind { return KindProcedure }
func (v *ProcedureValue) String() string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for _, e := range v.Code {
		sb.WriteString(e.String())
		sb.WriteByte(' ')
	}
	sb.WriteByte('}')
	return sb.String()
}

var dictIDs atomic.Int64

// DictionaryValue is a mapping from identifier to value. Every
// dictionary (including the system dictionary and every dictionary
// pushed by `begin`) is one of these.
type DictionaryValue struct {
	id      int64
	Entries map[string]Value
}

// NewDictionary creates an empty dictionary with a fresh identity used
// only for its printed form (`<<dict N>>`).
func NewDictionary() *DictionaryValue {
	return &DictionaryValue{id: dictIDs.Add(1), Entries: make(map[string]Value)}
}

// ID returns the dictionary's print identity.
func (v *DictionaryValue) ID() int64 { return v.id }

func (v *DictionaryValue) Kind() Kind { return KindDictionary }
func (v *DictionaryValue) String() string {
	return "<<dict " + itoa(v.id) + ">>"
}

func itoa(n int64) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// MarkValue is the singleton sentinel pushed by implementations that
// need a stack marker (the language surface here never pushes one
// itself, but the value kind exists for fidelity with the model and for
// any built-in that chooses to use it as a delimiter).
type MarkValue struct{}

func (v *MarkValue) Kind() Kind     { return KindMark }
func (v *MarkValue) String() string { return "-mark-" }

// NullValue is the singleton null sentinel.
type NullValue struct{}

func (v *NullValue) Kind() Kind     { return KindNull }
func (v *NullValue) String() string { return "null" }

// Mark and Null are the shared singleton instances; comparisons of
// these kinds are by identity, so every Mark/Null in the system must be
// this same pointer.
var (
	Mark = &MarkValue{}
	Null = &NullValue{}
)

// BuiltinValue wraps an opaque built-in operator so it can live in the
// value space like any other entry in a dictionary. Fn is executed
// immediately whenever a BuiltinValue is the result of resolving a Name,
// or when one is encountered directly in a code list.
type BuiltinValue struct {
	Name string
	Fn   BuiltinFunc
}

func (v *BuiltinValue) Kind() Kind     { return KindBuiltin }
func (v *BuiltinValue) String() string { return v.Name }

// BuiltinFunc is the signature every built-in operator implements. It
// receives a Context — the minimal surface onto the interpreter's
// stacks and I/O that a built-in needs — rather than a concrete
// interpreter type, so that internal/interp/builtins never imports
// internal/interp (which in turn imports internal/interp/builtins to
// populate the system dictionary). This is the same shape go-dws's
// builtins package uses its own Context interface for.
type BuiltinFunc func(ctx Context) error

// Context is the interface a built-in operator uses to manipulate the
// operand stack, the dictionary stack, the quit flag, the output sink,
// and to invoke a procedure's body through the evaluator (needed by
// control-flow operators like if/ifelse/repeat/for).
type Context interface {
	// Push pushes a value onto the operand stack.
	Push(Value)
	// Pop pops and returns the top of the operand stack, or an error on
	// underflow.
	Pop() (Value, error)
	// Peek returns the top of the operand stack without popping it.
	Peek() (Value, error)
	// PeekN returns the top n values of the operand stack, in their
	// original bottom-to-top order, without removing them. Used by
	// `copy`.
	PeekN(n int) ([]Value, error)
	// Depth returns the current operand stack depth.
	Depth() int
	// Clear empties the operand stack.
	Clear()

	// CurrentDict returns the top of the dictionary stack.
	CurrentDict() *DictionaryValue
	// SystemDict returns the bottom of the dictionary stack.
	SystemDict() *DictionaryValue
	// PushDict pushes a dictionary onto the dictionary stack (`begin`).
	PushDict(d *DictionaryValue)
	// PopDict pops the dictionary stack (`end`), erroring if only the
	// system dictionary remains.
	PopDict() error
	// Define installs name -> value in the current (top) dictionary.
	Define(name string, v Value)

	// Write sends s to the output sink verbatim (no newline appended).
	Write(s string)

	// SetQuit requests termination at the next loop-iteration boundary.
	SetQuit()
	// Quitting reports whether SetQuit has been called.
	Quitting() bool

	// Exec runs proc's code list to completion (or until Quitting),
	// under proc's captured environment in lexical mode or the live
	// dictionary stack in dynamic mode — the same rule the evaluator
	// applies whenever a Name resolves to a procedure.
	Exec(proc *ProcedureValue) error

	// NewError builds the interpreter's single generic RuntimeError kind,
	// so built-ins never construct errors.RuntimeError literals
	// themselves. The error's Op is left blank; built-ins name
	// themselves in the message text.
	NewError(kind errors.Kind, format string, args ...any) error
}
