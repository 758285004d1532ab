package interp

import (
	"github.com/cwbudde/go-pslang/internal/errors"
	"github.com/cwbudde/go-pslang/internal/values"
)

// Push implements values.Context.
func (i *Interpreter) Push(v values.Value) { i.stack = append(i.stack, v) }

// Pop implements values.Context.
func (i *Interpreter) Pop() (values.Value, error) {
	if len(i.stack) == 0 {
		return nil, i.NewError(errors.ErrStackUnderflow, "operand stack is empty")
	}
	v := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	return v, nil
}

// Peek implements values.Context.
func (i *Interpreter) Peek() (values.Value, error) {
	if len(i.stack) == 0 {
		return nil, i.NewError(errors.ErrStackUnderflow, "operand stack is empty")
	}
	return i.stack[len(i.stack)-1], nil
}

// PeekN implements values.Context.
func (i *Interpreter) PeekN(n int) ([]values.Value, error) {
	if n < 0 || n > len(i.stack) {
		return nil, i.NewError(errors.ErrRangeError, "cannot peek %d of %d operands", n, len(i.stack))
	}
	out := make([]values.Value, n)
	copy(out, i.stack[len(i.stack)-n:])
	return out, nil
}

// Depth implements values.Context.
func (i *Interpreter) Depth() int { return len(i.stack) }

// Clear implements values.Context.
func (i *Interpreter) Clear() { i.stack = nil }

// CurrentDict implements values.Context.
func (i *Interpreter) CurrentDict() *values.DictionaryValue { return i.dicts.Current() }

// SystemDict implements values.Context.
func (i *Interpreter) SystemDict() *values.DictionaryValue { return i.dicts.System() }

// PushDict implements values.Context.
func (i *Interpreter) PushDict(d *values.DictionaryValue) { i.dicts.Push(d) }

// PopDict implements values.Context.
func (i *Interpreter) PopDict() error { return i.dicts.Pop() }

// Define implements values.Context.
func (i *Interpreter) Define(name string, v values.Value) {
	i.dicts.Current().Entries[name] = v
}

// Write implements values.Context.
func (i *Interpreter) Write(s string) {
	if i.out != nil {
		_, _ = i.out.Write([]byte(s))
	}
}

// SetQuit implements values.Context.
func (i *Interpreter) SetQuit() { i.quit = true }

// Quitting implements values.Context.
func (i *Interpreter) Quitting() bool { return i.quit }

// Exec implements values.Context: it evaluates proc's code list under
// the environment the active scoping mode prescribes. In dynamic mode
// that is simply the live dictionary stack, unchanged. In lexical
// mode, proc.Env (nil unless proc was captured at a literal's
// evaluation site) becomes the current scope for the duration of the
// call and is restored afterward, so nested lexical calls each see
// their own closure.
func (i *Interpreter) Exec(proc *values.ProcedureValue) error {
	if i.mode == Lexical {
		saved := i.currentScope
		i.currentScope = proc.Env
		defer func() { i.currentScope = saved }()
	}
	return i.EvalAll(proc.Code)
}

// NewError implements values.Context, tagging the error with whichever
// operator invoked it is not known here — built-ins pass their own op
// name via the message; Op is left blank and filled in only for
// name-resolution errors raised directly by evalName.
func (i *Interpreter) NewError(kind errors.Kind, format string, args ...any) error {
	return errors.New(kind, "", format, args...)
}
