// Package env implements the dictionary stack and the lexical capture
// chain described for this language: a LIFO of dictionaries whose
// bottom element is an immutable-in-identity system dictionary, plus an
// immutable snapshot chain captured from that stack at a procedure
// literal's evaluation site.
//
// The shape mirrors go-dws's internal/interp/runtime.Environment
// (outer-pointer chain, innermost-first lookup) generalized from a
// live, mutable chain to a frozen snapshot chain, since lexical capture
// here takes effect once per procedure rather than following live
// scope mutation.
package env

import (
	"github.com/cwbudde/go-pslang/internal/errors"
	"github.com/cwbudde/go-pslang/internal/values"
)

// DictStack is the interpreter's dictionary stack. The bottom entry
// (index 0) is the system dictionary populated with built-ins at
// construction; it is never removed.
type DictStack struct {
	dicts []*values.DictionaryValue
}

// NewDictStack creates a dictionary stack seeded with the given system
// dictionary as its sole, bottom entry.
func NewDictStack(system *values.DictionaryValue) *DictStack {
	return &DictStack{dicts: []*values.DictionaryValue{system}}
}

// Push implements `begin`: pushes d onto the stack, making it the
// current (top) scope.
func (s *DictStack) Push(d *values.DictionaryValue) {
	s.dicts = append(s.dicts, d)
}

// Pop implements `end`: pops the top dictionary. It is an error to pop
// past the system dictionary — the stack depth never falls below one.
func (s *DictStack) Pop() error {
	if len(s.dicts) <= 1 {
		return errors.New(errors.ErrDictUnderflow, "end", "cannot pop the system dictionary")
	}
	s.dicts = s.dicts[:len(s.dicts)-1]
	return nil
}

// Current returns the top of the stack (the current scope for `def`).
func (s *DictStack) Current() *values.DictionaryValue {
	return s.dicts[len(s.dicts)-1]
}

// System returns the bottom of the stack.
func (s *DictStack) System() *values.DictionaryValue {
	return s.dicts[0]
}

// Depth returns the current stack depth.
func (s *DictStack) Depth() int {
	return len(s.dicts)
}

// LookupDynamic searches the stack from top to bottom for name,
// returning the first hit. This is dynamic-mode name resolution.
func (s *DictStack) LookupDynamic(name string) (values.Value, bool) {
	for i := len(s.dicts) - 1; i >= 0; i-- {
		if v, ok := s.dicts[i].Entries[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Capture snapshots the current stack bottom-to-top into an immutable
// Frame chain: the returned Frame represents the current (innermost)
// scope, and its Outer chain walks down to a Frame wrapping the system
// dictionary (outermost). Each frame is a shallow copy of the
// corresponding dictionary's entries at the moment of capture — later
// mutations of the live dictionaries are not visible through the
// chain, matching the snapshot semantics this language's lexical mode
// requires.
func (s *DictStack) Capture() *Frame {
	var chain *Frame
	for _, d := range s.dicts {
		snapshot := make(map[string]values.Value, len(d.Entries))
		for k, v := range d.Entries {
			snapshot[k] = v
		}
		chain = &Frame{Dict: snapshot, Outer: chain}
	}
	return chain
}
