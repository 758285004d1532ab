package env

import "github.com/cwbudde/go-pslang/internal/values"

// Frame is one link in an immutable, acyclic environment chain captured
// from the dictionary stack. Frames only ever point outward (toward the
// system dictionary), so no cycle can form and the chain may be shared
// freely between procedures captured at the same scope depth.
type Frame struct {
	Dict  map[string]values.Value
	Outer *Frame
}

// Lookup searches the chain innermost-first, satisfying values.Scope so
// a ProcedureValue can carry a *Frame without this package's values
// dependency running in the other direction.
func (f *Frame) Lookup(name string) (values.Value, bool) {
	for frame := f; frame != nil; frame = frame.Outer {
		if v, ok := frame.Dict[name]; ok {
			return v, true
		}
	}
	return nil, false
}
