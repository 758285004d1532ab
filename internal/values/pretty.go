package values

import (
	"sort"
	"strings"
)

// Pretty renders the `==` form of a value: identical to String() for
// atoms, but recursively pretty-prints array and procedure elements and
// expands a dictionary into `<< /k v ... >>` instead of `<<dict N>>`.
// Dictionary keys are sorted for a deterministic, reproducible print —
// the language itself is silent on iteration order.
func Pretty(v Value) string {
	switch vv := v.(type) {
	case *ArrayValue:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, e := range vv.Elements {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(Pretty(e))
		}
		sb.WriteByte(']')
		return sb.String()
	case *ProcedureValue:
		var sb strings.Builder
		sb.WriteString("{ ")
		for _, e := range vv.Code {
			sb.WriteString(Pretty(e))
			sb.WriteByte(' ')
		}
		sb.WriteByte('}')
		return sb.String()
	case *DictionaryValue:
		keys := make([]string, 0, len(vv.Entries))
		for k := range vv.Entries {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var sb strings.Builder
		sb.WriteString("<< ")
		for _, k := range keys {
			sb.WriteString("/" + k + " ")
			sb.WriteString(Pretty(vv.Entries[k]))
			sb.WriteByte(' ')
		}
		sb.WriteString(">>")
		return sb.String()
	default:
		return v.String()
	}
}
