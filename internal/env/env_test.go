package env

import (
	"testing"

	"github.com/cwbudde/go-pslang/internal/values"
	"github.com/stretchr/testify/require"
)

func TestDictStackBeginEndBalance(t *testing.T) {
	system := values.NewDictionary()
	stack := NewDictStack(system)
	require.Equal(t, 1, stack.Depth())

	stack.Push(values.NewDictionary())
	require.Equal(t, 2, stack.Depth())

	require.NoError(t, stack.Pop())
	require.Equal(t, 1, stack.Depth())
}

func TestDictStackPopPastSystemDictErrors(t *testing.T) {
	stack := NewDictStack(values.NewDictionary())
	err := stack.Pop()
	require.Error(t, err)
	require.Equal(t, 1, stack.Depth())
}

func TestDictStackLookupDynamicTopToBottom(t *testing.T) {
	system := values.NewDictionary()
	system.Entries["x"] = &values.IntegerValue{Value: 1}
	stack := NewDictStack(system)

	scope := values.NewDictionary()
	scope.Entries["x"] = &values.IntegerValue{Value: 2}
	stack.Push(scope)

	v, ok := stack.LookupDynamic("x")
	require.True(t, ok)
	require.Equal(t, int32(2), v.(*values.IntegerValue).Value)

	require.NoError(t, stack.Pop())
	v, ok = stack.LookupDynamic("x")
	require.True(t, ok)
	require.Equal(t, int32(1), v.(*values.IntegerValue).Value)
}

func TestCaptureSnapshotsBottomToTopAndIsFrozen(t *testing.T) {
	system := values.NewDictionary()
	system.Entries["x"] = &values.IntegerValue{Value: 10}
	stack := NewDictStack(system)

	scope := values.NewDictionary()
	stack.Push(scope)

	chain := stack.Capture()
	v, ok := chain.Lookup("x")
	require.True(t, ok)
	require.Equal(t, int32(10), v.(*values.IntegerValue).Value)

	// Mutating the live system dictionary after capture must not be
	// visible through the frozen chain.
	system.Entries["x"] = &values.IntegerValue{Value: 99}
	v, ok = chain.Lookup("x")
	require.True(t, ok)
	require.Equal(t, int32(10), v.(*values.IntegerValue).Value)
}

func TestCaptureInnermostShadowsOutermost(t *testing.T) {
	system := values.NewDictionary()
	system.Entries["x"] = &values.IntegerValue{Value: 1}
	stack := NewDictStack(system)

	scope := values.NewDictionary()
	scope.Entries["x"] = &values.IntegerValue{Value: 2}
	stack.Push(scope)

	chain := stack.Capture()
	v, ok := chain.Lookup("x")
	require.True(t, ok)
	require.Equal(t, int32(2), v.(*values.IntegerValue).Value)
}

func TestFrameLookupMissReturnsFalse(t *testing.T) {
	chain := &Frame{Dict: map[string]values.Value{}}
	_, ok := chain.Lookup("nope")
	require.False(t, ok)
}
