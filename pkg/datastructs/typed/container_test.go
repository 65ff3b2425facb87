package typed

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huynhanx03/go-typedqueue/pkg/common/apperr"
	"github.com/huynhanx03/go-typedqueue/pkg/typespec"
)

func collect[T any](c *Container[T]) []T {
	return slices.Collect(c.Values())
}

// =============================================================================
// Method: Append()
// =============================================================================

func TestAppend(t *testing.T) {
	tests := []struct {
		name      string
		spec      typespec.Spec
		values    []any
		wantCount int
		wantErrAt int // index of the first failing value (-1 = none)
	}{
		{"strings", typespec.String, []any{"a", "b", "c"}, 3, -1},
		{"integers", typespec.Integer, []any{1, int64(2), uint(3)}, 3, -1},
		{"int_into_string", typespec.String, []any{"a", 1, "c"}, 2, 1},
		{"string_into_integer", typespec.Integer, []any{"1"}, 0, 0},
		{"nil_into_string", typespec.String, []any{nil}, 0, 0},
		{"stringers", typespec.Instance[fmt.Stringer]("fmt.Stringer"), []any{"plain"}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New[any](tt.spec)
			for i, v := range tt.values {
				err := c.Append(v)
				if i == tt.wantErrAt {
					require.Error(t, err)
					assert.True(t, apperr.IsInvalidValueType(err))
				} else {
					require.NoError(t, err)
				}
			}
			assert.Equal(t, tt.wantCount, c.Count())
		})
	}
}

func TestAppend_FailureLeavesNoTrace(t *testing.T) {
	c := New[any](typespec.String)
	require.NoError(t, c.Append("a"))

	err := c.Append(7)
	assert.EqualError(t, err, "Value must be of type string; value is int")
	assert.Equal(t, 1, c.Count())
	assert.Equal(t, []int{0}, c.Keys())

	require.NoError(t, c.Append("b"))
	assert.Equal(t, []int{0, 1}, c.Keys(), "failed append must not consume a key")
}

// =============================================================================
// Method: Set()
// =============================================================================

func TestSet(t *testing.T) {
	c := New[string](typespec.String)
	require.NoError(t, c.Append("a")) // 0
	require.NoError(t, c.Append("b")) // 1

	require.NoError(t, c.Set(0, "A"))
	require.NoError(t, c.Set(10, "z"))
	require.NoError(t, c.Set(-5, "neg"))
	require.NoError(t, c.Set(5, "mid"))

	if diff := cmp.Diff([]int{-5, 0, 1, 5, 10}, c.Keys()); diff != "" {
		t.Errorf("Keys() diff (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"neg", "A", "b", "mid", "z"}, collect(c)); diff != "" {
		t.Errorf("Values() diff (-want +got):\n%s", diff)
	}

	require.NoError(t, c.Append("next"))
	v, ok := c.Get(11)
	assert.True(t, ok, "append continues after the highest key")
	assert.Equal(t, "next", v)
}

func TestSet_Invalid(t *testing.T) {
	c := New[any](typespec.Integer)
	require.NoError(t, c.Append(1))

	err := c.Set(0, "one")
	assert.True(t, apperr.IsInvalidValueType(err))
	v, _ := c.Get(0)
	assert.Equal(t, 1, v)

	err = c.Set(3, 1.5)
	assert.True(t, apperr.IsInvalidValueType(err))
	assert.False(t, c.Has(3))
	assert.Equal(t, 1, c.Count())
}

// =============================================================================
// Method: Remove() / FirstKey()
// =============================================================================

func TestRemove(t *testing.T) {
	c := New[int](typespec.Integer)
	for i := range 5 {
		require.NoError(t, c.Append(i*10))
	}

	assert.True(t, c.Remove(0))
	assert.True(t, c.Remove(3))
	assert.False(t, c.Remove(3), "second removal is a no-op")
	assert.False(t, c.Remove(99))

	first, ok := c.FirstKey()
	require.True(t, ok)
	assert.Equal(t, 1, first)
	assert.Equal(t, []int{10, 20, 40}, collect(c))
	assert.Equal(t, 3, c.Count())

	require.NoError(t, c.Append(50))
	assert.Equal(t, []int{1, 2, 4, 5}, c.Keys(), "removed keys are never reused")
}

func TestFirstKey_Empty(t *testing.T) {
	c := New[string](typespec.String)
	_, ok := c.FirstKey()
	assert.False(t, ok)

	require.NoError(t, c.Append("x"))
	c.Remove(0)
	_, ok = c.FirstKey()
	assert.False(t, ok)
}

// =============================================================================
// Method: All() / Values()
// =============================================================================

func TestIteration_Restartable(t *testing.T) {
	c := New[string](typespec.String)
	for _, s := range []string{"a", "b", "c"} {
		require.NoError(t, c.Append(s))
	}

	assert.Equal(t, []string{"a", "b", "c"}, collect(c))
	assert.Equal(t, []string{"a", "b", "c"}, collect(c))

	c.Remove(0)
	assert.Equal(t, []string{"b", "c"}, collect(c))

	var keys []int
	for k := range c.All() {
		keys = append(keys, k)
		break
	}
	assert.Equal(t, []int{1}, keys)
}

func TestClear(t *testing.T) {
	c := New[int](typespec.Integer, WithCapacity(100))
	for i := range 3 {
		require.NoError(t, c.Append(i))
	}
	c.Clear()
	assert.Equal(t, 0, c.Count())
	assert.Empty(t, collect(c))

	require.NoError(t, c.Append(7))
	assert.Equal(t, []int{3}, c.Keys())
}

func TestDuplicates(t *testing.T) {
	type box struct{ n int }
	b := &box{1}

	c := New[*box](typespec.Of[*box]())
	require.NoError(t, c.Append(b))
	require.NoError(t, c.Append(b))
	assert.Equal(t, 2, c.Count())
	for v := range c.Values() {
		assert.Same(t, b, v)
	}
}

// =============================================================================
// Key space limits
// =============================================================================

func TestSet_MaxIntKey(t *testing.T) {
	c := New[string](typespec.String)
	require.NoError(t, c.Append("a")) // 0
	require.NoError(t, c.Set(math.MaxInt, "b"))

	err := c.Append("c")
	assert.ErrorIs(t, err, apperr.ErrKeysExhausted)
	assert.Equal(t, []int{0, math.MaxInt}, c.Keys())
	assert.True(t, slices.IsSorted(c.Keys()))

	// explicit writes below the top still work
	require.NoError(t, c.Set(5, "mid"))
	assert.Equal(t, []string{"a", "mid", "b"}, collect(c))

	assert.False(t, c.Remove(math.MinInt))
	assert.Equal(t, 3, c.Count())

	assert.True(t, c.Remove(0))
	first, ok := c.FirstKey()
	require.True(t, ok)
	assert.Equal(t, 5, first)
	assert.Equal(t, 2, c.Count())
	assert.False(t, c.Has(0))

	assert.True(t, c.Remove(math.MaxInt))
	assert.ErrorIs(t, c.Append("d"), apperr.ErrKeysExhausted, "used keys are never handed out again")
	assert.Equal(t, []int{5}, c.Keys())
}

func TestAppend_ReachesMaxInt(t *testing.T) {
	c := New[int](typespec.Integer)
	require.NoError(t, c.Set(math.MaxInt-1, 1))
	c.Remove(math.MaxInt - 1)

	require.NoError(t, c.Append(2))
	assert.Equal(t, []int{math.MaxInt}, c.Keys())
	assert.ErrorIs(t, c.Append(3), apperr.ErrKeysExhausted)
	assert.Equal(t, 1, c.Count())
}

func TestNew_LargeCapacityHint(t *testing.T) {
	assert.NotPanics(t, func() {
		c := New[int](typespec.Integer, WithCapacity(math.MaxInt))
		require.NoError(t, c.Append(1))
		assert.Equal(t, maxCapacityHint, cap(c.keys))
	})
}
