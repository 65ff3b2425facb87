package typed

import (
	"iter"
	"math"
	"slices"

	"github.com/huynhanx03/go-typedqueue/pkg/common/apperr"
	"github.com/huynhanx03/go-typedqueue/pkg/typespec"
	"github.com/huynhanx03/go-typedqueue/pkg/utils"
)

// Container is an ordered, integer-keyed store whose values all satisfy one
// declared type spec. Keys handed out by Append grow monotonically and are
// never reused, so ascending key order is insertion order net of removals.
// It is NOT thread-safe.
type Container[T any] struct {
	spec   typespec.Spec
	values map[int]T
	keys   []int // ascending, mirrors the key set of values
	next   int   // key the next Append receives
	// exhausted is set once math.MaxInt has been used; Append then has no key left.
	exhausted bool
}

// Option configures a Container.
type Option func(*options)

type options struct {
	capacity int
}

// WithCapacity pre-sizes storage for about n elements.
func WithCapacity(n int) Option {
	return func(o *options) { o.capacity = n }
}

// New creates an empty container enforcing spec.
func New[T any](spec typespec.Spec, opts ...Option) *Container[T] {
	o := options{capacity: defaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	o.capacity = min(max(o.capacity, defaultCapacity), maxCapacityHint)
	capacity := utils.CeilToPowerOfTwo(o.capacity)

	return &Container[T]{
		spec:   spec,
		values: make(map[int]T, capacity),
		keys:   make([]int, 0, capacity),
	}
}

// Type returns the declared spec.
func (c *Container[T]) Type() typespec.Spec { return c.spec }

// Check validates v against the declared spec without storing it.
func (c *Container[T]) Check(v T) error {
	if !c.spec.Match(v) {
		return apperr.NewInvalidValueType(c.spec, v)
	}
	return nil
}

// Append validates v and stores it under the next sequential key. Once
// math.MaxInt has been used no key is left and Append returns
// apperr.ErrKeysExhausted.
func (c *Container[T]) Append(v T) error {
	if err := c.Check(v); err != nil {
		return err
	}
	if c.exhausted {
		return apperr.ErrKeysExhausted
	}
	key := c.next
	c.values[key] = v
	c.keys = append(c.keys, key)
	if key == math.MaxInt {
		c.exhausted = true
	} else {
		c.next++
	}
	return nil
}

// Set validates v and stores it at key, creating the slot if needed.
func (c *Container[T]) Set(key int, v T) error {
	if err := c.Check(v); err != nil {
		return err
	}
	if _, ok := c.values[key]; !ok {
		idx, _ := slices.BinarySearch(c.keys, key)
		c.keys = slices.Insert(c.keys, idx, key)
	}
	c.values[key] = v
	switch {
	case key == math.MaxInt:
		c.exhausted = true
	case key >= c.next:
		c.next = key + 1
	}
	return nil
}

// Get returns the value at key.
func (c *Container[T]) Get(key int) (T, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Has reports whether key is present.
func (c *Container[T]) Has(key int) bool {
	_, ok := c.values[key]
	return ok
}

// Remove deletes key. Removing an absent key is a no-op returning false.
func (c *Container[T]) Remove(key int) bool {
	if _, ok := c.values[key]; !ok {
		return false
	}
	delete(c.values, key)

	idx, found := slices.BinarySearch(c.keys, key)
	if !found {
		// keys must mirror values; fall back to a scan rather than delete a neighbour
		if idx = slices.Index(c.keys, key); idx < 0 {
			return true
		}
	}
	if idx == 0 {
		// head removal is the hot path for queues
		c.keys = c.keys[1:]
	} else {
		c.keys = slices.Delete(c.keys, idx, idx+1)
	}
	return true
}

// FirstKey returns the lowest present key.
func (c *Container[T]) FirstKey() (int, bool) {
	if len(c.keys) == 0 {
		return 0, false
	}
	return c.keys[0], true
}

// Count returns the number of stored elements.
func (c *Container[T]) Count() int { return len(c.keys) }

// Keys returns a copy of the present keys in ascending order.
func (c *Container[T]) Keys() []int { return slices.Clone(c.keys) }

// All yields key/value pairs in ascending key order. Every call starts a
// fresh pass from the current lowest key. The container must not be mutated
// during a pass.
func (c *Container[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for _, key := range c.keys {
			if !yield(key, c.values[key]) {
				return
			}
		}
	}
}

// Values yields values in ascending key order.
func (c *Container[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, key := range c.keys {
			if !yield(c.values[key]) {
				return
			}
		}
	}
}

// Clear removes every element. Key assignment keeps counting from where it was.
func (c *Container[T]) Clear() {
	clear(c.values)
	c.keys = c.keys[:0]
}
