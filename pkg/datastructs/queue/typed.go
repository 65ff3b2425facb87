package queue

import (
	"iter"
	"slices"

	"github.com/huynhanx03/go-typedqueue/pkg/common/apperr"
	"github.com/huynhanx03/go-typedqueue/pkg/datastructs/typed"
	"github.com/huynhanx03/go-typedqueue/pkg/typespec"
)

var _ Queue[any] = (*Typed[any])(nil)

// AdmissionFunc decides whether one more item may join a queue currently
// holding size items.
type AdmissionFunc func(size int) bool

// Option configures a Typed queue.
type Option func(*config)

type config struct {
	admit    AdmissionFunc
	capacity int
}

// WithAdmission installs an admission policy. Without one the queue is unbounded.
func WithAdmission(fn AdmissionFunc) Option {
	return func(c *config) { c.admit = fn }
}

// WithCapacityHint pre-sizes the backing storage. It is not a limit, and
// oversized hints are clamped.
func WithCapacityHint(n int) Option {
	return func(c *config) { c.capacity = n }
}

// Typed is a FIFO queue over a typed.Container. The head is the element with
// the lowest surviving key, which is always the oldest surviving insertion.
// The zero value is not usable; create queues with New or NewWithOptions.
// It is NOT thread-safe.
type Typed[T any] struct {
	items *typed.Container[T]
	admit AdmissionFunc
}

// New creates a queue for spec seeded with initial, in order. The first
// element failing spec aborts construction.
func New[T any](spec typespec.Spec, initial ...T) (*Typed[T], error) {
	return NewWithOptions(spec, nil, initial...)
}

// NewWithOptions is New with options.
func NewWithOptions[T any](spec typespec.Spec, opts []Option, initial ...T) (*Typed[T], error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.capacity < len(initial) {
		cfg.capacity = len(initial)
	}

	q := &Typed[T]{
		items: typed.New[T](spec, typed.WithCapacity(cfg.capacity)),
		admit: cfg.admit,
	}
	for _, item := range initial {
		if err := q.items.Append(item); err != nil {
			return nil, err
		}
	}
	return q, nil
}

func (q *Typed[T]) admits() bool {
	return q.admit == nil || q.admit(q.items.Count())
}

// Add appends item.
func (q *Typed[T]) Add(item T) (bool, error) {
	if err := q.items.Check(item); err != nil {
		return false, err
	}
	if !q.admits() {
		return false, apperr.ErrRejected
	}
	if err := q.items.Append(item); err != nil {
		return false, err
	}
	return true, nil
}

// Offer appends item, reporting an admission refusal as false.
func (q *Typed[T]) Offer(item T) (bool, error) {
	if err := q.items.Check(item); err != nil {
		return false, err
	}
	if !q.admits() {
		return false, nil
	}
	if err := q.items.Append(item); err != nil {
		return false, err
	}
	return true, nil
}

// Push appends item like Add. It is the index-less positional write.
func (q *Typed[T]) Push(item T) error {
	_, err := q.Add(item)
	return err
}

// Set writes item at an explicit key. It moves the head only if key becomes
// the lowest key.
func (q *Typed[T]) Set(key int, item T) error {
	return q.items.Set(key, item)
}

// Get returns the item stored at key.
func (q *Typed[T]) Get(key int) (T, bool) {
	return q.items.Get(key)
}

// Peek returns the head without removing it.
func (q *Typed[T]) Peek() (T, bool) {
	key, ok := q.items.FirstKey()
	if !ok {
		var zero T
		return zero, false
	}
	return q.items.Get(key)
}

// Element returns the head without removing it.
func (q *Typed[T]) Element() (T, error) {
	item, ok := q.Peek()
	if !ok {
		return item, apperr.ErrNoSuchElement
	}
	return item, nil
}

// Poll removes and returns the head.
func (q *Typed[T]) Poll() (T, bool) {
	key, ok := q.items.FirstKey()
	if !ok {
		var zero T
		return zero, false
	}
	item, _ := q.items.Get(key)
	q.items.Remove(key)
	return item, true
}

// Remove removes and returns the head.
func (q *Typed[T]) Remove() (T, error) {
	item, ok := q.Poll()
	if !ok {
		return item, apperr.ErrNoSuchElement
	}
	return item, nil
}

// Type returns the declared element type.
func (q *Typed[T]) Type() typespec.Spec { return q.items.Type() }

// Size returns the number of queued items.
func (q *Typed[T]) Size() int { return q.items.Count() }

// IsEmpty reports whether the queue is empty.
func (q *Typed[T]) IsEmpty() bool { return q.items.Count() == 0 }

// All yields items head first. Each call starts a new pass.
func (q *Typed[T]) All() iter.Seq[T] { return q.items.Values() }

// ToSlice returns the items head first without consuming them.
func (q *Typed[T]) ToSlice() []T { return slices.Collect(q.items.Values()) }

// Drain polls every item, head first.
func (q *Typed[T]) Drain() []T {
	out := make([]T, 0, q.items.Count())
	for {
		item, ok := q.Poll()
		if !ok {
			return out
		}
		out = append(out, item)
	}
}

// Clear drops every item.
func (q *Typed[T]) Clear() { q.items.Clear() }
