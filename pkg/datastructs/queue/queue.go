package queue

import (
	"iter"

	"github.com/huynhanx03/go-typedqueue/pkg/typespec"
)

// Queue is a generic interface for type-constrained FIFO queues.
//
// Accessors come in pairs that differ only in how an empty queue is
// reported: Peek and Poll return ok == false, Element and Remove return
// apperr.ErrNoSuchElement.
type Queue[T any] interface {
	// Add appends item. Returns an InvalidValueTypeError if item fails the
	// declared type, or apperr.ErrRejected if an admission policy refuses it.
	Add(item T) (bool, error)

	// Offer appends item. A refusal by the admission policy is reported as
	// (false, nil) rather than an error.
	Offer(item T) (bool, error)

	// Peek returns the head without removing it.
	Peek() (T, bool)

	// Element returns the head without removing it, or ErrNoSuchElement.
	Element() (T, error)

	// Poll removes and returns the head.
	Poll() (T, bool)

	// Remove removes and returns the head, or ErrNoSuchElement.
	Remove() (T, error)

	// Type returns the declared element type.
	Type() typespec.Spec

	// Size returns the number of queued items.
	Size() int

	// IsEmpty reports whether the queue holds no items.
	IsEmpty() bool

	// All yields items in FIFO order without consuming them.
	All() iter.Seq[T]
}
