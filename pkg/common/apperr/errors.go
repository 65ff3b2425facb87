package apperr

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/huynhanx03/go-typedqueue/pkg/typespec"
)

// Messages
const (
	MsgQueueEmpty = "queue is empty"
	MsgRejected   = "element rejected"
	MsgExhausted  = "no keys left to append"
)

var (
	// ErrNoSuchElement is returned by strict accessors on an empty queue.
	ErrNoSuchElement = errors.New(MsgQueueEmpty)
	// ErrRejected is returned by Add when an admission policy refuses an element.
	ErrRejected = errors.New(MsgRejected)
	// ErrKeysExhausted is returned by Append once the highest int key is taken.
	ErrKeysExhausted = errors.New(MsgExhausted)
)

// InvalidValueTypeError reports a value that failed a type spec.
type InvalidValueTypeError struct {
	Expected string // declared type name
	Actual   string // dynamic type of the rejected value
}

func (e *InvalidValueTypeError) Error() string {
	return fmt.Sprintf("Value must be of type %s; value is %s", e.Expected, e.Actual)
}

// NewInvalidValueType builds the error for v failing spec, with a stack trace.
func NewInvalidValueType(spec typespec.Spec, v any) error {
	return errors.WithStack(&InvalidValueTypeError{
		Expected: spec.Name(),
		Actual:   typespec.Describe(v),
	})
}

// IsInvalidValueType reports whether err, or anything it wraps, is an InvalidValueTypeError.
func IsInvalidValueType(err error) bool {
	var target *InvalidValueTypeError
	return errors.As(err, &target)
}

// AsInvalidValueType extracts the InvalidValueTypeError from err's chain.
func AsInvalidValueType(err error) (*InvalidValueTypeError, bool) {
	var target *InvalidValueTypeError
	ok := errors.As(err, &target)
	return target, ok
}

// IsNoSuchElement reports whether err is ErrNoSuchElement.
func IsNoSuchElement(err error) bool {
	return errors.Is(err, ErrNoSuchElement)
}

// IsRejected reports whether err is ErrRejected.
func IsRejected(err error) bool {
	return errors.Is(err, ErrRejected)
}
