package script

import (
	"github.com/pkg/errors"

	"github.com/huynhanx03/go-typedqueue/pkg/datastructs/queue"
	"github.com/huynhanx03/go-typedqueue/pkg/typespec"
)

// Step is the outcome of one Op.
type Step struct {
	Op    string `json:"op"`
	Key   *int   `json:"key,omitempty"`
	Value any    `json:"value,omitempty"`
	OK    bool   `json:"ok"`
	Err   string `json:"error,omitempty"`
}

// Failed reports whether the queue returned an error for this step.
func (s Step) Failed() bool { return s.Err != "" }

// Result is the outcome of one Script.
type Result struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Steps []Step `json:"steps"`
	Final []any  `json:"final"`
}

// Failures counts the steps that returned an error.
func (r *Result) Failures() int {
	n := 0
	for _, s := range r.Steps {
		if s.Failed() {
			n++
		}
	}
	return n
}

// Run executes s against a fresh queue. Errors returned by queue operations
// are recorded on their Step; only construction failures abort the run.
func Run(s *Script, reg *typespec.Registry) (*Result, error) {
	spec, err := reg.Lookup(s.Type)
	if err != nil {
		return nil, errors.WithMessage(err, s.Name)
	}

	var opts []queue.Option
	if s.Limit > 0 {
		limit := s.Limit
		opts = append(opts, queue.WithAdmission(func(size int) bool { return size < limit }))
	}

	q, err := queue.NewWithOptions(spec, opts, s.Initial...)
	if err != nil {
		return nil, errors.WithMessagef(err, "%s: initial elements", s.Name)
	}

	res := &Result{
		Name:  s.Name,
		Type:  spec.Name(),
		Steps: make([]Step, 0, len(s.Ops)),
	}
	for _, op := range s.Ops {
		step, err := apply(q, op)
		if err != nil {
			return nil, errors.WithMessage(err, s.Name)
		}
		res.Steps = append(res.Steps, step)
	}
	res.Final = q.ToSlice()
	return res, nil
}

func apply(q *queue.Typed[any], op Op) (Step, error) {
	step := Step{Op: op.Op, Key: op.Key}

	var err error
	switch op.Op {
	case OpAdd:
		step.Value = op.Value
		step.OK, err = q.Add(op.Value)
	case OpOffer:
		step.Value = op.Value
		step.OK, err = q.Offer(op.Value)
	case OpPush:
		step.Value = op.Value
		err = q.Push(op.Value)
		step.OK = err == nil
	case OpSet:
		if op.Key == nil {
			return step, ErrMissingKey
		}
		step.Value = op.Value
		err = q.Set(*op.Key, op.Value)
		step.OK = err == nil
	case OpGet:
		if op.Key == nil {
			return step, ErrMissingKey
		}
		step.Value, step.OK = q.Get(*op.Key)
	case OpPeek:
		step.Value, step.OK = q.Peek()
	case OpPoll:
		step.Value, step.OK = q.Poll()
	case OpElement:
		step.Value, err = q.Element()
		step.OK = err == nil
	case OpRemove:
		step.Value, err = q.Remove()
		step.OK = err == nil
	case OpSize:
		step.Value, step.OK = q.Size(), true
	case OpDrain:
		step.Value, step.OK = q.Drain(), true
	default:
		return step, errors.Wrapf(ErrUnknownOp, "%q", op.Op)
	}

	if err != nil {
		step.Err = err.Error()
	}
	return step, nil
}
