package script

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Operation names accepted in a script.
const (
	OpAdd     = "add"
	OpOffer   = "offer"
	OpPush    = "push"
	OpSet     = "set"
	OpGet     = "get"
	OpPeek    = "peek"
	OpElement = "element"
	OpPoll    = "poll"
	OpRemove  = "remove"
	OpSize    = "size"
	OpDrain   = "drain"
)

var (
	ErrUnknownOp  = errors.New("unknown operation")
	ErrMissingKey = errors.New("operation requires a key")
	ErrNoType     = errors.New("script has no type")
)

// Script drives a single queue: construction from Type and Initial, then
// each Op in order.
type Script struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Limit   int    `yaml:"limit"` // refuse additions at this size, 0 = unbounded
	Initial []any  `yaml:"initial"`
	Ops     []Op   `yaml:"ops"`
}

// Op is one queue call.
type Op struct {
	Op    string `yaml:"op"`
	Key   *int   `yaml:"key"`
	Value any    `yaml:"value"`
}

// Parse decodes a YAML script.
func Parse(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Wrap(err, "failed to parse script")
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and decodes the script at path. A script without a name is
// named after its path.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open script")
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

func (s *Script) validate() error {
	if s.Type == "" {
		return ErrNoType
	}
	for i, op := range s.Ops {
		switch op.Op {
		case OpSet, OpGet:
			if op.Key == nil {
				return errors.Wrapf(ErrMissingKey, "op %d (%s)", i, op.Op)
			}
		case OpAdd, OpOffer, OpPush, OpPeek, OpElement, OpPoll, OpRemove, OpSize, OpDrain:
		default:
			return errors.Wrapf(ErrUnknownOp, "op %d (%q)", i, op.Op)
		}
	}
	return nil
}
