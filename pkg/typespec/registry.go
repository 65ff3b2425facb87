package typespec

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"
)

var (
	ErrUnknownType   = errors.New("unknown type")
	ErrDuplicateType = errors.New("type already registered")
	ErrInvalidSpec   = errors.New("invalid type spec")
)

// Registry resolves type names supplied at runtime, e.g. from configuration.
// It is NOT thread-safe; populate it before sharing.
type Registry struct {
	specs map[string]Spec
}

// NewRegistry returns a registry preloaded with the scalar kinds and the
// "error" and "fmt.Stringer" interfaces.
func NewRegistry() *Registry {
	r := &Registry{specs: make(map[string]Spec, len(scalarAliases)+2)}
	for name, s := range scalarAliases {
		r.specs[name] = s
	}
	r.specs["error"] = Instance[error]("error")
	r.specs["fmt.Stringer"] = Instance[fmt.Stringer]("fmt.Stringer")
	return r
}

// Register adds s under its own name.
func (r *Registry) Register(s Spec) error {
	if !s.IsValid() || s.name == "" {
		return ErrInvalidSpec
	}
	if _, ok := r.specs[s.name]; ok {
		return errors.Wrapf(ErrDuplicateType, "register %q", s.name)
	}
	r.specs[s.name] = s
	return nil
}

// Alias makes the spec registered as name also resolvable as alias.
func (r *Registry) Alias(alias, name string) error {
	s, err := r.Lookup(name)
	if err != nil {
		return err
	}
	if _, ok := r.specs[alias]; ok {
		return errors.Wrapf(ErrDuplicateType, "alias %q", alias)
	}
	r.specs[alias] = s
	return nil
}

// Lookup resolves name to a spec.
func (r *Registry) Lookup(name string) (Spec, error) {
	if s, ok := r.specs[name]; ok {
		return s, nil
	}
	return Spec{}, errors.Wrapf(ErrUnknownType, "lookup %q", name)
}

// Names returns every registered name, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
