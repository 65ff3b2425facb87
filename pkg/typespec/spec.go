package typespec

import "fmt"

// Kind tags how a Spec decides membership.
type Kind uint8

const (
	// KindInvalid is the zero Kind. A Spec of this kind matches nothing.
	KindInvalid Kind = iota
	// KindScalar names a primitive kind such as "integer" or "string".
	KindScalar
	// KindInstance names an interface or concrete type.
	KindInstance
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindInstance:
		return "instance"
	default:
		return "invalid"
	}
}

// Spec is an immutable type specifier: a name plus the predicate that
// decides whether a value belongs to the named type.
type Spec struct {
	kind  Kind
	name  string
	match func(v any) bool
}

// Name returns the declared type name.
func (s Spec) Name() string { return s.name }

// Kind returns the tag of the spec.
func (s Spec) Kind() Kind { return s.kind }

// IsValid reports whether the spec was built by this package.
func (s Spec) IsValid() bool { return s.kind != KindInvalid && s.match != nil }

// Match reports whether v satisfies the spec. The zero Spec matches nothing.
func (s Spec) Match(v any) bool {
	if !s.IsValid() {
		return false
	}
	return s.match(v)
}

func (s Spec) String() string { return s.name }

// Instance returns a spec matching values whose dynamic type is I or
// implements I. name is what error messages report.
func Instance[I any](name string) Spec {
	return Spec{
		kind: KindInstance,
		name: name,
		match: func(v any) bool {
			_, ok := v.(I)
			return ok
		},
	}
}

// Of returns an instance spec for T named after T itself.
func Of[T any]() Spec {
	return Instance[T](fmt.Sprintf("%T", (*T)(nil))[1:])
}

// Describe renders the actual type of v for error messages.
func Describe(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
