package typespec

// Scalar names.
const (
	NameInteger = "integer"
	NameFloat   = "float"
	NameString  = "string"
	NameBool    = "bool"
	NameArray   = "array"
)

var (
	Integer = Spec{kind: KindScalar, name: NameInteger, match: isInteger}
	Float   = Spec{kind: KindScalar, name: NameFloat, match: isFloat}
	String  = Spec{kind: KindScalar, name: NameString, match: isString}
	Bool    = Spec{kind: KindScalar, name: NameBool, match: isBool}
	Array   = Spec{kind: KindScalar, name: NameArray, match: isArray}
)

// scalarAliases maps every accepted spelling to its canonical spec.
var scalarAliases = map[string]Spec{
	NameInteger: Integer,
	"int":       Integer,
	NameFloat:   Float,
	"double":    Float,
	NameString:  String,
	NameBool:    Bool,
	"boolean":   Bool,
	NameArray:   Array,
}

// Scalar returns the scalar spec for name, accepting the usual aliases.
func Scalar(name string) (Spec, bool) {
	s, ok := scalarAliases[name]
	return s, ok
}

func isInteger(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	}
	return false
}

func isFloat(v any) bool {
	switch v.(type) {
	case float32, float64:
		return true
	}
	return false
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

func isBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

func isArray(v any) bool {
	_, ok := v.([]any)
	return ok
}
