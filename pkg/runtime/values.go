package runtime

import "fmt"

// Kind identifies the runtime value category.
type Kind int

const (
	KindNull Kind = iota
	KindInteger
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the closed set of SNOL runtime values: IntegerValue, FloatValue
// and NullValue. Consumers switch on the concrete type.
type Value interface {
	Kind() Kind
	isValue()
}

type IntegerValue struct {
	Val int64
}

func (IntegerValue) Kind() Kind { return KindInteger }
func (IntegerValue) isValue()   {}

type FloatValue struct {
	Val float64
}

func (FloatValue) Kind() Kind { return KindFloat }
func (FloatValue) isValue()   {}

type NullValue struct{}

func (NullValue) Kind() Kind { return KindNull }
func (NullValue) isValue()   {}

// Int and Float are shorthand constructors.
func Int(v int64) IntegerValue { return IntegerValue{Val: v} }

func Float(v float64) FloatValue { return FloatValue{Val: v} }

// IsNumeric reports whether v is an Integer or a Float.
func IsNumeric(v Value) bool {
	switch v.(type) {
	case IntegerValue, FloatValue:
		return true
	default:
		return false
	}
}

// SameKind reports whether two values share a runtime kind.
func SameKind(a, b Value) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Kind() == b.Kind()
}
