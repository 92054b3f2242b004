package ply

import "fmt"

// Value is one decoded scalar together with its declared type. Exactly one
// of the numeric fields is meaningful, selected by the type's class: Int
// for char/short/int, Uint for uchar/ushort/uint, Float for float/double.
type Value struct {
	Type  ScalarType
	Int   int64
	Uint  uint64
	Float float64
}

// IntValue returns a Value of a signed scalar type.
func IntValue(t ScalarType, v int64) Value { return Value{Type: t, Int: v} }

// UintValue returns a Value of an unsigned scalar type.
func UintValue(t ScalarType, v uint64) Value { return Value{Type: t, Uint: v} }

// FloatValue returns a Value of a floating scalar type.
func FloatValue(t ScalarType, v float64) Value { return Value{Type: t, Float: v} }

// AsFloat64 converts the value to float64 regardless of its type.
func (v Value) AsFloat64() float64 {
	switch v.Type.valueClass() {
	case classSigned:
		return float64(v.Int)
	case classUnsigned:
		return float64(v.Uint)
	default:
		return v.Float
	}
}

func (v Value) String() string {
	switch v.Type.valueClass() {
	case classSigned:
		return fmt.Sprintf("%d", v.Int)
	case classUnsigned:
		return fmt.Sprintf("%d", v.Uint)
	default:
		return fmt.Sprintf("%g", v.Float)
	}
}

// Property is one decoded property value: either a scalar or a list of
// scalars, matching the shape its PropertyDef declares.
type Property struct {
	IsList bool
	Scalar Value   // when !IsList
	List   []Value // when IsList
}

// PropertyAccess is the capability the payload decoder writes through. The
// decoder fills a fresh representation instance per record without knowing
// its concrete shape, so callers can decode into arbitrary structures.
type PropertyAccess interface {
	SetScalar(name string, v Value)
	SetList(name string, vs []Value)
}

// PropertySource is the read counterpart used by the writer.
type PropertySource interface {
	// Property returns the stored value for a property name.
	Property(name string) (Property, bool)
}

// DefaultElement is a schema-agnostic, map-backed element representation.
// It satisfies both PropertyAccess and PropertySource, so it works on the
// decode and encode paths alike.
type DefaultElement map[string]Property

func (e DefaultElement) SetScalar(name string, v Value) {
	e[name] = Property{Scalar: v}
}

func (e DefaultElement) SetList(name string, vs []Value) {
	e[name] = Property{IsList: true, List: vs}
}

func (e DefaultElement) Property(name string) (Property, bool) {
	p, ok := e[name]
	return p, ok
}
