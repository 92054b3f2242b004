// Package ply reads and writes the PLY polygon file format.
//
// A PLY file starts with a human-readable header that declares the payload
// encoding and a schema: named elements (e.g. "vertex", "face"), each with
// an ordered list of typed properties. The payload that follows is decoded
// against that schema, which is only known at parse time. Three payload
// encodings exist: ASCII text, binary big-endian and binary little-endian.
package ply

import "fmt"

// Encoding identifies the physical payload representation.
// Exactly one encoding holds for an entire file.
type Encoding uint8

const (
	EncodingASCII Encoding = iota
	EncodingBinaryBigEndian
	EncodingBinaryLittleEndian
)

// String returns the token used on the header's format line.
func (e Encoding) String() string {
	switch e {
	case EncodingASCII:
		return "ascii"
	case EncodingBinaryBigEndian:
		return "binary_big_endian"
	case EncodingBinaryLittleEndian:
		return "binary_little_endian"
	default:
		return fmt.Sprintf("Encoding(%d)", uint8(e))
	}
}

// Version is the format version declared on the header's format line.
type Version struct {
	Major uint32
	Minor uint32
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// ScalarType identifies one of the eight fixed-width numeric kinds a
// property value can have.
type ScalarType uint8

const (
	Char ScalarType = iota // int8
	UChar
	Short
	UShort
	Int
	UInt
	Float
	Double
)

type scalarClass uint8

const (
	classSigned scalarClass = iota
	classUnsigned
	classFloat
)

var scalarInfo = [...]struct {
	token string // canonical spelling
	alias string // alternative spelling
	width int    // byte width in binary payloads
	class scalarClass
}{
	Char:   {"char", "int8", 1, classSigned},
	UChar:  {"uchar", "uint8", 1, classUnsigned},
	Short:  {"short", "int16", 2, classSigned},
	UShort: {"ushort", "uint16", 2, classUnsigned},
	Int:    {"int", "int32", 4, classSigned},
	UInt:   {"uint", "uint32", 4, classUnsigned},
	Float:  {"float", "float32", 4, classFloat},
	Double: {"double", "float64", 8, classFloat},
}

// ParseScalarType resolves a header type token. Both spellings are
// accepted, case-sensitively: "char"/"int8", "uchar"/"uint8", and so on.
func ParseScalarType(token string) (ScalarType, error) {
	for t, info := range scalarInfo {
		if token == info.token || token == info.alias {
			return ScalarType(t), nil
		}
	}
	return 0, fmt.Errorf("unknown scalar type %q", token)
}

// Token returns the canonical header spelling ("char", "uchar", ...).
func (t ScalarType) Token() string {
	if int(t) < len(scalarInfo) {
		return scalarInfo[t].token
	}
	return fmt.Sprintf("ScalarType(%d)", uint8(t))
}

// ByteWidth returns the number of bytes the type occupies in a binary
// payload.
func (t ScalarType) ByteWidth() int {
	return scalarInfo[t].width
}

func (t ScalarType) String() string { return t.Token() }

func (t ScalarType) valueClass() scalarClass {
	return scalarInfo[t].class
}

// PropertyType describes a property's shape: either a single scalar, or a
// variable-length list whose per-record length is itself encoded as a
// scalar of IndexType.
type PropertyType struct {
	IsList    bool
	IndexType ScalarType // length field type; meaningful only when IsList
	ValueType ScalarType
}

// ScalarOf returns the PropertyType of a plain scalar property.
func ScalarOf(t ScalarType) PropertyType {
	return PropertyType{ValueType: t}
}

// ListOf returns the PropertyType of a list property whose length field is
// encoded as index and whose values are encoded as value.
func ListOf(index, value ScalarType) PropertyType {
	return PropertyType{IsList: true, IndexType: index, ValueType: value}
}

func (t PropertyType) String() string {
	if t.IsList {
		return fmt.Sprintf("list %s %s", t.IndexType, t.ValueType)
	}
	return t.ValueType.String()
}

// PropertyDef is one declared property of an element. Immutable once
// attached to its element.
type PropertyDef struct {
	Name string
	Type PropertyType
}

// ElementDef is one declared element: its name, how many records of it the
// payload carries, and its ordered property schema.
type ElementDef struct {
	Name       string
	Count      int
	Properties KeyMap[PropertyDef]
}

// NewElementDef returns an element definition with an empty property set.
func NewElementDef(name string, count int) *ElementDef {
	return &ElementDef{Name: name, Count: count}
}

// Header is the fully parsed file preamble: encoding, version, free-text
// metadata and the ordered element schema the payload is decoded against.
type Header struct {
	Encoding Encoding
	Version  Version
	ObjInfos []string
	Comments []string
	Elements KeyMap[*ElementDef]
}

// Payload maps each element name to its decoded records, in header order.
type Payload[E any] struct {
	KeyMap[[]E]
}

// Ply is a fully parsed file.
type Ply[E any] struct {
	Header  *Header
	Payload Payload[E]
}

// KeyMap is an insert-only mapping that preserves insertion order and
// rejects duplicate keys. Header schemas depend on both: payload column
// order follows declaration order, and element/property names are unique.
// The zero value is ready to use.
type KeyMap[V any] struct {
	keys   []string
	values map[string]V
}

// Add appends a key/value pair. It reports false, without modifying the
// map, if the key is already present.
func (m *KeyMap[V]) Add(key string, value V) bool {
	if _, ok := m.values[key]; ok {
		return false
	}
	if m.values == nil {
		m.values = make(map[string]V)
	}
	m.keys = append(m.keys, key)
	m.values[key] = value
	return true
}

// Get returns the value stored under key.
func (m *KeyMap[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *KeyMap[V]) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Len returns the number of entries.
func (m *KeyMap[V]) Len() int { return len(m.keys) }

// Keys returns the keys in insertion order. The slice is shared with the
// map and must not be modified.
func (m *KeyMap[V]) Keys() []string { return m.keys }
