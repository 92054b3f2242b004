package ply

// LineKind discriminates the seven header line forms.
type LineKind uint8

const (
	LineMagicNumber LineKind = iota
	LineFormat
	LineComment
	LineObjInfo
	LineElement
	LineProperty
	LineEndHeader
)

func (k LineKind) String() string {
	switch k {
	case LineMagicNumber:
		return "magic number"
	case LineFormat:
		return "format declaration"
	case LineComment:
		return "comment"
	case LineObjInfo:
		return "obj_info"
	case LineElement:
		return "element declaration"
	case LineProperty:
		return "property declaration"
	case LineEndHeader:
		return "end_header"
	default:
		return "unknown line"
	}
}

// Line is one classified header line. Only the fields belonging to Kind
// are set. Lines are transient: the header reader folds them into the
// Header and never keeps them.
type Line struct {
	Kind     LineKind
	Encoding Encoding     // LineFormat
	Version  Version      // LineFormat
	Text     string       // LineComment, LineObjInfo
	Element  *ElementDef  // LineElement
	Property *PropertyDef // LineProperty
}
