package ply

import (
	"math"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// Grammar for one header line. Each line is exactly one of the seven
// declaration forms; anything left over after a form (other than trailing
// whitespace or the line terminator) is a syntax error because the parser
// must consume its input completely.

type headerLine struct {
	Magic    bool          `parser:"  @KwPly"`
	Format   *formatDecl   `parser:"| @@"`
	Comment  *commentDecl  `parser:"| @@"`
	ObjInfo  *objInfoDecl  `parser:"| @@"`
	Element  *elementDecl  `parser:"| @@"`
	Property *propertyDecl `parser:"| @@"`
	End      bool          `parser:"| @KwEndHeader"`
}

type formatDecl struct {
	Encoding string `parser:"KwFormat @(\"ascii\" | \"binary_big_endian\" | \"binary_little_endian\")"`
	Major    uint32 `parser:"@UInt"`
	Minor    uint32 `parser:"Dot @UInt"`
}

type commentDecl struct {
	Text string `parser:"KwComment @Text?"`
}

type objInfoDecl struct {
	Text string `parser:"KwObjInfo @Text?"`
}

type elementDecl struct {
	Name  string `parser:"KwElement @Ident"`
	Count uint64 `parser:"@UInt"`
}

type propertyDecl struct {
	List   *listDecl   `parser:"KwProperty ( @@"`
	Scalar *scalarDecl `parser:"| @@ )"`
}

type listDecl struct {
	IndexType string `parser:"KwList @Ident"`
	ValueType string `parser:"@Ident"`
	Name      string `parser:"@Ident"`
}

type scalarDecl struct {
	Type string `parser:"@Ident"`
	Name string `parser:"@Ident"`
}

var lineParser = participle.MustBuild[headerLine](
	participle.Lexer(headerLexer),
	participle.Elide("Whitespace", "EOL"),
	participle.UseLookahead(2),
)

// ClassifyLine classifies one raw header line, returning its typed form.
// Trailing whitespace and any of the LF, CR or CRLF line terminators are
// tolerated. The classifier is pure: it never looks at surrounding lines,
// so cross-line rules (format conflicts, property attachment) are enforced
// by the header reader instead.
func ClassifyLine(text string) (*Line, error) {
	parsed, err := lineParser.ParseString("", text)
	if err != nil {
		return nil, &ParseError{Kind: ErrInvalidInput, Text: text, Msg: "not a valid header line", Err: err}
	}
	return convertLine(parsed, text)
}

func convertLine(h *headerLine, text string) (*Line, error) {
	switch {
	case h.Magic:
		return &Line{Kind: LineMagicNumber}, nil

	case h.Format != nil:
		var enc Encoding
		switch h.Format.Encoding {
		case "ascii":
			enc = EncodingASCII
		case "binary_big_endian":
			enc = EncodingBinaryBigEndian
		case "binary_little_endian":
			enc = EncodingBinaryLittleEndian
		}
		return &Line{
			Kind:     LineFormat,
			Encoding: enc,
			Version:  Version{Major: h.Format.Major, Minor: h.Format.Minor},
		}, nil

	case h.Comment != nil:
		return &Line{Kind: LineComment, Text: strings.TrimSpace(h.Comment.Text)}, nil

	case h.ObjInfo != nil:
		return &Line{Kind: LineObjInfo, Text: strings.TrimSpace(h.ObjInfo.Text)}, nil

	case h.Element != nil:
		if h.Element.Count > math.MaxInt {
			return nil, parseErrorf(ErrInvalidInput, 0, text, "element %q: count %d out of range", h.Element.Name, h.Element.Count)
		}
		return &Line{Kind: LineElement, Element: NewElementDef(h.Element.Name, int(h.Element.Count))}, nil

	case h.Property != nil:
		def, err := convertProperty(h.Property, text)
		if err != nil {
			return nil, err
		}
		return &Line{Kind: LineProperty, Property: def}, nil

	case h.End:
		return &Line{Kind: LineEndHeader}, nil
	}
	// Unreachable: the grammar has no other productions.
	return nil, parseErrorf(ErrInvalidInput, 0, text, "not a valid header line")
}

func convertProperty(p *propertyDecl, text string) (*PropertyDef, error) {
	if p.List != nil {
		index, err := ParseScalarType(p.List.IndexType)
		if err != nil {
			return nil, &ParseError{Kind: ErrInvalidInput, Text: text, Msg: "list property length type", Err: err}
		}
		value, err := ParseScalarType(p.List.ValueType)
		if err != nil {
			return nil, &ParseError{Kind: ErrInvalidInput, Text: text, Msg: "list property value type", Err: err}
		}
		return &PropertyDef{Name: p.List.Name, Type: ListOf(index, value)}, nil
	}
	t, err := ParseScalarType(p.Scalar.Type)
	if err != nil {
		return nil, &ParseError{Kind: ErrInvalidInput, Text: text, Msg: "property type", Err: err}
	}
	return &PropertyDef{Name: p.Scalar.Name, Type: ScalarOf(t)}, nil
}
