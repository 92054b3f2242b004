package ply

import (
	"errors"
	"testing"
)

func mustClassify(t *testing.T, line string) *Line {
	t.Helper()
	l, err := ClassifyLine(line)
	if err != nil {
		t.Fatalf("ClassifyLine(%q) failed: %v", line, err)
	}
	return l
}

func mustFail(t *testing.T, line string) {
	t.Helper()
	if l, err := ClassifyLine(line); err == nil {
		t.Errorf("ClassifyLine(%q) = %v, want error", line, l)
	}
}

func TestClassifyMagicNumber(t *testing.T) {
	for _, line := range []string{"ply", "ply ", "ply\n", "ply \n", "ply \r", "ply \r\n"} {
		l := mustClassify(t, line)
		if l.Kind != LineMagicNumber {
			t.Errorf("ClassifyLine(%q).Kind = %v, want magic number", line, l.Kind)
		}
	}
}

func TestClassifyMagicNumberErr(t *testing.T) {
	mustFail(t, "py")
	mustFail(t, "plyhi")
	mustFail(t, "hiply")
}

func TestClassifyFormat(t *testing.T) {
	cases := []struct {
		line     string
		encoding Encoding
		version  Version
	}{
		{"format ascii 1.0", EncodingASCII, Version{1, 0}},
		{"format binary_big_endian 2.1", EncodingBinaryBigEndian, Version{2, 1}},
		{"format binary_little_endian 1.0", EncodingBinaryLittleEndian, Version{1, 0}},
		{"format ascii 1.0 \r\n", EncodingASCII, Version{1, 0}},
	}
	for _, c := range cases {
		l := mustClassify(t, c.line)
		if l.Kind != LineFormat {
			t.Fatalf("ClassifyLine(%q).Kind = %v, want format", c.line, l.Kind)
		}
		if l.Encoding != c.encoding || l.Version != c.version {
			t.Errorf("ClassifyLine(%q) = %s %s, want %s %s", c.line, l.Encoding, l.Version, c.encoding, c.version)
		}
	}
}

func TestClassifyFormatErr(t *testing.T) {
	mustFail(t, "format asciii 1.0")
	mustFail(t, "format ascii -1.0")
	mustFail(t, "format ascii")
	mustFail(t, "format")
}

func TestClassifyComment(t *testing.T) {
	l := mustClassify(t, "comment hi")
	if l.Kind != LineComment || l.Text != "hi" {
		t.Errorf("got kind %v text %q", l.Kind, l.Text)
	}

	l = mustClassify(t, "comment   hi, I'm a comment!")
	if l.Text != "hi, I'm a comment!" {
		t.Errorf("leading spaces not trimmed: %q", l.Text)
	}

	for _, line := range []string{"comment ", "comment"} {
		l = mustClassify(t, line)
		if l.Kind != LineComment || l.Text != "" {
			t.Errorf("ClassifyLine(%q): kind %v text %q, want empty comment", line, l.Kind, l.Text)
		}
	}
}

func TestClassifyCommentErr(t *testing.T) {
	mustFail(t, "commentt")
	mustFail(t, "comment hi\na comment")
	mustFail(t, "comment hi\r\na comment")
}

func TestClassifyObjInfo(t *testing.T) {
	l := mustClassify(t, "obj_info Hi, I can help.")
	if l.Kind != LineObjInfo || l.Text != "Hi, I can help." {
		t.Errorf("got kind %v text %q", l.Kind, l.Text)
	}
}

func TestClassifyElement(t *testing.T) {
	l := mustClassify(t, "element vertex 8")
	if l.Kind != LineElement {
		t.Fatalf("kind = %v, want element", l.Kind)
	}
	if l.Element.Name != "vertex" || l.Element.Count != 8 {
		t.Errorf("got element %q count %d", l.Element.Name, l.Element.Count)
	}
	if l.Element.Properties.Len() != 0 {
		t.Errorf("new element has %d properties, want 0", l.Element.Properties.Len())
	}
}

func TestClassifyElementErr(t *testing.T) {
	mustFail(t, "element 8 vertex")
	mustFail(t, "element vertex")
	mustFail(t, "element vertex -1")
}

func TestClassifyProperty(t *testing.T) {
	l := mustClassify(t, "property char c")
	if l.Kind != LineProperty {
		t.Fatalf("kind = %v, want property", l.Kind)
	}
	want := PropertyDef{Name: "c", Type: ScalarOf(Char)}
	if *l.Property != want {
		t.Errorf("got %+v, want %+v", *l.Property, want)
	}
}

func TestClassifyPropertyList(t *testing.T) {
	l := mustClassify(t, "property list uchar int vertex_index")
	want := PropertyDef{Name: "vertex_index", Type: ListOf(UChar, Int)}
	if *l.Property != want {
		t.Errorf("got %+v, want %+v", *l.Property, want)
	}
}

func TestClassifyPropertyErr(t *testing.T) {
	mustFail(t, "property")
	mustFail(t, "property char")
	mustFail(t, "property noscalar c")
	mustFail(t, "property list uchar c")
	mustFail(t, "property list nonsense int c")
}

func TestClassifyPropertyErrKind(t *testing.T) {
	_, err := ClassifyLine("property noscalar c")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestClassifyAllLineForms(t *testing.T) {
	lines := []string{
		"ply ",
		"format ascii 1.0 ",
		"comment a very nice comment ",
		"element vertex 8 ",
		"property float x ",
		"element face 6 ",
		"property list uchar int vertex_index ",
		"end_header ",
	}
	for _, line := range lines {
		mustClassify(t, line)
	}
}

func TestClassifyEndHeader(t *testing.T) {
	l := mustClassify(t, "end_header\r\n")
	if l.Kind != LineEndHeader {
		t.Errorf("kind = %v, want end_header", l.Kind)
	}
	mustFail(t, "end_headerx")
}

func TestClassifyScalarTypeSpellings(t *testing.T) {
	pairs := map[string]ScalarType{
		"char": Char, "int8": Char,
		"uchar": UChar, "uint8": UChar,
		"short": Short, "int16": Short,
		"ushort": UShort, "uint16": UShort,
		"int": Int, "int32": Int,
		"uint": UInt, "uint32": UInt,
		"float": Float, "float32": Float,
		"double": Double, "float64": Double,
	}
	for token, want := range pairs {
		l := mustClassify(t, "property "+token+" p")
		if got := l.Property.Type.ValueType; got != want {
			t.Errorf("property %s: got %v, want %v", token, got, want)
		}
	}
	// Case matters.
	mustFail(t, "property Char c")
	mustFail(t, "property FLOAT c")
}
