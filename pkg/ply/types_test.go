package ply

import "testing"

func TestScalarTypeTable(t *testing.T) {
	cases := []struct {
		t     ScalarType
		token string
		alias string
		width int
	}{
		{Char, "char", "int8", 1},
		{UChar, "uchar", "uint8", 1},
		{Short, "short", "int16", 2},
		{UShort, "ushort", "uint16", 2},
		{Int, "int", "int32", 4},
		{UInt, "uint", "uint32", 4},
		{Float, "float", "float32", 4},
		{Double, "double", "float64", 8},
	}
	for _, c := range cases {
		if got := c.t.Token(); got != c.token {
			t.Errorf("%v.Token() = %q, want %q", c.t, got, c.token)
		}
		if got := c.t.ByteWidth(); got != c.width {
			t.Errorf("%v.ByteWidth() = %d, want %d", c.t, got, c.width)
		}
		for _, spelling := range []string{c.token, c.alias} {
			parsed, err := ParseScalarType(spelling)
			if err != nil {
				t.Errorf("ParseScalarType(%q) failed: %v", spelling, err)
				continue
			}
			if parsed != c.t {
				t.Errorf("ParseScalarType(%q) = %v, want %v", spelling, parsed, c.t)
			}
		}
	}

	if _, err := ParseScalarType("long"); err == nil {
		t.Error("ParseScalarType(\"long\") should fail")
	}
}

func TestPropertyTypeString(t *testing.T) {
	if got := ScalarOf(Float).String(); got != "float" {
		t.Errorf("scalar type string = %q", got)
	}
	if got := ListOf(UChar, Int).String(); got != "list uchar int" {
		t.Errorf("list type string = %q", got)
	}
}

func TestKeyMapOrderAndDuplicates(t *testing.T) {
	var m KeyMap[int]
	if m.Len() != 0 {
		t.Errorf("zero value Len = %d", m.Len())
	}
	if !m.Add("b", 1) || !m.Add("a", 2) || !m.Add("c", 3) {
		t.Fatal("Add failed on fresh keys")
	}
	if m.Add("a", 9) {
		t.Error("Add accepted a duplicate key")
	}
	if v, _ := m.Get("a"); v != 2 {
		t.Errorf("duplicate Add overwrote value: %d", v)
	}
	keys := m.Keys()
	want := []string{"b", "a", "c"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys = %v, want %v", keys, want)
		}
	}
	if m.Has("d") {
		t.Error("Has reports a missing key")
	}
}

func TestVersionAndEncodingString(t *testing.T) {
	if got := (Version{1, 0}).String(); got != "1.0" {
		t.Errorf("version string = %q", got)
	}
	tokens := map[Encoding]string{
		EncodingASCII:              "ascii",
		EncodingBinaryBigEndian:    "binary_big_endian",
		EncodingBinaryLittleEndian: "binary_little_endian",
	}
	for e, want := range tokens {
		if got := e.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", e, got, want)
		}
	}
}
