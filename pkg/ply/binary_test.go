package ply

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func TestReadBinaryRecordByteOrder(t *testing.T) {
	def := NewElementDef("v", 1)
	def.Properties.Add("i", PropertyDef{Name: "i", Type: ScalarOf(Int)})

	payload := []byte{0x00, 0x00, 0x01, 0x02}
	p := NewDefaultParser()

	big, err := p.ReadBigEndianRecord(bytes.NewReader(payload), def)
	if err != nil {
		t.Fatalf("big endian read failed: %v", err)
	}
	little, err := p.ReadLittleEndianRecord(bytes.NewReader(payload), def)
	if err != nil {
		t.Fatalf("little endian read failed: %v", err)
	}

	bi, _ := big.Property("i")
	li, _ := little.Property("i")
	if bi.Scalar.Int != 0x00000102 {
		t.Errorf("big endian = %#x, want 0x102", bi.Scalar.Int)
	}
	if li.Scalar.Int != 0x02010000 {
		t.Errorf("little endian = %#x, want 0x2010000", li.Scalar.Int)
	}
	if bi.Scalar.Int == li.Scalar.Int {
		t.Errorf("byte order parameterization is hard-coded: both orders decoded %#x", bi.Scalar.Int)
	}
}

func TestReadBinaryRecordAllScalarTypes(t *testing.T) {
	def := NewElementDef("v", 1)
	def.Properties.Add("c", PropertyDef{Name: "c", Type: ScalarOf(Char)})
	def.Properties.Add("uc", PropertyDef{Name: "uc", Type: ScalarOf(UChar)})
	def.Properties.Add("s", PropertyDef{Name: "s", Type: ScalarOf(Short)})
	def.Properties.Add("us", PropertyDef{Name: "us", Type: ScalarOf(UShort)})
	def.Properties.Add("i", PropertyDef{Name: "i", Type: ScalarOf(Int)})
	def.Properties.Add("ui", PropertyDef{Name: "ui", Type: ScalarOf(UInt)})
	def.Properties.Add("f", PropertyDef{Name: "f", Type: ScalarOf(Float)})
	def.Properties.Add("d", PropertyDef{Name: "d", Type: ScalarOf(Double)})

	var buf bytes.Buffer
	buf.WriteByte(0x80) // char -128
	buf.WriteByte(0xFF) // uchar 255
	binary.Write(&buf, binary.LittleEndian, int16(-1234))
	binary.Write(&buf, binary.LittleEndian, uint16(65535))
	binary.Write(&buf, binary.LittleEndian, int32(-100000))
	binary.Write(&buf, binary.LittleEndian, uint32(4000000000))
	binary.Write(&buf, binary.LittleEndian, float32(1.5))
	binary.Write(&buf, binary.LittleEndian, float64(math.Pi))

	p := NewDefaultParser()
	record, err := p.ReadLittleEndianRecord(&buf, def)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	checks := []struct {
		name string
		want float64
	}{
		{"c", -128}, {"uc", 255}, {"s", -1234}, {"us", 65535},
		{"i", -100000}, {"ui", 4000000000}, {"f", 1.5}, {"d", math.Pi},
	}
	for _, c := range checks {
		prop, ok := record.Property(c.name)
		if !ok {
			t.Fatalf("property %q missing", c.name)
		}
		if got := prop.Scalar.AsFloat64(); got != c.want {
			t.Errorf("property %q = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestReadBinaryRecordList(t *testing.T) {
	def := NewElementDef("face", 1)
	def.Properties.Add("vertex_index", PropertyDef{Name: "vertex_index", Type: ListOf(UChar, Int)})

	var buf bytes.Buffer
	buf.WriteByte(3)
	binary.Write(&buf, binary.BigEndian, int32(10))
	binary.Write(&buf, binary.BigEndian, int32(11))
	binary.Write(&buf, binary.BigEndian, int32(12))

	p := NewDefaultParser()
	record, err := p.ReadBigEndianRecord(&buf, def)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	prop, _ := record.Property("vertex_index")
	if !prop.IsList || len(prop.List) != 3 {
		t.Fatalf("vertex_index = %+v, want 3-element list", prop)
	}
	for i, v := range prop.List {
		if v.Int != int64(10+i) {
			t.Errorf("list[%d] = %d, want %d", i, v.Int, 10+i)
		}
	}
}

func TestReadBinaryRecordTruncated(t *testing.T) {
	def := NewElementDef("v", 1)
	def.Properties.Add("i", PropertyDef{Name: "i", Type: ScalarOf(Int)})

	p := NewDefaultParser()
	_, err := p.ReadBigEndianRecord(bytes.NewReader([]byte{0x01, 0x02}), def)
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("error = %v, want ErrUnexpectedEOF", err)
	}
}

func TestReadBinaryRecordTruncatedList(t *testing.T) {
	def := NewElementDef("face", 1)
	def.Properties.Add("vertex_index", PropertyDef{Name: "vertex_index", Type: ListOf(UChar, Int)})

	// Length claims 3 values, stream carries only one.
	var buf bytes.Buffer
	buf.WriteByte(3)
	binary.Write(&buf, binary.BigEndian, int32(10))

	p := NewDefaultParser()
	_, err := p.ReadBigEndianRecord(&buf, def)
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("error = %v, want ErrUnexpectedEOF", err)
	}
}
