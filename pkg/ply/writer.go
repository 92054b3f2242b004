package ply

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Writer is the serializer counterpart to Parser. It reads property values
// back through the PropertySource capability and emits a header and payload
// in any of the three encodings. A Writer holds no state and may be shared.
type Writer[E PropertySource] struct{}

// NewWriter returns a writer for the element representation E.
func NewWriter[E PropertySource]() *Writer[E] {
	return &Writer[E]{}
}

type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}

// WritePly emits a complete file and returns the number of bytes written.
func (w *Writer[E]) WritePly(out io.Writer, p *Ply[E]) (int, error) {
	cw := &countingWriter{w: out}
	if err := w.writeHeader(cw, p.Header); err != nil {
		return cw.n, err
	}
	if err := w.writePayload(cw, p.Header, p.Payload); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

// WriteHeader emits the header section, end_header line included. Scalar
// types are written with their canonical spellings.
func (w *Writer[E]) WriteHeader(out io.Writer, header *Header) (int, error) {
	cw := &countingWriter{w: out}
	err := w.writeHeader(cw, header)
	return cw.n, err
}

func (w *Writer[E]) writeHeader(out io.Writer, header *Header) error {
	if _, err := fmt.Fprintf(out, "ply\nformat %s %s\n", header.Encoding, header.Version); err != nil {
		return err
	}
	for _, c := range header.Comments {
		if _, err := fmt.Fprintf(out, "comment %s\n", c); err != nil {
			return err
		}
	}
	for _, o := range header.ObjInfos {
		if _, err := fmt.Fprintf(out, "obj_info %s\n", o); err != nil {
			return err
		}
	}
	for _, name := range header.Elements.Keys() {
		def, _ := header.Elements.Get(name)
		if _, err := fmt.Fprintf(out, "element %s %d\n", def.Name, def.Count); err != nil {
			return err
		}
		for _, pname := range def.Properties.Keys() {
			prop, _ := def.Properties.Get(pname)
			if _, err := fmt.Fprintf(out, "property %s %s\n", prop.Type, prop.Name); err != nil {
				return err
			}
		}
	}
	_, err := io.WriteString(out, "end_header\n")
	return err
}

// WritePayload emits the payload in the header's declared encoding. Each
// element's record slice must be exactly its declared count, and every
// record must hold a value of the declared type and shape for every
// declared property.
func (w *Writer[E]) WritePayload(out io.Writer, header *Header, payload Payload[E]) (int, error) {
	cw := &countingWriter{w: out}
	err := w.writePayload(cw, header, payload)
	return cw.n, err
}

func (w *Writer[E]) writePayload(out io.Writer, header *Header, payload Payload[E]) error {
	for _, name := range header.Elements.Keys() {
		def, _ := header.Elements.Get(name)
		records, ok := payload.Get(name)
		if !ok && def.Count > 0 {
			return fmt.Errorf("ply: payload has no records for element %q", name)
		}
		if len(records) != def.Count {
			return fmt.Errorf("ply: element %q declares %d records, payload has %d", name, def.Count, len(records))
		}
		for _, record := range records {
			if err := w.writeRecord(out, def, record, header.Encoding); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *Writer[E]) writeRecord(out io.Writer, def *ElementDef, record E, encoding Encoding) error {
	switch encoding {
	case EncodingASCII:
		return w.writeASCIIRecord(out, def, record)
	case EncodingBinaryBigEndian:
		return w.writeBinaryRecord(out, def, record, binary.BigEndian)
	case EncodingBinaryLittleEndian:
		return w.writeBinaryRecord(out, def, record, binary.LittleEndian)
	default:
		return fmt.Errorf("ply: unknown encoding %d", uint8(encoding))
	}
}

func (w *Writer[E]) writeASCIIRecord(out io.Writer, def *ElementDef, record E) error {
	var line []byte
	for i, name := range def.Properties.Keys() {
		prop, _ := def.Properties.Get(name)
		value, err := recordProperty(def, record, name, prop.Type)
		if err != nil {
			return err
		}
		if i > 0 {
			line = append(line, ' ')
		}
		if prop.Type.IsList {
			line = appendASCIIListLength(line, prop.Type.IndexType, len(value.List))
			for _, v := range value.List {
				line = append(line, ' ')
				line = appendASCIIValue(line, v)
			}
		} else {
			line = appendASCIIValue(line, value.Scalar)
		}
	}
	line = append(line, '\n')
	_, err := out.Write(line)
	return err
}

func appendASCIIValue(dst []byte, v Value) []byte {
	switch v.Type.valueClass() {
	case classSigned:
		return strconv.AppendInt(dst, v.Int, 10)
	case classUnsigned:
		return strconv.AppendUint(dst, v.Uint, 10)
	default:
		return strconv.AppendFloat(dst, v.Float, 'g', -1, v.Type.ByteWidth()*8)
	}
}

func appendASCIIListLength(dst []byte, t ScalarType, n int) []byte {
	switch t.valueClass() {
	case classUnsigned:
		return strconv.AppendUint(dst, uint64(n), 10)
	default:
		return strconv.AppendInt(dst, int64(n), 10)
	}
}

func (w *Writer[E]) writeBinaryRecord(out io.Writer, def *ElementDef, record E, order binary.ByteOrder) error {
	var buf [8]byte
	for _, name := range def.Properties.Keys() {
		prop, _ := def.Properties.Get(name)
		value, err := recordProperty(def, record, name, prop.Type)
		if err != nil {
			return err
		}
		if prop.Type.IsList {
			length, err := lengthAsValue(prop.Type.IndexType, len(value.List))
			if err != nil {
				return fmt.Errorf("ply: element %q: property %q: %w", def.Name, name, err)
			}
			if err := writeBinaryScalar(out, length, order, buf[:]); err != nil {
				return err
			}
			for _, v := range value.List {
				if err := writeBinaryScalar(out, v, order, buf[:]); err != nil {
					return err
				}
			}
		} else if err := writeBinaryScalar(out, value.Scalar, order, buf[:]); err != nil {
			return err
		}
	}
	return nil
}

// lengthAsValue encodes a list length as the declared index type, failing
// if the length does not fit.
func lengthAsValue(t ScalarType, n int) (Value, error) {
	bits := t.ByteWidth() * 8
	switch t.valueClass() {
	case classSigned:
		if bits < 64 && int64(n) > (int64(1)<<(bits-1))-1 {
			return Value{}, fmt.Errorf("list length %d does not fit %s", n, t)
		}
		return IntValue(t, int64(n)), nil
	case classUnsigned:
		if bits < 64 && uint64(n) > (uint64(1)<<bits)-1 {
			return Value{}, fmt.Errorf("list length %d does not fit %s", n, t)
		}
		return UintValue(t, uint64(n)), nil
	default:
		return Value{}, fmt.Errorf("list length declared with floating type %s", t)
	}
}

func writeBinaryScalar(out io.Writer, v Value, order binary.ByteOrder, buf []byte) error {
	b := buf[:v.Type.ByteWidth()]
	switch v.Type {
	case Char:
		b[0] = byte(int8(v.Int))
	case UChar:
		b[0] = byte(v.Uint)
	case Short:
		order.PutUint16(b, uint16(int16(v.Int)))
	case UShort:
		order.PutUint16(b, uint16(v.Uint))
	case Int:
		order.PutUint32(b, uint32(int32(v.Int)))
	case UInt:
		order.PutUint32(b, uint32(v.Uint))
	case Float:
		order.PutUint32(b, math.Float32bits(float32(v.Float)))
	case Double:
		order.PutUint64(b, math.Float64bits(v.Float))
	default:
		return fmt.Errorf("ply: unknown scalar type %d", uint8(v.Type))
	}
	_, err := out.Write(b)
	return err
}

// recordProperty fetches one property from a record and checks it against
// the declared type and shape. Encoding is strict: a missing property or a
// type mismatch is an error, never a silent coercion.
func recordProperty[E PropertySource](def *ElementDef, record E, name string, t PropertyType) (Property, error) {
	value, ok := record.Property(name)
	if !ok {
		return Property{}, fmt.Errorf("ply: element %q: record has no property %q", def.Name, name)
	}
	if value.IsList != t.IsList {
		return Property{}, fmt.Errorf("ply: element %q: property %q: shape does not match declaration %q", def.Name, name, t)
	}
	if t.IsList {
		for _, v := range value.List {
			if v.Type != t.ValueType {
				return Property{}, fmt.Errorf("ply: element %q: property %q: value type %s, declared %s", def.Name, name, v.Type, t.ValueType)
			}
		}
	} else if value.Scalar.Type != t.ValueType {
		return Property{}, fmt.Errorf("ply: element %q: property %q: value type %s, declared %s", def.Name, name, value.Scalar.Type, t.ValueType)
	}
	return value, nil
}
