package ply

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Binary payload decoding: fixed-width values packed with no delimiters,
// interpreted with the byte order the format line fixed for the whole
// file. One algorithm serves both orders through binary.ByteOrder; the
// facade instantiates it with binary.BigEndian or binary.LittleEndian.

func (p *Parser[E]) readBinaryPayloadForElement(r io.Reader, def *ElementDef, order binary.ByteOrder) ([]E, error) {
	records := make([]E, 0, prealloc(def.Count))
	for i := 0; i < def.Count; i++ {
		record, err := p.readBinaryRecord(r, def, order)
		if err != nil {
			if perr, ok := err.(*ParseError); ok {
				perr.Msg = fmt.Sprintf("element %q: record %d of %d: %s", def.Name, i+1, def.Count, perr.Msg)
				return nil, perr
			}
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (p *Parser[E]) readBinaryRecord(r io.Reader, def *ElementDef, order binary.ByteOrder) (E, error) {
	record := p.newElement()
	var buf [8]byte
	for _, name := range def.Properties.Keys() {
		prop, _ := def.Properties.Get(name)
		if !prop.Type.IsList {
			v, err := readBinaryScalar(r, prop.Type.ValueType, order, buf[:])
			if err != nil {
				return record, eofError(err, name)
			}
			record.SetScalar(name, v)
			continue
		}

		lengthValue, err := readBinaryScalar(r, prop.Type.IndexType, order, buf[:])
		if err != nil {
			return record, eofError(err, name)
		}
		n, err := listLength(lengthValue)
		if err != nil {
			return record, &ParseError{Kind: ErrMalformedRecord, Msg: fmt.Sprintf("property %q", name), Err: err}
		}
		values := make([]Value, 0, prealloc(n))
		for j := 0; j < n; j++ {
			v, err := readBinaryScalar(r, prop.Type.ValueType, order, buf[:])
			if err != nil {
				return record, eofError(err, name)
			}
			values = append(values, v)
		}
		record.SetList(name, values)
	}
	return record, nil
}

// readBinaryScalar reads exactly the type's byte width and interprets it
// with the given order.
func readBinaryScalar(r io.Reader, t ScalarType, order binary.ByteOrder, buf []byte) (Value, error) {
	b := buf[:t.ByteWidth()]
	if _, err := io.ReadFull(r, b); err != nil {
		return Value{}, err
	}
	switch t {
	case Char:
		return IntValue(Char, int64(int8(b[0]))), nil
	case UChar:
		return UintValue(UChar, uint64(b[0])), nil
	case Short:
		return IntValue(Short, int64(int16(order.Uint16(b)))), nil
	case UShort:
		return UintValue(UShort, uint64(order.Uint16(b))), nil
	case Int:
		return IntValue(Int, int64(int32(order.Uint32(b)))), nil
	case UInt:
		return UintValue(UInt, uint64(order.Uint32(b))), nil
	case Float:
		return FloatValue(Float, float64(math.Float32frombits(order.Uint32(b)))), nil
	case Double:
		return FloatValue(Double, math.Float64frombits(order.Uint64(b))), nil
	default:
		return Value{}, fmt.Errorf("unknown scalar type %d", uint8(t))
	}
}

// eofError maps a short read to the package's truncation error. A partial
// record is never salvageable, so the whole parse fails.
func eofError(err error, property string) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return &ParseError{Kind: ErrUnexpectedEOF, Msg: fmt.Sprintf("stream ends inside property %q", property), Err: err}
	}
	return fmt.Errorf("ply: reading property %q: %w", property, err)
}

// listLength converts a decoded length value to a record count, rejecting
// negative, fractional and absurd lengths before any allocation happens.
func listLength(v Value) (int, error) {
	switch v.Type.valueClass() {
	case classSigned:
		if v.Int < 0 {
			return 0, fmt.Errorf("negative list length %d", v.Int)
		}
		return int(v.Int), nil
	case classUnsigned:
		if v.Uint > math.MaxInt32 {
			return 0, fmt.Errorf("list length %d out of range", v.Uint)
		}
		return int(v.Uint), nil
	default:
		return 0, fmt.Errorf("list length declared with floating type %s", v.Type)
	}
}

// prealloc caps initial slice capacity: declared counts come from the
// file and are untrusted until the stream proves them.
func prealloc(n int) int {
	const max = 4096
	if n > max {
		return max
	}
	return n
}
