package ply

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// Parser decodes PLY streams into a caller-supplied element representation
// E. A Parser holds no mutable state beyond the element factory, so one
// instance may be reused and shared across independent streams.
type Parser[E PropertyAccess] struct {
	newElement func() E
}

// NewParser returns a parser that obtains a fresh representation instance
// from newElement for every decoded record.
func NewParser[E PropertyAccess](newElement func() E) *Parser[E] {
	return &Parser[E]{newElement: newElement}
}

// NewDefaultParser returns a parser decoding into the map-backed
// DefaultElement representation.
func NewDefaultParser() *Parser[DefaultElement] {
	return NewParser(func() DefaultElement { return DefaultElement{} })
}

// ReadPly decodes a whole file: header and payload in one call.
func (p *Parser[E]) ReadPly(r io.Reader) (*Ply[E], error) {
	br := bufio.NewReader(r)
	var loc locationTracker
	header, err := readHeader(br, &loc)
	if err != nil {
		return nil, err
	}
	payload, err := p.readPayload(br, &loc, header)
	if err != nil {
		return nil, err
	}
	return &Ply[E]{Header: header, Payload: payload}, nil
}

// ReadHeader decodes the header only, for schema inspection without
// materializing the payload. The reader is left positioned on the first
// payload byte.
func (p *Parser[E]) ReadHeader(r *bufio.Reader) (*Header, error) {
	var loc locationTracker
	return readHeader(r, &loc)
}

// ReadHeaderLine classifies a single header line.
func (p *Parser[E]) ReadHeaderLine(line string) (*Line, error) {
	return ClassifyLine(line)
}

// ReadPayload decodes the full payload described by an already-parsed
// header, element by element in declared order.
func (p *Parser[E]) ReadPayload(r *bufio.Reader, header *Header) (Payload[E], error) {
	var loc locationTracker
	return p.readPayload(r, &loc, header)
}

func (p *Parser[E]) readPayload(r *bufio.Reader, loc *locationTracker, header *Header) (Payload[E], error) {
	var payload Payload[E]
	for _, name := range header.Elements.Keys() {
		def, _ := header.Elements.Get(name)
		records, err := p.readElementRecords(r, loc, def, header.Encoding)
		if err != nil {
			return Payload[E]{}, err
		}
		payload.Add(name, records)
	}
	return payload, nil
}

// ReadPayloadForElement decodes the declared number of records for one
// element, for incremental use where the header was parsed separately.
func (p *Parser[E]) ReadPayloadForElement(r *bufio.Reader, def *ElementDef, encoding Encoding) ([]E, error) {
	var loc locationTracker
	return p.readElementRecords(r, &loc, def, encoding)
}

func (p *Parser[E]) readElementRecords(r *bufio.Reader, loc *locationTracker, def *ElementDef, encoding Encoding) ([]E, error) {
	switch encoding {
	case EncodingASCII:
		return p.readASCIIPayloadForElement(r, loc, def)
	case EncodingBinaryBigEndian:
		return p.readBinaryPayloadForElement(r, def, binary.BigEndian)
	case EncodingBinaryLittleEndian:
		return p.readBinaryPayloadForElement(r, def, binary.LittleEndian)
	default:
		return nil, fmt.Errorf("ply: unknown encoding %d", uint8(encoding))
	}
}

// ReadASCIIRecord decodes one ASCII record line against an element
// definition.
func (p *Parser[E]) ReadASCIIRecord(line string, def *ElementDef) (E, error) {
	return p.readASCIIRecord(line, def, 0)
}

// ReadBigEndianRecord decodes one binary record in big-endian byte order.
func (p *Parser[E]) ReadBigEndianRecord(r io.Reader, def *ElementDef) (E, error) {
	return p.readBinaryRecord(r, def, binary.BigEndian)
}

// ReadLittleEndianRecord decodes one binary record in little-endian byte
// order.
func (p *Parser[E]) ReadLittleEndianRecord(r io.Reader, def *ElementDef) (E, error) {
	return p.readBinaryRecord(r, def, binary.LittleEndian)
}
