package ply

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ASCII payload decoding: one text line per record, whitespace-separated
// tokens consumed left to right in the element's declared property order.
// A scalar property consumes one token; a list property consumes a length
// token of its index type, then exactly that many value tokens. Trailing
// tokens beyond the schema are tolerated.

func (p *Parser[E]) readASCIIPayloadForElement(r *bufio.Reader, loc *locationTracker, def *ElementDef) ([]E, error) {
	records := make([]E, 0, prealloc(def.Count))
	for i := 0; i < def.Count; i++ {
		loc.advance()
		line, err := readLine(r)
		if err == io.EOF {
			return nil, parseErrorf(ErrUnexpectedEOF, loc.line, "",
				"stream ends after %d of %d %q records", i, def.Count, def.Name)
		}
		if err != nil {
			return nil, fmt.Errorf("ply: reading payload line %d: %w", loc.line, err)
		}
		record, err := p.readASCIIRecord(line, def, loc.line)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (p *Parser[E]) readASCIIRecord(line string, def *ElementDef, lineNo int) (E, error) {
	record := p.newElement()
	tokens := strings.Fields(line)
	pos := 0

	next := func(propName string) (string, *ParseError) {
		if pos >= len(tokens) {
			return "", parseErrorf(ErrMalformedRecord, lineNo, line,
				"element %q: record ends before property %q", def.Name, propName)
		}
		tok := tokens[pos]
		pos++
		return tok, nil
	}

	for _, name := range def.Properties.Keys() {
		prop, _ := def.Properties.Get(name)
		if !prop.Type.IsList {
			tok, perr := next(name)
			if perr != nil {
				return record, perr
			}
			v, err := parseASCIIScalar(tok, prop.Type.ValueType)
			if err != nil {
				return record, &ParseError{Kind: ErrMalformedRecord, Line: lineNo, Text: line,
					Msg: formatTokenContext(def.Name, name, tok), Err: err}
			}
			record.SetScalar(name, v)
			continue
		}

		tok, perr := next(name)
		if perr != nil {
			return record, perr
		}
		lengthValue, err := parseASCIIScalar(tok, prop.Type.IndexType)
		if err != nil {
			return record, &ParseError{Kind: ErrMalformedRecord, Line: lineNo, Text: line,
				Msg: formatTokenContext(def.Name, name, tok), Err: err}
		}
		n, err := listLength(lengthValue)
		if err != nil {
			return record, &ParseError{Kind: ErrMalformedRecord, Line: lineNo, Text: line,
				Msg: formatTokenContext(def.Name, name, tok), Err: err}
		}
		values := make([]Value, 0, prealloc(n))
		for j := 0; j < n; j++ {
			tok, perr := next(name)
			if perr != nil {
				return record, perr
			}
			v, err := parseASCIIScalar(tok, prop.Type.ValueType)
			if err != nil {
				return record, &ParseError{Kind: ErrMalformedRecord, Line: lineNo, Text: line,
					Msg: formatTokenContext(def.Name, name, tok), Err: err}
			}
			values = append(values, v)
		}
		record.SetList(name, values)
	}
	return record, nil
}

func formatTokenContext(element, property, token string) string {
	return "element \"" + element + "\": property \"" + property + "\": bad token \"" + token + "\""
}

// parseASCIIScalar parses one token as the given scalar type, rejecting
// non-numeric and out-of-range text. Parsing is locale-independent.
func parseASCIIScalar(token string, t ScalarType) (Value, error) {
	switch t.valueClass() {
	case classSigned:
		v, err := strconv.ParseInt(token, 10, t.ByteWidth()*8)
		if err != nil {
			return Value{}, err
		}
		return IntValue(t, v), nil
	case classUnsigned:
		v, err := strconv.ParseUint(token, 10, t.ByteWidth()*8)
		if err != nil {
			return Value{}, err
		}
		return UintValue(t, v), nil
	default:
		v, err := strconv.ParseFloat(token, t.ByteWidth()*8)
		if err != nil {
			return Value{}, err
		}
		return FloatValue(t, v), nil
	}
}
