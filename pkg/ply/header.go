package ply

import (
	"bufio"
	"fmt"
	"io"
)

// readLine consumes one header or ASCII record line including its
// terminator. A final line without a terminator is still returned whole.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	return line, err
}

// readHeader drives the line-by-line header state machine: the first line
// must be the magic number, then declarations accumulate until end_header.
// Cross-line rules are enforced here: a format line must not contradict an
// earlier one, elements and per-element properties must be unique, and a
// property attaches to the most recently declared element.
func readHeader(r *bufio.Reader, loc *locationTracker) (*Header, error) {
	loc.advance()
	line, err := readLine(r)
	if err == io.EOF {
		return nil, parseErrorf(ErrUnexpectedEOF, loc.line, "", "stream ends before the magic number %q", "ply")
	}
	if err != nil {
		return nil, fmt.Errorf("ply: reading header: %w", err)
	}
	first, cerr := ClassifyLine(line)
	if cerr != nil {
		return nil, &ParseError{Kind: ErrInvalidHeader, Line: loc.line, Text: line, Msg: `expected magic number "ply"`, Err: cerr}
	}
	if first.Kind != LineMagicNumber {
		return nil, parseErrorf(ErrInvalidHeader, loc.line, line, `expected magic number "ply", found %s`, first.Kind)
	}

	var (
		haveFormat bool
		encoding   Encoding
		version    Version
		comments   []string
		objInfos   []string
		elements   KeyMap[*ElementDef]
		current    *ElementDef // most recently declared element
	)

	for {
		loc.advance()
		line, err := readLine(r)
		if err == io.EOF {
			return nil, parseErrorf(ErrUnexpectedEOF, loc.line, "", "stream ends before %q", "end_header")
		}
		if err != nil {
			return nil, fmt.Errorf("ply: reading header: %w", err)
		}
		ln, cerr := ClassifyLine(line)
		if cerr != nil {
			return nil, &ParseError{Kind: ErrInvalidInput, Line: loc.line, Text: line, Msg: "cannot parse header line", Err: cerr}
		}

		switch ln.Kind {
		case LineMagicNumber:
			return nil, parseErrorf(ErrInvalidHeader, loc.line, line, `unexpected repeated magic number "ply"`)

		case LineFormat:
			if !haveFormat {
				haveFormat = true
				encoding = ln.Encoding
				version = ln.Version
			} else if encoding != ln.Encoding || version != ln.Version {
				return nil, parseErrorf(ErrInvalidHeader, loc.line, line,
					"contradicting format declaration %s %s, previously declared as %s %s",
					ln.Encoding, ln.Version, encoding, version)
			}

		case LineComment:
			comments = append(comments, ln.Text)

		case LineObjInfo:
			objInfos = append(objInfos, ln.Text)

		case LineElement:
			if !elements.Add(ln.Element.Name, ln.Element) {
				return nil, parseErrorf(ErrDuplicateElement, loc.line, line, "element %q already declared", ln.Element.Name)
			}
			current = ln.Element

		case LineProperty:
			if current == nil {
				return nil, parseErrorf(ErrPropertyBeforeElement, loc.line, line, "property %q declared before any element", ln.Property.Name)
			}
			if !current.Properties.Add(ln.Property.Name, *ln.Property) {
				return nil, parseErrorf(ErrDuplicateProperty, loc.line, line, "property %q already declared on element %q", ln.Property.Name, current.Name)
			}

		case LineEndHeader:
			if !haveFormat {
				return nil, parseErrorf(ErrMissingFormat, loc.line, "", "header has no format declaration")
			}
			return &Header{
				Encoding: encoding,
				Version:  version,
				ObjInfos: objInfos,
				Comments: comments,
				Elements: elements,
			}, nil
		}
	}
}
