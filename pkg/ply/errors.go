package ply

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every error returned by this package matches exactly one of
// these with errors.Is, alongside any underlying cause (for example
// io.ErrUnexpectedEOF under ErrUnexpectedEOF).
var (
	// ErrInvalidInput marks a header line that fails the grammar.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidHeader marks a structurally wrong header: bad, missing or
	// repeated magic number, or contradicting format declarations.
	ErrInvalidHeader = errors.New("invalid header")
	// ErrDuplicateElement marks a second element declaration with a name
	// already taken.
	ErrDuplicateElement = errors.New("duplicate element")
	// ErrDuplicateProperty marks a second property declaration with a name
	// already taken on its element.
	ErrDuplicateProperty = errors.New("duplicate property")
	// ErrPropertyBeforeElement marks a property declared before any element.
	ErrPropertyBeforeElement = errors.New("property before element")
	// ErrMissingFormat marks a header that ended without a format line.
	ErrMissingFormat = errors.New("missing format declaration")
	// ErrMalformedRecord marks an ASCII payload record with missing or
	// unparsable tokens.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrUnexpectedEOF marks a stream that ends before the header or the
	// declared payload is complete.
	ErrUnexpectedEOF = errors.New("unexpected end of stream")
)

// ParseError is the concrete error type returned for malformed input. It
// carries the 1-based line number when known, the raw offending text when
// available, and a human-readable cause.
type ParseError struct {
	Kind error  // one of the Err* values above
	Line int    // 1-based; 0 when no line number applies
	Text string // raw offending line, if any
	Msg  string
	Err  error // underlying cause, if any
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("ply: ")
	b.WriteString(e.Kind.Error())
	if e.Line > 0 {
		fmt.Fprintf(&b, ": line %d", e.Line)
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Text != "" {
		fmt.Fprintf(&b, " (input: %q)", strings.TrimRight(e.Text, "\r\n"))
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func parseErrorf(kind error, line int, text, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Line: line, Text: text, Msg: fmt.Sprintf(format, args...)}
}
