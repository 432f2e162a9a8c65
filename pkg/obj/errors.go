package obj

import (
	"errors"
	"fmt"
)

// Error kinds reported by the parser. A *ParseError always wraps exactly one
// of these, so callers can test with errors.Is.
var (
	ErrMalformedLine   = errors.New("malformed line")
	ErrInvalidVertex   = errors.New("invalid vertex")
	ErrInvalidTexcoord = errors.New("invalid texture coordinate")
	ErrInvalidNormal   = errors.New("invalid normal")
	ErrInvalidFace     = errors.New("invalid face")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ParseError describes the directive that aborted a parse
type ParseError struct {
	Line    int    // 1-based line number of the offending record
	Keyword string // directive keyword, empty for malformed lines
	Detail  string
	Kind    error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("line %d: %v", e.Line, e.Kind)
	if e.Keyword != "" {
		msg = fmt.Sprintf("line %d: %q: %v", e.Line, e.Keyword, e.Kind)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap returns the error kind
func (e *ParseError) Unwrap() error {
	return e.Kind
}

func newParseError(rec Record, kind error, format string, args ...any) *ParseError {
	keyword := ""
	if len(rec.Fields) > 0 {
		keyword = rec.Fields[0]
	}
	return &ParseError{
		Line:    rec.Line,
		Keyword: keyword,
		Detail:  fmt.Sprintf(format, args...),
		Kind:    kind,
	}
}
