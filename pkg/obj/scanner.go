package obj

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// Record is one logical OBJ statement: a keyword followed by its arguments
type Record struct {
	Line   int
	Fields []string
}

// Keyword returns the directive keyword of the record
func (r Record) Keyword() string {
	if len(r.Fields) == 0 {
		return ""
	}
	return r.Fields[0]
}

// Args returns the fields following the keyword
func (r Record) Args() []string {
	if len(r.Fields) == 0 {
		return nil
	}
	return r.Fields[1:]
}

// Records splits OBJ text into records, one per non-blank line.
// Comments starting with '#' are dropped, and a trailing backslash joins a
// line with the next one. The sequence can be ranged over repeatedly.
// Iteration stops after the first error.
func Records(text string) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		var (
			pending     []string
			pendingLine int
			lineNum     int
		)

		for raw := range strings.Lines(text) {
			lineNum++

			content := stripComment(raw)
			trimmed := strings.TrimFunc(content, isSpace)
			if trimmed == "" && pendingLine == 0 {
				continue
			}

			if !utf8.ValidString(trimmed) {
				yield(Record{Line: lineNum}, &ParseError{
					Line:   lineNum,
					Detail: "invalid UTF-8",
					Kind:   ErrMalformedLine,
				})
				return
			}

			continued := strings.HasSuffix(trimmed, `\`)
			if continued {
				trimmed = strings.TrimSuffix(trimmed, `\`)
			}

			if pendingLine == 0 {
				pendingLine = lineNum
			}
			pending = append(pending, strings.FieldsFunc(trimmed, isSpace)...)
			if continued {
				continue
			}

			if len(pending) > 0 {
				if !yield(Record{Line: pendingLine, Fields: pending}, nil) {
					return
				}
			}
			pending = nil
			pendingLine = 0
		}

		// continuation on the last line
		if len(pending) > 0 {
			yield(Record{Line: pendingLine, Fields: pending}, nil)
		}
	}
}

// isSpace reports ASCII whitespace only. Other Unicode spaces such as
// U+00A0 stay part of the field they appear in.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}
