package peglang

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/npillmayer/peggen"
	"github.com/npillmayer/peggen/scanner/lexmach"
)

// Severity classifies diagnostics.
type Severity int

// Severities of diagnostics.
const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// Diagnostic is a message about a location in grammar source text.
// Lines and columns are 1-based, columns count runes.
type Diagnostic struct {
	Source   string
	Line     int
	Column   int
	Offset   uint64
	Severity Severity
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", d.Source, d.Line, d.Column, d.Severity, d.Message)
}

func (p *Parser) diagnostic(sev Severity, token peggen.Token, format string, args ...interface{}) Diagnostic {
	d := Diagnostic{
		Source:   p.sourceID,
		Offset:   token.Span().From(),
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
	}
	if p.lines != nil {
		d.Line, d.Column = p.lines.lineCol(int(d.Offset))
	}
	return d
}

// LexError is returned by Parse if the grammar source contains input which is
// not a token of the grammar DSL, or a malformed string literal.
type LexError struct {
	Source string
	Line   int // 0 if unknown
	Column int
	Err    error
}

func newLexError(sourceID string, err error) *LexError {
	lerr := &LexError{Source: sourceID, Err: err}
	var ui *lexmach.UnconsumedInputError
	if errors.As(err, &ui) {
		lerr.Line, lerr.Column = ui.Line, ui.Column
	}
	return lerr
}

func (e *LexError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %v", e.Source, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *LexError) Unwrap() error {
	return e.Err
}

// --- Source positions ------------------------------------------------------

// lineIndex maps byte offsets to line and column numbers.
type lineIndex struct {
	content    []byte
	lineStarts []int
}

func newLineIndex(content string) *lineIndex {
	idx := &lineIndex{content: []byte(content)}
	idx.lineStarts = make([]int, 1, bytes.Count(idx.content, []byte("\n"))+1)
	for i, c := range idx.content {
		if c == '\n' {
			idx.lineStarts = append(idx.lineStarts, i+1)
		}
	}
	return idx
}

func (idx *lineIndex) lineCol(pos int) (line, col int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(idx.content) {
		pos = len(idx.content)
	}
	l := sort.Search(len(idx.lineStarts), func(i int) bool {
		return idx.lineStarts[i] > pos
	}) - 1
	start := idx.lineStarts[l]
	return l + 1, utf8.RuneCount(idx.content[start:pos]) + 1
}
