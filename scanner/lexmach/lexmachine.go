package lexmach

import (
	"fmt"
	"strings"

	"github.com/npillmayer/peggen"
	"github.com/npillmayer/peggen/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'peggen.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("peggen.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('[', '->', …) and a map for translating token strings to their
// values. Literals are added after the patterns of init.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
	end     uint64 // end of the last token produced
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// UnconsumedInputError is handed to the error handler of an LMScanner if
// input cannot be matched by any pattern. The offending input is skipped.
type UnconsumedInputError struct {
	Offset uint64 // byte offset of the offending input
	Line   int
	Column int
	Text   string
}

func (e *UnconsumedInputError) Error() string {
	return fmt.Sprintf("unexpected input %q at line %d, column %d", e.Text, e.Line, e.Column)
}

// NextToken is part of the Tokenizer interface.
func (lms *LMScanner) NextToken() peggen.Token {
	if lms.scanner == nil {
		return scanner.MakeDefaultToken(scanner.EOF, "", peggen.Span{})
	}
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.Error(&UnconsumedInputError{
				Offset: uint64(ui.StartTC),
				Line:   ui.StartLine,
				Column: ui.StartColumn,
				Text:   offending(ui),
			})
			lms.scanner.TC = ui.FailTC
			if ui.FailTC <= ui.StartTC { // always make progress
				lms.scanner.TC = ui.StartTC + 1
			}
		} else {
			lms.Error(err)
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return scanner.MakeDefaultToken(scanner.EOF, "", peggen.Span{lms.end, lms.end})
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	from := uint64(token.TC)
	lms.end = from + uint64(len(token.Lexeme))
	t := scanner.MakeDefaultToken(
		peggen.TokType(token.Type),
		string(token.Lexeme),
		peggen.Span{from, lms.end},
	)
	t.Val = token.Value
	return t
}

func offending(ui *machines.UnconsumedInput) string {
	if ui.FailTC > ui.StartTC && ui.FailTC <= len(ui.Text) {
		return string(ui.Text[ui.StartTC:ui.FailTC])
	}
	if ui.StartTC < len(ui.Text) {
		return string(ui.Text[ui.StartTC : ui.StartTC+1])
	}
	return ""
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
// The token value is the lexeme.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// MakeValueToken is an action which wraps a scanned match into a token,
// using conv to compute the token value from the lexeme.
func MakeValueToken(id int, conv func(string) (interface{}, error)) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		v, err := conv(string(m.Bytes))
		if err != nil {
			return nil, fmt.Errorf("line %d, column %d: %w", m.StartLine, m.StartColumn, err)
		}
		return s.Token(id, v, m), nil
	}
}
