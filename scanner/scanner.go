/*
Package scanner defines an interface for tokenizers to be used with the grammar
parser of package peglang, and a lexical cursor on top of it.

The grammar parser backtracks pervasively. The Cursor therefore buffers every
token it pulls from a tokenizer, and every position ever taken stays a valid
bookmark for the lifetime of the cursor.

A default tokenizer implementation is provided in sub-package `lexmach`, an
adapter for lexmachine.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"text/scanner"

	"github.com/npillmayer/peggen"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'peggen.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("peggen.scanner")
}

// EOF is identical to text/scanner.EOF.
// Token types are replicated here for practical reasons; the grammar DSL
// adds categories for line ends and operators.
const (
	EOF      = scanner.EOF
	Ident    = scanner.Ident
	String   = scanner.String
	Newline  = -11
	Operator = -12
)

// Tokenizer is a scanner interface. At the end of input a tokenizer has to
// return tokens of type EOF.
type Tokenizer interface {
	NextToken() peggen.Token
	SetErrorHandler(func(error))
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// LexMachine scanner.
type DefaultToken struct {
	kind   peggen.TokType
	lexeme string
	Val    interface{}
	span   peggen.Span
}

var _ peggen.Token = DefaultToken{}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ peggen.TokType, lexeme string, span peggen.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() peggen.TokType {
	return t.kind
}

// Value returns the token value, if set by the scanner. Otherwise the lexeme is
// returned.
func (t DefaultToken) Value() interface{} {
	if t.Val == nil {
		return t.lexeme
	}
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() peggen.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("<%d %q %s>", t.kind, t.lexeme, t.span)
}
