package peglang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/npillmayer/peggen"
	"github.com/npillmayer/peggen/grammar"
	"github.com/npillmayer/peggen/scanner"
)

// --- Grammar ---------------------------------------------------------------

// Grammar      ::=  { Rule }
// Rule         ::=  ident '->' Alternatives NEWLINE
// Alternatives ::=  Alternative { '|' Alternative }
// Alternative  ::=  Part { Part }
// Part         ::=  ident | string | Charset | Group
// Charset      ::=  '[' string ']' [ '+' | '*' | '?' ]
// Group        ::=  '(' Alternatives ')' [ '+' | '*' | '?' ]
//
// Every production either succeeds and leaves the cursor behind the input it
// recognized, or fails and leaves the cursor where it was.

// Parser is a backtracking recursive-descent parser for the grammar DSL.
// It operates on tokens, not on characters.
type Parser struct {
	sourceID string
	cursor   *scanner.Cursor
	diags    []Diagnostic
	lines    *lineIndex
}

// NewParser creates a parser reading tokens from t. sourceID names the input
// in diagnostics.
func NewParser(sourceID string, t scanner.Tokenizer) *Parser {
	return &Parser{
		sourceID: sourceID,
		cursor:   scanner.NewCursor(t),
	}
}

// Parse parses grammar source text. The grammar is named after the base name of
// sourceID, without extension.
//
// Lexical errors are fatal and reported as *LexError. Input following the last
// rule which could be parsed does not make Parse fail, but is reported as a
// warning diagnostic.
func Parse(sourceID string, src []byte) (*grammar.Grammar, []Diagnostic, error) {
	input := string(src)
	t, err := Tokenizer(input)
	if err != nil {
		return nil, nil, err
	}
	var lexErr error
	t.SetErrorHandler(func(e error) {
		tracer().Errorf("%s: %v", sourceID, e)
		if lexErr == nil {
			lexErr = newLexError(sourceID, e)
		}
	})
	p := NewParser(sourceID, t)
	p.lines = newLineIndex(input)
	g := p.ParseGrammar()
	p.drain()
	if lexErr != nil {
		return nil, p.diags, lexErr
	}
	return g, p.diags, nil
}

// ParseGrammar parses rules until no more rule can be recognized. It never
// fails; if unparsed input remains, a warning is recorded (see Diagnostics).
func (p *Parser) ParseGrammar() *grammar.Grammar {
	g := grammar.NewGrammar(grammarName(p.sourceID))
	for {
		rule, ok := p.parseRule()
		if !ok {
			break
		}
		tracer().Debugf("rule %s", rule)
		g.Rules = append(g.Rules, rule)
	}
	if token := p.cursor.Peek(); token != nil {
		p.warnTrailing(token)
	}
	tracer().Infof("parsed grammar %s with %d rules", g.Name, len(g.Rules))
	return g
}

// Diagnostics returns the warnings collected during parsing.
func (p *Parser) Diagnostics() []Diagnostic {
	return p.diags
}

func grammarName(sourceID string) string {
	base := filepath.Base(sourceID)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// --- Productions -----------------------------------------------------------

func (p *Parser) parseRule() (*grammar.Rule, bool) {
	pos := p.cursor.Pos()
	name := p.expect(kind(scanner.Ident))
	if name == nil {
		p.cursor.Set(pos)
		return nil, false
	}
	if p.expect(text("->")) == nil {
		p.cursor.Set(pos)
		return nil, false
	}
	alts, ok := p.parseAlternatives()
	if !ok {
		p.cursor.Set(pos)
		return nil, false
	}
	if p.expect(kind(scanner.Newline)) == nil {
		p.cursor.Set(pos)
		return nil, false
	}
	return &grammar.Rule{Name: name.Lexeme(), Alternatives: alts}, true
}

// parseAlternatives stops at a '|' which is not followed by an alternative,
// leaving the '|' unconsumed.
func (p *Parser) parseAlternatives() ([]grammar.Alternative, bool) {
	alt, ok := p.parseAlternative()
	if !ok {
		return nil, false
	}
	alts := []grammar.Alternative{alt}
	for {
		pos := p.cursor.Pos()
		if p.expect(text("|")) == nil {
			return alts, true
		}
		if alt, ok = p.parseAlternative(); !ok {
			tracer().Debugf("'|' not followed by an alternative")
			p.cursor.Set(pos)
			return alts, true
		}
		alts = append(alts, alt)
	}
}

func (p *Parser) parseAlternative() (grammar.Alternative, bool) {
	var parts []grammar.Part
	for {
		part, ok := p.parsePart()
		if !ok {
			break
		}
		parts = append(parts, part)
	}
	if len(parts) == 0 {
		return grammar.Alternative{}, false
	}
	return grammar.Alternative{Parts: parts}, true
}

func (p *Parser) parsePart() (grammar.Part, bool) {
	if token := p.expect(kind(scanner.Ident)); token != nil {
		return grammar.Reference{Name: token.Lexeme()}, true
	}
	if token := p.expect(kind(scanner.String)); token != nil {
		return grammar.Literal{Text: stringValue(token)}, true
	}
	if part, ok := p.parseCharset(); ok {
		return part, true
	}
	if part, ok := p.parseGroup(); ok {
		return part, true
	}
	return nil, false
}

func (p *Parser) parseCharset() (grammar.Part, bool) {
	pos := p.cursor.Pos()
	if p.expect(text("[")) == nil {
		p.cursor.Set(pos)
		return nil, false
	}
	chars := p.expect(kind(scanner.String))
	if chars == nil {
		p.cursor.Set(pos)
		return nil, false
	}
	if p.expect(text("]")) == nil {
		p.cursor.Set(pos)
		return nil, false
	}
	return grammar.NewCharset(stringValue(chars), p.parseQuantifier()), true
}

func (p *Parser) parseGroup() (grammar.Part, bool) {
	pos := p.cursor.Pos()
	if p.expect(text("(")) == nil {
		p.cursor.Set(pos)
		return nil, false
	}
	alts, ok := p.parseAlternatives()
	if !ok {
		p.cursor.Set(pos)
		return nil, false
	}
	if p.expect(text(")")) == nil {
		p.cursor.Set(pos)
		return nil, false
	}
	return grammar.Group{Alternatives: alts, Quantifier: p.parseQuantifier()}, true
}

// parseQuantifier never fails: no suffix means exactly one.
func (p *Parser) parseQuantifier() grammar.Quantifier {
	switch {
	case p.expect(text("+")) != nil:
		return grammar.OneOrMore
	case p.expect(text("*")) != nil:
		return grammar.ZeroOrMore
	case p.expect(text("?")) != nil:
		return grammar.Optional
	}
	return grammar.One
}

// --- Token matching --------------------------------------------------------

// matcher describes the shape of an expected token.
type matcher func(peggen.Token) bool

// kind matches tokens of a token type.
func kind(k peggen.TokType) matcher {
	return func(t peggen.Token) bool {
		return t.TokType() == k
	}
}

// text matches tokens by their literal text.
func text(s string) matcher {
	return func(t peggen.Token) bool {
		return t.Lexeme() == s
	}
}

// expect consumes and returns the next token if it matches m. Otherwise it
// returns nil and consumes nothing.
func (p *Parser) expect(m matcher) peggen.Token {
	token := p.cursor.Peek()
	if token != nil && m(token) {
		return p.cursor.Advance()
	}
	return nil
}

func stringValue(t peggen.Token) string {
	if s, ok := t.Value().(string); ok {
		return s
	}
	return t.Lexeme()
}

// drain pulls the remaining tokens from the tokenizer, to surface lexical
// errors in input which the grammar parser never looked at.
func (p *Parser) drain() {
	pos := p.cursor.Pos()
	for p.cursor.Advance() != nil {
	}
	p.cursor.Set(pos)
}

// --- Diagnostics -----------------------------------------------------------

func (p *Parser) warnTrailing(token peggen.Token) {
	farthest := p.cursor.TokenAt(p.cursor.Farthest())
	d := p.diagnostic(Warning, token, "input after last rule ignored, starting at %s", describe(token))
	if farthest != nil && farthest != token {
		d.Message += ", parsing got stuck at " + describe(farthest) + " " + p.position(farthest)
	}
	tracer().Infof("%s", d)
	p.diags = append(p.diags, d)
}

func (p *Parser) position(token peggen.Token) string {
	if p.lines == nil {
		return fmt.Sprintf("at offset %d", token.Span().From())
	}
	line, col := p.lines.lineCol(int(token.Span().From()))
	return fmt.Sprintf("at line %d, column %d", line, col)
}

func describe(token peggen.Token) string {
	switch token.TokType() {
	case scanner.Newline:
		return "end of line"
	case scanner.Ident:
		return "identifier " + token.Lexeme()
	}
	return "'" + token.Lexeme() + "'"
}
