package scanner

import (
	"fmt"

	"github.com/npillmayer/peggen"
)

// Position is a bookmark into the token stream of a Cursor. Positions are
// totally ordered by token arrival and never become invalid.
type Position int

// Cursor wraps a tokenizer and buffers its tokens, allowing for arbitrary
// lookahead and backtracking. Tokens are pulled from the tokenizer lazily and
// never scanned twice.
//
// A Cursor is not safe for concurrent use.
type Cursor struct {
	tokenizer Tokenizer
	tokens    []peggen.Token // every token seen so far
	pos       int            // index into tokens
	farthest  int            // highest index ever peeked at
	eof       bool           // tokenizer is exhausted
}

// NewCursor creates a cursor positioned at the first token of t.
func NewCursor(t Tokenizer) *Cursor {
	return &Cursor{tokenizer: t}
}

// Pos returns the current position.
func (c *Cursor) Pos() Position {
	return Position(c.pos)
}

// Set moves the cursor to a previously observed position.
// Setting a position which has never been observed is a programming error and
// will panic.
func (c *Cursor) Set(p Position) {
	if int(p) < 0 || int(p) > len(c.tokens) {
		panic(fmt.Sprintf("cursor position %d has never been observed", p))
	}
	c.pos = int(p)
}

// Peek returns the token at the cursor without consuming it, or nil at the
// end of input.
func (c *Cursor) Peek() peggen.Token {
	if c.pos > c.farthest {
		c.farthest = c.pos
	}
	if !c.fill(c.pos) {
		return nil
	}
	return c.tokens[c.pos]
}

// Advance consumes and returns the token at the cursor. At the end of input
// Advance returns nil and the cursor does not move.
func (c *Cursor) Advance() peggen.Token {
	token := c.Peek()
	if token != nil {
		c.pos++
	}
	return token
}

// Farthest returns the highest position the cursor has ever looked at.
// Parsers use it to report where parsing got stuck.
func (c *Cursor) Farthest() Position {
	return Position(c.farthest)
}

// TokenAt returns the token at position p, or nil if p is at or beyond the end of input.
func (c *Cursor) TokenAt(p Position) peggen.Token {
	if int(p) < 0 || !c.fill(int(p)) {
		return nil
	}
	return c.tokens[p]
}

// fill makes sure the token at index i is buffered, if there is one.
func (c *Cursor) fill(i int) bool {
	for len(c.tokens) <= i && !c.eof {
		token := c.tokenizer.NextToken()
		if token == nil || token.TokType() == EOF {
			tracer().Debugf("cursor reached end of input after %d tokens", len(c.tokens))
			c.eof = true
			break
		}
		c.tokens = append(c.tokens, token)
	}
	return i < len(c.tokens)
}
