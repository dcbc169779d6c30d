package peglang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/npillmayer/peggen"
	"github.com/npillmayer/peggen/scanner"
	"github.com/npillmayer/peggen/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// The tokens representing operators of the grammar DSL
var literals = []string{"->", "|", "(", ")", "[", "]", "+", "*", "?"}

// tokenIds will be set in initTokens()
var tokenIds map[string]int // A map from the token names to their token types

var initOnce sync.Once // monitors one-time initialization
func initTokens() {
	initOnce.Do(func() {
		tokenIds = make(map[string]int)
		tokenIds["ID"] = scanner.Ident
		tokenIds["STRING"] = scanner.String
		tokenIds["NEWLINE"] = scanner.Newline
		for _, lit := range literals {
			tokenIds[lit] = scanner.Operator
		}
	})
}

var lexer *lexmach.LMAdapter
var lexerErr error
var lexerOnce sync.Once // monitors one-time compilation of the DFA

// Lexer returns the lexmachine lexer for the grammar DSL. The DFA is
// compiled on first use.
func Lexer() (*lexmach.LMAdapter, error) {
	lexerOnce.Do(func() {
		initTokens()
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`#[^\n]*`), lexmach.Skip) // skip comments
			lexer.Add([]byte(`\"([^"\\\n]|\\.)*\"`), lexmach.MakeValueToken(tokenIds["STRING"], unquote))
			lexer.Add([]byte(`'([^'\\\n]|\\.)*'`), lexmach.MakeValueToken(tokenIds["STRING"], unquote))
			lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), makeToken("ID"))
			lexer.Add([]byte(`\r?\n`), makeToken("NEWLINE"))
			lexer.Add([]byte(`( |\t|\r)+`), lexmach.Skip)
		}
		lexer, lexerErr = lexmach.NewLMAdapter(init, literals, tokenIds)
	})
	return lexer, lexerErr
}

func makeToken(s string) lexmachine.Action {
	id, ok := tokenIds[s]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", s))
	}
	return lexmach.MakeToken(s, id)
}

// unquote resolves the quotes and escape sequences of a string literal.
// Double-quoted literals follow Go syntax. Single-quoted literals may contain
// any number of characters, with \' denoting a single quote.
func unquote(lexeme string) (interface{}, error) {
	if strings.HasPrefix(lexeme, "'") {
		var b strings.Builder
		b.WriteByte('"')
		inner := lexeme[1 : len(lexeme)-1]
		for i := 0; i < len(inner); i++ {
			switch c := inner[i]; {
			case c == '\\' && i+1 < len(inner) && inner[i+1] == '\'':
				b.WriteByte('\'')
				i++
			case c == '\\' && i+1 < len(inner):
				b.WriteByte(c)
				b.WriteByte(inner[i+1])
				i++
			case c == '"':
				b.WriteString(`\"`)
			default:
				b.WriteByte(c)
			}
		}
		b.WriteByte('"')
		lexeme = b.String()
	}
	s, err := strconv.Unquote(lexeme)
	if err != nil {
		return nil, fmt.Errorf("malformed string literal %s", lexeme)
	}
	return s, nil
}

// --- Line handling ---------------------------------------------------------

// lineTokenizer filters the line ends delivered by the lexmachine scanner:
// Newlines inside brackets or parentheses do not terminate a rule, empty
// lines are dropped, and a final line end is provided if the input lacks one.
type lineTokenizer struct {
	scanner.Tokenizer
	depth int            // nesting level of ( and [
	last  peggen.TokType // type of the last token handed out
}

func newLineTokenizer(t scanner.Tokenizer) *lineTokenizer {
	return &lineTokenizer{Tokenizer: t, last: scanner.Newline}
}

func (lt *lineTokenizer) NextToken() peggen.Token {
	for {
		token := lt.Tokenizer.NextToken()
		switch token.TokType() {
		case scanner.Newline:
			if lt.depth > 0 || lt.last == scanner.Newline {
				continue
			}
		case scanner.EOF:
			if lt.last != scanner.Newline {
				lt.last = scanner.Newline
				return scanner.MakeDefaultToken(scanner.Newline, "", token.Span())
			}
			return token
		case scanner.Operator:
			switch token.Lexeme() {
			case "(", "[":
				lt.depth++
			case ")", "]":
				if lt.depth > 0 {
					lt.depth--
				}
			}
		}
		lt.last = token.TokType()
		return token
	}
}

// Tokenizer creates a tokenizer for grammar source text.
func Tokenizer(input string) (scanner.Tokenizer, error) {
	lm, err := Lexer()
	if err != nil {
		return nil, err
	}
	scan, err := lm.Scanner(input)
	if err != nil {
		return nil, err
	}
	return newLineTokenizer(scan), nil
}
