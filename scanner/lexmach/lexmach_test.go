package lexmach

import (
	"errors"
	"strconv"
	"testing"

	"github.com/npillmayer/peggen/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"
)

var inputStrings = []string{
	"A",
	"A -> B",
	`A -> "x" | 'y'`,
	"A -> ( B )* # commented",
}

var tokenCounts = []int{1, 3, 5, 6}

var literals = []string{"->", "|", "(", ")", "*"}
var tokenIds = map[string]int{
	"ID":     scanner.Ident,
	"STRING": scanner.String,
	"->":     10,
	"|":      11,
	"(":      12,
	")":      13,
	"*":      14,
}

func makeAdapter(t *testing.T) *LMAdapter {
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`#[^\n]*`), Skip)
		lexer.Add([]byte(`\"[^"]*\"`), MakeValueToken(tokenIds["STRING"], func(s string) (interface{}, error) {
			return strconv.Unquote(s)
		}))
		lexer.Add([]byte(`'[^']*'`), MakeToken("STRING", tokenIds["STRING"]))
		lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), MakeToken("ID", tokenIds["ID"]))
		lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	}
	LM, err := NewLMAdapter(init, literals, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	return LM
}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peggen.scanner")
	defer teardown()
	//
	LM := makeAdapter(t)
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Error(err)
		}
		sc.SetErrorHandler(func(e error) {
			t.Error(e)
		})
		token := sc.NextToken()
		count := 0
		for token.TokType() != scanner.EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = sc.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestLMSpansAndValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peggen.scanner")
	defer teardown()
	//
	sc, err := makeAdapter(t).Scanner(`A -> "x"`)
	if err != nil {
		t.Fatal(err)
	}
	sc.NextToken() // A
	arrow := sc.NextToken()
	if arrow.Span().From() != 2 || arrow.Span().To() != 4 {
		t.Errorf("expected span of '->' to be (2…4), is %s", arrow.Span())
	}
	str := sc.NextToken()
	if str.Value() != "x" {
		t.Errorf("expected string value to be unquoted, is %v", str.Value())
	}
	if str.Lexeme() != `"x"` {
		t.Errorf("expected lexeme to keep quotes, is %s", str.Lexeme())
	}
}

func TestLMUnconsumedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peggen.scanner")
	defer teardown()
	//
	sc, err := makeAdapter(t).Scanner("A ; B")
	if err != nil {
		t.Fatal(err)
	}
	var errs []error
	sc.SetErrorHandler(func(e error) {
		errs = append(errs, e)
	})
	count := 0
	for token := sc.NextToken(); token.TokType() != scanner.EOF; token = sc.NextToken() {
		count++
	}
	if count != 2 {
		t.Errorf("expected scanner to skip bad input and produce 2 tokens, got %d", count)
	}
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	var ui *UnconsumedInputError
	if !errors.As(errs[0], &ui) {
		t.Fatalf("expected an UnconsumedInputError, got %T", errs[0])
	}
	if ui.Offset != 2 || ui.Text != ";" {
		t.Errorf("expected offending ';' at offset 2, got %q at %d", ui.Text, ui.Offset)
	}
}
