package peglang

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/peggen/grammar"
	"github.com/npillmayer/peggen/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTokenizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peggen.peglang")
	defer teardown()
	//
	input := "A -> ( \"a\"\n  | 'b' )\n\n# comment\nB -> [\"0-9\"]+"
	tok, err := Tokenizer(input)
	if err != nil {
		t.Fatal(err)
	}
	var kinds []int
	var lexemes []string
	for token := tok.NextToken(); token.TokType() != scanner.EOF; token = tok.NextToken() {
		kinds = append(kinds, int(token.TokType()))
		lexemes = append(lexemes, token.Lexeme())
	}
	expected := []string{"A", "->", "(", `"a"`, "|", "'b'", ")", "\n", "B", "->", "[", `"0-9"`, "]", "+", ""}
	if diff := cmp.Diff(expected, lexemes); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
	if kinds[7] != scanner.Newline || kinds[len(kinds)-1] != scanner.Newline {
		t.Errorf("expected rules to be terminated by newlines, have %v", kinds)
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		lexeme, value string
	}{
		{`"abc"`, "abc"},
		{`"a\tb"`, "a\tb"},
		{`'abc'`, "abc"},
		{`'it\'s'`, "it's"},
		{`'say "hi"'`, `say "hi"`},
		{`'\n'`, "\n"},
	}
	for _, test := range tests {
		v, err := unquote(test.lexeme)
		if err != nil {
			t.Errorf("unquote(%s) failed: %v", test.lexeme, err)
			continue
		}
		if v.(string) != test.value {
			t.Errorf("unquote(%s) = %q, expected %q", test.lexeme, v, test.value)
		}
	}
	if _, err := unquote(`"\q"`); err == nil {
		t.Errorf("expected invalid escape to be rejected")
	}
}

func TestParseSimple(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peggen.peglang")
	defer teardown()
	//
	g, diags, err := Parse("testdata/simple.peg", []byte(`E -> "1" | "2"`))
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 0 {
		t.Errorf("expected no diagnostics, have %v", diags)
	}
	if g.Name != "simple" {
		t.Errorf("expected grammar to be named 'simple', is %q", g.Name)
	}
	expected := []*grammar.Rule{{
		Name: "E",
		Alternatives: []grammar.Alternative{
			grammar.Seq(grammar.Literal{Text: "1"}),
			grammar.Seq(grammar.Literal{Text: "2"}),
		},
	}}
	if diff := cmp.Diff(expected, g.Rules); diff != "" {
		t.Errorf("rules mismatch (-want +got):\n%s", diff)
	}
}

func TestParseExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peggen.peglang")
	defer teardown()
	//
	src := `# Arithmetic
Sum     -> Product ( ["+-"] Product )*

Product -> Factor ( ["*/"]
                    Factor )*
Factor  -> ["0-9"]+ | "(" Sum ")"
`
	g, diags, err := Parse("expr", []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 0 {
		t.Errorf("expected no diagnostics, have %v", diags)
	}
	expected := `Sum -> Product ( ["+-"] Product )*
Product -> Factor ( ["*/"] Factor )*
Factor -> ["0-9"]+ | "(" Sum ")"
`
	if diff := cmp.Diff(expected, g.String()); diff != "" {
		t.Errorf("grammar mismatch (-want +got):\n%s", diff)
	}
	if err := grammar.Validate(g); err != nil {
		t.Errorf("expected grammar to be valid, got %v", err)
	}
}

func TestParseQuantifiers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peggen.peglang")
	defer teardown()
	//
	g, _, err := Parse("q", []byte(`A -> ("a")? ("b")* ("c")+ ("d") ['x']? ['y']* ['z']+ ['w']`))
	if err != nil {
		t.Fatal(err)
	}
	var quantifiers []grammar.Quantifier
	for _, p := range g.Rules[0].Alternatives[0].Parts {
		switch part := p.(type) {
		case grammar.Group:
			quantifiers = append(quantifiers, part.Quantifier)
		case grammar.Charset:
			quantifiers = append(quantifiers, part.Quantifier)
		}
	}
	expected := []grammar.Quantifier{
		grammar.Optional, grammar.ZeroOrMore, grammar.OneOrMore, grammar.One,
		grammar.Optional, grammar.ZeroOrMore, grammar.OneOrMore, grammar.One,
	}
	if diff := cmp.Diff(expected, quantifiers); diff != "" {
		t.Errorf("quantifier mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTrailingInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peggen.peglang")
	defer teardown()
	//
	src := "A -> \"a\"\nB -> -> \"b\"\nC -> \"c\"\n"
	g, diags, err := Parse("trailing.peg", []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Rules) != 1 || g.Rules[0].Name != "A" {
		t.Errorf("expected only rule A to be parsed, have %v", g)
	}
	if len(diags) != 1 {
		t.Fatalf("expected one diagnostic, have %d", len(diags))
	}
	d := diags[0]
	if d.Severity != Warning || d.Line != 2 || d.Column != 1 || d.Source != "trailing.peg" {
		t.Errorf("unexpected diagnostic %v", d)
	}
	t.Logf("diagnostic: %s", d)
}

func TestParseDanglingBar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peggen.peglang")
	defer teardown()
	//
	g, diags, err := Parse("bar", []byte("A -> \"a\" | \"b\"\nB -> \"x\" |\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Rules) != 1 || len(g.Rules[0].Alternatives) != 2 {
		t.Errorf("expected rule A with 2 alternatives only, have %v", g)
	}
	if len(diags) != 1 || diags[0].Line != 2 {
		t.Errorf("expected a warning for line 2, have %v", diags)
	}
}

func TestParseLexError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peggen.peglang")
	defer teardown()
	//
	_, _, err := Parse("lex", []byte("A -> \"a\"\nB -> \"b\" $ \"c\"\n"))
	var lerr *LexError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected a lexical error, got %v", err)
	}
	if lerr.Line != 2 {
		t.Errorf("expected lexical error in line 2, is in line %d", lerr.Line)
	}
	t.Logf("error: %v", err)
}

func TestParseEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peggen.peglang")
	defer teardown()
	//
	g, diags, err := Parse("empty", []byte("\n# nothing here\n\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Rules) != 0 || len(diags) != 0 {
		t.Errorf("expected empty grammar without diagnostics, have %v, %v", g, diags)
	}
}

func TestLineIndex(t *testing.T) {
	idx := newLineIndex("ab\nä c\n")
	tests := []struct{ pos, line, col int }{
		{0, 1, 1}, {2, 1, 3}, {3, 2, 1}, {6, 2, 3}, {8, 3, 1}, {100, 3, 1},
	}
	for _, test := range tests {
		line, col := idx.lineCol(test.pos)
		if line != test.line || col != test.col {
			t.Errorf("lineCol(%d) = %d:%d, expected %d:%d", test.pos, line, col, test.line, test.col)
		}
	}
}
