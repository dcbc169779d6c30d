package grammar

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func exprGrammar() *Grammar {
	g := NewGrammar("Expr")
	g.Add("Sum", Seq(Reference{"Product"}, Group{
		Alternatives: []Alternative{Seq(NewCharset("+-", One), Reference{"Product"})},
		Quantifier:   ZeroOrMore,
	}))
	g.Add("Product", Seq(Reference{"Factor"}, Group{
		Alternatives: []Alternative{Seq(NewCharset("*/", One), Reference{"Factor"})},
		Quantifier:   ZeroOrMore,
	}))
	g.Add("Factor",
		Seq(NewCharset("0-9", OneOrMore)),
		Seq(Literal{"("}, Reference{"Sum"}, Literal{")"}),
	)
	return g
}

func TestGrammarString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peggen.grammar")
	defer teardown()
	//
	g := exprGrammar()
	expected := `Sum -> Product ( ["+-"] Product )*
Product -> Factor ( ["*/"] Factor )*
Factor -> ["0-9"]+ | "(" Sum ")"
`
	if diff := cmp.Diff(expected, g.String()); diff != "" {
		t.Errorf("grammar string mismatch (-want +got):\n%s", diff)
	}
	if g.Start().Name != "Sum" {
		t.Errorf("expected start rule to be Sum, is %s", g.Start().Name)
	}
}

func TestCharClass(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peggen.grammar")
	defer teardown()
	//
	tests := []struct {
		source string
		class  CharClass
		in     string
		out    string
	}{
		{"0-9", CharClass{{'0', '9'}}, "0159", "-a/:"},
		{"abc", CharClass{{'a', 'c'}}, "abc", "d-"},
		{"-+", CharClass{{'+', '+'}, {'-', '-'}}, "+-", "a,"},
		{"a-", CharClass{{'-', '-'}, {'a', 'a'}}, "a-", "b"},
		{"z-a", CharClass{{'-', '-'}, {'a', 'a'}, {'z', 'z'}}, "az-", "m"},
		{"+-*/", CharClass{{'*', '+'}, {'-', '-'}, {'/', '/'}}, "+-*/", ",."},
		{"a-zA-Z_", CharClass{{'A', 'Z'}, {'_', '_'}, {'a', 'z'}}, "aZ_", "0 "},
		{"äö", CharClass{{'ä', 'ä'}, {'ö', 'ö'}}, "äö", "ü"},
		{"", nil, "", "a"},
	}
	for _, test := range tests {
		class := CompileClass(test.source)
		if diff := cmp.Diff(test.class, class); diff != "" {
			t.Errorf("class for %q mismatch (-want +got):\n%s", test.source, diff)
		}
		for _, r := range test.in {
			if !class.Contains(r) {
				t.Errorf("expected class %q to contain %q", test.source, r)
			}
		}
		for _, r := range test.out {
			if class.Contains(r) {
				t.Errorf("expected class %q not to contain %q", test.source, r)
			}
		}
	}
	if p := CompileClass("a-z_").Pairs(); p != "__az" {
		t.Errorf("expected pairs of [a-z_] to be \"__az\", are %q", p)
	}
}

func TestValidate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peggen.grammar")
	defer teardown()
	//
	if err := Validate(exprGrammar()); err != nil {
		t.Errorf("expected expression grammar to be valid, got %v", err)
	}
	g := NewGrammar("Broken")
	g.Add("A", Seq(Reference{"B"}, Reference{"C"}), Seq(Group{
		Alternatives: []Alternative{Seq(Reference{"C"})},
	}))
	g.Add("D", Seq(Reference{"C"}))
	g.Add("A", Seq(Literal{"a"}))
	err := Validate(g)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a validation error, got %v", err)
	}
	if diff := cmp.Diff([]string{"A"}, verr.Duplicates); diff != "" {
		t.Errorf("duplicates mismatch (-want +got):\n%s", diff)
	}
	expected := []Unresolved{
		{Name: "B", ReferencedBy: []string{"A"}},
		{Name: "C", ReferencedBy: []string{"A", "D"}},
	}
	if diff := cmp.Diff(expected, verr.Unresolved); diff != "" {
		t.Errorf("unresolved mismatch (-want +got):\n%s", diff)
	}
	t.Logf("error message: %v", err)
}

func TestValidateEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peggen.grammar")
	defer teardown()
	//
	err := Validate(NewGrammar("Empty"))
	var verr *ValidationError
	if !errors.As(err, &verr) || !verr.Empty {
		t.Errorf("expected empty grammar to be rejected, got %v", err)
	}
}

func TestSymbols(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peggen.grammar")
	defer teardown()
	//
	symtab := Symbols(exprGrammar())
	if len(symtab.Table) != 3 {
		t.Errorf("expected 3 symbols, have %d", len(symtab.Table))
	}
	if r := symtab.ResolveRule("Factor"); r == nil || r.Name != "Factor" {
		t.Errorf("cannot resolve rule Factor")
	}
	if sym := symtab.ResolveSymbol("Factor"); len(sym.Refs) != 2 {
		t.Errorf("expected Factor to be referenced twice, is %d", len(sym.Refs))
	}
	if _, found := symtab.ResolveOrDefineSymbol("New"); found {
		t.Errorf("did not expect to find symbol New")
	}
	if _, old := symtab.DefineSymbol("New"); old == nil {
		t.Errorf("expected DefineSymbol to replace symbol New")
	}
}

func TestFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peggen.grammar")
	defer teardown()
	//
	f1, err := Fingerprint(exprGrammar())
	if err != nil {
		t.Fatal(err)
	}
	f2, _ := Fingerprint(exprGrammar())
	if f1 != f2 {
		t.Errorf("expected fingerprints of equal grammars to be equal")
	}
	g := exprGrammar()
	g.Rules[2].Alternatives = g.Rules[2].Alternatives[:1]
	if f3, _ := Fingerprint(g); f3 == f1 {
		t.Errorf("expected fingerprints of different grammars to differ")
	}
}
