package laws

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/peggen/grammar"
	"github.com/npillmayer/peggen/peglang"
	"github.com/npillmayer/peggen/runtime"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// rules maps rule names of laws.peg to their generated methods.
var rules = map[string]func(*Laws) *Node{
	"Choice":     (*Laws).parseChoice,
	"Rep":        (*Laws).parseRep,
	"ShortFirst": (*Laws).parseShortFirst,
	"LongFirst":  (*Laws).parseLongFirst,
	"PurgeLit":   (*Laws).parsePurgeLit,
	"PurgeRef":   (*Laws).parsePurgeRef,
	"XY":         (*Laws).parseXY,
	"PurgeGroup": (*Laws).parsePurgeGroup,
	"PurgeChars": (*Laws).parsePurgeChars,
	"PurgeNest":  (*Laws).parsePurgeNest,
	"Plus":       (*Laws).parsePlus,
	"Opt":        (*Laws).parseOpt,
	"One":        (*Laws).parseOne,
	"Alt":        (*Laws).parseAlt,
	"Empty":      (*Laws).parseEmpty,
	"NoProgress": (*Laws).parseNoProgress,
	"CharsStar":  (*Laws).parseCharsStar,
	"CharsOpt":   (*Laws).parseCharsOpt,
	"CharsOptB":  (*Laws).parseCharsOptB,
	"CharsPlus":  (*Laws).parseCharsPlus,
	"CharsOne":   (*Laws).parseCharsOne,
	"Run":        (*Laws).parseRun,
	"Ops":        (*Laws).parseOps,
	"List":       (*Laws).parseList,
	"Item":       (*Laws).parseItem,
}

// run matches input against a single rule on a fresh parser.
func run(t *testing.T, rule, input string) (*Node, *Laws) {
	parse, ok := rules[rule]
	if !ok {
		t.Fatalf("no rule %s", rule)
	}
	p := NewLaws(input)
	return parse(p), p
}

func size(n *Node) int {
	if n == nil {
		return 0
	}
	cnt := 1
	for _, ch := range n.Children {
		cnt += size(ch)
	}
	return cnt
}

func leaves(n *Node) []string {
	if n == nil {
		return nil
	}
	if len(n.Children) == 0 {
		return []string{n.Data}
	}
	var l []string
	for _, ch := range n.Children {
		l = append(l, leaves(ch)...)
	}
	return l
}

func TestEndToEnd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peggen.runtime")
	defer teardown()
	//
	p := NewLaws("2")
	root := p.Parse()
	if root == nil || root.Data != "Choice" || p.Pos() != 1 {
		t.Fatalf("expected Choice to match 2, got %v at %d", leaves(root), p.Pos())
	}
	if p = NewLaws("3"); p.Parse() != nil || p.Pos() != 0 || p.Live() != 0 {
		t.Errorf("expected 3 not to match, cursor at %d with %d nodes live", p.Pos(), p.Live())
	}
	root, p = run(t, "Rep", "abbbc")
	if diff := cmp.Diff([]string{"a", "b", "b", "b", "c"}, leaves(root)); diff != "" {
		t.Errorf("leaves mismatch (-want +got):\n%s", diff)
	}
	if p.Pos() != 5 || p.Live() != size(root) {
		t.Errorf("expected cursor at 5 and no leaks, cursor at %d with %d nodes live", p.Pos(), p.Live())
	}
}

func TestOrderedChoice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peggen.runtime")
	defer teardown()
	//
	root, p := run(t, "ShortFirst", "ab")
	if diff := cmp.Diff([]string{"a"}, leaves(root)); diff != "" || p.Pos() != 1 {
		t.Errorf("expected first alternative to win, got %v at %d", leaves(root), p.Pos())
	}
	root, p = run(t, "LongFirst", "ab")
	if diff := cmp.Diff([]string{"a", "b"}, leaves(root)); diff != "" || p.Pos() != 2 {
		t.Errorf("expected first alternative to win, got %v at %d", leaves(root), p.Pos())
	}
}

func TestPurgeOnFail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peggen.runtime")
	defer teardown()
	//
	tests := []struct {
		rule   string
		input  string
		leaves []string
	}{
		{"PurgeLit", "ac", []string{"a", "c"}},
		{"PurgeRef", "axz", []string{"a", "x", "z"}},
		{"PurgeGroup", "axz", []string{"a", "x", "z"}},
		{"PurgeChars", "ab", []string{"a", "b"}},
		{"PurgeNest", "axyz", []string{"a", "x", "y", "z"}},
	}
	for _, test := range tests {
		root, p := run(t, test.rule, test.input)
		if root == nil {
			t.Errorf("%s: expected %q to match", test.rule, test.input)
			continue
		}
		if diff := cmp.Diff(test.leaves, leaves(root)); diff != "" {
			t.Errorf("%s: leaves mismatch (-want +got):\n%s", test.rule, diff)
		}
		if p.Pos() != len(test.input) {
			t.Errorf("%s: expected input to be consumed, stopped at %d", test.rule, p.Pos())
		}
		if p.Live() != size(root) {
			t.Errorf("%s: %d nodes live, but tree has %d", test.rule, p.Live(), size(root))
		}
	}
}

func TestQuantifierLaws(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peggen.runtime")
	defer teardown()
	//
	tests := []struct {
		rule  string
		input string
		match bool
		pos   int
	}{
		{"Rep", "ac", true, 2},
		{"Plus", "ac", false, 0},
		{"Plus", "abc", true, 3},
		{"Opt", "ac", true, 2},
		{"Opt", "abbc", false, 0},
		{"One", "ac", false, 0},
		{"Alt", "acc", true, 3},
		{"Empty", "", true, 0},
		{"NoProgress", "y", true, 1},
		{"CharsStar", "", true, 0},
		{"CharsOpt", "c", true, 0},
		{"CharsOptB", "ab", true, 2},
		{"CharsPlus", "c", false, 0},
		{"CharsOne", "abc", false, 0},
	}
	for _, test := range tests {
		root, p := run(t, test.rule, test.input)
		if (root != nil) != test.match || p.Pos() != test.pos {
			t.Errorf("%s on %q: expected match=%v at %d, got %v at %d",
				test.rule, test.input, test.match, test.pos, leaves(root), p.Pos())
		}
		if p.Live() != size(root) {
			t.Errorf("%s on %q: %d nodes live, but tree has %d", test.rule, test.input, p.Live(), size(root))
		}
	}
}

func TestCharsetRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peggen.runtime")
	defer teardown()
	//
	root, p := run(t, "Run", "123 abc")
	if diff := cmp.Diff([]string{"123"}, leaves(root)); diff != "" {
		t.Errorf("expected a single leaf 123 (-want +got):\n%s", diff)
	}
	if p.Pos() != 3 {
		t.Errorf("expected cursor at the space, is at %d", p.Pos())
	}
}

func TestOperatorClass(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peggen.runtime")
	defer teardown()
	//
	for _, op := range []string{"+", "-", "*", "/"} {
		root, p := run(t, "Ops", "1"+op+"2")
		if diff := cmp.Diff([]string{"1", op, "2"}, leaves(root)); diff != "" {
			t.Errorf("operator %s: leaves mismatch (-want +got):\n%s", op, diff)
		}
		if p.Pos() != 3 {
			t.Errorf("operator %s: expected input to be consumed, stopped at %d", op, p.Pos())
		}
	}
	for _, input := range []string{"1,2", "1.2"} {
		if root, p := run(t, "Ops", input); root != nil || p.Live() != 0 {
			t.Errorf("expected %q not to match, got %v with %d nodes live", input, leaves(root), p.Live())
		}
	}
}

func TestIdempotence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peggen.runtime")
	defer teardown()
	//
	first, _ := run(t, "List", "ab, (c, d), e")
	second, _ := run(t, "List", "ab, (c, d), e")
	if first == nil {
		t.Fatalf("expected list to match")
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("parses differ (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"ab", ",", "(", "c", ",", "d", ")", ",", "e"}, leaves(first)); diff != "" {
		t.Errorf("leaves mismatch (-want +got):\n%s", diff)
	}
}

// startingWith returns a copy of g with rule name moved to the front.
func startingWith(g *grammar.Grammar, name string) *grammar.Grammar {
	c := grammar.NewGrammar(g.Name)
	for _, r := range g.Rules {
		if r.Name == name {
			c.Rules = append([]*grammar.Rule{r}, c.Rules...)
		} else {
			c.Rules = append(c.Rules, r)
		}
	}
	return c
}

func TestLawsMatchInterpreter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peggen.runtime")
	defer teardown()
	//
	src, err := os.ReadFile("laws.peg")
	if err != nil {
		t.Fatal(err)
	}
	g, _, err := peglang.Parse("laws.peg", src)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Rules) != len(rules) {
		t.Fatalf("laws.peg has %d rules, generated parser has %d", len(g.Rules), len(rules))
	}
	inputs := []string{"", "a", "ab", "ac", "abc", "abbc", "acc", "axz", "axyz", "axy!", "axzzy!",
		"y", "xxy", "c", "abab c", "12 ", "1-2", "3*4", "1,2", "ab, (c, d), e", "(a", " x y"}
	for _, r := range g.Rules {
		ip, err := runtime.NewInterpreter(startingWith(g, r.Name))
		if err != nil {
			t.Fatal(err)
		}
		for _, input := range inputs {
			generated, p := run(t, r.Name, input)
			interpreted, result := ip.Parse(input)
			if (generated == nil) != (interpreted == nil) {
				t.Errorf("%s on %q: generated parser returns %v, interpreter %v", r.Name, input, leaves(generated), interpreted)
				continue
			}
			if diff := cmp.Diff(interpreted.Leaves(), leaves(generated)); diff != "" {
				t.Errorf("%s on %q: generated parser differs from interpreter (-interpreter +generated):\n%s", r.Name, input, diff)
			}
			if p.Pos() != result.Pos || p.Live() != result.Live {
				t.Errorf("%s on %q: generated parser stops at %d with %d nodes, interpreter at %d with %d",
					r.Name, input, p.Pos(), p.Live(), result.Pos, result.Live)
			}
		}
	}
}
