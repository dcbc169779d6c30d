package calc

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/peggen/peglang"
	"github.com/npillmayer/peggen/runtime"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

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

func TestCalcParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peggen.runtime")
	defer teardown()
	//
	p := NewCalc("1 + 2*(3-4)")
	root := p.Parse()
	if root == nil {
		t.Fatalf("expected expression to match")
	}
	if root.Data != "Sum" {
		t.Errorf("expected root to be labeled Sum, is %s", root.Data)
	}
	if diff := cmp.Diff([]string{"1", "+", "2", "*", "(", "3", "-", "4", ")"}, leaves(root)); diff != "" {
		t.Errorf("leaves mismatch (-want +got):\n%s", diff)
	}
	if p.Pos() != 11 {
		t.Errorf("expected input to be consumed, cursor is at %d", p.Pos())
	}
	if p.Live() != size(root) {
		t.Errorf("%d nodes live, but tree has %d", p.Live(), size(root))
	}
}

func TestCalcNoMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peggen.runtime")
	defer teardown()
	//
	for _, input := range []string{"", "+", "(1", " )"} {
		p := NewCalc(input)
		if root := p.Parse(); root != nil {
			t.Errorf("expected %q not to match, got %v", input, leaves(root))
		}
		if p.Pos() != 0 || p.Live() != 0 {
			t.Errorf("failed parse of %q left cursor at %d with %d nodes live", input, p.Pos(), p.Live())
		}
	}
}

func TestCalcCharsetRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peggen.runtime")
	defer teardown()
	//
	p := NewCalc("123 abc")
	root := p.Parse()
	if diff := cmp.Diff([]string{"123"}, leaves(root)); diff != "" {
		t.Errorf("leaves mismatch (-want +got):\n%s", diff)
	}
	if p.Pos() != 3 {
		t.Errorf("expected cursor at the space, is at %d", p.Pos())
	}
}

func TestCalcBacktracking(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peggen.runtime")
	defer teardown()
	//
	// the trailing operator makes the last repetition fail after it matched "-"
	p := NewCalc("1-2- ")
	root := p.Parse()
	if diff := cmp.Diff([]string{"1", "-", "2"}, leaves(root)); diff != "" {
		t.Errorf("leaves mismatch (-want +got):\n%s", diff)
	}
	if p.Pos() != 3 || p.Live() != size(root) {
		t.Errorf("expected cursor at 3 and no leaks, cursor at %d with %d nodes live", p.Pos(), p.Live())
	}
}

func TestCalcIdempotence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peggen.runtime")
	defer teardown()
	//
	p := NewCalc("(1+2)*3")
	first := p.Parse()
	second := p.Parse()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("parses differ (-first +second):\n%s", diff)
	}
	if p.Live() != size(second) {
		t.Errorf("%d nodes live, but tree has %d", p.Live(), size(second))
	}
}

func TestCalcMatchesInterpreter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peggen.runtime")
	defer teardown()
	//
	src, err := os.ReadFile("calc.peg")
	if err != nil {
		t.Fatal(err)
	}
	g, _, err := peglang.Parse("calc.peg", src)
	if err != nil {
		t.Fatal(err)
	}
	ip, err := runtime.NewInterpreter(g)
	if err != nil {
		t.Fatal(err)
	}
	for _, input := range []string{"7", " 12 * 3 ", "(1", "1+(2*(3+4))-5/6", "x", "1 + + 2", "((((9))))"} {
		p := NewCalc(input)
		generated := p.Parse()
		interpreted, result := ip.Parse(input)
		if diff := cmp.Diff(interpreted.Leaves(), leaves(generated)); diff != "" {
			t.Errorf("%q: generated parser differs from interpreter (-interpreter +generated):\n%s", input, diff)
		}
		if p.Pos() != result.Pos || p.Live() != result.Live {
			t.Errorf("%q: generated parser stops at %d with %d nodes, interpreter at %d with %d",
				input, p.Pos(), p.Live(), result.Pos, result.Live)
		}
	}
}
