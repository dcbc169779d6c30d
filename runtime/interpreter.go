package runtime

import (
	"fmt"

	"github.com/npillmayer/peggen/grammar"
)

// Interpreter runs a grammar directly over input, without generating a parser
// first.
type Interpreter struct {
	g     *grammar.Grammar
	rules *grammar.SymbolTable
}

// Result describes the outcome of a parse run.
type Result struct {
	Pos  int // cursor position after parsing
	Live int // nodes allocated and not released
}

// NewInterpreter creates an interpreter for g. The grammar has to be valid.
func NewInterpreter(g *grammar.Grammar) (*Interpreter, error) {
	if err := grammar.Validate(g); err != nil {
		return nil, err
	}
	return &Interpreter{g: g, rules: grammar.Symbols(g)}, nil
}

// Grammar returns the grammar the interpreter runs.
func (ip *Interpreter) Grammar() *grammar.Grammar {
	return ip.g
}

// Parse matches input against the start rule. It returns nil if input does not
// match, in which case Result.Pos is 0. Input following the match is ignored.
func (ip *Interpreter) Parse(input string) (*Node, Result) {
	m := NewMachine(input)
	root := ip.rule(m, ip.g.Start())
	tracer().Debugf("parse of %q ended at %d, %d nodes live", input, m.Pos(), m.Live())
	return root, Result{Pos: m.Pos(), Live: m.Live()}
}

func (ip *Interpreter) rule(m *Machine, r *grammar.Rule) *Node {
	base := m.Depth()
	n := m.Choice(base, 1, ip.alternatives(m, r.Alternatives, base, 1)...)
	if n != nil {
		n.Data = r.Name
	}
	return n
}

func (ip *Interpreter) alternatives(m *Machine, alts []grammar.Alternative, base, depth int) []func(*Node) bool {
	fs := make([]func(*Node) bool, len(alts))
	for i, alt := range alts {
		parts := alt.Parts
		fs[i] = func(n *Node) bool {
			return ip.sequence(m, n, parts, base, depth)
		}
	}
	return fs
}

func (ip *Interpreter) sequence(m *Machine, n *Node, parts []grammar.Part, base, depth int) bool {
	for _, part := range parts {
		switch p := part.(type) {
		case grammar.Literal:
			if !m.Literal(n, p.Text) {
				return false
			}
		case grammar.Reference:
			if !m.Splice(n, ip.rule(m, ip.rules.ResolveRule(p.Name))) {
				return false
			}
		case grammar.Charset:
			min, max := p.Quantifier.Bounds()
			if !m.Chars(n, p.Class, min, max) {
				return false
			}
		case grammar.Group:
			alts := ip.alternatives(m, p.Alternatives, base, depth+1)
			group := func() *Node {
				return m.Choice(base, depth+1, alts...)
			}
			switch p.Quantifier {
			case grammar.One:
				if !m.Splice(n, group()) {
					return false
				}
			case grammar.Optional:
				m.Splice(n, group())
			case grammar.ZeroOrMore:
				m.Star(n, group)
			case grammar.OneOrMore:
				if !m.Plus(n, group) {
					return false
				}
			}
		default:
			panic(fmt.Sprintf("unknown grammar part %T", part))
		}
	}
	return true
}
