/*
Package grammar holds the in-memory representation of a PEG grammar.

A grammar is an ordered sequence of rules. Each rule has ordered alternatives,
and each alternative is a sequence of parts:

	Rule        ::= name -> Alternative { | Alternative }
	Alternative ::= Part { Part }
	Part        ::= Literal | Reference | Group | Charset

The first rule is the start rule. Grammars are built once, by package peglang
or by hand, and are read-only afterwards. They are the boundary artifact
between grammar parsing and code generation: the generator depends on this
package only.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'peggen.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("peggen.grammar")
}

// Quantifier controls how many times a group or charset may repeat.
type Quantifier int8

// Quantifiers of groups and charsets.
const (
	One        Quantifier = iota // exactly one
	Optional                     // ?
	ZeroOrMore                   // *
	OneOrMore                    // +
)

func (q Quantifier) String() string {
	switch q {
	case Optional:
		return "?"
	case ZeroOrMore:
		return "*"
	case OneOrMore:
		return "+"
	}
	return ""
}

// Mandatory is true for quantifiers which require at least one match.
func (q Quantifier) Mandatory() bool {
	return q == One || q == OneOrMore
}

// Repeats is true for quantifiers which allow more than one match.
func (q Quantifier) Repeats() bool {
	return q == ZeroOrMore || q == OneOrMore
}

// Bounds returns the minimum and maximum number of matches allowed by q.
// A maximum of -1 means unbounded.
func (q Quantifier) Bounds() (min, max int) {
	switch q {
	case Optional:
		return 0, 1
	case ZeroOrMore:
		return 0, -1
	case OneOrMore:
		return 1, -1
	}
	return 1, 1
}

// --- Parts -----------------------------------------------------------------

// Part is an element of an alternative. The set of parts is closed: it is one of
// Literal, Reference, Group or Charset.
type Part interface {
	String() string
	isPart()
}

// Literal is a fixed string which has to match verbatim.
type Literal struct {
	Text string
}

// Reference is the name of another rule, which will be invoked recursively.
type Reference struct {
	Name string
}

// Group is a parenthesized set of alternatives with a quantifier.
type Group struct {
	Alternatives []Alternative
	Quantifier   Quantifier
}

// Charset is a set of characters with a quantifier. Source is the set as
// written in the grammar, Class its compiled form.
type Charset struct {
	Source     string
	Class      CharClass
	Quantifier Quantifier
}

func (Literal) isPart()   {}
func (Reference) isPart() {}
func (Group) isPart()     {}
func (Charset) isPart()   {}

func (l Literal) String() string {
	return strconv.Quote(l.Text)
}

func (r Reference) String() string {
	return r.Name
}

func (g Group) String() string {
	return "( " + alternativesString(g.Alternatives) + " )" + g.Quantifier.String()
}

func (c Charset) String() string {
	return "[" + strconv.Quote(c.Source) + "]" + c.Quantifier.String()
}

// NewCharset creates a charset part from its source string.
func NewCharset(source string, q Quantifier) Charset {
	return Charset{
		Source:     source,
		Class:      CompileClass(source),
		Quantifier: q,
	}
}

// --- Alternatives and rules ------------------------------------------------

// Alternative is a sequence of parts, all of which have to match in order.
type Alternative struct {
	Parts []Part
}

// Seq is a shortcut to create an alternative.
func Seq(parts ...Part) Alternative {
	return Alternative{Parts: parts}
}

func (a Alternative) String() string {
	var b strings.Builder
	for i, p := range a.Parts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.String())
	}
	return b.String()
}

func alternativesString(alts []Alternative) string {
	s := make([]string, len(alts))
	for i, a := range alts {
		s[i] = a.String()
	}
	return strings.Join(s, " | ")
}

// Rule is the grammar's unit of recursion. Its name is used for references
// from other rules and as the label of tree nodes the rule produces.
// Alternatives are listed in order of priority.
type Rule struct {
	Name         string
	Alternatives []Alternative
}

func (r *Rule) String() string {
	return r.Name + " -> " + alternativesString(r.Alternatives)
}

// Grammar is an ordered sequence of rules. The first rule is the start rule.
type Grammar struct {
	Name  string
	Rules []*Rule
}

// NewGrammar creates an empty grammar.
func NewGrammar(name string) *Grammar {
	return &Grammar{Name: name}
}

// Add appends a rule with the given alternatives and returns it.
func (g *Grammar) Add(name string, alts ...Alternative) *Rule {
	r := &Rule{Name: name, Alternatives: alts}
	g.Rules = append(g.Rules, r)
	return r
}

// Start returns the start rule, or nil for an empty grammar.
func (g *Grammar) Start() *Rule {
	if len(g.Rules) == 0 {
		return nil
	}
	return g.Rules[0]
}

// Rule finds the first rule with a given name.
func (g *Grammar) Rule(name string) *Rule {
	for _, r := range g.Rules {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// String renders the grammar in DSL syntax, one rule per line.
func (g *Grammar) String() string {
	var b strings.Builder
	for _, r := range g.Rules {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Walk calls f for every part of the grammar, descending into groups, in
// declaration order.
func (g *Grammar) Walk(f func(r *Rule, p Part)) {
	for _, r := range g.Rules {
		walkAlternatives(r, r.Alternatives, f)
	}
}

func walkAlternatives(r *Rule, alts []Alternative, f func(*Rule, Part)) {
	for _, alt := range alts {
		for _, p := range alt.Parts {
			f(r, p)
			if grp, ok := p.(Group); ok {
				walkAlternatives(r, grp.Alternatives, f)
			}
		}
	}
}
