package generator

import (
	"strconv"
	"text/template"
)

// Fixed fragments of a generated parser. Rule bodies are produced by the
// emitter; the templates only frame them.

var funcs = template.FuncMap{
	"quote": strconv.Quote,
}

var headerTmpl = template.Must(template.New("header").Funcs(funcs).Parse(
	`// Code generated by peggen from {{.Source}}. DO NOT EDIT.
// Grammar fingerprint: {{.Fingerprint}}

package {{.Package}}
`))

var preambleTmpl = template.Must(template.New("preamble").Funcs(funcs).Parse(`
// Node is a node of the parse tree. Data is a rule name for inner nodes and
// the matched text for leaves.
type Node struct {
	Data     string
	Children []*Node
}

// {{.Name}} is a PEG parser for grammar {{.Grammar}}.
type {{.Name}} struct {
	input   string
	pos     int
	marks   []int   // cursor positions to backtrack to
	results []*Node // nodes under construction, one per open choice
	live    int     // nodes allocated and not released
}

// New{{.Name}} creates a parser for input.
func New{{.Name}}(input string) *{{.Name}} {
	return &{{.Name}}{input: input}
}

// Pos returns the byte offset of the cursor.
func (p *{{.Name}}) Pos() int {
	return p.pos
}

// Live returns the number of tree nodes currently allocated.
func (p *{{.Name}}) Live() int {
	return p.live
}

func (p *{{.Name}}) newNode(data string) *Node {
	p.live++
	return &Node{Data: data}
}

// purge releases n and its subtree.
func (p *{{.Name}}) purge(n *Node) {
	for _, ch := range n.Children {
		p.purge(ch)
	}
	n.Children = nil
	p.live--
}

func (p *{{.Name}}) mark() {
	p.marks = append(p.marks, p.pos)
}

func (p *{{.Name}}) unmark() {
	p.marks = p.marks[:len(p.marks)-1]
}

func (p *{{.Name}}) reset() {
	p.pos = p.marks[len(p.marks)-1]
	p.marks = p.marks[:len(p.marks)-1]
}

func (p *{{.Name}}) skip() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			p.pos++
		default:
			return
		}
	}
}

// literal skips whitespace and matches s verbatim.
func (p *{{.Name}}) literal(n *Node, s string) bool {
	start := p.pos
	p.skip()
	if len(p.input)-p.pos < len(s) || p.input[p.pos:p.pos+len(s)] != s {
		p.pos = start
		return false
	}
	p.pos += len(s)
	n.Children = append(n.Children, p.newNode(s))
	return true
}

// peek decodes the rune at the cursor.
func (p *{{.Name}}) peek() (rune, int) {
	rest := p.input[p.pos:]
	var r rune
	for i, c := range rest {
		if i > 0 {
			return r, i
		}
		r = c
	}
	return r, len(rest)
}

// inClass checks r against a class given as pairs of lower and upper bounds.
func inClass(r rune, pairs string) bool {
	var lo rune
	i := 0
	for _, c := range pairs {
		if i%2 == 0 {
			lo = c
		} else if lo <= r && r <= c {
			return true
		}
		i++
	}
	return false
}

// chars skips whitespace and collects a run of at least min and at most max
// runes of a class into a single leaf. max < 0 means unbounded.
func (p *{{.Name}}) chars(n *Node, class string, min, max int) bool {
	start := p.pos
	p.skip()
	from, cnt := p.pos, 0
	for p.pos < len(p.input) && (max < 0 || cnt < max) {
		r, w := p.peek()
		if !inClass(r, class) {
			break
		}
		p.pos += w
		cnt++
	}
	if cnt == 0 || cnt < min {
		p.pos = start
		return cnt >= min
	}
	n.Children = append(n.Children, p.newNode(p.input[from:p.pos]))
	return true
}

// splice moves the children of sub to n and releases sub.
func (p *{{.Name}}) splice(n, sub *Node) bool {
	if sub == nil {
		return false
	}
	n.Children = append(n.Children, sub.Children...)
	sub.Children = nil
	p.live--
	return true
}

// choice tries alternatives in order, each on a fresh node. A failing
// alternative has its node purged and the cursor reset.
func (p *{{.Name}}) choice(base, depth int, alts ...func(*Node) bool) *Node {
	p.results = append(p.results, nil)
	top := len(p.results) - 1
	var result *Node
	for _, alt := range alts {
		n := p.newNode("")
		p.results[top] = n
		p.mark()
		if alt(n) {
			p.unmark()
			result = n
			break
		}
		p.purge(n)
		p.results[top] = nil
		p.reset()
	}
	if len(p.results) != base+depth {
		panic("{{.Name}}: result stack out of balance")
	}
	p.results = p.results[:top]
	return result
}

// star splices repetitions of group into n as long as they match and consume input.
func (p *{{.Name}}) star(n *Node, group func() *Node) {
	for {
		start := p.pos
		if !p.splice(n, group()) || p.pos == start {
			return
		}
	}
}

func (p *{{.Name}}) plus(n *Node, group func() *Node) bool {
	start := p.pos
	if !p.splice(n, group()) {
		return false
	}
	if p.pos > start {
		p.star(n, group)
	}
	return true
}
`))

var entryTmpl = template.Must(template.New("entry").Funcs(funcs).Parse(`
// Parse matches the input against rule {{.Start}}, starting at the beginning
// of the input. It returns nil if the input does not match. Input following
// the match is not consumed.
func (p *{{.Name}}) Parse() *Node {
	p.pos, p.marks, p.results, p.live = 0, nil, nil, 0
	return p.parse{{.Start}}()
}
`))

var ruleTmpl = template.Must(template.New("rule").Funcs(funcs).Parse(`
// parse{{.Rule}} implements
//
//	{{.Definition}}
func (p *{{.Name}}) parse{{.Rule}}() *Node {
	base := len(p.results)
	n := p.choice(base, 1,
{{.Alternatives}}	)
	if n != nil {
		n.Data = {{quote .Rule}}
	}
	return n
}
`))
