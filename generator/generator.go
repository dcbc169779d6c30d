package generator

import (
	"bytes"
	"fmt"
	"go/token"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/npillmayer/peggen/grammar"
	"golang.org/x/tools/imports"
)

// Options control code generation.
type Options struct {
	Package string // package clause of the generated file, default "main"
	Name    string // type name of the parser, default "Parser"
	Source  string // grammar source named in the header, default is the grammar's name
}

func (opts Options) withDefaults(g *grammar.Grammar) Options {
	if opts.Package == "" {
		opts.Package = "main"
	}
	if opts.Name == "" {
		opts.Name = "Parser"
	}
	if opts.Source == "" {
		opts.Source = g.Name
	}
	return opts
}

func (opts Options) check() error {
	if !token.IsIdentifier(opts.Package) {
		return fmt.Errorf("invalid package name %q", opts.Package)
	}
	if !token.IsIdentifier(opts.Name) || opts.Name == "Node" || opts.Name == "inClass" {
		return fmt.Errorf("invalid parser name %q", opts.Name)
	}
	return nil
}

// Generate writes the source code of a parser for g to w.
//
// The grammar is validated first; an invalid grammar is reported as
// *grammar.ValidationError and nothing is written.
func Generate(g *grammar.Grammar, w io.Writer, opts Options) error {
	src, err := Source(g, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}

// Source returns the formatted source code of a parser for g.
func Source(g *grammar.Grammar, opts Options) ([]byte, error) {
	if err := grammar.Validate(g); err != nil {
		return nil, err
	}
	opts = opts.withDefaults(g)
	if err := opts.check(); err != nil {
		return nil, err
	}
	fingerprint, err := grammar.Fingerprint(g)
	if err != nil {
		return nil, fmt.Errorf("cannot compute grammar fingerprint: %w", err)
	}
	gen := &generator{opts: opts}
	params := map[string]interface{}{
		"Source":      opts.Source,
		"Fingerprint": fingerprint,
		"Package":     opts.Package,
		"Name":        opts.Name,
		"Grammar":     g.Name,
		"Start":       g.Start().Name,
	}
	gen.execute(headerTmpl, params)
	gen.execute(preambleTmpl, params)
	gen.execute(entryTmpl, params)
	for _, r := range g.Rules {
		gen.rule(r)
	}
	if gen.err != nil {
		return nil, gen.err
	}
	tracer().Infof("generated %d bytes for grammar %s", gen.out.Len(), g.Name)
	src, err := imports.Process(opts.Source+".go", gen.out.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		tracer().Errorf("cannot format generated code: %v", err)
		return nil, fmt.Errorf("generated code for grammar %s is malformed: %w", g.Name, err)
	}
	return src, nil
}

// --- Emitter ---------------------------------------------------------------

// generator emits a parser into out. Rule frames come from templates, rule
// bodies from an emitter walking the parts of the alternatives.
type generator struct {
	opts Options
	out  bytes.Buffer
	err  error
}

func (gen *generator) execute(tmpl *template.Template, data interface{}) {
	if gen.err != nil {
		return
	}
	if err := tmpl.Execute(&gen.out, data); err != nil {
		gen.err = fmt.Errorf("cannot execute template %s: %w", tmpl.Name(), err)
	}
}

func (gen *generator) rule(r *grammar.Rule) {
	tracer().Debugf("emitting rule %s", r.Name)
	e := &emitter{indent: 2}
	e.alternatives(r.Alternatives, 1)
	gen.execute(ruleTmpl, map[string]interface{}{
		"Name":         gen.opts.Name,
		"Rule":         r.Name,
		"Definition":   r.String(),
		"Alternatives": e.b.String(),
	})
}

// emitter writes the body of a rule. depth is the nesting level of choices,
// starting with 1 for the choice between the rule's alternatives. It is the
// only state carried from one part to the next.
type emitter struct {
	b      strings.Builder
	indent int
}

func (e *emitter) line(format string, args ...interface{}) {
	e.b.WriteString(strings.Repeat("\t", e.indent))
	fmt.Fprintf(&e.b, format, args...)
	e.b.WriteByte('\n')
}

func (e *emitter) open(format string, args ...interface{}) {
	e.line(format, args...)
	e.indent++
}

func (e *emitter) close(format string, args ...interface{}) {
	e.indent--
	e.line(format, args...)
}

// alternatives emits one closure per alternative, as arguments of a choice.
func (e *emitter) alternatives(alts []grammar.Alternative, depth int) {
	for _, alt := range alts {
		e.line("// %s", alt)
		e.open("func(n *Node) bool {")
		for _, part := range alt.Parts {
			e.part(part, depth)
		}
		e.line("return true")
		e.close("},")
	}
}

func (e *emitter) part(part grammar.Part, depth int) {
	switch p := part.(type) {
	case grammar.Literal:
		e.failUnless("p.literal(n, %s)", strconv.Quote(p.Text))
	case grammar.Reference:
		e.failUnless("p.splice(n, p.parse%s())", p.Name)
	case grammar.Charset:
		e.charset(p)
	case grammar.Group:
		e.group(p, depth+1)
	default:
		panic(fmt.Sprintf("unknown grammar part %T", part))
	}
}

// failUnless emits a match which makes the alternative fail if it does not succeed.
func (e *emitter) failUnless(format string, args ...interface{}) {
	e.open("if !"+format+" {", args...)
	e.line("return false")
	e.close("}")
}

func (e *emitter) charset(c grammar.Charset) {
	min, max := c.Quantifier.Bounds()
	match := fmt.Sprintf("p.chars(n, %s, %d, %d)", strconv.Quote(c.Class.Pairs()), min, max)
	if c.Quantifier.Mandatory() {
		e.failUnless("%s", match)
		return
	}
	e.line("%s", match)
}

// group emits a choice between the group's alternatives at nesting level depth.
func (e *emitter) group(g grammar.Group, depth int) {
	switch g.Quantifier {
	case grammar.One:
		e.open("if !p.splice(n, p.choice(base, %d,", depth)
		e.alternatives(g.Alternatives, depth)
		e.close(")) {")
		e.indent++
		e.line("return false")
		e.close("}")
	case grammar.Optional:
		e.open("p.splice(n, p.choice(base, %d,", depth)
		e.alternatives(g.Alternatives, depth)
		e.close("))")
	case grammar.ZeroOrMore:
		e.open("p.star(n, func() *Node {")
		e.repetition(g, depth)
		e.close("})")
	case grammar.OneOrMore:
		e.open("if !p.plus(n, func() *Node {")
		e.repetition(g, depth)
		e.close("}) {")
		e.indent++
		e.line("return false")
		e.close("}")
	default:
		panic(fmt.Sprintf("unknown quantifier %d", g.Quantifier))
	}
}

func (e *emitter) repetition(g grammar.Group, depth int) {
	e.open("return p.choice(base, %d,", depth)
	e.alternatives(g.Alternatives, depth)
	e.close(")")
}
