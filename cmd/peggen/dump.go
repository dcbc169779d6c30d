package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/npillmayer/peggen/grammar"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type dumpCommandParams struct {
	format string
}

var dumpParams dumpCommandParams

var dumpCommand = &cobra.Command{
	Use:   "dump <grammar-file>",
	Short: "Print the structure of a PEG grammar",
	Long: `Print the structure of a PEG grammar as a tree, or in YAML or JSON format.

The grammar is validated, but a grammar with diagnostics or validation errors
is printed nevertheless.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if exit := dump(args[0], dumpParams, os.Stdout); exit != 0 {
			os.Exit(exit)
		}
	},
}

func init() {
	dumpCommand.Flags().StringVarP(&dumpParams.format, "format", "f", "tree", "output format {tree,yaml,json}")
	RootCommand.AddCommand(dumpCommand)
}

func dump(grammarFile string, params dumpCommandParams, out io.Writer) int {
	g, err := loadGrammar(grammarFile, out)
	if g == nil {
		fmt.Fprintln(out, err)
		return 2
	}
	exit := 0
	if err != nil {
		exit = 2
	}
	if err := grammar.Validate(g); err != nil {
		fmt.Fprintln(out, err)
		exit = 2
	}
	switch params.format {
	case "tree":
		root := pterm.NewTreeFromLeveledList(leveledGrammar(g))
		root.Text = g.Name
		s, err := pterm.DefaultTree.WithRoot(root).Srender()
		if err != nil {
			fmt.Fprintln(out, err)
			return 2
		}
		fmt.Fprint(out, s)
	case "yaml":
		bs, err := yaml.Marshal(dumpGrammar(g))
		if err != nil {
			fmt.Fprintln(out, err)
			return 2
		}
		out.Write(bs)
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(dumpGrammar(g)); err != nil {
			fmt.Fprintln(out, err)
			return 2
		}
	default:
		fmt.Fprintf(out, "unknown format %q\n", params.format)
		return 2
	}
	return exit
}

// --- Tree ------------------------------------------------------------------

// leveledGrammar lists rules at level 0, their alternatives at level 1 and
// the parts of alternatives below.
func leveledGrammar(g *grammar.Grammar) pterm.LeveledList {
	var ll pterm.LeveledList
	for _, r := range g.Rules {
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: r.Name})
		ll = leveledAlternatives(r.Alternatives, ll, 1)
	}
	return ll
}

func leveledAlternatives(alts []grammar.Alternative, ll pterm.LeveledList, level int) pterm.LeveledList {
	for i, alt := range alts {
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: "alt " + strconv.Itoa(i+1)})
		for _, part := range alt.Parts {
			if grp, ok := part.(grammar.Group); ok {
				ll = append(ll, pterm.LeveledListItem{Level: level + 1, Text: "( )" + grp.Quantifier.String()})
				ll = leveledAlternatives(grp.Alternatives, ll, level+2)
				continue
			}
			ll = append(ll, pterm.LeveledListItem{Level: level + 1, Text: part.String()})
		}
	}
	return ll
}

// --- YAML and JSON ---------------------------------------------------------

type grammarDump struct {
	Name  string     `yaml:"name" json:"name"`
	Rules []ruleDump `yaml:"rules" json:"rules"`
}

type ruleDump struct {
	Name         string       `yaml:"name" json:"name"`
	Alternatives [][]partDump `yaml:"alternatives" json:"alternatives"`
}

type partDump struct {
	Literal      string       `yaml:"literal,omitempty" json:"literal,omitempty"`
	Reference    string       `yaml:"reference,omitempty" json:"reference,omitempty"`
	Charset      string       `yaml:"charset,omitempty" json:"charset,omitempty"`
	Alternatives [][]partDump `yaml:"group,omitempty" json:"group,omitempty"`
	Quantifier   string       `yaml:"quantifier,omitempty" json:"quantifier,omitempty"`
}

func dumpGrammar(g *grammar.Grammar) grammarDump {
	gd := grammarDump{Name: g.Name}
	for _, r := range g.Rules {
		gd.Rules = append(gd.Rules, ruleDump{
			Name:         r.Name,
			Alternatives: dumpAlternatives(r.Alternatives),
		})
	}
	return gd
}

func dumpAlternatives(alts []grammar.Alternative) [][]partDump {
	dumps := make([][]partDump, len(alts))
	for i, alt := range alts {
		dumps[i] = []partDump{}
		for _, part := range alt.Parts {
			dumps[i] = append(dumps[i], dumpPart(part))
		}
	}
	return dumps
}

func dumpPart(part grammar.Part) partDump {
	switch p := part.(type) {
	case grammar.Literal:
		return partDump{Literal: p.Text}
	case grammar.Reference:
		return partDump{Reference: p.Name}
	case grammar.Charset:
		return partDump{Charset: p.Source, Quantifier: p.Quantifier.String()}
	case grammar.Group:
		return partDump{Alternatives: dumpAlternatives(p.Alternatives), Quantifier: p.Quantifier.String()}
	}
	panic(fmt.Sprintf("unknown grammar part %T", part))
}
