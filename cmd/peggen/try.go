package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/peggen/runtime"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var tryCommand = &cobra.Command{
	Use:   "try <grammar-file>",
	Short: "Parse input lines interactively",
	Long: `Start an interactive session for a PEG grammar.

Every input line is parsed with an interpreter for the grammar, and the
resulting parse tree is printed. Enter :grammar to print the grammar, quit
with :quit or <ctrl>D.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if exit := try(args[0], os.Stdout); exit != 0 {
			os.Exit(exit)
		}
	},
}

func init() {
	RootCommand.AddCommand(tryCommand)
}

func try(grammarFile string, out io.Writer) int {
	intp, err := newIntp(grammarFile, out)
	if err != nil {
		fmt.Fprintln(out, err)
		return 2
	}
	repl, err := readline.New(intp.ip.Grammar().Name + "> ")
	if err != nil {
		tracer().Errorf(err.Error())
		return 3
	}
	defer repl.Close()
	fmt.Fprintln(out, pterm.Info.Sprint("Quit with <ctrl>D"))
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if intp.Eval(line) {
			break
		}
	}
	fmt.Fprintln(out, "Good bye!")
	return 0
}

// Intp is our interpreter object for interactive sessions.
type Intp struct {
	ip  *runtime.Interpreter
	out io.Writer
}

func newIntp(grammarFile string, out io.Writer) (*Intp, error) {
	g, err := loadGrammar(grammarFile, out)
	if err != nil {
		return nil, err
	}
	ip, err := runtime.NewInterpreter(g)
	if err != nil {
		return nil, err
	}
	return &Intp{ip: ip, out: out}, nil
}

// Eval parses a line of input and prints the parse tree. It returns true if
// the session should end.
func (intp *Intp) Eval(line string) bool {
	switch strings.TrimSpace(line) {
	case "":
		return false
	case ":quit":
		return true
	case ":grammar":
		fmt.Fprint(intp.out, intp.ip.Grammar())
		return false
	}
	root, result := intp.ip.Parse(line)
	if root == nil {
		fmt.Fprintln(intp.out, pterm.Error.Sprint("no match"))
		return false
	}
	tracer().Debugf("parse tree: %s", root)
	tree := pterm.NewTreeFromLeveledList(leveledNode(root, nil, 0))
	s, err := pterm.DefaultTree.WithRoot(tree).Srender()
	if err != nil {
		fmt.Fprintln(intp.out, pterm.Error.Sprint(err.Error()))
		return false
	}
	fmt.Fprint(intp.out, s)
	if rest := line[result.Pos:]; strings.TrimSpace(rest) != "" {
		fmt.Fprintln(intp.out, pterm.Info.Sprintf("input not consumed: %q", rest))
	}
	return false
}

// leveledNode lists a parse tree in depth-first order, leaves quoted.
func leveledNode(n *runtime.Node, ll pterm.LeveledList, level int) pterm.LeveledList {
	if len(n.Children) == 0 {
		return append(ll, pterm.LeveledListItem{Level: level, Text: fmt.Sprintf("%q", n.Data)})
	}
	ll = append(ll, pterm.LeveledListItem{Level: level, Text: n.Data})
	for _, ch := range n.Children {
		ll = leveledNode(ch, ll, level+1)
	}
	return ll
}
