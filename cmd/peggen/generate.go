package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/peggen/generator"
	"github.com/npillmayer/peggen/grammar"
	"github.com/npillmayer/peggen/peglang"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
)

type generateCommandParams struct {
	name  string
	pkg   string
	check bool
}

var generateParams generateCommandParams

var generateCommand = &cobra.Command{
	Use:   "generate <grammar-file> <output-file>",
	Short: "Generate a Go parser from a PEG grammar",
	Long: `Generate a Go parser from a PEG grammar.

The grammar file is parsed and validated, and the parser is written to the
output file. Any diagnostic for the grammar file fails the command and leaves
the output file untouched.

With --check nothing is written. Instead the output file is compared with the
parser which would be generated, and a line diff is printed if it is stale.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if exit := generate(args[0], args[1], generateParams, os.Stdout); exit != 0 {
			os.Exit(exit)
		}
	},
}

func init() {
	generateCommand.Flags().StringVarP(&generateParams.name, "name", "n", "Parser", "type name of the generated parser")
	generateCommand.Flags().StringVarP(&generateParams.pkg, "package", "p", "main", "package name of the generated file")
	generateCommand.Flags().BoolVarP(&generateParams.check, "check", "c", false,
		"check that the output file is up to date instead of writing it")
	RootCommand.AddCommand(generateCommand)
}

// generate returns the exit code of the command: 0 on success, 1 for a stale
// output file and 2 for any other failure.
func generate(grammarFile, outputFile string, params generateCommandParams, out io.Writer) int {
	src, err := compile(grammarFile, generator.Options{
		Name:    params.name,
		Package: params.pkg,
		Source:  filepath.Base(grammarFile),
	}, out)
	if err != nil {
		fmt.Fprintln(out, err)
		return 2
	}
	if params.check {
		return check(outputFile, src, out)
	}
	if err := os.WriteFile(outputFile, src, 0644); err != nil {
		fmt.Fprintf(out, "cannot write parser: %v\n", err)
		return 2
	}
	tracer().Infof("wrote parser for %s to %s", grammarFile, outputFile)
	return 0
}

// errDiagnostics is returned by loadGrammar if the grammar file is not clean.
var errDiagnostics = errors.New("grammar file has diagnostics")

// loadGrammar reads and parses a grammar file. Diagnostics are printed to out.
// The grammar is returned even if there are diagnostics, together with
// errDiagnostics.
func loadGrammar(grammarFile string, out io.Writer) (*grammar.Grammar, error) {
	src, err := os.ReadFile(grammarFile)
	if err != nil {
		return nil, fmt.Errorf("cannot read grammar: %w", err)
	}
	g, diags, err := peglang.Parse(grammarFile, src)
	if err != nil {
		return nil, err
	}
	for _, d := range diags {
		fmt.Fprintln(out, d)
	}
	if len(diags) > 0 {
		return g, fmt.Errorf("%s: %w", grammarFile, errDiagnostics)
	}
	return g, nil
}

// compile loads a grammar file and generates the source code of its parser.
func compile(grammarFile string, opts generator.Options, out io.Writer) ([]byte, error) {
	g, err := loadGrammar(grammarFile, out)
	if err != nil {
		return nil, err
	}
	return generator.Source(g, opts)
}

// check compares the content of outputFile with src. A missing output file is
// stale.
func check(outputFile string, src []byte, out io.Writer) int {
	current, err := os.ReadFile(outputFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(out, "cannot read parser: %v\n", err)
		return 2
	}
	if bytes.Equal(current, src) {
		tracer().Infof("%s is up to date", outputFile)
		return 0
	}
	fmt.Fprintf(out, "%s is out of date:\n", outputFile)
	fmt.Fprint(out, lineDiff(string(current), string(src)))
	return 1
}

// lineDiff lists the lines deleted from old with prefix '-' and the lines
// inserted into new with prefix '+'.
func lineDiff(old, new string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(old, new)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	var sb strings.Builder
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}
