package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

type buildCommandParams struct {
	manifest string
	check    bool
}

var buildParams buildCommandParams

var buildCommand = &cobra.Command{
	Use:   "build",
	Short: "Generate all parsers listed in a manifest",
	Long: `Generate all parsers listed in a TOML manifest.

A manifest lists one table per parser:

	[[parser]]
	grammar = "calc.peg"
	output  = "calc_parser.go"
	name    = "Calc"
	package = "calc"

Paths are relative to the directory of the manifest. Name and package are
optional. All parsers are generated, even if some of them fail.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if exit := build(buildParams, os.Stdout); exit != 0 {
			os.Exit(exit)
		}
	},
}

func init() {
	buildCommand.Flags().StringVarP(&buildParams.manifest, "manifest", "m", "peggen.toml", "manifest file")
	buildCommand.Flags().BoolVarP(&buildParams.check, "check", "c", false,
		"check that all outputs are up to date instead of writing them")
	RootCommand.AddCommand(buildCommand)
}

// manifest is the content of a build manifest.
type manifest struct {
	Parsers []manifestEntry `toml:"parser"`
}

type manifestEntry struct {
	Grammar string `toml:"grammar"`
	Output  string `toml:"output"`
	Name    string `toml:"name"`
	Package string `toml:"package"`
}

func loadManifest(path string) (*manifest, error) {
	m := &manifest{}
	md, err := toml.DecodeFile(path, m)
	if err != nil {
		return nil, fmt.Errorf("cannot read manifest: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("manifest %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	dir := filepath.Dir(path)
	for i, e := range m.Parsers {
		if e.Grammar == "" || e.Output == "" {
			return nil, fmt.Errorf("manifest %s: parser #%d needs a grammar and an output", path, i+1)
		}
		m.Parsers[i].Grammar = filepath.Join(dir, e.Grammar)
		m.Parsers[i].Output = filepath.Join(dir, e.Output)
	}
	return m, nil
}

// build returns the highest exit code of all parsers, see generate.
func build(params buildCommandParams, out io.Writer) int {
	m, err := loadManifest(params.manifest)
	if err != nil {
		fmt.Fprintln(out, err)
		return 2
	}
	exit := 0
	for _, e := range m.Parsers {
		tracer().Infof("building %s from %s", e.Output, e.Grammar)
		code := generate(e.Grammar, e.Output, generateCommandParams{
			name:  e.Name,
			pkg:   e.Package,
			check: params.check,
		}, out)
		if code > exit {
			exit = code
		}
	}
	return exit
}
