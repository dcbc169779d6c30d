package main

import (
	"fmt"
	"os"
	"path"

	"github.com/npillmayer/schuko/schukonf/viperadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCommand is the base CLI command that all subcommands are added to.
var RootCommand = &cobra.Command{
	Use:   path.Base(os.Args[0]),
	Short: "PEG parser generator",
	Long:  "Generate recursive-descent Go parsers from PEG grammars.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := checkEnvironmentVariables(cmd); err != nil {
			return err
		}
		return setupTracing(rootParams.verbose)
	},
	SilenceUsage: true,
}

type rootCommandParams struct {
	verbose bool
}

var rootParams rootCommandParams

func init() {
	RootCommand.PersistentFlags().BoolVarP(&rootParams.verbose, "verbose", "v", false,
		"trace debug output to stderr")
}

// tracers lists the trace keys of all packages of peggen.
var tracers = []string{
	"root",
	"peggen.cmd",
	"peggen.scanner",
	"peggen.grammar",
	"peggen.peglang",
	"peggen.runtime",
	"peggen.generator",
}

// setupTracing directs all tracers to the Go logger. Without verbose output
// only errors are traced.
func setupTracing(verbose bool) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	level := tracing.LevelError
	if verbose {
		level = tracing.LevelDebug
	}
	viper.Set("tracing.adapter", "go")
	for _, key := range tracers {
		viper.Set("tracelevel."+key, level.String())
	}
	conf := viperadapter.New("peggen")
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("cannot configure tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Debugf("trace level is %s", level)
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
