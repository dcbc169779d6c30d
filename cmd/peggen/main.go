/*
Command peggen generates Go parsers from PEG grammars.

Usage:

	peggen generate <grammar-file> <output-file> [--name N] [--package P] [--check]
	peggen build [--manifest peggen.toml]
	peggen dump <grammar-file> [--format tree|yaml|json]
	peggen try <grammar-file>

Every flag may be given as an environment variable PEGGEN_<COMMAND>_<FLAG>,
e.g. PEGGEN_GENERATE_PACKAGE=calc. Flags on the command line take precedence.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"os"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'peggen.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("peggen.cmd")
}

func main() {
	initDisplay()
	if err := RootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
