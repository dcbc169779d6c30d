/*
Package peggen is a PEG parser generator.

PegGen compiles a small BNF-like grammar description into the source of a
recursive-descent parser with PEG semantics: ordered choice, backtracking,
greedy repetition and automatic construction of a concrete syntax tree.
Package structure is as follows:

■ scanner: Package scanner defines the tokenizer interface for the grammar DSL
and a lexical cursor which buffers tokens for arbitrary backtracking.

■ grammar: Package grammar holds the in-memory grammar representation (rules,
alternatives and parts), which is the boundary between grammar parsing and
code generation.

■ peglang: Package peglang parses grammar text into a grammar.

■ generator: Package generator emits Go source for a parser of a grammar.

■ runtime: Package runtime implements the matching machinery of generated
parsers in Go, together with an interpreter for grammars.

■ cmd/peggen: The command line tool to generate, check, dump and try parsers.

The base package contains data types which are used throughout all the other packages.

A grammar looks like this:

	Sum     -> Product ( ["+-"] Product )*
	Product -> Factor ( ["/*"] Factor )*
	Factor  -> ["0-9"]+ | "(" Sum ")"

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package peggen
