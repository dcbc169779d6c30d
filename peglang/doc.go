/*
Package peglang reads grammars written in the peggen grammar DSL.

A grammar is a sequence of rules, one per line:

	# comments start with a hash
	Sum     -> Product ( ["+-"] Product )*
	Product -> Factor ( ["/*"] Factor )*
	Factor  -> ["0-9"]+ | "(" Sum ")"

Rules may span several lines as long as the line breaks occur inside
parentheses or brackets. String literals use double or single quotes.
A charset is a string in brackets; it denotes the set of its characters,
where a-z denotes a range.

Parsing is done by a backtracking recursive-descent parser on top of a
lexmachine-based tokenizer. Parse never gives up on a syntax error: it keeps
every rule it could recognize and reports unparsed input as a warning.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package peglang

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'peggen.peglang'.
func tracer() tracing.Trace {
	return tracing.Select("peggen.peglang")
}
