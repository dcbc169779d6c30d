/*
Package generator produces the Go source code of PEG parsers for grammars.

A generated parser is a single file without imports. It contains the parser
runtime (a cursor, a stack of backtracking marks, a stack of nodes under
construction, tree purging) followed by one method per grammar rule. Its API is

	func NewParser(input string) *Parser
	func (p *Parser) Parse() *Node
	func (p *Parser) Pos() int
	func (p *Parser) Live() int

where the parser type name is configurable. Generated parsers behave exactly
like the interpreter of package runtime.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package generator

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'peggen.generator'.
func tracer() tracing.Trace {
	return tracing.Select("peggen.generator")
}
