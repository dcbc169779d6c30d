// Package laws holds a parser generated by peggen from laws.peg, a grammar
// with one rule per matching law of the runtime: ordered choice, purging of
// failed alternatives, quantifiers and charset runs. Tests call the rule
// methods directly and compare them with the interpreter.
package laws

//go:generate go run github.com/npillmayer/peggen/cmd/peggen generate laws.peg laws_parser.go --name Laws --package laws
