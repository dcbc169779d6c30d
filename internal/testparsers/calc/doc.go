// Package calc holds a parser for arithmetic expressions, generated by peggen
// from calc.peg. Its tests run generated code against the properties the
// interpreter of package runtime is tested for.
package calc

//go:generate go run github.com/npillmayer/peggen/cmd/peggen generate calc.peg calc_parser.go --name Calc --package calc
