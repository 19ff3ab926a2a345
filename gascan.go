// Package gascan analyzes Solidity source for gas-inefficient patterns. It
// wires the scanner, parser, and analyzer into a single entry point; report
// rendering and editor integration live in their own packages and consume
// the findings produced here.
package gascan

import (
	"errors"
	"fmt"

	"gascan/internal/analyzer"
	"gascan/internal/ast"
	"gascan/internal/parser"
)

// Result carries everything one analysis pass produced. ParseErrors holds
// recoverable syntax errors; when parsing fails outright Run returns an
// error and no Result.
type Result struct {
	Unit        *ast.SourceUnit
	Findings    []analyzer.Finding
	ParseErrors []parser.ParseError
}

// Run tokenizes, parses, and analyzes one source file. It fails when the
// source contains no tokens, when parsing exhausts its error budget, or when
// nothing parseable remains; partial findings are never returned.
func Run(source, filename string) (*Result, error) {
	tokens := parser.NewScanner(source).ScanTokens()
	if len(tokens) <= 1 {
		return nil, fmt.Errorf("%s: no Solidity tokens found", filename)
	}

	p := parser.NewParser(filename, tokens, source)
	unit, err := p.ParseSourceUnit()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if len(unit.Items) == 0 {
		return nil, errors.New(filename + ": no declarations found")
	}

	return &Result{
		Unit:        unit,
		Findings:    analyzer.New().Analyze(unit),
		ParseErrors: p.Errors(),
	}, nil
}

// Analyze is the narrow form of Run: findings in discovery order, or an
// error.
func Analyze(source, filename string) ([]analyzer.Finding, error) {
	result, err := Run(source, filename)
	if err != nil {
		return nil, err
	}
	return result.Findings, nil
}

// PragmaVersion returns the version expression of the first solidity pragma
// in the unit, or "" when there is none.
func PragmaVersion(unit *ast.SourceUnit) string {
	if unit == nil {
		return ""
	}
	for _, item := range unit.Items {
		if pragma, ok := item.(*ast.Pragma); ok && pragma.Name == "solidity" {
			return pragma.Value
		}
	}
	return ""
}
