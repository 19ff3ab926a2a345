package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"gascan/internal/analyzer"
	"gascan/internal/parser"
)

// findingDiagnostics transforms analyzer findings into LSP diagnostics.
// Severity maps down one notch: gas findings are advisory, not errors.
func findingDiagnostics(findings []analyzer.Finding) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, f := range findings {
		message := f.Message
		if f.EstimatedSavings != "" {
			message += " (saves " + f.EstimatedSavings + ")"
		}

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    pointRange(f.Line, f.Column, 5),
			Severity: ptrSeverity(findingSeverity(f.Severity)),
			Code:     &protocol.IntegerOrString{Value: f.Rule},
			Source:   ptrString("gascan"),
			Message:  message,
		})
	}

	return diagnostics
}

// parseErrorDiagnostics transforms recoverable syntax errors into error
// diagnostics so the editor flags them alongside the gas findings.
func parseErrorDiagnostics(parseErrors []parser.ParseError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, parseErr := range parseErrors {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    pointRange(parseErr.Position.Line, parseErr.Position.Column, 5),
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("gascan-parser"),
			Message:  parseErr.Message,
		})
	}

	return diagnostics
}

// errorDiagnostic renders a pipeline failure as a single diagnostic at the
// top of the document.
func errorDiagnostic(err error) protocol.Diagnostic {
	return protocol.Diagnostic{
		Range:    pointRange(1, 1, 1),
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("gascan"),
		Message:  err.Error(),
	}
}

func findingSeverity(s analyzer.Severity) protocol.DiagnosticSeverity {
	switch s {
	case analyzer.SeverityHigh:
		return protocol.DiagnosticSeverityWarning
	case analyzer.SeverityMedium:
		return protocol.DiagnosticSeverityInformation
	default:
		return protocol.DiagnosticSeverityHint
	}
}

// pointRange builds a rough span at a 1-based source position.
func pointRange(line, column, length int) protocol.Range {
	if line < 1 {
		line = 1
	}
	if column < 1 {
		column = 1
	}
	return protocol.Range{
		Start: protocol.Position{
			Line:      uint32(line - 1),
			Character: uint32(column - 1),
		},
		End: protocol.Position{
			Line:      uint32(line - 1),
			Character: uint32(column - 1 + length),
		},
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
