package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"sola/internal/ast"
	"sola/internal/errors"
	"sola/internal/parser"
)

// ConvertParseErrors transforms parser errors into LSP diagnostics for IDE display.
// These provide immediate feedback about syntax issues like missing brackets,
// semicolons and unbalanced braces.
func ConvertParseErrors(uri protocol.DocumentUri, parseErrors []parser.ParseError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, parseErr := range parseErrors {
		code := protocol.IntegerOrString{Value: errors.ErrorSyntax}
		diagnostic := protocol.Diagnostic{
			Range:    positionRange(parseErr.Position, 5),
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Code:     &code,
			Source:   ptrString("sola-parser"),
			Message:  parseErr.Message,
		}
		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}

// ConvertCompilerErrors transforms accumulated contract-level diagnostics
// into LSP diagnostics. Secondary locations become related information so
// that editors can show both halves of a duplicate-definition pair.
func ConvertCompilerErrors(uri protocol.DocumentUri, errs []errors.CompilerError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, err := range errs {
		length := err.Length
		if length <= 0 {
			length = 1
		}

		diagnostic := protocol.Diagnostic{
			Range:    positionRange(err.Position, length),
			Severity: ptrSeverity(severityOf(err.Level)),
			Source:   ptrString("sola"),
			Message:  err.Message,
		}
		if err.Code != "" {
			code := protocol.IntegerOrString{Value: err.Code}
			diagnostic.Code = &code
		}

		for _, sec := range err.Secondary {
			diagnostic.RelatedInformation = append(diagnostic.RelatedInformation,
				protocol.DiagnosticRelatedInformation{
					Location: protocol.Location{
						URI:   uri,
						Range: positionRange(sec.Position, 1),
					},
					Message: sec.Label,
				})
		}

		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}

func severityOf(level errors.ErrorLevel) protocol.DiagnosticSeverity {
	switch level {
	case errors.Warning:
		return protocol.DiagnosticSeverityWarning
	case errors.Note, errors.Help:
		return protocol.DiagnosticSeverityInformation
	default:
		return protocol.DiagnosticSeverityError
	}
}

func positionRange(pos ast.Position, length int) protocol.Range {
	line := uint32(0)
	if pos.Line > 0 {
		line = uint32(pos.Line - 1) // Convert to 0-based indexing
	}
	char := uint32(0)
	if pos.Column > 0 {
		char = uint32(pos.Column - 1)
	}

	return protocol.Range{
		Start: protocol.Position{Line: line, Character: char},
		End:   protocol.Position{Line: line, Character: char + uint32(length)},
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
