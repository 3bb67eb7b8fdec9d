package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"velvet/internal/ast"
	"velvet/internal/errors"
	"velvet/internal/parser"
	"velvet/internal/typecheck"
)

// CollectDiagnostics merges scanner, parser, and checker findings into one
// list for publishing. Returns an empty slice rather than nil so a clean
// parse clears previous diagnostics on the client.
func CollectDiagnostics(program *ast.Program, parseErrors []parser.ParseError, scanErrors []parser.ScanError) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	diagnostics = append(diagnostics, ConvertScanErrors(scanErrors)...)
	diagnostics = append(diagnostics, ConvertParseErrors(parseErrors)...)

	if program != nil {
		checkDiags, _ := typecheck.Check(program)
		diagnostics = append(diagnostics, ConvertCheckDiagnostics(checkDiags)...)
	}

	return diagnostics
}

// ConvertParseErrors transforms parser errors into LSP diagnostics for IDE
// display: missing braces, malformed declarations, and the like.
func ConvertParseErrors(parseErrors []parser.ParseError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, parseErr := range parseErrors {
		diagnostic := protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(parseErr.Position.Line - 1), // Convert to 0-based indexing
					Character: uint32(parseErr.Position.Column - 1),
				},
				End: protocol.Position{
					Line:      uint32(parseErr.Position.Line - 1),
					Character: uint32(parseErr.Position.Column + 5), // Rough span for visibility
				},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("velvet-parser"),
			Message:  parseErr.Message,
		}
		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}

// ConvertScanErrors transforms scanner errors into LSP diagnostics:
// stray characters, unterminated strings, and similar token issues.
func ConvertScanErrors(scanErrors []parser.ScanError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, scanErr := range scanErrors {
		endChar := uint32(scanErr.Position.Column - 1 + scanErr.Length)
		if scanErr.Length == 0 {
			endChar = uint32(scanErr.Position.Column)
		}

		diagnostic := protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(scanErr.Position.Line - 1),
					Character: uint32(scanErr.Position.Column - 1),
				},
				End: protocol.Position{
					Line:      uint32(scanErr.Position.Line - 1),
					Character: endChar,
				},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("velvet-scanner"),
			Message:  scanErr.Message,
		}
		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}

// ConvertCheckDiagnostics transforms the advisory checker's findings.
// They publish as warnings since evaluation proceeds regardless.
func ConvertCheckDiagnostics(diags []errors.CompilerError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, diag := range diags {
		severity := protocol.DiagnosticSeverityWarning
		if diag.Level == errors.Error {
			severity = protocol.DiagnosticSeverityError
		}

		length := diag.Length
		if length <= 0 {
			length = 1
		}

		diagnostic := protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(diag.Position.Line - 1),
					Character: uint32(diag.Position.Column - 1),
				},
				End: protocol.Position{
					Line:      uint32(diag.Position.Line - 1),
					Character: uint32(diag.Position.Column - 1 + length),
				},
			},
			Severity: ptrSeverity(severity),
			Source:   ptrString("velvet-check"),
			Message:  diag.Message,
		}
		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
