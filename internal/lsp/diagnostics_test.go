package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"velvet/internal/parser"
)

func diagnose(source string) []protocol.Diagnostic {
	program, parseErrors, scanErrors := parser.ParseSource("file:///test.vex", source)
	return CollectDiagnostics(program, parseErrors, scanErrors)
}

func TestCleanSourceYieldsEmptyList(t *testing.T) {
	diagnostics := diagnose(`bind x as int = 10`)
	assert.NotNil(t, diagnostics, "Empty list, not nil, so stale diagnostics clear")
	assert.Empty(t, diagnostics)
}

func TestParseErrorBecomesDiagnostic(t *testing.T) {
	diagnostics := diagnose(`bind = 10`)
	require.Len(t, diagnostics, 1)

	diag := diagnostics[0]
	assert.Equal(t, "velvet-parser", *diag.Source)
	assert.Equal(t, protocol.DiagnosticSeverityError, *diag.Severity)
	assert.Contains(t, diag.Message, "expected identifier")
	assert.Equal(t, uint32(0), diag.Range.Start.Line, "Positions convert to 0-based")
}

func TestScanErrorBecomesDiagnostic(t *testing.T) {
	diagnostics := diagnose(`bind x = "unterminated`)
	require.NotEmpty(t, diagnostics)

	var found bool
	for _, diag := range diagnostics {
		if *diag.Source == "velvet-scanner" {
			assert.Contains(t, diag.Message, "unterminated string")
			found = true
		}
	}
	assert.True(t, found, "Scanner diagnostics should be present")
}

func TestCheckerWarningBecomesDiagnostic(t *testing.T) {
	diagnostics := diagnose(`if 42 { println("hm") }`)
	require.Len(t, diagnostics, 1)

	diag := diagnostics[0]
	assert.Equal(t, "velvet-check", *diag.Source)
	assert.Equal(t, protocol.DiagnosticSeverityWarning, *diag.Severity)
	assert.Contains(t, diag.Message, "if condition")
}

func TestCompletionVocabulary(t *testing.T) {
	handler := NewVelvetHandler()
	result, err := handler.TextDocumentCompletion(nil, &protocol.CompletionParams{})
	require.NoError(t, err)

	list, ok := result.(*protocol.CompletionList)
	require.True(t, ok)

	labels := make(map[string]bool)
	for _, item := range list.Items {
		labels[item.Label] = true
	}
	for _, want := range []string{"bind", "bindm", "fn", "while", "println", "substr"} {
		assert.True(t, labels[want], "completion should offer %q", want)
	}
}

func TestDocumentLifecycle(t *testing.T) {
	handler := NewVelvetHandler()
	uri := protocol.DocumentUri("file:///test.vex")

	handler.updateDocument(nil, uri, `bind x = 1`)
	handler.mu.RLock()
	_, hasContent := handler.content[uri]
	program := handler.programs[uri]
	handler.mu.RUnlock()
	assert.True(t, hasContent)
	assert.NotNil(t, program)

	err := handler.TextDocumentDidClose(nil, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	handler.mu.RLock()
	_, hasContent = handler.content[uri]
	handler.mu.RUnlock()
	assert.False(t, hasContent, "Closing forgets the buffer")
}
