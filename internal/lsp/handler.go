package lsp

import (
	"log"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"velvet/internal/ast"
	"velvet/internal/builtins"
	"velvet/internal/parser"
)

// VelvetHandler implements the LSP server handlers for the Velvet language.
// Document text comes from the client's notifications, never from disk, so
// unsaved buffers get correct diagnostics.
type VelvetHandler struct {
	mu       sync.RWMutex
	content  map[protocol.DocumentUri]string
	programs map[protocol.DocumentUri]*ast.Program
}

// NewVelvetHandler creates and returns a new VelvetHandler instance
func NewVelvetHandler() *VelvetHandler {
	return &VelvetHandler{
		content:  make(map[protocol.DocumentUri]string),
		programs: make(map[protocol.DocumentUri]*ast.Program),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *VelvetHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *VelvetHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("Velvet LSP Initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *VelvetHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("Velvet LSP Shutdown")
	return nil
}

// SetTrace acknowledges trace level changes from the client
func (h *VelvetHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *VelvetHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)

	h.updateDocument(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

// TextDocumentDidChange handles file change notifications from the editor
func (h *VelvetHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed file: %s\n", params.TextDocument.URI)

	// The server advertises full sync, so every change carries the whole text.
	for _, change := range params.ContentChanges {
		switch event := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			h.updateDocument(ctx, params.TextDocument.URI, event.Text)
		case protocol.TextDocumentContentChangeEvent:
			if event.Range == nil {
				h.updateDocument(ctx, params.TextDocument.URI, event.Text)
			}
		}
	}
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *VelvetHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed file: %s\n", params.TextDocument.URI)

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, params.TextDocument.URI)
	delete(h.programs, params.TextDocument.URI)

	return nil
}

// TextDocumentCompletion offers the keyword and builtin vocabulary
func (h *VelvetHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (interface{}, error) {
	var items []protocol.CompletionItem

	for keyword := range parser.KEYWORDS {
		items = append(items, protocol.CompletionItem{
			Label: keyword,
			Kind:  ptrCompletionKind(protocol.CompletionItemKindKeyword),
		})
	}
	for _, name := range builtins.NewRegistry().Names() {
		items = append(items, protocol.CompletionItem{
			Label: name,
			Kind:  ptrCompletionKind(protocol.CompletionItemKindFunction),
		})
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// updateDocument reparses the buffer, caches the result, and publishes the
// current diagnostic set (which may be empty, clearing old squiggles).
func (h *VelvetHandler) updateDocument(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	program, parseErrors, scanErrors := parser.ParseSource(string(uri), text)

	h.mu.Lock()
	h.content[uri] = text
	h.programs[uri] = program
	h.mu.Unlock()

	diagnostics := CollectDiagnostics(program, parseErrors, scanErrors)
	sendDiagnosticNotification(ctx, uri, diagnostics)
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	if ctx == nil {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

func ptrCompletionKind(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}
