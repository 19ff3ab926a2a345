// Package lsp exposes the analyzer over the language server protocol so
// editors can surface gas findings as diagnostics while typing.
package lsp

import (
	"log"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"gascan"
	"gascan/internal/analyzer"
)

// Handler implements the LSP server handlers for Solidity gas analysis.
type Handler struct {
	mu       sync.RWMutex
	findings map[string][]analyzer.Finding
}

func NewHandler() *Handler {
	return &Handler{
		findings: make(map[string][]analyzer.Finding),
	}
}

// Initialize advertises the server's capabilities. Full-document sync keeps
// the protocol simple; documents are small enough to re-analyze wholesale.
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
		},
	}, nil
}

func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("gascan LSP initialized")
	return nil
}

func (h *Handler) Shutdown(ctx *glsp.Context) error {
	log.Println("gascan LSP shutdown")
	return nil
}

// TextDocumentDidOpen analyzes the freshly opened document.
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)
	h.analyzeDocument(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

// TextDocumentDidChange re-analyzes on every full-content change.
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed file: %s\n", params.TextDocument.URI)

	for _, change := range params.ContentChanges {
		if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			h.analyzeDocument(ctx, params.TextDocument.URI, whole.Text)
		}
	}
	return nil
}

// TextDocumentDidClose drops the cached state and clears diagnostics.
func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed file: %s\n", params.TextDocument.URI)

	uri := params.TextDocument.URI
	h.mu.Lock()
	delete(h.findings, uri)
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, uri, []protocol.Diagnostic{})
	return nil
}

// Findings returns the cached findings for a document URI.
func (h *Handler) Findings(uri string) []analyzer.Finding {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.findings[uri]
}

func (h *Handler) analyzeDocument(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	result, err := gascan.Run(text, uri)

	var diagnostics []protocol.Diagnostic
	if err != nil {
		// Hard failure: a single error diagnostic at the top of the file.
		diagnostics = append(diagnostics, errorDiagnostic(err))
	} else {
		h.mu.Lock()
		h.findings[uri] = result.Findings
		h.mu.Unlock()

		diagnostics = append(diagnostics, parseErrorDiagnostics(result.ParseErrors)...)
		diagnostics = append(diagnostics, findingDiagnostics(result.Findings)...)
	}

	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
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
