package lsp

import (
	"fmt"
	"log"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"sola/internal/errors"
	"sola/internal/parser"
	"sola/internal/resolve"
	"sola/internal/semantic"
)

// SolaHandler implements the LSP server handlers for the Sola language.
// Every document edit re-runs the whole frontend: parse, resolve and the
// contract-level checks, and publishes the combined diagnostics.
type SolaHandler struct {
	mu      sync.RWMutex
	content map[string]string
}

// NewSolaHandler creates and returns a new SolaHandler instance
func NewSolaHandler() *SolaHandler {
	return &SolaHandler{
		content: make(map[string]string),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *SolaHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
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

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *SolaHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("Sola LSP Initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *SolaHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("Sola LSP Shutdown")
	return nil
}

// SetTrace handles trace level changes from the client
func (h *SolaHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *SolaHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)
	return h.checkDocument(ctx, params.TextDocument.URI, params.TextDocument.Text)
}

// TextDocumentDidChange handles file change notifications from the editor
func (h *SolaHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed file: %s\n", params.TextDocument.URI)

	// Full sync: the last whole-document change wins.
	content := h.documentContent(params.TextDocument.URI)
	for _, change := range params.ContentChanges {
		if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			content = whole.Text
		}
	}

	return h.checkDocument(ctx, params.TextDocument.URI, content)
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *SolaHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed file: %s\n", params.TextDocument.URI)

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, params.TextDocument.URI)

	return nil
}

func (h *SolaHandler) documentContent(uri protocol.DocumentUri) string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.content[uri]
}

// checkDocument runs the frontend over one document and publishes the
// resulting diagnostics, clearing any previous ones when the document is
// now clean.
func (h *SolaHandler) checkDocument(ctx *glsp.Context, uri protocol.DocumentUri, content string) error {
	h.mu.Lock()
	h.content[uri] = content
	h.mu.Unlock()

	path, err := uriToPath(uri)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", uri, err)
	}

	unit, parseErrs := parser.ParseSource(path, content)
	if len(parseErrs) > 0 {
		sendDiagnosticNotification(ctx, uri, ConvertParseErrors(uri, parseErrs))
		return nil
	}

	errs := errors.NewList()
	resolver := resolve.NewResolver(errs)
	resolver.Resolve(unit)

	checker := semantic.NewChecker(errs)
	for _, contract := range unit.Contracts {
		checker.Check(contract)
		if contract.IsAbstract() {
			errs.Warn(errors.WarningAbstractContract,
				contract.Name.Pos,
				fmt.Sprintf("contract '%s' is abstract and cannot be deployed.", contract.Name.Value))
		}
	}

	sendDiagnosticNotification(ctx, uri, ConvertCompilerErrors(uri, errs.Errors()))
	return nil
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	// Normalize to platform-specific separators
	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	if diagnostics == nil {
		// An empty slice clears old diagnostics; nil would be dropped by
		// some clients.
		diagnostics = []protocol.Diagnostic{}
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
