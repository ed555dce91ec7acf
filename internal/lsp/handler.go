package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"triadc/internal/ast"
	"triadc/internal/parser"
	"triadc/internal/semantic"
)

var log = commonlog.GetLogger("triadc.lsp")

// Semantic token types advertised in the legend; TokenType indexes into this slice
var SemanticTokenTypes = []string{
	"keyword",
	"variable",
	"number",
	"operator",
}

// Assignment targets are tagged as declarations.
var SemanticTokenModifiers = []string{
	"declaration",
}

// document is the analyzed state of one open text document.
type document struct {
	text        string
	tree        *ast.Node // nil when the text has errors
	diagnostics []protocol.Diagnostic
}

func analyze(text string) *document {
	tree, scanErrors, violation := parser.ParseSource(text)

	diagnostics := ConvertScanErrors(scanErrors)
	diagnostics = append(diagnostics, ConvertGrammarViolation(violation)...)
	if tree != nil {
		diagnostics = append(diagnostics, ConvertWarnings(semantic.NewAnalyzer().Analyze(tree))...)
	}

	return &document{text: text, tree: tree, diagnostics: diagnostics}
}

// TriadHandler implements the LSP server handlers for triad programs.
// Documents are synchronized in full and kept in memory by URI.
type TriadHandler struct {
	mu   sync.RWMutex
	docs map[protocol.DocumentUri]*document
}

// NewTriadHandler creates and returns a new TriadHandler instance
func NewTriadHandler() *TriadHandler {
	return &TriadHandler{
		docs: make(map[protocol.DocumentUri]*document),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *TriadHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true), // notify on open/close events
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
			HoverProvider:              true,
			DocumentFormattingProvider: true,
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *TriadHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

func (h *TriadHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	return nil
}

func (h *TriadHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *TriadHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Debugf("opened %s", params.TextDocument.URI)
	h.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

// TextDocumentDidChange handles file change notifications from the editor.
// Only whole-document changes are understood since the server advertises full sync.
func (h *TriadHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("changed %s", uri)

	var (
		text    string
		changed bool
	)
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text, changed = c.Text, true
		case protocol.TextDocumentContentChangeEvent:
			log.Warningf("ignoring incremental change to %s", uri)
		}
	}

	if changed {
		h.update(ctx, uri, text)
	}
	return nil
}

// TextDocumentDidClose forgets the document and clears its diagnostics.
func (h *TriadHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("closed %s", uri)

	h.mu.Lock()
	delete(h.docs, uri)
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, uri, []protocol.Diagnostic{})
	return nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *TriadHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc, err := h.getOrLoad(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(doc.text)),
	}, nil
}

func (h *TriadHandler) update(ctx *glsp.Context, uri protocol.DocumentUri, text string) *document {
	doc := analyze(text)

	h.mu.Lock()
	h.docs[uri] = doc
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, uri, doc.diagnostics)
	return doc
}

// getOrLoad returns the open document for uri, reading it from disk when the
// editor never opened it.
func (h *TriadHandler) getOrLoad(ctx *glsp.Context, uri protocol.DocumentUri) (*document, error) {
	h.mu.RLock()
	doc, ok := h.docs[uri]
	h.mu.RUnlock()
	if ok {
		return doc, nil
	}

	path, err := uriToPath(uri)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	return h.update(ctx, uri, string(content)), nil
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (/C:/... -> C:/...)
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}

	log.Debugf("publishing %d diagnostics for %s", len(diagnostics), uri)

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
