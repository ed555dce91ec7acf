package lsp_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"triadc/internal/lsp"
)

const testURI = "file:///tmp/test.tri"

// recorder captures the notifications a handler sends to the client.
type recorder struct {
	published []*protocol.PublishDiagnosticsParams
}

func (r *recorder) context() *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			if method == protocol.ServerTextDocumentPublishDiagnostics {
				r.published = append(r.published, params.(*protocol.PublishDiagnosticsParams))
			}
		},
	}
}

func (r *recorder) last(t *testing.T) *protocol.PublishDiagnosticsParams {
	t.Helper()
	require.NotEmpty(t, r.published, "no diagnostics were published")
	return r.published[len(r.published)-1]
}

func open(t *testing.T, handler *lsp.TriadHandler, ctx *glsp.Context, text string) {
	t.Helper()
	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: testURI, LanguageID: "triad", Text: text},
	})
	require.NoError(t, err)
}

func TestInitializeAdvertisesCapabilities(t *testing.T) {
	result, err := lsp.NewTriadHandler().Initialize(&glsp.Context{}, &protocol.InitializeParams{})
	require.NoError(t, err)

	res, ok := result.(*protocol.InitializeResult)
	require.True(t, ok)

	caps := res.Capabilities
	assert.Equal(t, true, caps.HoverProvider)
	assert.Equal(t, true, caps.DocumentFormattingProvider)
	require.NotNil(t, caps.SemanticTokensProvider)
	assert.Equal(t, lsp.SemanticTokenTypes, caps.SemanticTokensProvider.(*protocol.SemanticTokensOptions).Legend.TokenTypes)
}

func TestDiagnosticsForGrammarViolation(t *testing.T) {
	rec := &recorder{}
	handler := lsp.NewTriadHandler()

	open(t, handler, rec.context(), "a = 1;")

	params := rec.last(t)
	assert.Equal(t, testURI, params.URI)
	require.Len(t, params.Diagnostics, 1)

	diag := params.Diagnostics[0]
	assert.Equal(t, "E0202", diag.Code.Value)
	assert.Equal(t, "triadc-parser", *diag.Source)
	assert.Equal(t, protocol.DiagnosticSeverityError, *diag.Severity)
	assert.Contains(t, diag.Message, "expected ':='")
	assert.Equal(t, protocol.Position{Line: 0, Character: 2}, diag.Range.Start)
	assert.Equal(t, protocol.Position{Line: 0, Character: 3}, diag.Range.End)
}

func TestDiagnosticsForScanErrors(t *testing.T) {
	rec := &recorder{}
	handler := lsp.NewTriadHandler()

	open(t, handler, rec.context(), "a # b @")

	diagnostics := rec.last(t).Diagnostics
	require.Len(t, diagnostics, 2)
	for _, diag := range diagnostics {
		assert.Equal(t, "E0101", diag.Code.Value)
		assert.Equal(t, "triadc-scanner", *diag.Source)
	}
	assert.Equal(t, uint32(2), diagnostics[0].Range.Start.Character)
	assert.Equal(t, uint32(6), diagnostics[1].Range.Start.Character)
}

func TestChangeClearsDiagnostics(t *testing.T) {
	rec := &recorder{}
	handler := lsp.NewTriadHandler()
	ctx := rec.context()

	open(t, handler, ctx, "a := 1")
	require.Len(t, rec.last(t).Diagnostics, 1)

	err := handler.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: testURI},
			Version:                2,
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "a := 1; if a > 0 then a := 2;"}},
	})
	require.NoError(t, err)

	assert.Len(t, rec.published, 2)
	assert.NotNil(t, rec.last(t).Diagnostics)
	assert.Empty(t, rec.last(t).Diagnostics)
}

func TestDiagnosticsForWarnings(t *testing.T) {
	rec := &recorder{}
	handler := lsp.NewTriadHandler()

	open(t, handler, rec.context(), "a := b;")

	diagnostics := rec.last(t).Diagnostics
	require.Len(t, diagnostics, 2)

	assert.Equal(t, "W0001", diagnostics[0].Code.Value)
	assert.Equal(t, protocol.DiagnosticSeverityWarning, *diagnostics[0].Severity)
	assert.Equal(t, uint32(5), diagnostics[0].Range.Start.Character)

	assert.Equal(t, "W0002", diagnostics[1].Code.Value)
	assert.Equal(t, "triadc-semantic", *diagnostics[1].Source)
}

func TestCloseClearsDiagnostics(t *testing.T) {
	rec := &recorder{}
	handler := lsp.NewTriadHandler()
	ctx := rec.context()

	open(t, handler, ctx, "a = 1;")
	err := handler.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err)

	assert.Empty(t, rec.last(t).Diagnostics)
}

func TestSemanticTokensForOpenDocument(t *testing.T) {
	handler := lsp.NewTriadHandler()
	ctx := &glsp.Context{}

	open(t, handler, ctx, "c := 1.15;\nif c > 1 then\n    a := c;\n")

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 11)

	assertToken(t, &decoded[0], 0, 0, 1, "variable", []string{"declaration"})
	assertToken(t, &decoded[1], 0, 2, 2, "operator", nil)
	assertToken(t, &decoded[2], 0, 5, 4, "number", nil)
	assertToken(t, &decoded[3], 1, 0, 2, "keyword", nil)
	assertToken(t, &decoded[4], 1, 3, 1, "variable", nil)
	assertToken(t, &decoded[5], 1, 5, 1, "operator", nil)
	assertToken(t, &decoded[6], 1, 7, 1, "number", nil)
	assertToken(t, &decoded[7], 1, 9, 4, "keyword", nil)
	assertToken(t, &decoded[8], 2, 4, 1, "variable", []string{"declaration"})
	assertToken(t, &decoded[9], 2, 6, 2, "operator", nil)
	assertToken(t, &decoded[10], 2, 9, 1, "variable", nil)
}

func TestSemanticTokensFromDisk(t *testing.T) {
	handler := lsp.NewTriadHandler()

	absPath, err := filepath.Abs(filepath.Join("../../examples", "basic.tri"))
	require.NoError(t, err, "Failed to get absolute path")

	uri := "file://" + filepath.ToSlash(absPath)

	tokens, err := handler.TextDocumentSemanticTokensFull(&glsp.Context{}, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 14)

	// the leading comment is skipped
	assertToken(t, &decoded[0], 1, 0, 1, "variable", []string{"declaration"})
	assertToken(t, &decoded[8], 3, 9, 4, "keyword", nil)
	assertToken(t, &decoded[13], 4, 9, 1, "number", nil)
}

func TestSemanticTokensMissingFile(t *testing.T) {
	_, err := lsp.NewTriadHandler().TextDocumentSemanticTokensFull(&glsp.Context{}, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///does/not/exist.tri"},
	})
	assert.ErrorContains(t, err, "failed to read file")
}

func TestHoverShowsStatementTriads(t *testing.T) {
	handler := lsp.NewTriadHandler()
	ctx := &glsp.Context{}

	open(t, handler, ctx, "c := 1.15;\nif c > 1 then\n    a := c;\n")

	hover, err := handler.TextDocumentHover(ctx, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
			Position:     protocol.Position{Line: 2, Character: 4},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, hover)

	content, ok := hover.Contents.(protocol.MarkupContent)
	require.True(t, ok)
	assert.Equal(t, protocol.MarkupKindMarkdown, content.Kind)
	assert.Equal(t, "**identifier** `a`\n\n```\n1) > (c, 1)\n2) := (a, c)\n3) if (^1, ^2)\n```", content.Value)

	require.NotNil(t, hover.Range)
	assert.Equal(t, protocol.Position{Line: 2, Character: 4}, hover.Range.Start)
	assert.Equal(t, protocol.Position{Line: 2, Character: 5}, hover.Range.End)
}

func TestHoverWithoutTree(t *testing.T) {
	handler := lsp.NewTriadHandler()
	ctx := &glsp.Context{}

	open(t, handler, ctx, "a := 1")

	hover, err := handler.TextDocumentHover(ctx, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
			Position:     protocol.Position{Line: 0, Character: 5},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, hover)
	assert.Equal(t, "**constant** `1`", hover.Contents.(protocol.MarkupContent).Value)

	hover, err = handler.TextDocumentHover(ctx, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
			Position:     protocol.Position{Line: 0, Character: 1},
		},
	})
	require.NoError(t, err)
	assert.Nil(t, hover)
}

func TestFormatting(t *testing.T) {
	handler := lsp.NewTriadHandler()
	ctx := &glsp.Context{}
	source := "a:=1;if a>b then c:=2;"

	open(t, handler, ctx, source)

	edits, err := handler.TextDocumentFormatting(ctx, &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err)
	require.Len(t, edits, 1)

	assert.Equal(t, "a := 1;\nif a > b then\n    c := 2;\n", edits[0].NewText)
	assert.Equal(t, protocol.Position{}, edits[0].Range.Start)
	assert.Equal(t, protocol.Position{Line: 0, Character: uint32(len(source))}, edits[0].Range.End)
}

func TestFormattingCanonicalAndInvalid(t *testing.T) {
	handler := lsp.NewTriadHandler()
	ctx := &glsp.Context{}
	params := &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	}

	open(t, handler, ctx, "a := 1;\n")
	edits, err := handler.TextDocumentFormatting(ctx, params)
	require.NoError(t, err)
	assert.Empty(t, edits)

	open(t, handler, ctx, "a = 1;")
	edits, err = handler.TextDocumentFormatting(ctx, params)
	require.NoError(t, err)
	assert.Nil(t, edits)
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]
		length := raw[i+2]
		tokenTypeIdx := raw[i+3]
		tokenModMask := raw[i+4]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if tokenModMask&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line,
			Char:      char,
			Length:    length,
			Type:      lsp.SemanticTokenTypes[tokenTypeIdx],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, tok *DecodedToken, line, char, length uint32, typ string, modifiers []string) {
	t.Helper()
	assert.Equal(t, line, tok.Line, "token %d line", tok.Index)
	assert.Equal(t, char, tok.Char, "token %d char", tok.Index)
	assert.Equal(t, length, tok.Length, "token %d length", tok.Index)
	assert.Equal(t, typ, tok.Type, "token %d type", tok.Index)
	assert.Equal(t, modifiers, tok.Modifiers, "token %d modifiers", tok.Index)
}
