package lsp

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"triadc/internal/ast"
	"triadc/internal/ir"
	"triadc/internal/parser"
	"triadc/token"
)

// TextDocumentHover describes the token under the cursor. When the document
// parses, the triads of the enclosing top-level statement are listed too,
// numbered from 1 within that statement.
func (h *TriadHandler) TextDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc, err := h.getOrLoad(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	tok, ok := tokenAt(doc.text, params.Position)
	if !ok {
		return nil, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s** `%s`", tok.Kind, tok.Text)

	if stmt := statementAt(doc.tree, tok.Position.Offset); stmt != nil {
		triads := ir.BuildTriads(ast.NewNode(ast.PROGRAM, stmt))
		b.WriteString("\n\n```\n")
		b.WriteString(ir.Print(triads))
		b.WriteString("```")
	}

	start := protocol.Position{
		Line:      uint32(tok.Position.Line - 1),
		Character: uint32(tok.Position.Column - 1),
	}
	end := start
	end.Character += uint32(utf8.RuneCountInString(tok.Text))

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: b.String(),
		},
		Range: &protocol.Range{Start: start, End: end},
	}, nil
}

// tokenAt finds the well-formed token covering the 0-based position.
func tokenAt(text string, pos protocol.Position) (token.Token, bool) {
	tokens, _ := parser.SplitResults(parser.Tokenize(text))
	for _, tok := range tokens {
		if uint32(tok.Position.Line-1) != pos.Line {
			continue
		}
		start := uint32(tok.Position.Column - 1)
		if pos.Character >= start && pos.Character < start+uint32(utf8.RuneCountInString(tok.Text)) {
			return tok, true
		}
	}
	return token.Token{}, false
}

// statementAt returns the last top-level statement starting at or before offset.
func statementAt(root *ast.Node, offset int) *ast.Node {
	if root == nil {
		return nil
	}

	var found *ast.Node
	for _, stmt := range root.Children {
		if stmt.Pos().Offset > offset {
			break
		}
		found = stmt
	}
	return found
}
