package lsp

import (
	"strings"
	"unicode/utf8"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"triadc/grammar"
)

// TextDocumentFormatting replaces the whole document with its canonical layout.
// Documents that do not parse are left alone.
func (h *TriadHandler) TextDocumentFormatting(ctx *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	uri := params.TextDocument.URI

	doc, err := h.getOrLoad(ctx, uri)
	if err != nil {
		return nil, err
	}

	formatted, err := grammar.Format(uri, doc.text)
	if err != nil {
		log.Warningf("not formatting %s: %s", uri, err)
		return nil, nil
	}
	if formatted == doc.text {
		return []protocol.TextEdit{}, nil
	}

	return []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{},
			End:   endOfDocument(doc.text),
		},
		NewText: formatted,
	}}, nil
}

func endOfDocument(text string) protocol.Position {
	lines := strings.Split(text, "\n")
	last := lines[len(lines)-1]
	return protocol.Position{
		Line:      uint32(len(lines) - 1),
		Character: uint32(utf8.RuneCountInString(last)),
	}
}
