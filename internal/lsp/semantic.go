package lsp

import (
	"unicode/utf8"

	"triadc/internal/parser"
	"triadc/token"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into the SemanticTokenTypes array
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into SemanticTokenTypes
	TokenModifiers int // bitmask
}

// collectSemanticTokens classifies every well-formed token of source.
// Lexical errors and delimiters produce no entry.
func collectSemanticTokens(source string) []SemanticToken {
	var tokens []SemanticToken

	lexemes, _ := parser.SplitResults(parser.Tokenize(source))
	for i, tok := range lexemes {
		tokenType, ok := semanticType(tok.Kind)
		if !ok {
			continue
		}

		st := makeToken(tok, tokenType)
		if tok.Kind == token.IDENTIFIER && i+1 < len(lexemes) && lexemes[i+1].Kind == token.ASSIGN {
			st.TokenModifiers = 1 << indexOf("declaration", SemanticTokenModifiers)
		}
		tokens = append(tokens, st)
	}

	return tokens
}

func semanticType(kind token.Kind) (string, bool) {
	switch kind {
	case token.KEYWORD:
		return "keyword", true
	case token.IDENTIFIER:
		return "variable", true
	case token.CONSTANT:
		return "number", true
	case token.COMPARISON, token.ASSIGN:
		return "operator", true
	}
	return "", false
}

func makeToken(tok token.Token, tokenType string) SemanticToken {
	return SemanticToken{
		Line:      uint32(tok.Position.Line - 1),   // LSP uses 0-based line numbers
		StartChar: uint32(tok.Position.Column - 1), // LSP uses 0-based column numbers
		Length:    uint32(utf8.RuneCountInString(tok.Text)),
		TokenType: indexOf(tokenType, SemanticTokenTypes),
	}
}

// encodeSemanticTokens packs tokens into the LSP wire format
// (delta-line, delta-start, length, type, modifiers).
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := []uint32{}
	var prevLine, prevStart uint32

	for _, tok := range tokens {
		deltaLine := tok.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = tok.StartChar - prevStart
		} else {
			deltaStart = tok.StartChar
		}

		data = append(data, deltaLine, deltaStart, tok.Length, uint32(tok.TokenType), uint32(tok.TokenModifiers))

		prevLine = tok.Line
		prevStart = tok.StartChar
	}

	return data
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
