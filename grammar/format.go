package grammar

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Format rewrites source into its canonical layout: one top-level statement
// per line, branches indented under their conditional. Comments are kept and
// placed on their own line before the statement they appeared in.
func Format(filename, source string) (string, error) {
	program, err := Parse(filename, source)
	if err != nil {
		return "", err
	}
	comments, err := Comments(filename, source)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	next := 0
	for _, s := range program.Statements {
		for next < len(comments) && comments[next].Pos.Offset < s.EndPos.Offset {
			b.WriteString(comments[next].Value + "\n")
			next++
		}
		b.WriteString(s.StringWithIndent(0))
	}
	for ; next < len(comments); next++ {
		b.WriteString(comments[next].Value + "\n")
	}
	return b.String(), nil
}

// Comments returns the comment tokens of source in order.
func Comments(filename, source string) ([]lexer.Token, error) {
	lex, err := TriadLexer.LexString(filename, source)
	if err != nil {
		return nil, err
	}
	tokens, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, err
	}

	commentType := TriadLexer.Symbols()["Comment"]
	var comments []lexer.Token
	for _, t := range tokens {
		if t.Type == commentType {
			comments = append(comments, t)
		}
	}
	return comments, nil
}
