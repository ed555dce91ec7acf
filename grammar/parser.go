package grammar

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
)

var programParser = participle.MustBuild[Program](
	participle.Lexer(TriadLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// Parse parses source with the declarative grammar.
func Parse(filename, source string) (*Program, error) {
	program, err := programParser.ParseString(filename, source)
	if err != nil {
		return nil, err
	}
	program.Statements = hoist(program.Statements)
	return program, nil
}

// EBNF returns the grammar in EBNF notation.
func EBNF() string {
	return programParser.String()
}

// FormatParseError renders a friendly caret-style parse error message.
func FormatParseError(src string, err error) string {
	var b strings.Builder

	pe, ok := err.(participle.Error)
	if !ok {
		b.WriteString(color.RedString("Unexpected error: %s", err) + "\n")
		return b.String()
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		b.WriteString(color.RedString("Syntax error at unknown location: %s", err) + "\n")
		return b.String()
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", max(0, pos.Column-1)) + "^"

	b.WriteString(color.RedString("Syntax error in %s at line %d, column %d:", pos.Filename, pos.Line, pos.Column) + "\n")
	b.WriteString(line + "\n")
	b.WriteString(color.HiRedString(caret) + "\n")
	b.WriteString(fmt.Sprintf("→ %s\n", pe.Message()))
	return b.String()
}
