package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var TriadLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments run to the first closing brace
		{Name: "Comment", Pattern: `\{[^}]*\}`, Action: nil},

		// Keywords before identifiers (order matters)
		{Name: "Keyword", Pattern: `(if|then|else)\b`, Action: nil},
		{Name: "Ident", Pattern: `\p{L}[\p{L}0-9]*`, Action: nil},

		// Numbers with an optional fraction
		{Name: "Number", Pattern: `[0-9]+(\.[0-9]*)?`, Action: nil},

		// Operators
		{Name: "Assign", Pattern: `:=`, Action: nil},
		{Name: "Compare", Pattern: `[<>=]`, Action: nil},

		// Punctuation
		{Name: "Semi", Pattern: `;`, Action: nil},

		// Whitespace
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`, Action: nil},
	},
})
