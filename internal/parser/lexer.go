package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Reserved words get their own token type so that identifier captures can
// never swallow a keyword. The grammar still matches them as plain literals.
var solaLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{"Comment", `//[^\n]*|/\*([^*]|\*+[^*/])*\*+/`, nil},

		// Keywords (order matters: must come before Ident)
		{"Keyword", `\b(pragma|contract|is|function|constructor|fallback|event|modifier|returns|external|public|internal|private|pure|view|payable|nonpayable)\b`, nil},

		// Identifiers
		{"Ident", `[a-zA-Z_$][a-zA-Z0-9_$]*`, nil},

		// Literals
		{"Number", `0x[0-9a-fA-F]+|[0-9]+`, nil},
		{"String", `"[^"\n]*"`, nil},

		// Operators
		{"Operator", `(\|\||&&|==|!=|<=|>=|=>|\+\+|--|[-+*/%&|^~<>=!?:.])`, nil},

		// Punctuation (must come after operators)
		{"Punctuation", `[{}()\[\],;]`, nil},

		// Whitespace
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
