package ply

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// headerLexer defines the lexical structure of a single PLY header line.
//
// Header lines are keyword-led and positional, except that `comment` and
// `obj_info` are followed by free text running to the end of the line. The
// FreeText state captures that remainder as one token so inner spacing
// survives. Keyword patterns are \b-anchored so that e.g. "plyhi" or
// "commentt" lex as plain identifiers and fail the grammar.
var headerLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "KwComment", Pattern: `comment\b`, Action: lexer.Push("FreeText")},
		{Name: "KwObjInfo", Pattern: `obj_info\b`, Action: lexer.Push("FreeText")},
		{Name: "KwFormat", Pattern: `format\b`},
		{Name: "KwElement", Pattern: `element\b`},
		{Name: "KwProperty", Pattern: `property\b`},
		{Name: "KwList", Pattern: `list\b`},
		{Name: "KwEndHeader", Pattern: `end_header\b`},
		{Name: "KwPly", Pattern: `ply\b`},

		{Name: "UInt", Pattern: `[0-9]+`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Dot", Pattern: `\.`},

		{Name: "EOL", Pattern: `\r\n|\r|\n`},
		{Name: "Whitespace", Pattern: `[ \t]+`},
	},
	"FreeText": {
		{Name: "EOL", Pattern: `\r\n|\r|\n`, Action: lexer.Pop()},
		{Name: "Text", Pattern: `[^\r\n]+`},
	},
})
