package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"sola/internal/ast"
)

var unitParser = participle.MustBuild[sourceUnit](
	participle.Lexer(solaLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// ParseError is a syntax error with a source location
type ParseError struct {
	Message  string
	Position ast.Position
}

// ParseSource parses one Sola source file into an AST. On a syntax error
// the returned unit is nil and the error list is non-empty.
func ParseSource(filename, source string) (*ast.SourceUnit, []ParseError) {
	unit, err := unitParser.ParseString(filename, source)
	if err != nil {
		return nil, []ParseError{convertError(filename, err)}
	}
	return lowerUnit(unit), nil
}

func convertError(filename string, err error) ParseError {
	if pe, ok := err.(participle.Error); ok {
		return ParseError{
			Message:  pe.Message(),
			Position: lowerPos(pe.Position()),
		}
	}
	return ParseError{
		Message:  err.Error(),
		Position: ast.Position{Filename: filename, Line: 1, Column: 1},
	}
}

func lowerPos(p lexer.Position) ast.Position {
	return ast.Position{
		Filename: p.Filename,
		Offset:   p.Offset,
		Line:     p.Line,
		Column:   p.Column,
	}
}
