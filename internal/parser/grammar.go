package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Grammar node structs for participle. These mirror the surface syntax only;
// parse.go lowers them into internal/ast values with resolved defaults.

type sourceUnit struct {
	Pos       lexer.Position
	Pragma    *pragmaDecl     `@@?`
	Contracts []*contractDecl `@@*`
	EndPos    lexer.Position
}

type pragmaDecl struct {
	Pos    lexer.Position
	Name   string   `"pragma" @Ident`
	Value  []string `{ @~";" } ";"`
	EndPos lexer.Position
}

type contractDecl struct {
	Pos     lexer.Position
	Name    *identNode    `"contract" @@`
	Bases   []*baseSpec   `[ "is" @@ { "," @@ } ]`
	Members []*memberDecl `"{" { @@ } "}"`
	EndPos  lexer.Position
}

type baseSpec struct {
	Pos       lexer.Position
	Name      *identNode `@@`
	Arguments *argList   `[ @@ ]`
	EndPos    lexer.Position
}

type memberDecl struct {
	Pos         lexer.Position
	Constructor *constructorDecl `  @@`
	Function    *functionDecl    `| @@`
	Event       *eventDecl       `| @@`
	Modifier    *modifierDecl    `| @@`
	StateVar    *stateVarDecl    `| @@`
	EndPos      lexer.Position
}

type functionDecl struct {
	Pos     lexer.Position
	Name    *identNode   `"function" [ @@ ]`
	Params  *paramList   `@@`
	Specs   []*specifier `{ @@ }`
	Returns *paramList   `[ "returns" @@ ]`
	Body    *bodyBlock   `( @@`
	Semi    bool         `| @";" )`
	EndPos  lexer.Position
}

type constructorDecl struct {
	Pos     lexer.Position
	Params  *paramList   `"constructor" @@`
	Specs   []*specifier `{ @@ }`
	Returns *paramList   `[ "returns" @@ ]`
	Body    *bodyBlock   `( @@`
	Semi    bool         `| @";" )`
	EndPos  lexer.Position
}

type eventDecl struct {
	Pos    lexer.Position
	Name   *identNode `"event" @@`
	Params *paramList `@@ ";"`
	EndPos lexer.Position
}

type modifierDecl struct {
	Pos    lexer.Position
	Name   *identNode `"modifier" @@`
	Params *paramList `[ @@ ]`
	Body   *bodyBlock `@@`
	EndPos lexer.Position
}

type stateVarDecl struct {
	Pos        lexer.Position
	Type       *typeName  `@@`
	Visibility string     `[ @("public" | "internal" | "private") ]`
	Name       *identNode `@@`
	Init       []string   `[ "=" { @~";" } ] ";"`
	EndPos     lexer.Position
}

// specifier is one entry of a function header's specifier run: a visibility
// keyword, a mutability keyword, or a modifier invocation.
type specifier struct {
	Pos        lexer.Position
	Visibility string      `  @("external" | "public" | "internal" | "private")`
	Mutability string      `| @("pure" | "view" | "payable" | "nonpayable")`
	Invocation *invocation `| @@`
	EndPos     lexer.Position
}

type invocation struct {
	Pos       lexer.Position
	Name      *identNode `@@`
	Arguments *argList   `[ @@ ]`
	EndPos    lexer.Position
}

type argList struct {
	Pos    lexer.Position
	Args   []*argExpr `"(" [ @@ { "," @@ } ] ")"`
	EndPos lexer.Position
}

// argExpr is an opaque argument expression: any run of tokens up to the
// next comma or closing parenthesis. Nested parentheses are not supported
// in constructor-argument position.
type argExpr struct {
	Pos    lexer.Position
	Tokens []string `@~("," | ")") { @~("," | ")") }`
	EndPos lexer.Position
}

type paramList struct {
	Pos    lexer.Position
	Params []*paramDecl `"(" [ @@ { "," @@ } ] ")"`
	EndPos lexer.Position
}

type paramDecl struct {
	Pos    lexer.Position
	Type   *typeName  `@@`
	Name   *identNode `[ @@ ]`
	EndPos lexer.Position
}

type typeName struct {
	Pos    lexer.Position
	Name   string   `@Ident`
	Dims   []string `{ @"[" "]" }`
	EndPos lexer.Position
}

type identNode struct {
	Pos    lexer.Position
	Value  string `@Ident`
	EndPos lexer.Position
}

// bodyBlock is a balanced-brace token soup. Function bodies are opaque to
// the contract-level checks; only their presence matters.
type bodyBlock struct {
	Pos    lexer.Position
	Items  []*bodyItem `"{" { @@ } "}"`
	EndPos lexer.Position
}

type bodyItem struct {
	Block *bodyBlock `  @@`
	Token string     `| @~("{" | "}")`
}
