package ast

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Ident represents any identifier like contract names, function names, etc.
// Example: "ERC20", "transfer", "onlyOwner"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// SourceUnit is the root of a parsed Sola file: an optional pragma directive
// followed by any number of contract declarations.
type SourceUnit struct {
	Pos       Position
	EndPos    Position
	Pragma    *Pragma
	Contracts []*Contract
}

// Pragma represents a version directive like "pragma sola ^0.1;"
type Pragma struct {
	Pos    Position
	EndPos Position
	Name   string
	Value  string
}

// Contract represents one contract declaration with its inheritance list
// and ordered member declarations.
// Example: "contract Token is Ownable, ERC20(supply) { ... }"
type Contract struct {
	Pos       Position
	EndPos    Position
	Name      *Ident
	Bases     []*BaseSpecifier
	StateVars []*StateVar
	Functions []*Function
	Events    []*Event
	Modifiers []*Modifier

	annotation *ContractAnnotation
}

// Constructor returns the contract's own constructor declaration, if any.
// When a source erroneously declares several, the first one wins; the
// duplicate is reported by the semantic pass.
func (c *Contract) Constructor() *Function {
	for _, fn := range c.Functions {
		if fn.IsConstructor {
			return fn
		}
	}
	return nil
}

// BaseSpecifier is one entry of a contract's inheritance list, optionally
// carrying constructor arguments. "Base" and "Base()" are distinct: only the
// latter has an argument list.
type BaseSpecifier struct {
	Pos          Position
	EndPos       Position
	Name         *Ident
	Arguments    []*Argument
	HasArguments bool

	base *Contract
}

// Bind records the resolved base contract. The resolver writes this once.
func (b *BaseSpecifier) Bind(contract *Contract) {
	b.base = contract
}

// Base returns the resolved base contract, or nil before resolution.
func (b *BaseSpecifier) Base() *Contract {
	return b.base
}

// StateVar is a contract-level variable declaration.
// Example: "uint256 totalSupply;"
type StateVar struct {
	Pos    Position
	EndPos Position
	Type   *TypeName
	Name   *Ident
}

// Function represents a function, constructor, or fallback declaration.
// The name is nil for constructors and fallback functions.
type Function struct {
	Pos           Position
	EndPos        Position
	Name          *Ident
	IsConstructor bool
	IsFallback    bool
	Params        *ParamList
	Returns       *ParamList // nil when no "returns (...)" clause
	Visibility    Visibility
	Mutability    StateMutability
	Modifiers     []*ModifierInvocation
	Implemented   bool // has a body; a trailing ";" leaves it abstract

	overridden *Function
}

// BindOverridden records the nearest overridden ancestor declaration.
// Only the first write takes effect; the semantic pass walks the
// linearization derived to base, so the first match is the nearest one.
func (f *Function) BindOverridden(super *Function) {
	if f.overridden == nil {
		f.overridden = super
	}
}

// Overridden returns the nearest ancestor declaration this function
// overrides, or nil.
func (f *Function) Overridden() *Function {
	return f.overridden
}

// ParamList is a parenthesized, ordered parameter declaration list.
type ParamList struct {
	Pos    Position
	EndPos Position
	Params []*Param
}

// Types returns the ordered parameter types of the list. A nil list has no
// types, so callers need not distinguish "()" from an absent clause.
func (pl *ParamList) Types() []*TypeName {
	if pl == nil {
		return nil
	}
	types := make([]*TypeName, len(pl.Params))
	for i, p := range pl.Params {
		types[i] = p.Type
	}
	return types
}

// Param is a single typed parameter; the name is optional and irrelevant to
// signature comparison.
type Param struct {
	Pos    Position
	EndPos Position
	Type   *TypeName
	Name   *Ident
}

// TypeName is an elementary or user-defined type reference with optional
// array suffixes. Example: "uint256", "address[]", "Token"
type TypeName struct {
	Pos       Position
	EndPos    Position
	Name      string
	ArrayDims int
}

// ModifierInvocation is a modifier attached to a function header. On a
// constructor it may instead name a base contract and supply its
// constructor arguments. "M" and "M()" are distinct: only the latter has
// an argument list.
type ModifierInvocation struct {
	Pos          Position
	EndPos       Position
	Name         *Ident
	Arguments    []*Argument
	HasArguments bool

	target Node
}

// Bind records the declaration this invocation refers to: a *Modifier or,
// for base constructor calls, a *Contract. The resolver writes this once.
func (m *ModifierInvocation) Bind(target Node) {
	m.target = target
}

// Target returns the resolved declaration, or nil before resolution.
func (m *ModifierInvocation) Target() Node {
	return m.target
}

// Argument is one expression of an argument list. The contract-level pass
// only cares that the expression exists and where it is, so the expression
// itself is kept as raw text.
type Argument struct {
	Pos    Position
	EndPos Position
	Text   string
}

// Event represents an event declaration.
// Example: "event Transfer(address from, address to, uint256 value);"
type Event struct {
	Pos    Position
	EndPos Position
	Name   *Ident
	Params *ParamList
}

// Modifier represents a modifier declaration.
// Example: "modifier onlyOwner { ... }"
type Modifier struct {
	Pos    Position
	EndPos Position
	Name   *Ident
	Params *ParamList
}

// Contains reports whether the inner node's source span lies entirely
// inside the outer node's span. Both must come from the same file.
func Contains(outer, inner Node) bool {
	op, oe := outer.NodePos(), outer.NodeEndPos()
	ip, ie := inner.NodePos(), inner.NodeEndPos()
	if op.Filename != ip.Filename {
		return false
	}
	return op.Offset <= ip.Offset && ie.Offset <= oe.Offset
}
