package ast

type NodeType int

//go:generate stringer -type=NodeType
const (
	ILLEGAL NodeType = iota

	// High-level constructs
	SOURCE_UNIT
	PRAGMA
	CONTRACT
	BASE_SPECIFIER

	// Members
	STATE_VAR
	FUNCTION
	EVENT
	MODIFIER

	// Signatures
	PARAM_LIST
	PARAM
	TYPE_NAME

	// Headers
	MODIFIER_INVOCATION
	ARGUMENT

	IDENT
)
