package ast

// ContractAnnotation is the side record the analysis phases attach to a
// contract. The AST itself stays read-only; the resolver writes the
// linearization and the contract-level checker writes the rest, each
// exactly once per pass.
type ContractAnnotation struct {
	// Linearized is the total order over the contract and its ancestors,
	// most-derived first. The contract itself is always element zero.
	Linearized []*Contract

	// Unimplemented collects declarations that lack an implementation
	// anywhere in the ancestor chain: abstract function signature groups
	// and base constructors whose required arguments were never supplied.
	Unimplemented []*Function

	// BaseConstructorArgs maps each ancestor constructor to the single AST
	// node that supplies its arguments (a modifier-style invocation or an
	// inheritance specifier).
	BaseConstructorArgs map[*Function]Node
}

// Annotation returns the contract's annotation record, allocating it on
// first use.
func (c *Contract) Annotation() *ContractAnnotation {
	if c.annotation == nil {
		c.annotation = &ContractAnnotation{
			BaseConstructorArgs: make(map[*Function]Node),
		}
	}
	return c.annotation
}

// IsAbstract reports whether the contract cannot be deployed because some
// function or required base constructor is unimplemented. Only meaningful
// after the contract-level checks have run.
func (c *Contract) IsAbstract() bool {
	return c.annotation != nil && len(c.annotation.Unimplemented) > 0
}
