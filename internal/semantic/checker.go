package semantic

import (
	"sola/internal/ast"
	"sola/internal/errors"
)

// Checker runs the contract-level validations: overload clashes, illegal
// overrides, abstractness, base constructor argument wiring, and
// constructor shape. It expects name resolution and linearization to have
// run already; it never mutates the AST beyond the contract's annotation
// record and each function's nearest-overridden-ancestor link.
type Checker struct {
	errs *errors.List
}

func NewChecker(errs *errors.List) *Checker {
	return &Checker{errs: errs}
}

// Check runs every contract-level validation against one contract,
// unconditionally and in a fixed order. Later checks assume only that the
// AST is structurally valid, not that earlier checks passed, so a single
// run reports as much as it can. The result is true iff the diagnostic
// list holds no error-severity entries once all checks have run.
func (c *Checker) Check(contract *ast.Contract) bool {
	c.checkDuplicateFunctions(contract)
	c.checkDuplicateEvents(contract)
	c.checkIllegalOverrides(contract)
	c.checkAbstractFunctions(contract)
	c.checkBaseConstructorArguments(contract)
	c.checkConstructor(contract)

	return c.errs.ContainsOnlyWarnings()
}

// declName is the overload-grouping key. Fallback functions are unnamed
// and group under the empty string.
func declName(fn *ast.Function) string {
	if fn.Name != nil {
		return fn.Name.Value
	}
	return ""
}
