package semantic

import (
	"fmt"

	"sola/internal/ast"
	"sola/internal/errors"
)

// checkConstructor validates the shape of the contract's own constructor:
// no return values, payable or non-payable mutability, public or internal
// visibility.
func (c *Checker) checkConstructor(contract *ast.Contract) {
	constructor := contract.Constructor()
	if constructor == nil {
		return
	}

	if constructor.Returns != nil && len(constructor.Returns.Params) > 0 {
		c.errs.TypeError(errors.ErrorConstructorReturns,
			constructor.Returns.Pos,
			"Non-empty \"returns\" directive for constructor.")
	}
	if constructor.Mutability != ast.MutabilityNonPayable && constructor.Mutability != ast.MutabilityPayable {
		c.errs.TypeError(errors.ErrorConstructorMutability,
			constructor.Pos,
			fmt.Sprintf("Constructor must be payable or non-payable, but is \"%s\".", constructor.Mutability))
	}
	if constructor.Visibility != ast.VisibilityPublic && constructor.Visibility != ast.VisibilityInternal {
		c.errs.TypeError(errors.ErrorConstructorVisibility,
			constructor.Pos,
			"Constructor must be public or internal.")
	}
}
