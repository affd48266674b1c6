package semantic

import (
	"sola/internal/ast"
	"sola/internal/errors"
)

// checkBaseConstructorArguments resolves, for each ancestor constructor
// needing arguments, the single site that supplies them. Two mechanisms
// can supply arguments, both scanned across every contract in the
// linearized chain including the contract itself: a modifier-style call in
// a constructor header ("constructor() Base(1) { }") and an inheritance
// specifier carrying arguments ("contract D is Base(1)").
func (c *Checker) checkBaseConstructorArguments(contract *ast.Contract) {
	linearized := contract.Annotation().Linearized

	for _, ancestor := range linearized {
		if constructor := ancestor.Constructor(); constructor != nil {
			for _, invocation := range constructor.Modifiers {
				baseContract, ok := invocation.Target().(*ast.Contract)
				if !ok {
					continue
				}
				if !invocation.HasArguments {
					c.errs.DeclarationError(errors.ErrorBaseCallNoArguments,
						invocation.Pos,
						"Modifier-style base constructor call without arguments.")
					continue
				}
				if baseContract.Constructor() != nil {
					c.annotateBaseConstructorArguments(contract, baseContract.Constructor(), invocation)
				}
			}
		}

		for _, base := range ancestor.Bases {
			baseContract := base.Base()
			if baseContract == nil {
				continue
			}
			if baseContract.Constructor() != nil && base.HasArguments && len(base.Arguments) > 0 {
				c.annotateBaseConstructorArguments(contract, baseContract.Constructor(), base)
			}
		}
	}

	// Every ancestor constructor with parameters must have been given
	// arguments somewhere; if not, the contract is abstract with respect
	// to that constructor.
	annotation := contract.Annotation()
	for _, ancestor := range linearized {
		constructor := ancestor.Constructor()
		if constructor == nil || ancestor == contract {
			continue
		}
		if constructor.Params == nil || len(constructor.Params.Params) == 0 {
			continue
		}
		if _, bound := annotation.BaseConstructorArgs[constructor]; !bound {
			annotation.Unimplemented = append(annotation.Unimplemented, constructor)
		}
	}
}

// annotateBaseConstructorArguments records the argument-supplying site for
// a base constructor, or reports a duplicate supply. Diamond hierarchies
// must not supply the same constructor twice; the mapping retains the
// first-bound site. The error anchor depends on whether either site lies
// inside the contract's own source span; the two-branch policy follows the
// documented behavior exactly.
func (c *Checker) annotateBaseConstructorArguments(
	contract *ast.Contract,
	baseConstructor *ast.Function,
	argumentNode ast.Node,
) {
	annotation := contract.Annotation()
	previous, exists := annotation.BaseConstructorArgs[baseConstructor]
	if !exists {
		annotation.BaseConstructorArgs[baseConstructor] = argumentNode
		return
	}

	if ast.Contains(contract, previous) || ast.Contains(contract, argumentNode) {
		c.errs.DeclarationError(errors.ErrorBaseArgumentsTwice,
			previous.NodePos(),
			"Base constructor arguments given twice.",
			errors.Secondary("Second constructor call is here:", argumentNode))
	} else {
		c.errs.DeclarationError(errors.ErrorBaseArgumentsTwice,
			contract.Pos,
			"Base constructor arguments given twice.",
			errors.Secondary("First constructor call is here:", previous),
			errors.Secondary("Second constructor call is here:", argumentNode))
	}
}
