package resolve

import (
	"fmt"

	"sola/internal/ast"
	"sola/internal/errors"
)

// Resolver binds the name references the contract-level checks depend on:
// base contracts in inheritance lists and the names invoked in function
// headers, which on a constructor may be either modifiers or base
// contracts receiving constructor arguments. It also computes each
// contract's linearized ancestor chain.
type Resolver struct {
	errs      *errors.List
	contracts map[string]*ast.Contract
}

func NewResolver(errs *errors.List) *Resolver {
	return &Resolver{
		errs:      errs,
		contracts: make(map[string]*ast.Contract),
	}
}

// Resolve processes one source unit. After it returns, every resolvable
// base reference and header invocation is bound and every contract carries
// a linearization, even if only the degenerate one-element chain after an
// inheritance error.
func (r *Resolver) Resolve(unit *ast.SourceUnit) {
	for _, contract := range unit.Contracts {
		if prev, ok := r.contracts[contract.Name.Value]; ok {
			r.errs.DeclarationError(errors.ErrorDuplicateContract,
				contract.Name.Pos,
				fmt.Sprintf("contract '%s' is already declared.", contract.Name.Value),
				errors.Secondary("The other declaration is here:", prev))
			continue
		}
		r.contracts[contract.Name.Value] = contract
	}

	for _, contract := range unit.Contracts {
		for _, base := range contract.Bases {
			target, ok := r.contracts[base.Name.Value]
			if !ok {
				r.errs.TypeError(errors.ErrorInvalidBase,
					base.Name.Pos,
					fmt.Sprintf("identifier '%s' is not a contract.", base.Name.Value))
				continue
			}
			base.Bind(target)
		}
	}

	visiting := make(map[*ast.Contract]bool)
	for _, contract := range unit.Contracts {
		if _, err := linearize(contract, visiting); err != nil {
			r.errs.TypeError(errors.ErrorLinearization,
				contract.Name.Pos,
				"linearization of inheritance graph impossible.")
			// Downstream checks still run; give them the degenerate chain.
			if len(contract.Annotation().Linearized) == 0 {
				contract.Annotation().Linearized = []*ast.Contract{contract}
			}
		}
	}

	for _, contract := range unit.Contracts {
		r.bindInvocations(contract)
	}
}

// Contract returns a declared contract by name, or nil.
func (r *Resolver) Contract(name string) *ast.Contract {
	return r.contracts[name]
}

func (r *Resolver) bindInvocations(contract *ast.Contract) {
	for _, fn := range contract.Functions {
		for _, inv := range fn.Modifiers {
			if m := lookupModifier(contract, inv.Name.Value); m != nil {
				inv.Bind(m)
				continue
			}
			// Only a constructor header may name a base contract, to pass
			// its constructor arguments.
			if fn.IsConstructor {
				if base, ok := r.contracts[inv.Name.Value]; ok {
					inv.Bind(base)
					continue
				}
			}
			r.errs.TypeError(errors.ErrorUndeclaredInvocation,
				inv.Name.Pos,
				fmt.Sprintf("undeclared identifier '%s'.", inv.Name.Value))
		}
	}
}

// lookupModifier finds the most-derived modifier with the given name in the
// contract's ancestor chain.
func lookupModifier(contract *ast.Contract, name string) *ast.Modifier {
	for _, ancestor := range contract.Annotation().Linearized {
		for _, m := range ancestor.Modifiers {
			if m.Name.Value == name {
				return m
			}
		}
	}
	return nil
}
