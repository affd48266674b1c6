package semantic

import (
	"sort"

	"sola/internal/ast"
	"sola/internal/errors"
)

// signatureEntry tracks one parameter-type equality class of a name group:
// the declaration that introduced it and whether any declaration in the
// chain implements it.
type signatureEntry struct {
	decl        *ast.Function
	implemented bool
}

// checkAbstractFunctions determines which signature groups lack an
// implementation anywhere in the ancestor chain. The walk runs base first,
// so the entry for each signature originates at the base-most declaration;
// the implemented flag is monotonic and is only ever upgraded, never
// downgraded, regardless of what later levels declare.
func (c *Checker) checkAbstractFunctions(contract *ast.Contract) {
	functions := make(map[string][]*signatureEntry)

	linearized := contract.Annotation().Linearized
	for i := len(linearized) - 1; i >= 0; i-- {
		for _, fn := range linearized[i].Functions {
			// Constructors stay out of the overload hierarchy.
			if fn.IsConstructor {
				continue
			}
			name := declName(fn)
			entry := findEntry(functions[name], fn)
			switch {
			case entry == nil:
				functions[name] = append(functions[name], &signatureEntry{
					decl:        fn,
					implemented: fn.Implemented,
				})
			case entry.implemented:
				if !fn.Implemented {
					c.errs.TypeError(errors.ErrorRedeclareAbstract,
						fn.Pos, "Redeclaring an already implemented function as abstract.")
				}
			case fn.Implemented:
				entry.implemented = true
			}
		}
	}

	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)

	annotation := contract.Annotation()
	for _, name := range names {
		for _, entry := range functions[name] {
			if !entry.implemented {
				annotation.Unimplemented = append(annotation.Unimplemented, entry.decl)
			}
		}
	}
}

func findEntry(entries []*signatureEntry, fn *ast.Function) *signatureEntry {
	for _, entry := range entries {
		if parameterTypesEqual(entry.decl.ParameterTypes(), fn.ParameterTypes()) {
			return entry
		}
	}
	return nil
}
