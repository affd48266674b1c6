package semantic

import (
	"fmt"

	"sola/internal/ast"
	"sola/internal/errors"
)

// checkIllegalOverrides walks the linearized ancestor chain from derived
// to base, so at each level the stored, more-derived declarations are the
// overriding side and the level's own declarations are the overridden
// side. Constructors can neither be overridden nor override anything and
// stay out entirely.
func (c *Checker) checkIllegalOverrides(contract *ast.Contract) {
	functions := make(map[string][]*ast.Function)
	modifiers := make(map[string]*ast.Modifier)

	for _, level := range contract.Annotation().Linearized {
		for _, fn := range level.Functions {
			if fn.IsConstructor {
				continue
			}
			name := declName(fn)
			if m, ok := modifiers[name]; ok {
				c.errs.TypeError(errors.ErrorOverrideKind,
					m.Pos, "Override changes function to modifier.")
			}
			for _, overriding := range functions[name] {
				c.checkFunctionOverride(overriding, fn)
			}
			functions[name] = append(functions[name], fn)
		}

		for _, modifier := range level.Modifiers {
			name := modifier.Name.Value
			// The first-seen, most-derived modifier per name is canonical.
			canonical, ok := modifiers[name]
			if !ok {
				canonical = modifier
				modifiers[name] = modifier
			} else if !parameterTypesEqual(canonical.ParameterTypes(), modifier.ParameterTypes()) {
				c.errs.TypeError(errors.ErrorOverrideModifier,
					canonical.Pos, "Override changes modifier signature.")
			}
			if len(functions[name]) > 0 {
				c.errs.TypeError(errors.ErrorOverrideKind,
					canonical.Pos, "Override changes modifier to function.")
			}
		}
	}
}

// checkFunctionOverride validates one (overriding, overridden) pair of
// same-named declarations from different chain levels. Pairs with unequal
// parameter types are unrelated overloads and pass untouched.
func (c *Checker) checkFunctionOverride(function, super *ast.Function) {
	if !parameterTypesEqual(function.ParameterTypes(), super.ParameterTypes()) {
		return
	}
	if !parameterTypesEqual(function.ReturnTypes(), super.ReturnTypes()) {
		c.overrideError(errors.ErrorOverrideReturnTypes, function, super,
			"Overriding function return types differ.")
	}

	// First match along the derived-to-base walk wins: the link ends up on
	// the nearest ancestor with an equal signature.
	function.BindOverridden(super)

	if function.Visibility != super.Visibility {
		// Visibility change from external to public is fine.
		// Any other change is disallowed.
		if !(super.Visibility == ast.VisibilityExternal && function.Visibility == ast.VisibilityPublic) {
			c.overrideError(errors.ErrorOverrideVisibility, function, super,
				"Overriding function visibility differs.")
		}
	}
	if function.Mutability != super.Mutability {
		c.overrideError(errors.ErrorOverrideMutability, function, super,
			fmt.Sprintf("Overriding function changes state mutability from \"%s\" to \"%s\".",
				super.Mutability, function.Mutability))
	}
}

func (c *Checker) overrideError(code string, function, super *ast.Function, message string) {
	c.errs.TypeError(code, function.Pos, message,
		errors.Secondary("Overridden function is here:", super))
}
