package semantic

import (
	"sort"

	"sola/internal/ast"
	"sola/internal/errors"
)

// checkDuplicateFunctions verifies that two functions with the same name
// defined in this contract have different argument types, and that there
// is at most one constructor and at most one fallback.
func (c *Checker) checkDuplicateFunctions(contract *ast.Contract) {
	functions := make(map[string][]*ast.Function)
	var constructor, fallback *ast.Function

	for _, fn := range contract.Functions {
		switch {
		case fn.IsConstructor:
			if constructor != nil {
				c.errs.DeclarationError(errors.ErrorDuplicateConstructor,
					fn.Pos,
					"More than one constructor defined.",
					errors.Secondary("Another declaration is here:", constructor))
			}
			constructor = fn
		case fn.IsFallback:
			if fallback != nil {
				c.errs.DeclarationError(errors.ErrorDuplicateFallback,
					fn.Pos,
					"Only one fallback function is allowed.",
					errors.Secondary("Another declaration is here:", fallback))
			}
			fallback = fn
		default:
			functions[fn.Name.Value] = append(functions[fn.Name.Value], fn)
		}
	}

	findDuplicateDefinitions(c, functions,
		errors.ErrorDuplicateFunction,
		"Function with same name and arguments defined twice.")
}

// checkDuplicateEvents verifies that two events with the same name defined
// in this contract have different argument types.
func (c *Checker) checkDuplicateEvents(contract *ast.Contract) {
	events := make(map[string][]*ast.Event)
	for _, event := range contract.Events {
		events[event.Name.Value] = append(events[event.Name.Value], event)
	}

	findDuplicateDefinitions(c, events,
		errors.ErrorDuplicateEvent,
		"Event with same name and arguments defined twice.")
}

// signatureBearer is any declaration the duplicate scan can compare.
type signatureBearer interface {
	ast.Node
	ParameterTypes() []*ast.TypeName
}

// findDuplicateDefinitions greedily clusters equal-signature declarations
// under their first representative: the scan collects every later equal
// declaration as a secondary location of the first and absorbs it, so an
// absorbed declaration is never itself an error anchor. Declarations with
// a unique signature in their name group never error; that is legitimate
// overloading. The pairwise scan is kept deliberately: name groups are
// small, and it preserves the first-representative tie break and the
// encounter order of secondary locations.
func findDuplicateDefinitions[T signatureBearer](c *Checker, definitions map[string][]T, code, message string) {
	names := make([]string, 0, len(definitions))
	for name := range definitions {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		overloads := definitions[name]
		absorbed := make(map[int]bool)

		for i := 0; i < len(overloads); i++ {
			if absorbed[i] {
				continue
			}
			var secondary []errors.SecondaryLocation
			for j := i + 1; j < len(overloads); j++ {
				if parameterTypesEqual(overloads[i].ParameterTypes(), overloads[j].ParameterTypes()) {
					secondary = append(secondary, errors.Secondary("Other declaration is here:", overloads[j]))
					absorbed[j] = true
				}
			}
			if len(secondary) > 0 {
				c.errs.DeclarationError(code, overloads[i].NodePos(), message, secondary...)
			}
		}
	}
}
