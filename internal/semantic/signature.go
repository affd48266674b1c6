package semantic

import (
	"strings"

	"sola/internal/ast"
)

// parameterTypesEqual is the signature-equality oracle: two callables are
// interchangeable for overload and override purposes iff their ordered
// parameter-type lists are structurally equal. Parameter names never
// participate in the comparison.
func parameterTypesEqual(a, b []*ast.TypeName) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if typeKey(a[i]) != typeKey(b[i]) {
			return false
		}
	}
	return true
}

// typeKey canonicalizes a type reference so that alias spellings compare
// equal: "uint" is "uint256", "byte" is "bytes1".
func typeKey(t *ast.TypeName) string {
	name := t.Name
	switch name {
	case "uint":
		name = "uint256"
	case "int":
		name = "int256"
	case "byte":
		name = "bytes1"
	}
	return name + strings.Repeat("[]", t.ArrayDims)
}
