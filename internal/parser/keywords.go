package parser

import "sola/internal/ast"

func visibilityFromKeyword(kw string) ast.Visibility {
	switch kw {
	case "external":
		return ast.VisibilityExternal
	case "public":
		return ast.VisibilityPublic
	case "internal":
		return ast.VisibilityInternal
	case "private":
		return ast.VisibilityPrivate
	default:
		return ast.VisibilityPublic
	}
}

func mutabilityFromKeyword(kw string) ast.StateMutability {
	switch kw {
	case "pure":
		return ast.MutabilityPure
	case "view":
		return ast.MutabilityView
	case "payable":
		return ast.MutabilityPayable
	default:
		return ast.MutabilityNonPayable
	}
}
