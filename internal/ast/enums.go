package ast

// Visibility is the closed set of declaration visibilities. Keeping it a
// dedicated type makes every check site an exhaustive switch, so a new
// visibility is a compile-time change rather than a stringly-typed one.
type Visibility int

const (
	VisibilityExternal Visibility = iota
	VisibilityPublic
	VisibilityInternal
	VisibilityPrivate
)

func (v Visibility) String() string {
	switch v {
	case VisibilityExternal:
		return "external"
	case VisibilityPublic:
		return "public"
	case VisibilityInternal:
		return "internal"
	case VisibilityPrivate:
		return "private"
	default:
		return "unknown"
	}
}

// StateMutability is the closed set of function mutability levels.
type StateMutability int

const (
	MutabilityPure StateMutability = iota
	MutabilityView
	MutabilityNonPayable
	MutabilityPayable
)

func (m StateMutability) String() string {
	switch m {
	case MutabilityPure:
		return "pure"
	case MutabilityView:
		return "view"
	case MutabilityNonPayable:
		return "nonpayable"
	case MutabilityPayable:
		return "payable"
	default:
		return "unknown"
	}
}
