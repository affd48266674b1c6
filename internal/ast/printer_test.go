package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func namedIdent(v string) *Ident {
	return &Ident{Value: v}
}

func TestFunctionString(t *testing.T) {
	fn := &Function{
		Name: namedIdent("transfer"),
		Params: &ParamList{Params: []*Param{
			{Type: &TypeName{Name: "address"}, Name: namedIdent("to")},
			{Type: &TypeName{Name: "uint256"}, Name: namedIdent("value")},
		}},
		Visibility:  VisibilityExternal,
		Mutability:  MutabilityPayable,
		Returns:     &ParamList{Params: []*Param{{Type: &TypeName{Name: "bool"}}}},
		Implemented: true,
	}

	assert.Equal(t, "function transfer(address to, uint256 value) external payable returns (bool) { ... }", fn.String())
}

func TestFunctionStringDefaultsAndUnimplemented(t *testing.T) {
	fn := &Function{
		Name:       namedIdent("f"),
		Params:     &ParamList{},
		Visibility: VisibilityPublic,
		Mutability: MutabilityNonPayable,
	}

	// nonpayable is the default and is not printed
	assert.Equal(t, "function f() public;", fn.String())
}

func TestConstructorAndFallbackString(t *testing.T) {
	ctor := &Function{
		IsConstructor: true,
		Params:        &ParamList{Params: []*Param{{Type: &TypeName{Name: "uint256"}, Name: namedIdent("supply")}}},
		Visibility:    VisibilityPublic,
		Mutability:    MutabilityNonPayable,
		Modifiers: []*ModifierInvocation{
			{Name: namedIdent("Base"), HasArguments: true, Arguments: []*Argument{{Text: "supply"}}},
		},
		Implemented: true,
	}
	assert.Equal(t, "constructor(uint256 supply) public Base(supply) { ... }", ctor.String())

	fallback := &Function{
		IsFallback:  true,
		Params:      &ParamList{},
		Visibility:  VisibilityExternal,
		Mutability:  MutabilityNonPayable,
		Implemented: true,
	}
	assert.Equal(t, "function() external { ... }", fallback.String())
}

func TestContractString(t *testing.T) {
	contract := &Contract{
		Name: namedIdent("Token"),
		Bases: []*BaseSpecifier{
			{Name: namedIdent("Ownable")},
			{Name: namedIdent("Base"), HasArguments: true, Arguments: []*Argument{{Text: "1"}}},
		},
		StateVars: []*StateVar{
			{Type: &TypeName{Name: "uint256"}, Name: namedIdent("totalSupply")},
		},
		Events: []*Event{
			{Name: namedIdent("Transfer"), Params: &ParamList{Params: []*Param{{Type: &TypeName{Name: "address"}, Name: namedIdent("to")}}}},
		},
	}

	expected := `contract Token is Ownable, Base(1) {
    uint256 totalSupply;
    event Transfer(address to);
}`
	assert.Equal(t, expected, contract.String())
}

func TestTypeNameStringWithArrayDims(t *testing.T) {
	assert.Equal(t, "uint256[][]", (&TypeName{Name: "uint256", ArrayDims: 2}).String())
}

func TestModifierString(t *testing.T) {
	m := &Modifier{Name: namedIdent("onlyOwner"), Params: &ParamList{}}
	assert.Equal(t, "modifier onlyOwner() { ... }", m.String())
}
