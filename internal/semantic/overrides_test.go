package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sola/internal/errors"
)

func TestOverrideExternalToPublicAllowed(t *testing.T) {
	source := `contract Base {
    function f() external {}
}

contract Derived is Base {
    function f() public {}
}`

	_, errs := checkContract(t, source, "Derived")

	assert.Empty(t, errs.Errors(), "widening external to public never errors")
}

func TestOverrideVisibilityMismatch(t *testing.T) {
	source := `contract Base {
    function f() external {}
}

contract Derived is Base {
    function f() internal {}
}`

	_, errs := checkContract(t, source, "Derived")

	mismatches := errorsWithCode(errs, errors.ErrorOverrideVisibility)
	require.Len(t, mismatches, 1)
	assert.Equal(t, "Overriding function visibility differs.", mismatches[0].Message)
	require.Len(t, mismatches[0].Secondary, 1)
	assert.Contains(t, mismatches[0].Secondary[0].Label, "Overridden function is here")
}

func TestOverridePublicToExternalRejected(t *testing.T) {
	// The widening is one-directional.
	source := `contract Base {
    function f() public {}
}

contract Derived is Base {
    function f() external {}
}`

	_, errs := checkContract(t, source, "Derived")

	assert.Len(t, errorsWithCode(errs, errors.ErrorOverrideVisibility), 1)
}

func TestOverrideMutabilityMismatchNamesBothValues(t *testing.T) {
	source := `contract Base {
    function f() public view {}
}

contract Derived is Base {
    function f() public payable {}
}`

	_, errs := checkContract(t, source, "Derived")

	mismatches := errorsWithCode(errs, errors.ErrorOverrideMutability)
	require.Len(t, mismatches, 1)
	assert.Equal(t,
		`Overriding function changes state mutability from "view" to "payable".`,
		mismatches[0].Message)
}

func TestOverrideReturnTypesDiffer(t *testing.T) {
	source := `contract Base {
    function f() public returns (uint) {}
}

contract Derived is Base {
    function f() public returns (bool) {}
}`

	_, errs := checkContract(t, source, "Derived")

	require.Len(t, errorsWithCode(errs, errors.ErrorOverrideReturnTypes), 1)
}

func TestOverrideDifferentParameterTypesIsOverload(t *testing.T) {
	source := `contract Base {
    function f(uint x) external pure {}
}

contract Derived is Base {
    function f(bool b) internal view {}
}`

	_, errs := checkContract(t, source, "Derived")

	assert.Empty(t, errs.Errors(), "unequal signatures are unrelated overloads")
}

func TestNearestOverriddenAncestorWins(t *testing.T) {
	source := `contract A {
    function f() public {}
}

contract B is A {
    function f() public {}
}

contract C is B {
    function f() public {}
}`

	unit, errs := resolveSource(t, source)
	c := contractByName(t, unit, "C")
	NewChecker(errs).Check(c)
	assert.Empty(t, errs.Errors())

	b := contractByName(t, unit, "B")
	derived := c.Functions[0]
	require.NotNil(t, derived.Overridden())
	assert.Same(t, b.Functions[0], derived.Overridden(),
		"the link must resolve to the nearest ancestor, not a distant one")
}

func TestConstructorsExcludedFromOverrides(t *testing.T) {
	source := `contract Base {
    constructor(uint x) internal {}
}

contract Derived is Base {
    constructor(uint x) public Base(x) {}
}`

	_, errs := checkContract(t, source, "Derived")

	assert.Empty(t, errs.Errors(), "constructors neither override nor get overridden")
}

func TestOverrideChangesFunctionToModifier(t *testing.T) {
	source := `contract Base {
    function guard() public {}
}

contract Derived is Base {
    modifier guard() { }
}`

	_, errs := checkContract(t, source, "Derived")

	clashes := errorsWithCode(errs, errors.ErrorOverrideKind)
	require.NotEmpty(t, clashes)
	assert.Contains(t, messagesOf(errs), "Override changes function to modifier.")
}

func TestOverrideChangesModifierToFunction(t *testing.T) {
	source := `contract Base {
    modifier guard() { }
}

contract Derived is Base {
    function guard() public {}
}`

	_, errs := checkContract(t, source, "Derived")

	require.NotEmpty(t, errorsWithCode(errs, errors.ErrorOverrideKind))
	assert.Contains(t, messagesOf(errs), "Override changes modifier to function.")
}

func TestOverrideChangesModifierSignature(t *testing.T) {
	source := `contract Base {
    modifier guard(uint threshold) { }
}

contract Derived is Base {
    modifier guard(bool strict) { }
}`

	_, errs := checkContract(t, source, "Derived")

	conflicts := errorsWithCode(errs, errors.ErrorOverrideModifier)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "Override changes modifier signature.", conflicts[0].Message)
	// Anchored at the most-derived, first-seen modifier.
	assert.Equal(t, 6, conflicts[0].Position.Line)
}

func TestModifierSameSignatureOverrideAllowed(t *testing.T) {
	source := `contract Base {
    modifier guard(uint threshold) { }
}

contract Derived is Base {
    modifier guard(uint limit) { }
}`

	_, errs := checkContract(t, source, "Derived")

	assert.Empty(t, errs.Errors(), "parameter names do not participate in signatures")
}
