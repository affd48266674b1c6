package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sola/internal/errors"
)

func TestDuplicateFunctionSignature(t *testing.T) {
	source := `contract C {
    function f(uint x) public {}
    function f(uint y) public {}
}`

	_, errs := checkContract(t, source, "C")

	duplicates := errorsWithCode(errs, errors.ErrorDuplicateFunction)
	require.Len(t, duplicates, 1, "should have exactly one duplicate error")

	// Anchored at the first occurrence, pointing at the second.
	err := duplicates[0]
	assert.Equal(t, 2, err.Position.Line)
	require.Len(t, err.Secondary, 1)
	assert.Equal(t, 3, err.Secondary[0].Position.Line)
	assert.Contains(t, err.Secondary[0].Label, "Other declaration is here")
}

func TestDuplicateClusterAbsorbedUnderFirstRepresentative(t *testing.T) {
	source := `contract C {
    function f(uint a) public {}
    function f(uint b) public {}
    function f(uint c) public {}
}`

	_, errs := checkContract(t, source, "C")

	duplicates := errorsWithCode(errs, errors.ErrorDuplicateFunction)
	require.Len(t, duplicates, 1, "all later duplicates are absorbed under the first")
	assert.Len(t, duplicates[0].Secondary, 2)
}

func TestOverloadingIsNotDuplicate(t *testing.T) {
	source := `contract C {
    function f(uint x) public {}
    function f(uint x, uint y) public {}
    function f(bool b) public {}
}`

	_, errs := checkContract(t, source, "C")

	assert.Empty(t, errs.Errors(), "distinct signatures are legitimate overloading")
}

func TestDuplicateDetectionUsesTypeAliases(t *testing.T) {
	// "uint" and "uint256" are one type, so the signatures collide.
	source := `contract C {
    function f(uint x) public {}
    function f(uint256 y) public {}
}`

	_, errs := checkContract(t, source, "C")

	assert.Len(t, errorsWithCode(errs, errors.ErrorDuplicateFunction), 1)
}

func TestDuplicateEvents(t *testing.T) {
	source := `contract C {
    event Transfer(address from, uint256 value);
    event Transfer(address sender, uint256 amount);
    event Approval(address owner, uint256 value);
}`

	_, errs := checkContract(t, source, "C")

	require.Len(t, errorsWithCode(errs, errors.ErrorDuplicateEvent), 1)
	assert.Empty(t, errorsWithCode(errs, errors.ErrorDuplicateFunction))
}

func TestEventOverloadingAllowed(t *testing.T) {
	source := `contract C {
    event Transfer(address from, uint256 value);
    event Transfer(address from, address to, uint256 value);
}`

	_, errs := checkContract(t, source, "C")

	assert.Empty(t, errs.Errors())
}

func TestMoreThanOneConstructor(t *testing.T) {
	source := `contract C {
    constructor() public {}
    constructor(uint x) public {}
}`

	_, errs := checkContract(t, source, "C")

	duplicates := errorsWithCode(errs, errors.ErrorDuplicateConstructor)
	require.Len(t, duplicates, 1)
	assert.Equal(t, "More than one constructor defined.", duplicates[0].Message)
	// Anchored at the second declaration, referencing the first.
	assert.Equal(t, 3, duplicates[0].Position.Line)
	require.Len(t, duplicates[0].Secondary, 1)
	assert.Equal(t, 2, duplicates[0].Secondary[0].Position.Line)
}

func TestMoreThanOneFallback(t *testing.T) {
	source := `contract C {
    function() external {}
    function() external {}
}`

	_, errs := checkContract(t, source, "C")

	duplicates := errorsWithCode(errs, errors.ErrorDuplicateFallback)
	require.Len(t, duplicates, 1)
	assert.Equal(t, "Only one fallback function is allowed.", duplicates[0].Message)
}

func TestConstructorDoesNotClashWithFunctions(t *testing.T) {
	source := `contract C {
    constructor(uint x) public {}
    function f(uint x) public {}
}`

	_, errs := checkContract(t, source, "C")

	assert.Empty(t, errs.Errors())
}
