package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sola/internal/errors"
)

func TestContractWithoutConstructorIsFine(t *testing.T) {
	source := `contract C {
    function f() public {}
}`

	_, errs := checkContract(t, source, "C")

	assert.Empty(t, errs.Errors())
}

func TestConstructorWithReturnsDirective(t *testing.T) {
	source := `contract C {
    constructor() public returns (uint ret) {}
}`

	_, errs := checkContract(t, source, "C")

	malformed := errorsWithCode(errs, errors.ErrorConstructorReturns)
	require.Len(t, malformed, 1)
	assert.Equal(t, `Non-empty "returns" directive for constructor.`, malformed[0].Message)
}

func TestConstructorMutabilityMustBePayableOrNonPayable(t *testing.T) {
	source := `contract C {
    constructor() public view {}
}`

	_, errs := checkContract(t, source, "C")

	malformed := errorsWithCode(errs, errors.ErrorConstructorMutability)
	require.Len(t, malformed, 1)
	assert.Equal(t, `Constructor must be payable or non-payable, but is "view".`, malformed[0].Message)
}

func TestPayableConstructorAllowed(t *testing.T) {
	source := `contract C {
    constructor() public payable {}
}`

	_, errs := checkContract(t, source, "C")

	assert.Empty(t, errs.Errors())
}

func TestConstructorVisibilityMustBePublicOrInternal(t *testing.T) {
	source := `contract C {
    constructor() external {}
}`

	_, errs := checkContract(t, source, "C")

	malformed := errorsWithCode(errs, errors.ErrorConstructorVisibility)
	require.Len(t, malformed, 1)
	assert.Equal(t, "Constructor must be public or internal.", malformed[0].Message)
}

func TestInternalConstructorAllowed(t *testing.T) {
	source := `contract C {
    constructor() internal {}
}`

	_, errs := checkContract(t, source, "C")

	assert.Empty(t, errs.Errors())
}

func TestMalformedConstructorReportsEveryViolation(t *testing.T) {
	source := `contract C {
    constructor() private pure returns (uint x) {}
}`

	_, errs := checkContract(t, source, "C")

	assert.Len(t, errorsWithCode(errs, errors.ErrorConstructorReturns), 1)
	assert.Len(t, errorsWithCode(errs, errors.ErrorConstructorMutability), 1)
	assert.Len(t, errorsWithCode(errs, errors.ErrorConstructorVisibility), 1)
}
