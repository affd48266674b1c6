package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sola/internal/ast"
	"sola/internal/errors"
	"sola/internal/parser"
	"sola/internal/resolve"
)

// resolveSource parses and resolves a source string, failing the test on
// any parse or resolution error.
func resolveSource(t *testing.T, source string) (*ast.SourceUnit, *errors.List) {
	t.Helper()

	unit, parseErrors := parser.ParseSource("test.sola", source)
	require.Empty(t, parseErrors, "should have no parse errors")
	require.NotNil(t, unit, "unit should be parsed")

	errs := errors.NewList()
	resolve.NewResolver(errs).Resolve(unit)
	require.True(t, errs.ContainsOnlyWarnings(), "should have no resolution errors: %v", messagesOf(errs))
	return unit, errs
}

// checkContract runs the contract-level checks against one named contract
// and returns it together with the diagnostic list.
func checkContract(t *testing.T, source, name string) (*ast.Contract, *errors.List) {
	t.Helper()

	unit, errs := resolveSource(t, source)
	contract := contractByName(t, unit, name)
	NewChecker(errs).Check(contract)
	return contract, errs
}

func contractByName(t *testing.T, unit *ast.SourceUnit, name string) *ast.Contract {
	t.Helper()

	for _, contract := range unit.Contracts {
		if contract.Name.Value == name {
			return contract
		}
	}
	t.Fatalf("contract %s not found", name)
	return nil
}

func messagesOf(errs *errors.List) []string {
	var messages []string
	for _, err := range errs.Errors() {
		messages = append(messages, err.Message)
	}
	return messages
}

func errorsWithCode(errs *errors.List, code string) []errors.CompilerError {
	var matched []errors.CompilerError
	for _, err := range errs.Errors() {
		if err.Code == code {
			matched = append(matched, err)
		}
	}
	return matched
}

func TestCheckCleanContract(t *testing.T) {
	source := `pragma sola ^0.1;

contract Token {
    uint256 totalSupply;

    event Transfer(address from, address to, uint256 value);

    constructor(uint256 supply) public {}

    function transfer(address to, uint256 value) public returns (bool) {}
    function transfer(address to) public returns (bool) {}
}`

	contract, errs := checkContract(t, source, "Token")

	assert.Empty(t, errs.Errors(), "should have no diagnostics")
	assert.False(t, contract.IsAbstract())
}

func TestCheckRunsAllChecksWithoutShortCircuit(t *testing.T) {
	// A duplicate function and a malformed constructor at once: both must
	// be reported in a single run.
	source := `contract Broken {
    constructor() public view {}

    function f(uint x) public {}
    function f(uint y) public {}
}`

	_, errs := checkContract(t, source, "Broken")

	assert.Len(t, errorsWithCode(errs, errors.ErrorDuplicateFunction), 1)
	assert.Len(t, errorsWithCode(errs, errors.ErrorConstructorMutability), 1)
}

func TestCheckResultReflectsSink(t *testing.T) {
	clean := `contract A {
    function f() public {}
}`
	unit, errs := resolveSource(t, clean)
	ok := NewChecker(errs).Check(contractByName(t, unit, "A"))
	assert.True(t, ok)

	broken := `contract B {
    function f(uint x) public {}
    function f(uint x) public {}
}`
	unit, errs = resolveSource(t, broken)
	ok = NewChecker(errs).Check(contractByName(t, unit, "B"))
	assert.False(t, ok)
}

func TestCheckToleratesWarnings(t *testing.T) {
	source := `contract A {
    function f() public {}
}`
	unit, errs := resolveSource(t, source)
	contract := contractByName(t, unit, "A")
	errs.Warn(errors.WarningAbstractContract, contract.Pos, "some warning")

	assert.True(t, NewChecker(errs).Check(contract), "warnings alone should not fail the pass")
}
