package errors

// Error codes for the Sola frontend, used in error messages and
// documentation to provide consistent identification across the toolchain.
//
// Error code ranges:
// E0100-E0199: Parser errors
// E0300-E0399: Name resolution and inheritance-graph errors
// E0400-E0499: Contract-level semantic errors
// E0800-E0899: Warning codes

const (
	// Parser errors

	// E0100: Any syntax error surfaced by the grammar
	ErrorSyntax = "E0100"

	// Name resolution and inheritance-graph errors

	// E0300: Two contracts share one name in a source unit
	ErrorDuplicateContract = "E0300"

	// E0301: A base reference names something that is not a contract
	ErrorInvalidBase = "E0301"

	// E0302: C3 linearization of the inheritance graph is impossible
	ErrorLinearization = "E0302"

	// E0303: A constructor header names an unknown modifier or base
	ErrorUndeclaredInvocation = "E0303"

	// Contract-level semantic errors

	// E0400: More than one constructor defined
	ErrorDuplicateConstructor = "E0400"

	// E0401: More than one fallback function defined
	ErrorDuplicateFallback = "E0401"

	// E0402: Function with same name and argument types defined twice
	ErrorDuplicateFunction = "E0402"

	// E0403: Event with same name and argument types defined twice
	ErrorDuplicateEvent = "E0403"

	// E0404: Overriding function return types differ
	ErrorOverrideReturnTypes = "E0404"

	// E0405: Overriding function visibility differs
	ErrorOverrideVisibility = "E0405"

	// E0406: Overriding function changes state mutability
	ErrorOverrideMutability = "E0406"

	// E0407: Override changes a function to a modifier or vice versa
	ErrorOverrideKind = "E0407"

	// E0408: Override changes modifier signature
	ErrorOverrideModifier = "E0408"

	// E0409: Redeclaring an already implemented function as abstract
	ErrorRedeclareAbstract = "E0409"

	// E0410: Modifier-style base constructor call without arguments
	ErrorBaseCallNoArguments = "E0410"

	// E0411: Base constructor arguments given twice
	ErrorBaseArgumentsTwice = "E0411"

	// E0412: Non-empty returns directive on a constructor
	ErrorConstructorReturns = "E0412"

	// E0413: Constructor must be payable or non-payable
	ErrorConstructorMutability = "E0413"

	// E0414: Constructor must be public or internal
	ErrorConstructorVisibility = "E0414"

	// Warnings

	// E0800: Contract is abstract and cannot be deployed
	WarningAbstractContract = "E0800"
)
