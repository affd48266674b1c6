package errors

import (
	"sola/internal/ast"
)

// ErrorLevel represents the severity of a diagnostic
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// CompilerError represents a structured diagnostic with an anchor location
// and any number of labeled secondary locations
type CompilerError struct {
	Level     ErrorLevel
	Code      string       // Error code like E0402
	Message   string       // Primary error message
	Position  ast.Position // Anchor location in source
	Length    int          // Length of the problematic region
	Secondary []SecondaryLocation
	Notes     []string // Additional context notes
	HelpText  string   // Help text for the error
}

// SecondaryLocation points at related source, e.g. the other half of a
// duplicate-definition pair
type SecondaryLocation struct {
	Label    string
	Position ast.Position
}

// Secondary builds a labeled secondary location
func Secondary(label string, node ast.Node) SecondaryLocation {
	return SecondaryLocation{Label: label, Position: node.NodePos()}
}

// List accumulates diagnostics for one run of the frontend. The analysis
// passes never abort on an error-severity diagnostic; overall success is
// decided once, at the end, from the accumulated contents.
type List struct {
	errors []CompilerError
}

func NewList() *List {
	return &List{}
}

// DeclarationError reports a declaration-shape problem such as a duplicate
// definition or a malformed base constructor call.
func (l *List) DeclarationError(code string, pos ast.Position, message string, secondary ...SecondaryLocation) {
	l.Add(CompilerError{
		Level:     Error,
		Code:      code,
		Message:   message,
		Position:  pos,
		Length:    1,
		Secondary: secondary,
	})
}

// TypeError reports a type- or contract-rule violation such as an illegal
// override or a malformed constructor.
func (l *List) TypeError(code string, pos ast.Position, message string, secondary ...SecondaryLocation) {
	l.Add(CompilerError{
		Level:     Error,
		Code:      code,
		Message:   message,
		Position:  pos,
		Length:    1,
		Secondary: secondary,
	})
}

// Warn reports a warning-severity diagnostic.
func (l *List) Warn(code string, pos ast.Position, message string) {
	l.Add(CompilerError{
		Level:    Warning,
		Code:     code,
		Message:  message,
		Position: pos,
		Length:   1,
	})
}

// Add appends a fully built diagnostic.
func (l *List) Add(err CompilerError) {
	l.errors = append(l.errors, err)
}

// Errors returns the accumulated diagnostics in emission order.
func (l *List) Errors() []CompilerError {
	return l.errors
}

// ContainsOnlyWarnings reports whether no error-severity diagnostic has
// been emitted so far. Notes and help entries do not count against it.
func (l *List) ContainsOnlyWarnings() bool {
	for _, err := range l.errors {
		if err.Level == Error {
			return false
		}
	}
	return true
}
