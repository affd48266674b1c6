package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"sola/internal/ast"
)

// ErrorReporter handles consistent diagnostic formatting for one source file
type ErrorReporter struct {
	filename string
	source   string
	lines    []string
}

// NewErrorReporter creates a new error reporter for a file
func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		source:   source,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatError formats a compiler error with Rust-like styling, including a
// snippet block for every secondary location
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var result strings.Builder

	levelColor := er.getLevelColor(err.Level)
	dim := color.New(color.Faint).SprintFunc()

	// Header: error[E0402]: message
	if err.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n",
			levelColor(string(err.Level)), err.Code, err.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n",
			levelColor(string(err.Level)), err.Message))
	}

	er.writeSnippet(&result, err.Position, err.Length, err.Level)

	// Secondary locations get their own snippet, introduced by their label
	noteColor := er.getLevelColor(Note)
	for _, sec := range err.Secondary {
		result.WriteString(fmt.Sprintf("%s: %s\n", noteColor("note"), sec.Label))
		er.writeSnippet(&result, sec.Position, 1, Note)
	}

	for _, note := range err.Notes {
		result.WriteString(fmt.Sprintf("  %s %s\n", dim("="), fmt.Sprintf("note: %s", note)))
	}
	if err.HelpText != "" {
		result.WriteString(fmt.Sprintf("  %s %s\n", dim("="), fmt.Sprintf("help: %s", err.HelpText)))
	}

	result.WriteString("\n")
	return result.String()
}

// FormatAll formats every diagnostic in the list that belongs to this
// reporter's file
func (er *ErrorReporter) FormatAll(errs []CompilerError) string {
	var result strings.Builder
	for _, err := range errs {
		if err.Position.Filename != "" && err.Position.Filename != er.filename {
			continue
		}
		result.WriteString(er.FormatError(err))
	}
	return result.String()
}

func (er *ErrorReporter) writeSnippet(result *strings.Builder, pos ast.Position, length int, level ErrorLevel) {
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	lineNumberWidth := er.getLineNumberWidth(pos.Line)
	indent := strings.Repeat(" ", lineNumberWidth)

	// Location line: --> filename:line:column
	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), er.filename, pos.Line, pos.Column))
	result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	if pos.Line <= 0 || pos.Line > len(er.lines) {
		return
	}
	lineContent := er.lines[pos.Line-1]
	result.WriteString(fmt.Sprintf("%s %s %s\n",
		bold(fmt.Sprintf("%*d", lineNumberWidth, pos.Line)), dim("│"), lineContent))
	result.WriteString(fmt.Sprintf("%s %s %s\n",
		indent, dim("│"), er.createMarker(pos.Column, length, level)))
}

// getLevelColor returns the appropriate color function for an error level
func (er *ErrorReporter) getLevelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Error:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	case Help:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

// createMarker creates the underline marker for errors
func (er *ErrorReporter) createMarker(column, length int, level ErrorLevel) string {
	if length <= 0 {
		length = 1
	}

	spaces := strings.Repeat(" ", max(0, column-1))

	var markerColor func(...interface{}) string
	switch level {
	case Warning:
		markerColor = color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		markerColor = color.New(color.FgBlue, color.Bold).SprintFunc()
	default:
		markerColor = color.New(color.FgRed, color.Bold).SprintFunc()
	}

	return spaces + markerColor(strings.Repeat("^", length))
}

// getLineNumberWidth calculates the width needed for line numbers
func (er *ErrorReporter) getLineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3 // minimum width for visual alignment
	}
	return width
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
