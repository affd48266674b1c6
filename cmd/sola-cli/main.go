// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"sola/internal/config"
	"sola/internal/errors"
	"sola/internal/parser"
	"sola/internal/resolve"
	"sola/internal/semantic"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: sola <file.sola>")
		os.Exit(1)
	}

	startTime := time.Now()
	path := os.Args[1]

	cfg, err := config.LoadNear(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load project config: %v\n", err)
		os.Exit(1)
	}
	color.NoColor = !cfg.UseColor(os.Stdout)

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	unit, parseErrors := parser.ParseSource(path, string(source))

	for _, err := range parseErrors {
		fmt.Print(formatParseError(path, err, string(source)))
	}

	hasErrors := len(parseErrors) > 0
	if unit != nil {
		errs := errors.NewList()

		resolver := resolve.NewResolver(errs)
		resolver.Resolve(unit)

		checker := semantic.NewChecker(errs)
		for _, contract := range unit.Contracts {
			checker.Check(contract)
			if contract.IsAbstract() {
				errs.Warn(errors.WarningAbstractContract,
					contract.Name.Pos,
					fmt.Sprintf("contract '%s' is abstract and cannot be deployed.", contract.Name.Value))
			}
		}

		reporter := errors.NewErrorReporter(path, string(source))
		fmt.Print(reporter.FormatAll(errs.Errors()))

		if !errs.ContainsOnlyWarnings() {
			hasErrors = true
		} else if cfg.WarningsAsErrors && len(errs.Errors()) > 0 {
			hasErrors = true
		}
	}

	duration := time.Since(startTime)
	formattedDuration := formatDuration(duration)

	if !hasErrors {
		color.Green("Successfully checked %s in %s", path, formattedDuration)
	} else {
		color.Red("Check failed after %s", formattedDuration)
		os.Exit(1)
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}

func formatParseError(path string, err parser.ParseError, source string) string {
	lines := strings.Split(source, "\n")

	var lineContent string
	if err.Position.Line-1 < len(lines) && err.Position.Line-1 >= 0 {
		lineContent = lines[err.Position.Line-1]
	}

	marker := strings.Repeat(" ", max(0, err.Position.Column-1)) + "^"

	red := color.New(color.FgRed).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	lineNumberWidth := len(fmt.Sprintf("%d", err.Position.Line))
	if lineNumberWidth < 3 {
		lineNumberWidth = 3 // minimum width for visual alignment
	}
	indent := strings.Repeat(" ", lineNumberWidth)

	return fmt.Sprintf(
		"%s: %s\n%s┌─ %s:%d:%d\n%s│\n%3d│%s\n%s│%s\n\n",
		red("error"),
		err.Message,
		indent,
		path, err.Position.Line, err.Position.Column,
		indent,
		err.Position.Line, lineContent,
		indent,
		bold(marker),
	)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
