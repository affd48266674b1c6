// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"sola/internal/errors"
	"sola/internal/parser"
	"sola/internal/resolve"
	"sola/internal/semantic"
)

const PROMPT = ">> "
const CONTINUE = ".. "

// Start reads contract source from in, checking each snippet once its
// braces balance. Diagnostics print in the same format as the CLI.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	var buffer strings.Builder
	depth := 0

	for {
		if depth > 0 {
			fmt.Fprint(out, CONTINUE)
		} else {
			fmt.Fprint(out, PROMPT)
		}

		if !scanner.Scan() {
			return
		}

		line := scanner.Text()
		buffer.WriteString(line)
		buffer.WriteString("\n")
		depth += strings.Count(line, "{") - strings.Count(line, "}")

		if depth < 0 {
			depth = 0
		}
		if depth > 0 {
			continue
		}
		if strings.TrimSpace(buffer.String()) == "" {
			buffer.Reset()
			continue
		}

		check(out, buffer.String())
		buffer.Reset()
	}
}

func check(out io.Writer, source string) {
	unit, parseErrs := parser.ParseSource("repl", source)
	if len(parseErrs) > 0 {
		for _, err := range parseErrs {
			fmt.Fprintf(out, "parse error at %d:%d: %s\n",
				err.Position.Line, err.Position.Column, err.Message)
		}
		return
	}

	errs := errors.NewList()
	resolver := resolve.NewResolver(errs)
	resolver.Resolve(unit)

	checker := semantic.NewChecker(errs)
	for _, contract := range unit.Contracts {
		checker.Check(contract)
	}

	if len(errs.Errors()) > 0 {
		reporter := errors.NewErrorReporter("repl", source)
		fmt.Fprint(out, reporter.FormatAll(errs.Errors()))
		return
	}

	for _, contract := range unit.Contracts {
		status := "concrete"
		if contract.IsAbstract() {
			status = "abstract"
		}
		fmt.Fprintf(out, "contract %s: ok (%s)\n", contract.Name.Value, status)
	}
}
