// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"

	"velvet/internal/eval"
	"velvet/internal/parser"
)

const PROMPT = ">> "

// Start reads lines from in and evaluates each one against a single
// persistent interpreter, so bindings and functions carry across lines.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	interp := eval.NewInterpreter(in, out, out)

	for {
		fmt.Fprint(out, PROMPT)
		scanned := scanner.Scan()
		if !scanned {
			return
		}

		line := scanner.Text()
		if line == "" {
			continue
		}

		program, parseErrors, scanErrors := parser.ParseSource("repl", line)
		for _, scanErr := range scanErrors {
			fmt.Fprintf(out, "scan error: %s\n", scanErr.Message)
		}
		for _, parseErr := range parseErrors {
			fmt.Fprintf(out, "parse error: %s\n", parseErr.Message)
		}
		if program == nil {
			continue
		}

		interp.Run(program)
	}
}
