// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"velvet/internal/codegen"
	"velvet/internal/errors"
	"velvet/internal/eval"
	"velvet/internal/parser"
	"velvet/internal/project"
	"velvet/internal/typecheck"
)

func main() {
	args := os.Args[1:]

	emitC := false
	var rest []string
	for _, arg := range args {
		switch arg {
		case "--emit-c":
			emitC = true
		case "--help", "-h":
			printUsage()
			return
		default:
			rest = append(rest, arg)
		}
	}

	// With no arguments we scaffold interactively, like `velvet` alone.
	if len(rest) == 0 {
		if err := project.InitInteractive(os.Stdin, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	target := rest[0]
	if strings.HasSuffix(target, ".vex") || strings.HasSuffix(target, ".vel") {
		outPath := ""
		if len(rest) > 1 {
			outPath = rest[1]
		}
		runFile(target, emitC, outPath)
		return
	}

	if err := project.Create(".", target); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	color.Green("Created project '%s'", target)
}

func runFile(path string, emitC bool, outPath string) {
	startTime := time.Now()

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	program, parseErrors, scanErrors := parser.ParseSource(path, string(source))
	reporter := errors.NewReporter(path, string(source))

	for _, scanErr := range scanErrors {
		code := errors.ErrorUnexpectedCharacter
		if strings.HasPrefix(scanErr.Message, "unterminated") {
			code = errors.ErrorUnterminatedString
		}
		fmt.Print(reporter.Format(errors.NewError(
			code, scanErr.Message, scanErr.AstPosition()).
			WithLength(scanErr.Length)))
	}
	for _, parseErr := range parseErrors {
		fmt.Print(reporter.Format(errors.NewError(
			errors.ErrorUnexpectedToken, parseErr.Message, parseErr.AstPosition())))
	}

	hasErrors := len(scanErrors) > 0 || len(parseErrors) > 0
	if program == nil || hasErrors {
		color.Red("Compilation failed after %s", formatDuration(time.Since(startTime)))
		os.Exit(1)
	}

	// Checker findings are advisory: print them, keep going.
	diags, _ := typecheck.Check(program)
	for _, diag := range diags {
		fmt.Print(reporter.Format(diag))
	}

	if emitC {
		output, emitErr := codegen.Emit(program)
		if emitErr != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", emitErr)
			color.Red("Compilation failed after %s", formatDuration(time.Since(startTime)))
			os.Exit(1)
		}
		if outPath == "" {
			outPath = strings.TrimSuffix(strings.TrimSuffix(path, ".vex"), ".vel") + ".c"
		}
		if writeErr := os.WriteFile(outPath, []byte(output), 0o644); writeErr != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", writeErr)
			os.Exit(1)
		}
		color.Green("Compiled %s to %s in %s", path, outPath, formatDuration(time.Since(startTime)))
		return
	}

	interp := eval.NewInterpreter(os.Stdin, os.Stdout, os.Stderr)
	interp.Run(program)

	color.Green("Finished %s in %s", path, formatDuration(time.Since(startTime)))
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  velvet                    start interactive project setup")
	fmt.Println("  velvet <name>             scaffold a new project directory")
	fmt.Println("  velvet <file.vex|.vel>    run a script")
	fmt.Println("  velvet <file> --emit-c [out]")
	fmt.Println("                            compile the script to C source")
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
