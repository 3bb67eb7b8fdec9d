package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"velvet/internal/ast"
)

// ErrorLevel represents the severity of a diagnostic
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
)

// CompilerError is a structured diagnostic with optional context notes
type CompilerError struct {
	Level    ErrorLevel
	Code     string       // Error code like E0200
	Message  string       // Primary message
	Position ast.Position // Location in source
	Length   int          // Length of the problematic region
	Notes    []string     // Additional context notes
	HelpText string       // Help text for the error
}

// NewError creates an error-level diagnostic
func NewError(code, message string, pos ast.Position) CompilerError {
	return CompilerError{
		Level:    Error,
		Code:     code,
		Message:  message,
		Position: pos,
		Length:   1,
	}
}

// NewWarning creates a warning-level diagnostic
func NewWarning(code, message string, pos ast.Position) CompilerError {
	return CompilerError{
		Level:    Warning,
		Code:     code,
		Message:  message,
		Position: pos,
		Length:   1,
	}
}

// WithNote appends a context note
func (e CompilerError) WithNote(note string) CompilerError {
	e.Notes = append(e.Notes, note)
	return e
}

// WithHelp sets the help text
func (e CompilerError) WithHelp(help string) CompilerError {
	e.HelpText = help
	return e
}

// WithLength sets the length of the error span
func (e CompilerError) WithLength(length int) CompilerError {
	e.Length = length
	return e
}

// Reporter renders diagnostics with source context and markers
type Reporter struct {
	filename string
	lines    []string
}

// NewReporter creates a reporter for one source buffer
func NewReporter(filename, source string) *Reporter {
	return &Reporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// Format renders a diagnostic with Rust-like styling:
//
//	error[E0200]: condition must be boolean
//	   --> main.vex:3:7
//	    │
//	  3 │ while "loop" {
//	    │       ^^^^^^
func (r *Reporter) Format(err CompilerError) string {
	var result strings.Builder

	levelColor := r.levelColor(err.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	if err.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n",
			levelColor(string(err.Level)), err.Code, err.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n",
			levelColor(string(err.Level)), err.Message))
	}

	lineNumberWidth := r.lineNumberWidth(err.Position.Line)
	indent := strings.Repeat(" ", lineNumberWidth)

	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), r.filename, err.Position.Line, err.Position.Column))
	result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	if err.Position.Line <= len(r.lines) && err.Position.Line > 0 {
		lineContent := r.lines[err.Position.Line-1]
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			bold(fmt.Sprintf("%*d", lineNumberWidth, err.Position.Line)),
			dim("│"),
			lineContent))

		marker := r.marker(err.Position.Column, err.Length, err.Level)
		result.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("│"), marker))
	}

	for _, note := range err.Notes {
		noteColor := color.New(color.FgBlue).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), noteColor("note:"), note))
	}

	if err.HelpText != "" {
		helpColor := color.New(color.FgGreen).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), helpColor("help:"), err.HelpText))
	}

	result.WriteString("\n")
	return result.String()
}

func (r *Reporter) levelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

func (r *Reporter) marker(column, length int, level ErrorLevel) string {
	if length <= 0 {
		length = 1
	}

	spaces := strings.Repeat(" ", max(0, column-1))

	markerColor := color.New(color.FgRed, color.Bold).SprintFunc()
	if level == Warning {
		markerColor = color.New(color.FgYellow, color.Bold).SprintFunc()
	}

	return spaces + markerColor(strings.Repeat("^", length))
}

func (r *Reporter) lineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3 // minimum width for visual alignment
	}
	return width
}
