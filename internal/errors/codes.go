package errors

// Error codes used across the Velvet toolchain so diagnostics stay
// identifiable in editors, logs, and tests.
//
// Error code ranges:
// E0001-E0099: lexical errors
// E0100-E0199: syntax errors
// E0200-E0299: type errors (advisory)
// E0300-E0399: evaluation errors
// E0400-E0499: code generation errors
const (
	// E0001: scanner met a character outside the language's alphabet
	ErrorUnexpectedCharacter = "E0001"

	// E0002: string literal ran to end of input without a closing quote
	ErrorUnterminatedString = "E0002"

	// E0100: parser expectation failure, aborts the parse
	ErrorUnexpectedToken = "E0100"

	// E0200: if/while condition is statically non-boolean
	ErrorNonBooleanCondition = "E0200"

	// E0201: declared type and initializer type disagree. Reserved: the
	// checker does not track variable types yet, so nothing emits it.
	ErrorTypeMismatch = "E0201"

	// E0300: reference to a variable that was never bound
	ErrorUndefinedVariable = "E0300"

	// E0301: call to a name that is neither a user function nor a builtin
	ErrorUndefinedFunction = "E0301"

	// E0302: operator the evaluator does not implement
	ErrorUnknownOperator = "E0302"

	// E0303: integer division by zero
	ErrorDivisionByZero = "E0303"

	// E0400: AST shape the code generator refuses to render
	ErrorUnsupportedConstruct = "E0400"
)
