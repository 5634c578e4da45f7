// Description: names shared between the Go side and the wrapped JavaScript program.
package constants

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// EvalData is the context key holding per-call parameters for Eval.
	EvalData ContextKey = "eval_data"

	// ParamsVar is the JavaScript variable the wrapper binds parameters to.
	// Script bodies read their input through it, e.g. $params.title. The
	// leading "$" keeps it out of the way of ordinary identifiers.
	ParamsVar = "$params"

	// Language is the OSA language name handed to the interpreter.
	Language = "JavaScript"

	// Interpreter is the default interpreter binary, resolved through PATH.
	Interpreter = "osascript"
)
