// Package platform holds the interfaces shared by scripts and their results.
package platform

import (
	"context"

	"github.com/robbyt/go-osascript/platform/data"
)

// EvalOnly is the interface for evaluating a loaded script.
type EvalOnly interface {
	// Eval runs the script with $params taken from the script's data
	// provider. For per-call values, use a ContextProvider with the
	// constants.EvalData key and AddDataToContext.
	Eval(ctx context.Context) (EvaluatorResponse, error)
}

// Evaluator combines EvalOnly with data.Setter, so parameters can be prepared
// in one place and the script evaluated in another.
type Evaluator interface {
	EvalOnly
	data.Setter
}

// EvaluatorResponse is the decoded result of one evaluation.
type EvaluatorResponse interface {
	// Type of the JSON value the script returned.
	Type() data.Types

	// Inspect returns the raw JSON text printed by the script.
	Inspect() string

	// Interface returns the result decoded into Go's generic JSON values
	// (map[string]any, []any, float64, string, bool or nil).
	Interface() any

	// Decode unmarshals the result into target.
	Decode(target any) error

	// GetScriptExeID returns the ID of the script that produced the result.
	GetScriptExeID() string

	// GetRunID returns the ID of the evaluation that produced the result.
	GetRunID() string

	// GetExecTime returns how long the interpreter ran.
	GetExecTime() string
}
