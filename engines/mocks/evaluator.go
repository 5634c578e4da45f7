package mocks

import (
	"context"

	"github.com/robbyt/go-osascript/platform"
	"github.com/robbyt/go-osascript/platform/data"
	"github.com/stretchr/testify/mock"
)

// Evaluator is a mock implementation of platform.Evaluator.
type Evaluator struct {
	mock.Mock
}

// Eval is a mock implementation of the Eval method.
func (m *Evaluator) Eval(ctx context.Context) (platform.EvaluatorResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(platform.EvaluatorResponse)
	return resp, args.Error(1)
}

// AddDataToContext is a mock implementation of the AddDataToContext method.
func (m *Evaluator) AddDataToContext(ctx context.Context, d ...map[string]any) (context.Context, error) {
	args := m.Called(ctx, d)
	next, _ := args.Get(0).(context.Context)
	return next, args.Error(1)
}

// EvaluatorResponse is a mock implementation of platform.EvaluatorResponse.
type EvaluatorResponse struct {
	mock.Mock
}

// Type returns a mockable Type. A plain Go value is mapped to its JSON kind.
func (m *EvaluatorResponse) Type() data.Types {
	val := m.Called().Get(0)

	switch v := val.(type) {
	case data.Types:
		return v
	case nil:
		return data.NONE
	case bool:
		return data.BOOL
	case int:
		return data.INT
	case float64:
		return data.FLOAT
	case string:
		return data.STRING
	case []any:
		return data.LIST
	case map[string]any:
		return data.MAP
	default:
		panic("unknown type")
	}
}

// Inspect returns a mockable string.
func (m *EvaluatorResponse) Inspect() string {
	return m.Called().String(0)
}

// Interface returns a mockable value of "any" type.
func (m *EvaluatorResponse) Interface() any {
	return m.Called().Get(0)
}

// Decode is a mock implementation of the Decode method.
func (m *EvaluatorResponse) Decode(target any) error {
	return m.Called(target).Error(0)
}

// GetScriptExeID returns a mockable script ID.
func (m *EvaluatorResponse) GetScriptExeID() string {
	return m.Called().String(0)
}

// GetRunID returns a mockable run ID.
func (m *EvaluatorResponse) GetRunID() string {
	return m.Called().String(0)
}

// GetExecTime returns a mockable execution time.
func (m *EvaluatorResponse) GetExecTime() string {
	return m.Called().String(0)
}

var (
	_ platform.Evaluator         = (*Evaluator)(nil)
	_ platform.EvaluatorResponse = (*EvaluatorResponse)(nil)
)
