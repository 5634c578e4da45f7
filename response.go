package osascript

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/robbyt/go-osascript/platform"
	"github.com/robbyt/go-osascript/platform/data"
	"github.com/robbyt/go-osascript/platform/failure"
)

// Response is the result of Eval. It keeps the JSON the script printed so
// it can be decoded into any target later.
type Response struct {
	raw      json.RawMessage
	value    any
	scriptID string
	runID    string
	execTime time.Duration
}

func newResponse(raw json.RawMessage, scriptID, runID string, execTime time.Duration) (*Response, error) {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, failure.Deserialization(err)
	}
	return &Response{
		raw:      raw,
		value:    value,
		scriptID: scriptID,
		runID:    runID,
		execTime: execTime,
	}, nil
}

func (r *Response) String() string {
	return fmt.Sprintf("osascript.Response{Type: %s, Run: %s, ExecTime: %s}", r.Type(), r.runID, r.execTime)
}

// maxSafeInteger is the largest magnitude a JavaScript number holds exactly.
const maxSafeInteger = 1<<53 - 1

// Type reports the JSON kind of the result. Numbers without a fractional
// part are INT while they fit in JavaScript's safe integer range.
func (r *Response) Type() data.Types {
	switch v := r.value.(type) {
	case nil:
		return data.NONE
	case bool:
		return data.BOOL
	case float64:
		if v == math.Trunc(v) && math.Abs(v) <= maxSafeInteger {
			return data.INT
		}
		return data.FLOAT
	case string:
		return data.STRING
	case []any:
		return data.LIST
	case map[string]any:
		return data.MAP
	default:
		return data.NONE
	}
}

// Inspect returns the raw JSON text.
func (r *Response) Inspect() string {
	return string(r.raw)
}

// Interface returns the result as generic JSON values.
func (r *Response) Interface() any {
	return r.value
}

// Decode unmarshals the result into target.
func (r *Response) Decode(target any) error {
	if err := json.Unmarshal(r.raw, target); err != nil {
		return failure.Deserialization(err)
	}
	return nil
}

func (r *Response) GetScriptExeID() string {
	return r.scriptID
}

func (r *Response) GetRunID() string {
	return r.runID
}

func (r *Response) GetExecTime() string {
	return r.execTime.String()
}

var _ platform.EvaluatorResponse = (*Response)(nil)
