// Package decoder turns an interpreter Outcome into a typed result or a
// *failure.Error.
package decoder

import (
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/robbyt/go-osascript/platform/failure"
	"github.com/robbyt/go-osascript/platform/runner"
)

// ErrNilOutcome is wrapped in the failure returned for a nil Outcome.
var ErrNilOutcome = errors.New("runner returned no outcome")

// Decode fills target from outcome.
//
// A failed run becomes a KindScript failure whose Message is stderr
// unchanged, or a KindIO failure if stderr is not valid UTF-8. A successful
// run is decoded as one JSON value into target; anything else on stdout, or a
// value that does not fit target, is a KindDeserialization failure.
func Decode(outcome *runner.Outcome, target any) error {
	if outcome == nil {
		return failure.IO(ErrNilOutcome)
	}

	if !outcome.Success {
		text, err := Text(outcome.Stderr)
		if err != nil {
			return failure.IO(fmt.Errorf("stderr: %w", err))
		}
		return failure.Script(text)
	}

	if err := json.Unmarshal(outcome.Stdout, target); err != nil {
		return failure.Deserialization(err)
	}
	return nil
}

// Text returns b as a string if it is valid UTF-8. Invalid input is reported
// with the offset of the first bad byte; nothing is replaced.
func Text(b []byte) (string, error) {
	_, n, err := transform.Bytes(encoding.UTF8Validator, b)
	if err != nil {
		return "", fmt.Errorf("%w at byte %d", err, n)
	}
	return string(b), nil
}
