package failure

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	t.Parallel()

	_, jsonErr := json.Marshal(make(chan int))
	require.Error(t, jsonErr)
	unmarshalErr := json.Unmarshal([]byte("42"), &struct{ A string }{})
	require.Error(t, unmarshalErr)

	cases := []struct {
		name     string
		err      *Error
		kind     Kind
		sentinel error
		prefix   string
	}{
		{
			name:     "io",
			err:      IO(exec.ErrNotFound),
			kind:     KindIO,
			sentinel: ErrIO,
			prefix:   "script io error: ",
		},
		{
			name:     "serialization",
			err:      Serialization(jsonErr),
			kind:     KindSerialization,
			sentinel: ErrSerialization,
			prefix:   "script json error (params): ",
		},
		{
			name:     "deserialization",
			err:      Deserialization(unmarshalErr),
			kind:     KindDeserialization,
			sentinel: ErrDeserialization,
			prefix:   "script json error (result): ",
		},
		{
			name:     "script",
			err:      Script("execution error: Error: boom (-2700)\n"),
			kind:     KindScript,
			sentinel: ErrScript,
			prefix:   "script error: ",
		},
		{
			name:     "canceled",
			err:      Canceled(context.Canceled),
			kind:     KindCanceled,
			sentinel: ErrCanceled,
			prefix:   "script canceled: ",
		},
	}

	all := []error{ErrIO, ErrSerialization, ErrDeserialization, ErrScript, ErrCanceled}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.kind, tc.err.Kind)
			assert.Equal(t, tc.kind, KindOf(tc.err))
			assert.Contains(t, tc.err.Error(), tc.prefix)
			assert.Equal(t, tc.kind.String(), tc.name)

			for _, s := range all {
				assert.Equal(t, s == tc.sentinel, errors.Is(tc.err, s), "sentinel %q", s)
			}

			wrapped := fmt.Errorf("outer: %w", tc.err)
			assert.Equal(t, tc.kind, KindOf(wrapped))
			assert.ErrorIs(t, wrapped, tc.sentinel)
		})
	}
}

func TestScriptMessageIsVerbatim(t *testing.T) {
	t.Parallel()

	stderr := "line one\n\tline two ✓\n"
	err := Script(stderr)
	require.Equal(t, stderr, err.Message)
	require.NoError(t, err.Unwrap())
}

func TestUnwrapKeepsCause(t *testing.T) {
	t.Parallel()

	err := Canceled(context.DeadlineExceeded)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.ErrorIs(t, err, ErrCanceled)

	ioErr := IO(exec.ErrNotFound)
	require.ErrorIs(t, ioErr, exec.ErrNotFound)

	var target *Error
	require.ErrorAs(t, fmt.Errorf("ctx: %w", ioErr), &target)
	require.Equal(t, KindIO, target.Kind)
}

func TestKindOfForeignError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(0), KindOf(nil))
	assert.Equal(t, "Kind(42)", Kind(42).String())

	unknown := &Error{Kind: Kind(42), Message: "odd"}
	assert.Equal(t, "script failure: odd", unknown.Error())
	assert.False(t, errors.Is(unknown, ErrIO))
}
