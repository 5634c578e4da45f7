// Package failure defines the closed set of ways a script execution can fail.
//
// Every failed execution produces exactly one *Error. Its Kind says which
// layer failed. Callers either switch on KindOf(err) or test the sentinels
// with errors.Is:
//
//	var out Result
//	err := script.ExecuteWithParams(ctx, params, &out)
//	switch {
//	case errors.Is(err, failure.ErrScript):
//	    // the script threw; err.(*failure.Error).Message is the interpreter's stderr
//	case errors.Is(err, failure.ErrDeserialization):
//	    // the script ran, but returned something that does not fit Result
//	}
package failure

import (
	"errors"
	"fmt"
)

// Kind identifies the layer an execution failed in.
type Kind int

const (
	// KindIO is a transport failure: the interpreter could not be started,
	// or its output streams could not be read as text.
	KindIO Kind = iota + 1

	// KindSerialization means the parameters could not be encoded as JSON.
	// Nothing has been started when this is returned.
	KindSerialization

	// KindDeserialization means stdout was not valid JSON, or did not fit the
	// requested result type.
	KindDeserialization

	// KindScript means the interpreter exited non-zero. Message holds stderr.
	KindScript

	// KindCanceled means the context ended before the interpreter exited and
	// the child was terminated.
	KindCanceled
)

// Sentinel errors, one per Kind, for use with errors.Is.
var (
	ErrIO              = errors.New("script io error")
	ErrSerialization   = errors.New("script json error (params)")
	ErrDeserialization = errors.New("script json error (result)")
	ErrScript          = errors.New("script error")
	ErrCanceled        = errors.New("script canceled")
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindSerialization:
		return "serialization"
	case KindDeserialization:
		return "deserialization"
	case KindScript:
		return "script"
	case KindCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindIO:
		return ErrIO
	case KindSerialization:
		return ErrSerialization
	case KindDeserialization:
		return ErrDeserialization
	case KindScript:
		return ErrScript
	case KindCanceled:
		return ErrCanceled
	default:
		return nil
	}
}

// Error is the single error type returned for a failed execution.
type Error struct {
	// Kind is the failure layer.
	Kind Kind

	// Message is the diagnostic text. For KindScript it is the interpreter's
	// stderr, unmodified.
	Message string

	// Err is the lower-level cause, if any (exec, json, context).
	Err error
}

// Error renders the kind prefix followed by the message.
func (e *Error) Error() string {
	prefix := "script failure"
	if s := e.Kind.sentinel(); s != nil {
		prefix = s.Error()
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel that belongs to e.Kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return 0
}

// IO wraps a spawn or stream failure.
func IO(err error) *Error {
	return &Error{Kind: KindIO, Message: err.Error(), Err: err}
}

// Serialization wraps a parameter encoding failure.
func Serialization(err error) *Error {
	return &Error{Kind: KindSerialization, Message: err.Error(), Err: err}
}

// Deserialization wraps a result decoding failure.
func Deserialization(err error) *Error {
	return &Error{Kind: KindDeserialization, Message: err.Error(), Err: err}
}

// Script reports a non-zero exit. stderr is stored verbatim.
func Script(stderr string) *Error {
	return &Error{Kind: KindScript, Message: stderr}
}

// Canceled wraps the context error that stopped the interpreter.
func Canceled(err error) *Error {
	return &Error{Kind: KindCanceled, Message: err.Error(), Err: err}
}
