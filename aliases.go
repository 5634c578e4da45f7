package osascript

import "github.com/robbyt/go-osascript/platform/failure"

// Error is the failure type returned by every execution.
type Error = failure.Error

// Kind classifies an Error.
type Kind = failure.Kind

const (
	KindIO              = failure.KindIO
	KindSerialization   = failure.KindSerialization
	KindDeserialization = failure.KindDeserialization
	KindScript          = failure.KindScript
	KindCanceled        = failure.KindCanceled
)

// Sentinels for errors.Is.
var (
	ErrIO              = failure.ErrIO
	ErrSerialization   = failure.ErrSerialization
	ErrDeserialization = failure.ErrDeserialization
	ErrScript          = failure.ErrScript
	ErrCanceled        = failure.ErrCanceled
)

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	return failure.KindOf(err)
}
