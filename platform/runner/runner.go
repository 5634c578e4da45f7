// Package runner defines the boundary between the calling convention and
// whatever actually executes a wrapped program.
package runner

import (
	"context"
	"fmt"
	"time"
)

// Runner executes one wrapped program and reports what the interpreter did.
//
// Contract:
//   - A program that ran and exited non-zero is NOT an error: Run returns an
//     Outcome with Success false and the interpreter's stderr.
//   - Failing to start the interpreter is a *failure.Error of KindIO.
//   - If ctx ends first, the interpreter is stopped and Run returns a
//     *failure.Error of KindCanceled.
//   - Implementations hold no per-call state and are safe for concurrent use.
type Runner interface {
	Run(ctx context.Context, program string) (*Outcome, error)
}

// Outcome is the raw result of one interpreter run. Output is captured in full.
type Outcome struct {
	// Success is true when the interpreter exited with status zero.
	Success bool

	// ExitCode is the interpreter's exit status.
	ExitCode int

	Stdout []byte
	Stderr []byte

	// Duration is the wall time of the run.
	Duration time.Duration
}

func (o *Outcome) String() string {
	return fmt.Sprintf("Outcome{Success: %t, ExitCode: %d, Stdout: %d bytes, Stderr: %d bytes, Duration: %s}",
		o.Success, o.ExitCode, len(o.Stdout), len(o.Stderr), o.Duration)
}

// Func adapts an ordinary function to the Runner interface.
type Func func(ctx context.Context, program string) (*Outcome, error)

// Run calls f.
func (f Func) Run(ctx context.Context, program string) (*Outcome, error) {
	return f(ctx, program)
}
