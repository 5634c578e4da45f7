// Package mocks provides testify mocks for the runner, data and evaluator
// interfaces.
package mocks

import (
	"context"

	"github.com/robbyt/go-osascript/platform/runner"
	"github.com/stretchr/testify/mock"
)

// Runner is a mock implementation of runner.Runner.
type Runner struct {
	mock.Mock
}

// Run is a mock implementation of the Run method.
func (m *Runner) Run(ctx context.Context, program string) (*runner.Outcome, error) {
	args := m.Called(ctx, program)
	outcome, _ := args.Get(0).(*runner.Outcome)
	return outcome, args.Error(1)
}

// OnSuccess sets up Run to print stdout and exit zero for any program.
func (m *Runner) OnSuccess(stdout string) *mock.Call {
	return m.On("Run", mock.Anything, mock.Anything).
		Return(&runner.Outcome{Success: true, Stdout: []byte(stdout + "\n")}, nil)
}

// OnFailure sets up Run to print stderr and exit with code for any program.
func (m *Runner) OnFailure(code int, stderr string) *mock.Call {
	return m.On("Run", mock.Anything, mock.Anything).
		Return(&runner.Outcome{ExitCode: code, Stderr: []byte(stderr)}, nil)
}

var _ runner.Runner = (*Runner)(nil)
