// Package osascript runs wrapped programs through the macOS osascript binary.
package osascript

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"sort"
	"time"

	"github.com/robbyt/go-osascript/internal/helpers"
	"github.com/robbyt/go-osascript/platform/constants"
	"github.com/robbyt/go-osascript/platform/failure"
	"github.com/robbyt/go-osascript/platform/runner"
)

// pipeDrainTimeout bounds how long output pipes may stay open after the
// interpreter exits, e.g. when it leaves a child process holding them.
const pipeDrainTimeout = 5 * time.Second

// Executor starts one interpreter process per Run. It holds only
// configuration, so a single Executor can be shared between goroutines.
type Executor struct {
	interpreter string
	timeout     time.Duration
	env         map[string]string

	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates an Executor. With no options it runs "osascript" from PATH
// with no timeout.
func New(opts ...FunctionalOption) (*Executor, error) {
	e := &Executor{}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("error applying executor option: %w", err)
		}
	}
	e.applyDefaults()
	if err := e.validate(); err != nil {
		return nil, fmt.Errorf("invalid executor configuration: %w", err)
	}

	e.logHandler, e.logger = helpers.LoggerOrHandler(e.logger, e.logHandler, "osascript", "Executor")
	return e, nil
}

func (e *Executor) String() string {
	return fmt.Sprintf("osascript.Executor{Interpreter: %s, Timeout: %s}", e.interpreter, e.timeout)
}

// Args returns the interpreter arguments for program. The program is passed
// inline, as a single argument.
func (e *Executor) Args(program string) []string {
	return []string{"-l", constants.Language, "-e", program}
}

// Run starts the interpreter with program and waits for it to exit.
func (e *Executor) Run(ctx context.Context, program string) (*runner.Outcome, error) {
	logger := e.logger.WithGroup("Run")

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}
	if err := ctx.Err(); err != nil {
		return nil, failure.Canceled(err)
	}

	cmd := exec.Command(e.interpreter, e.Args(program)...) //nolint:gosec // running caller code is the point
	cmd.Env = e.environ()
	cmd.WaitDelay = pipeDrainTimeout

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	startTime := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, failure.IO(fmt.Errorf("failed to start %s: %w", e.interpreter, err))
	}
	logger.DebugContext(ctx, "interpreter started", "pid", cmd.Process.Pid, "programBytes", len(program))

	waitDone := make(chan error, 1)
	go func() { waitDone <- cmd.Wait() }()

	var waitErr error
	select {
	case waitErr = <-waitDone:
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		<-waitDone
		logger.DebugContext(ctx, "interpreter killed", "reason", ctx.Err(), "elapsed", time.Since(startTime))
		return nil, failure.Canceled(ctx.Err())
	}

	outcome := &runner.Outcome{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		Duration: time.Since(startTime),
	}

	var exitErr *exec.ExitError
	switch {
	case waitErr == nil:
		outcome.Success = true
	case errors.As(waitErr, &exitErr):
		outcome.ExitCode = exitErr.ExitCode()
	default:
		return nil, failure.IO(fmt.Errorf("failed waiting for %s: %w", e.interpreter, waitErr))
	}

	logger.DebugContext(ctx, "interpreter exited",
		"exitCode", outcome.ExitCode,
		"stdoutBytes", len(outcome.Stdout),
		"stderrBytes", len(outcome.Stderr),
		"duration", outcome.Duration,
	)
	return outcome, nil
}

// environ returns nil (inherit) when no extra variables are configured.
func (e *Executor) environ() []string {
	if len(e.env) == 0 {
		return nil
	}
	keys := make([]string, 0, len(e.env))
	for k := range e.env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := os.Environ()
	for _, k := range keys {
		env = append(env, k+"="+e.env[k])
	}
	return env
}

var _ runner.Runner = (*Executor)(nil)
