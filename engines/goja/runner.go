// Package goja runs wrapped programs in-process on the goja JavaScript engine.
// It mimics the osascript process boundary closely enough that the same
// wrapper and decoder work unchanged, which makes it useful on hosts without
// osascript.
package goja

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"time"

	gojaLib "github.com/dop251/goja"
	"github.com/robbyt/go-osascript/internal/helpers"
	"github.com/robbyt/go-osascript/platform/failure"
	"github.com/robbyt/go-osascript/platform/runner"
)

// errorPrefix is what osascript puts in front of uncaught script errors.
const errorPrefix = "execution error: "

// Runner evaluates each program on a fresh runtime, so it keeps no state
// between runs and can be shared between goroutines.
type Runner struct {
	globals map[string]any

	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a Runner.
func New(opts ...FunctionalOption) (*Runner, error) {
	r := &Runner{}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("error applying runner option: %w", err)
		}
	}
	r.logHandler, r.logger = helpers.LoggerOrHandler(r.logger, r.logHandler, "goja", "Runner")
	return r, nil
}

func (r *Runner) String() string {
	return fmt.Sprintf("goja.Runner{Globals: %d}", len(r.globals))
}

// Run evaluates program. The completion value goes to Stdout and
// console.log output goes to Stderr. An uncaught exception or a syntax error
// produces an unsuccessful Outcome with exit code 1.
func (r *Runner) Run(ctx context.Context, program string) (*runner.Outcome, error) {
	logger := r.logger.WithGroup("Run")
	if err := ctx.Err(); err != nil {
		return nil, failure.Canceled(err)
	}

	var stderr bytes.Buffer
	vm, err := r.newRuntime(&stderr)
	if err != nil {
		return nil, failure.IO(err)
	}

	stop := context.AfterFunc(ctx, func() {
		vm.Interrupt(ctx.Err())
	})
	defer stop()

	startTime := time.Now()
	value, runErr := vm.RunString(program)
	outcome := &runner.Outcome{Duration: time.Since(startTime)}

	if runErr != nil {
		var interrupted *gojaLib.InterruptedError
		if errors.As(runErr, &interrupted) {
			logger.DebugContext(ctx, "runtime interrupted", "reason", ctx.Err())
			return nil, failure.Canceled(ctx.Err())
		}
		stderr.WriteString(errorPrefix + errorMessage(runErr) + "\n")
		outcome.ExitCode = 1
		outcome.Stderr = stderr.Bytes()
		logger.DebugContext(ctx, "script raised an error", "duration", outcome.Duration)
		return outcome, nil
	}

	var stdout bytes.Buffer
	if value != nil && !gojaLib.IsUndefined(value) {
		stdout.WriteString(value.String())
		stdout.WriteByte('\n')
	}
	outcome.Success = true
	outcome.Stdout = stdout.Bytes()
	outcome.Stderr = stderr.Bytes()

	logger.DebugContext(ctx, "script completed",
		"stdoutBytes", len(outcome.Stdout),
		"stderrBytes", len(outcome.Stderr),
		"duration", outcome.Duration,
	)
	return outcome, nil
}

func (r *Runner) newRuntime(stderr *bytes.Buffer) (*gojaLib.Runtime, error) {
	vm := gojaLib.New()
	vm.SetFieldNameMapper(gojaLib.TagFieldNameMapper("json", true))

	console := vm.NewObject()
	if err := console.Set("log", func(call gojaLib.FunctionCall) gojaLib.Value {
		parts := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			parts[i] = arg.String()
		}
		stderr.WriteString(strings.Join(parts, " ") + "\n")
		return gojaLib.Undefined()
	}); err != nil {
		return nil, fmt.Errorf("failed to define console.log: %w", err)
	}
	if err := vm.Set("console", console); err != nil {
		return nil, fmt.Errorf("failed to define console: %w", err)
	}

	for name, v := range r.globals {
		if m, ok := v.(map[string]any); ok {
			v = maps.Clone(m)
		}
		if err := vm.Set(name, v); err != nil {
			return nil, fmt.Errorf("failed to define global %q: %w", name, err)
		}
	}
	return vm, nil
}

// errorMessage returns the thrown value's string form, e.g. "Error: boom".
func errorMessage(err error) string {
	var exception *gojaLib.Exception
	if errors.As(err, &exception) {
		if v := exception.Value(); v != nil {
			return v.String()
		}
	}
	return err.Error()
}

var _ runner.Runner = (*Runner)(nil)
