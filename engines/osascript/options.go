package osascript

import (
	"fmt"
	"log/slog"
	"maps"
	"time"

	"github.com/robbyt/go-osascript/platform/constants"
)

// FunctionalOption is a function that configures an Executor instance
type FunctionalOption func(*Executor) error

// WithInterpreter sets the interpreter binary. A bare name is resolved
// through PATH when the process starts.
func WithInterpreter(path string) FunctionalOption {
	return func(e *Executor) error {
		if path == "" {
			return fmt.Errorf("interpreter path cannot be empty")
		}
		e.interpreter = path
		return nil
	}
}

// WithTimeout bounds every run. When it elapses the interpreter is killed and
// the run fails with a cancellation failure. Zero disables the bound.
func WithTimeout(d time.Duration) FunctionalOption {
	return func(e *Executor) error {
		if d < 0 {
			return fmt.Errorf("timeout cannot be negative: %s", d)
		}
		e.timeout = d
		return nil
	}
}

// WithEnv adds variables to the interpreter's environment, on top of the
// current process environment.
func WithEnv(env map[string]string) FunctionalOption {
	return func(e *Executor) error {
		for k := range env {
			if k == "" {
				return fmt.Errorf("environment variable name cannot be empty")
			}
		}
		if e.env == nil {
			e.env = make(map[string]string, len(env))
		}
		maps.Copy(e.env, env)
		return nil
	}
}

// WithLogHandler creates an option to set the log handler for the executor.
func WithLogHandler(handler slog.Handler) FunctionalOption {
	return func(e *Executor) error {
		if handler == nil {
			return fmt.Errorf("log handler cannot be nil")
		}
		e.logHandler = handler
		e.logger = nil
		return nil
	}
}

// WithLogger creates an option to set a specific logger for the executor.
func WithLogger(logger *slog.Logger) FunctionalOption {
	return func(e *Executor) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		e.logger = logger
		e.logHandler = nil
		return nil
	}
}

func (e *Executor) applyDefaults() {
	if e.interpreter == "" {
		e.interpreter = constants.Interpreter
	}
}

func (e *Executor) validate() error {
	if e.interpreter == "" {
		return fmt.Errorf("interpreter must be specified")
	}
	return nil
}
