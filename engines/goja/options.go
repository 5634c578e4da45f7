package goja

import (
	"fmt"
	"log/slog"
	"maps"
)

// FunctionalOption is a function that configures a Runner instance
type FunctionalOption func(*Runner) error

// WithGlobals binds extra host values into every runtime before the program
// runs, e.g. a stand-in for the Application object. A map[string]any value
// is copied per run, so a script adding or replacing its keys cannot affect
// other runs. Anything else is shared between concurrent runs and must be
// safe to use that way; treat such values as read-only.
func WithGlobals(globals map[string]any) FunctionalOption {
	return func(r *Runner) error {
		for name := range globals {
			if name == "" {
				return fmt.Errorf("global name cannot be empty")
			}
		}
		if r.globals == nil {
			r.globals = make(map[string]any, len(globals))
		}
		maps.Copy(r.globals, globals)
		return nil
	}
}

// WithLogHandler creates an option to set the log handler for the runner.
func WithLogHandler(handler slog.Handler) FunctionalOption {
	return func(r *Runner) error {
		if handler == nil {
			return fmt.Errorf("log handler cannot be nil")
		}
		r.logHandler = handler
		r.logger = nil
		return nil
	}
}

// WithLogger creates an option to set a specific logger for the runner.
func WithLogger(logger *slog.Logger) FunctionalOption {
	return func(r *Runner) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		r.logger = logger
		r.logHandler = nil
		return nil
	}
}
