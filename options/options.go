// Package options configures scripts created by the root osascript package.
package options

import (
	"fmt"
	"log/slog"

	"github.com/robbyt/go-osascript/platform/data"
	"github.com/robbyt/go-osascript/platform/runner"
	"github.com/robbyt/go-osascript/platform/script/loader"
)

// Config holds all configuration for creating a script
type Config struct {
	// Logger for the script
	handler slog.Handler
	// Runner that executes the wrapped program
	runner runner.Runner
	// Data provider for values bound to $params by Eval
	dataProvider data.Provider
	// Loader for the script body
	loader loader.Loader
}

// Option is a function that modifies Config
type Option func(*Config) error

// WithLogHandler sets the log handler for the script
func WithLogHandler(handler slog.Handler) Option {
	return func(c *Config) error {
		if handler == nil {
			return fmt.Errorf("log handler cannot be nil")
		}
		c.handler = handler
		return nil
	}
}

// WithLogger uses the handler of an existing logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		c.handler = logger.Handler()
		return nil
	}
}

// WithRunner sets the runner, e.g. an osascript Executor with a timeout or
// the in-process goja runner.
func WithRunner(r runner.Runner) Option {
	return func(c *Config) error {
		if r == nil {
			return fmt.Errorf("runner cannot be nil")
		}
		c.runner = r
		return nil
	}
}

// WithDataProvider sets the data provider used by Eval
func WithDataProvider(provider data.Provider) Option {
	return func(c *Config) error {
		if provider == nil {
			return fmt.Errorf("data provider cannot be nil")
		}
		c.dataProvider = provider
		return nil
	}
}

// WithLoader sets the script loader
func WithLoader(l loader.Loader) Option {
	return func(c *Config) error {
		if l == nil {
			return fmt.Errorf("loader cannot be nil")
		}
		c.loader = l
		return nil
	}
}

// Validate performs basic validation on the configuration
func (c *Config) Validate() error {
	if c.loader == nil {
		return fmt.Errorf("no loader specified")
	}
	if c.runner == nil {
		return fmt.Errorf("no runner specified")
	}
	if c.dataProvider == nil {
		return fmt.Errorf("no data provider specified")
	}
	if c.handler == nil {
		return fmt.Errorf("no log handler specified")
	}
	return nil
}

// GetHandler returns the configured log handler
func (c *Config) GetHandler() slog.Handler {
	return c.handler
}

// GetRunner returns the configured runner
func (c *Config) GetRunner() runner.Runner {
	return c.runner
}

// GetDataProvider returns the configured data provider
func (c *Config) GetDataProvider() data.Provider {
	return c.dataProvider
}

// GetLoader returns the configured loader
func (c *Config) GetLoader() loader.Loader {
	return c.loader
}
