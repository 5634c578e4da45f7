package options

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/robbyt/go-osascript/engines/osascript"
	"github.com/robbyt/go-osascript/platform/constants"
	"github.com/robbyt/go-osascript/platform/data"
	"github.com/robbyt/go-osascript/platform/runner"
)

// DefaultConfig initializes a Config with every default except the loader.
func DefaultConfig() (*Config, error) {
	cfg := &Config{}
	if err := WithDefaults()(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultHandler returns the default logging handler
func DefaultHandler() slog.Handler {
	return slog.NewTextHandler(os.Stdout, nil)
}

// DefaultDataProvider returns an empty static map combined with a
// ContextProvider, so Eval binds {} unless AddDataToContext supplied values.
func DefaultDataProvider() data.Provider {
	return data.NewCompositeProvider(
		data.NewStaticProvider(map[string]any{}),
		data.NewContextProvider(constants.EvalData),
	)
}

// DefaultRunner returns an osascript Executor logging through handler.
func DefaultRunner(handler slog.Handler) (runner.Runner, error) {
	e, err := osascript.New(osascript.WithLogHandler(handler))
	if err != nil {
		return nil, fmt.Errorf("failed to create default runner: %w", err)
	}
	return e, nil
}

// WithDefaults applies default values to any config properties that are nil
func WithDefaults() Option {
	return func(c *Config) error {
		if c.handler == nil {
			c.handler = DefaultHandler()
		}

		if c.dataProvider == nil {
			c.dataProvider = DefaultDataProvider()
		}

		if c.runner == nil {
			r, err := DefaultRunner(c.handler)
			if err != nil {
				return err
			}
			c.runner = r
		}
		return nil
	}
}
