package helpers

import (
	"log/slog"
	"os"
)

// SetupLogger returns the handler and a logger grouped under subgroup.
// A nil handler is replaced with a text handler on stdout, grouped under
// component, and a warning is emitted once through it.
func SetupLogger(handler slog.Handler, component string, subgroup string) (slog.Handler, *slog.Logger) {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stdout, nil).WithGroup(component)
		slog.New(handler).Warn("Handler is nil, using the default logger configuration.")
	}

	if subgroup == "" {
		return handler, slog.New(handler)
	}
	return handler, slog.New(handler.WithGroup(subgroup))
}

// LoggerOrHandler resolves the pair of logging options most components accept.
// An explicit logger wins over a handler; otherwise SetupLogger is used.
func LoggerOrHandler(
	logger *slog.Logger,
	handler slog.Handler,
	component string,
	subgroup string,
) (slog.Handler, *slog.Logger) {
	if logger != nil {
		return logger.Handler(), logger
	}
	return SetupLogger(handler, component, subgroup)
}
