package data

import (
	"context"
	"fmt"
	"log/slog"
)

// AddDataToContextHelper is the shared AddDataToContext implementation for
// evaluators that hold a Provider.
func AddDataToContextHelper(
	ctx context.Context,
	logger *slog.Logger,
	provider Provider,
	d ...map[string]any,
) (context.Context, error) {
	if provider == nil {
		if logger != nil {
			logger.WarnContext(ctx, "no data provider available for context preparation")
		}
		return ctx, fmt.Errorf("no data provider available")
	}

	enrichedCtx, err := provider.AddDataToContext(ctx, d...)
	if err != nil {
		return enrichedCtx, fmt.Errorf("failed to prepare context: %w", err)
	}
	return enrichedCtx, nil
}
