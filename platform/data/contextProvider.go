package data

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/robbyt/go-osascript/platform/constants"
)

// ContextProvider stores per-call parameters in the context under a key.
type ContextProvider struct {
	contextKey constants.ContextKey
}

func NewContextProvider(contextKey constants.ContextKey) *ContextProvider {
	return &ContextProvider{contextKey: contextKey}
}

// GetData returns the map stored under the key, or an empty map.
func (p *ContextProvider) GetData(ctx context.Context) (map[string]any, error) {
	if p.contextKey == "" {
		return nil, fmt.Errorf("context key is empty")
	}

	value := ctx.Value(p.contextKey)
	if value == nil {
		return make(map[string]any), nil
	}

	d, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid input data type: expected map[string]any, got %T", value)
	}
	return d, nil
}

// AddDataToContext merges the maps into a copy of any data already in ctx.
// Later maps win; nested maps are merged. Empty keys are rejected, but the
// remaining keys are still stored.
func (p *ContextProvider) AddDataToContext(
	ctx context.Context,
	data ...map[string]any,
) (context.Context, error) {
	if p.contextKey == "" {
		return ctx, fmt.Errorf("context key is empty")
	}

	toStore := make(map[string]any)
	if existing, ok := ctx.Value(p.contextKey).(map[string]any); ok {
		maps.Copy(toStore, existing)
	}

	var errz []error
	for _, m := range data {
		for key, value := range m {
			if key == "" {
				errz = append(errz, fmt.Errorf("empty keys are not allowed"))
				continue
			}
			toStore = deepMerge(toStore, map[string]any{key: value})
		}
	}

	return context.WithValue(ctx, p.contextKey, toStore), errors.Join(errz...)
}
