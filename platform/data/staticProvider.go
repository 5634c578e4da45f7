package data

import (
	"context"
	"fmt"
	"maps"
)

// StaticProvider returns the same parameters on every call. Useful for values
// fixed when the script is constructed.
type StaticProvider struct {
	data map[string]any
}

func NewStaticProvider(data map[string]any) *StaticProvider {
	if data == nil {
		data = make(map[string]any)
	}
	return &StaticProvider{data: maps.Clone(data)}
}

// GetData returns a shallow copy of the static map.
func (p *StaticProvider) GetData(ctx context.Context) (map[string]any, error) {
	return maps.Clone(p.data), nil
}

// AddDataToContext always fails; static data is fixed at construction.
func (p *StaticProvider) AddDataToContext(
	ctx context.Context,
	data ...map[string]any,
) (context.Context, error) {
	return ctx, fmt.Errorf("%w", ErrStaticProviderNoRuntimeUpdates)
}
