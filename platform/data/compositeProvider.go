package data

import (
	"context"
	"errors"
	"fmt"
	"maps"
)

// CompositeProvider merges several providers; later providers override
// earlier ones key by key, with nested maps merged.
type CompositeProvider struct {
	providers []Provider
}

func NewCompositeProvider(providers ...Provider) *CompositeProvider {
	return &CompositeProvider{providers: providers}
}

// GetData merges the data of all providers and stops at the first error.
func (p *CompositeProvider) GetData(ctx context.Context) (map[string]any, error) {
	result := make(map[string]any)
	for i, provider := range p.providers {
		if provider == nil {
			continue
		}
		d, err := provider.GetData(ctx)
		if err != nil {
			return nil, fmt.Errorf("error from provider %d: %w", i, err)
		}
		result = deepMerge(result, d)
	}
	return result, nil
}

// AddDataToContext hands the data to every provider that accepts runtime
// updates. It fails only when none of them accepted it.
func (p *CompositeProvider) AddDataToContext(
	ctx context.Context,
	data ...map[string]any,
) (context.Context, error) {
	finalCtx := ctx
	var errs []error
	accepted := 0

	for i, provider := range p.providers {
		if provider == nil {
			continue
		}
		nextCtx, err := provider.AddDataToContext(finalCtx, data...)
		if err != nil {
			errs = append(errs, fmt.Errorf("error from provider %d: %w", i, err))
			continue
		}
		finalCtx = nextCtx
		accepted++
	}

	if accepted == 0 && len(errs) > 0 {
		return ctx, errors.Join(errs...)
	}
	return finalCtx, nil
}

// deepMerge returns src overlaid with dst. Nested maps are merged, every
// other value in dst replaces the one in src. Neither input is modified.
func deepMerge(src, dst map[string]any) map[string]any {
	result := maps.Clone(src)
	if result == nil {
		result = make(map[string]any)
	}

	for k, dstVal := range dst {
		srcMap, srcIsMap := result[k].(map[string]any)
		dstMap, dstIsMap := dstVal.(map[string]any)
		if srcIsMap && dstIsMap {
			result[k] = deepMerge(srcMap, dstMap)
			continue
		}
		result[k] = dstVal
	}
	return result
}
