// Package data supplies the values bound to $params when a script is evaluated
// through the Evaluator interface.
package data

import (
	"context"
	"errors"
)

// ErrStaticProviderNoRuntimeUpdates is returned by StaticProvider.AddDataToContext.
var ErrStaticProviderNoRuntimeUpdates = errors.New("static provider does not accept runtime updates")

// Getter defines the interface for retrieving data from a context.
type Getter interface {
	GetData(ctx context.Context) (map[string]any, error)
}

// Setter prepares data for evaluation by enriching a context.
//
// Example:
//
//	ctx, err := script.AddDataToContext(ctx, map[string]any{"title": "Build finished"})
//	if err != nil {
//	    return err
//	}
//	resp, err := script.Eval(ctx)
type Setter interface {
	AddDataToContext(ctx context.Context, data ...map[string]any) (context.Context, error)
}

// Provider is both a Getter and a Setter.
type Provider interface {
	Getter
	Setter
}
