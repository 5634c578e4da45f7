// Package osascript runs JavaScript for Automation snippets through the
// osascript interpreter. Parameters are passed in as JSON bound to $params
// and the value the snippet returns is decoded into a Go value.
//
//	s, err := osascript.New(`return $params.a + $params.b;`)
//	if err != nil {
//	    return err
//	}
//	sum, err := osascript.ExecuteWithParams[int](ctx, s, map[string]int{"a": 40, "b": 2})
package osascript

import (
	"fmt"

	"github.com/robbyt/go-osascript/options"
	"github.com/robbyt/go-osascript/platform/script/loader"
)

// New creates a script from an inline body. It is the same as FromString.
func New(code string, opts ...options.Option) (*JavaScript, error) {
	return FromString(code, opts...)
}

// FromString creates a script from an inline body. The body is kept exactly
// as given.
func FromString(code string, opts ...options.Option) (*JavaScript, error) {
	l, err := loader.NewFromString(code)
	if err != nil {
		return nil, err
	}
	return FromLoader(append([]options.Option{options.WithLoader(l)}, opts...)...)
}

// FromFile creates a script from a file. The path must be absolute.
func FromFile(path string, opts ...options.Option) (*JavaScript, error) {
	l, err := loader.NewFromDisk(path)
	if err != nil {
		return nil, err
	}
	return FromLoader(append([]options.Option{options.WithLoader(l)}, opts...)...)
}

// FromHTTP creates a script from a URL, fetched once with default HTTP
// options. Use FromLoader with loader.NewFromHTTPWithOptions for
// authentication or a custom client.
func FromHTTP(rawURL string, opts ...options.Option) (*JavaScript, error) {
	l, err := loader.NewFromHTTP(rawURL)
	if err != nil {
		return nil, err
	}
	return FromLoader(append([]options.Option{options.WithLoader(l)}, opts...)...)
}

// FromLoader creates a script from the loader set with options.WithLoader.
// The body is read once, here.
func FromLoader(opts ...options.Option) (*JavaScript, error) {
	cfg := &options.Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}

	// Apply defaults option as final step to fill in any missing values
	if err := options.WithDefaults()(cfg); err != nil {
		return nil, fmt.Errorf("error applying defaults: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return newJavaScript(cfg)
}
