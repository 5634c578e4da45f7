// Package httpauth applies credentials to requests that fetch remote scripts.
package httpauth

import (
	"context"
	"net/http"
)

// Authenticator adds authentication to an outgoing request in place.
type Authenticator interface {
	Authenticate(req *http.Request) error
	AuthenticateWithContext(ctx context.Context, req *http.Request) error
	Name() string
}

// applyAuthWithContext refuses to authenticate once ctx is done.
func applyAuthWithContext(
	ctx context.Context,
	req *http.Request,
	authFn func(*http.Request) error,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return authFn(req)
}
