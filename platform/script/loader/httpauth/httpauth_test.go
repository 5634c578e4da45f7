package httpauth

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, "https://example.com/alert.js", nil)
	require.NoError(t, err)
	return req
}

func TestAuthenticators(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		auth   Authenticator
		header string
		want   string
	}{
		{
			name:   "None",
			auth:   NewNoAuth(),
			header: "Authorization",
			want:   "",
		},
		{
			name:   "Basic",
			auth:   NewBasicAuth("user", "pass"),
			header: "Authorization",
			want:   "Basic dXNlcjpwYXNz",
		},
		{
			name:   "Header",
			auth:   NewBearerAuth("token123"),
			header: "Authorization",
			want:   "Bearer token123",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.name, tc.auth.Name())

			req := newRequest(t)
			require.NoError(t, tc.auth.Authenticate(req))
			assert.Equal(t, tc.want, req.Header.Get(tc.header))

			req = newRequest(t)
			require.NoError(t, tc.auth.AuthenticateWithContext(context.Background(), req))
			assert.Equal(t, tc.want, req.Header.Get(tc.header))
		})
	}
}

func TestBasicAuthEmptyUsername(t *testing.T) {
	t.Parallel()

	req := newRequest(t)
	require.NoError(t, NewBasicAuth("", "pass").Authenticate(req))
	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestHeaderAuthCopiesHeaders(t *testing.T) {
	t.Parallel()

	headers := map[string]string{"X-API-Key": "k1"}
	auth := NewHeaderAuth(headers)
	headers["X-API-Key"] = "changed"

	req := newRequest(t)
	require.NoError(t, auth.Authenticate(req))
	assert.Equal(t, "k1", req.Header.Get("X-API-Key"))
}

func TestAuthenticateWithCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, auth := range []Authenticator{NewNoAuth(), NewBasicAuth("u", "p"), NewBearerAuth("t")} {
		req := newRequest(t)
		err := auth.AuthenticateWithContext(ctx, req)
		require.ErrorIs(t, err, context.Canceled, auth.Name())
		assert.Empty(t, req.Header.Get("Authorization"))
	}
}
