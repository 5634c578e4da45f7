package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/robbyt/go-osascript/platform/script/loader/httpauth"
)

const userAgent = "go-osascript/http-loader"

// HTTPOptions configures FromHTTP.
type HTTPOptions struct {
	// Timeout bounds each fetch. Zero means no timeout.
	Timeout time.Duration

	// Authenticator is applied to every request. Nil means no authentication.
	Authenticator httpauth.Authenticator

	// Client overrides the HTTP client, e.g. for custom TLS settings.
	Client *http.Client
}

// DefaultHTTPOptions returns a 30 second timeout and no authentication.
func DefaultHTTPOptions() *HTTPOptions {
	return &HTTPOptions{
		Timeout:       30 * time.Second,
		Authenticator: httpauth.NewNoAuth(),
	}
}

// FromHTTP fetches a script body from an http or https URL.
type FromHTTP struct {
	url       string
	sourceURL *url.URL
	auth      httpauth.Authenticator
	client    *http.Client
}

func NewFromHTTP(rawURL string) (*FromHTTP, error) {
	return NewFromHTTPWithOptions(rawURL, DefaultHTTPOptions())
}

func NewFromHTTPWithOptions(rawURL string, options *HTTPOptions) (*FromHTTP, error) {
	sourceURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("unable to parse URL: %w", err)
	}

	if sourceURL.Scheme != "http" && sourceURL.Scheme != "https" {
		return nil, fmt.Errorf("%w: %s", ErrSchemeUnsupported, rawURL)
	}

	if options == nil {
		options = DefaultHTTPOptions()
	}

	client := options.Client
	if client == nil {
		client = &http.Client{Timeout: options.Timeout}
	}

	auth := options.Authenticator
	if auth == nil {
		auth = httpauth.NewNoAuth()
	}

	return &FromHTTP{
		url:       rawURL,
		sourceURL: sourceURL,
		auth:      auth,
		client:    client,
	}, nil
}

func (l *FromHTTP) String() string {
	return fmt.Sprintf("loader.FromHTTP{URL: %s, Auth: %s}", l.url, l.auth.Name())
}

// GetReader fetches the script with a background context.
func (l *FromHTTP) GetReader() (io.ReadCloser, error) {
	return l.GetReaderWithContext(context.Background())
}

// GetReaderWithContext fetches the script. Non-2xx responses are reported as
// ErrScriptNotAvailable.
func (l *FromHTTP) GetReaderWithContext(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	if err := l.auth.AuthenticateWithContext(ctx, req); err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute HTTP request: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: HTTP %d - %s", ErrScriptNotAvailable, resp.StatusCode, resp.Status)
	}

	return resp.Body, nil
}

// GetSourceURL returns the source URL.
func (l *FromHTTP) GetSourceURL() *url.URL {
	return l.sourceURL
}
