package loader

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/robbyt/go-osascript/internal/helpers"
)

// FromString holds a JXA body written inline by the caller. The body is
// opaque: it is never trimmed or checked, so an empty body is allowed and
// evaluates to null once wrapped.
type FromString struct {
	content   string
	sourceURL *url.URL
}

// NewFromString wraps content, labelled by a hash of the body.
func NewFromString(content string) (*FromString, error) {
	u, err := url.Parse("string://inline/" + helpers.SHA256(content)[:8])
	if err != nil {
		return nil, fmt.Errorf("failed to create source URL: %w", err)
	}

	return &FromString{
		content:   content,
		sourceURL: u,
	}, nil
}

func (l *FromString) String() string {
	return fmt.Sprintf("loader.FromString{Chars: %d}", len(l.content))
}

// GetReader returns a new reader over the body on every call.
func (l *FromString) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(l.content)), nil
}

// GetSourceURL returns the source URL of the script.
func (l *FromString) GetSourceURL() *url.URL {
	return l.sourceURL
}
