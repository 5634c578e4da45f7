package loader

import (
	"fmt"
	"io"
	"net/url"
)

// FromIoReader implements the Loader interface for content from an io.Reader.
// The reader is drained once at construction so GetReader can be called repeatedly.
type FromIoReader struct {
	*FromBytes
}

func NewFromIoReader(reader io.Reader, sourceName string) (*FromIoReader, error) {
	if reader == nil {
		return nil, fmt.Errorf("%w: reader is nil", ErrScriptNotAvailable)
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read from reader: %w", err)
	}

	fb, err := NewFromBytes(content)
	if err != nil {
		return nil, err
	}

	if sourceName == "" {
		sourceName = "unnamed"
	}
	u, err := url.Parse("reader://" + sourceName + fb.sourceURL.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to create source URL: %w", err)
	}
	fb.sourceURL = u

	return &FromIoReader{FromBytes: fb}, nil
}

func (l *FromIoReader) String() string {
	return fmt.Sprintf("loader.FromIoReader{Bytes: %d, Source: %s}", len(l.content), l.sourceURL)
}
