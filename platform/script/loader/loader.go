// Package loader reads JavaScript bodies from strings, files, readers and URLs.
package loader

import (
	"io"
	"net/url"
)

// Loader is an interface used to load script bodies.
type Loader interface {
	// GetReader returns a fresh reader over the script body. The caller closes it.
	GetReader() (io.ReadCloser, error)

	// GetSourceURL identifies where the body came from, for logs and IDs.
	GetSourceURL() *url.URL
}

// ReadAll loads the whole body from l and closes the reader.
func ReadAll(l Loader) (string, error) {
	reader, err := l.GetReader()
	if err != nil {
		return "", err
	}
	defer func() { _ = reader.Close() }()

	body, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
