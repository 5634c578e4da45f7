package loader

import (
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"
)

// InferLoader picks a Loader for input:
//   - string: http(s) URL, file:// URL or absolute path, otherwise an inline body
//   - []byte: FromBytes
//   - io.Reader: FromIoReader
//   - Loader: returned as-is
func InferLoader(input any) (Loader, error) {
	switch v := input.(type) {
	case Loader:
		return v, nil
	case string:
		return inferFromString(v)
	case []byte:
		return NewFromBytes(v)
	case io.Reader:
		return NewFromIoReader(v, "inferred")
	default:
		return nil, fmt.Errorf("unsupported input type: %T", input)
	}
}

func inferFromString(input string) (Loader, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty string input", ErrScriptNotAvailable)
	}

	// Multi-line input is always a script body.
	if !strings.ContainsAny(trimmed, "\n\r") {
		if parsed, err := url.Parse(trimmed); err == nil {
			switch parsed.Scheme {
			case "http", "https":
				return NewFromHTTP(trimmed)
			case "file":
				return NewFromDisk(parsed.Path)
			}
		}
		if filepath.IsAbs(trimmed) && strings.HasSuffix(trimmed, ".js") {
			return NewFromDisk(trimmed)
		}
	}

	return NewFromString(input)
}
