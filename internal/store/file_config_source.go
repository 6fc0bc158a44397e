package store

import (
	"context"
	"fmt"
	"os"
)

// fileConfigSource is the file-system implementation of [ConfigSource].
// The file is opened and read in full on every call.
type fileConfigSource struct {
	path string
}

// NewFileConfigSource constructs a [ConfigSource] backed by the file at path.
// The file does not need to exist yet; a missing file surfaces as a read
// error on each Read.
func NewFileConfigSource(path string) (ConfigSource, error) {
	if path == "" {
		return nil, ErrEmptyConfigLocation
	}

	return &fileConfigSource{path: path}, nil
}

// Read returns the current content of the file. The context carries no
// cancellation semantics for a local file read and is not consulted.
func (f *fileConfigSource) Read(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigSourceUnavailable, err)
	}

	return data, nil
}

func (f *fileConfigSource) Location() string {
	return f.path
}
