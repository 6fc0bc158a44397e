package store

import "errors"

// Sentinel errors returned by [ConfigSource] implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrConfigSourceUnavailable is returned when the configuration source
	// is missing, inaccessible, or fails with an I/O error.
	ErrConfigSourceUnavailable = errors.New("config source unavailable")

	// ErrEmptyConfigLocation is returned by [NewFileConfigSource] when no
	// path is given.
	ErrEmptyConfigLocation = errors.New("empty config source location")
)
