// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by [ConfigError.Is], so callers can test the kind of
// a resolution failure with [errors.Is].
var (
	ErrConfigRead  = errors.New("config read error")
	ErrConfigParse = errors.New("config parse error")

	ErrNilConfigSource = errors.New("config source is nil")
)

// ConfigErrorKind tells which step of a resolution failed.
type ConfigErrorKind int

const (
	// ReadError means the source could not be read (missing, inaccessible,
	// I/O fault).
	ReadError ConfigErrorKind = iota + 1
	// ParseError means bytes were read but do not match the expected
	// schema.
	ParseError
)

func (k ConfigErrorKind) String() string {
	switch k {
	case ReadError:
		return "read"
	case ParseError:
		return "parse"
	default:
		return "unknown"
	}
}

// ConfigError is the failure of a configuration resolution.
//
// Use [errors.As] to get the Kind, or [errors.Is] with [ErrConfigRead] /
// [ErrConfigParse].
type ConfigError struct {
	// Kind is the failed step.
	Kind ConfigErrorKind
	// Detail describes the underlying cause.
	Detail string
	// Err is the underlying cause, if any.
	Err error
}

func newReadError(err error) *ConfigError {
	return &ConfigError{Kind: ReadError, Detail: err.Error(), Err: err}
}

func newParseError(err error) *ConfigError {
	return &ConfigError{Kind: ParseError, Detail: err.Error(), Err: err}
}

func (e *ConfigError) Error() string {
	switch e.Kind {
	case ReadError:
		return fmt.Sprintf("error reading config file: %s", e.Detail)
	case ParseError:
		return fmt.Sprintf("error parsing config file: %s", e.Detail)
	default:
		return fmt.Sprintf("config error: %s", e.Detail)
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func (e *ConfigError) Is(target error) bool {
	switch target {
	case ErrConfigRead:
		return e.Kind == ReadError
	case ErrConfigParse:
		return e.Kind == ParseError
	default:
		return false
	}
}
