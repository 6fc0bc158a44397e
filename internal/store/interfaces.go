// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store provides access to the external project configuration
// source. The source is read-only from this system's point of view and is
// treated as opaque bytes; parsing belongs to the service layer.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/config_source_mock.go -package=mock

// ConfigSource yields the raw bytes of the project configuration.
//
// Implementations must not cache: every Read returns the current content of
// the source so that external edits are visible on the next call.
type ConfigSource interface {
	// Read returns the current raw content of the source, or an error
	// wrapping [ErrConfigSourceUnavailable] if it cannot be read.
	Read(ctx context.Context) ([]byte, error)

	// Location describes where the source lives (e.g. a file path). Used
	// in logs only.
	Location() string
}
