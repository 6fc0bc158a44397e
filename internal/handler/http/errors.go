// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors describing why a request body was rejected before it
// reached the service layer. All of them map to 400 Bad Request.
var (
	// ErrUnsupportedContentType is returned when the request does not declare
	// an "application/json" body.
	ErrUnsupportedContentType = errors.New("request content type is not application/json")

	// ErrInvalidJSON is returned when the body is not a single JSON object
	// matching the lookup request shape.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)

// Details wrapped under ErrInvalidJSON.
var (
	errInvalidUTF8      = errors.New("body is not valid UTF-8")
	errNotAnObject      = errors.New("expected a JSON object")
	errDuplicateField   = errors.New("duplicate field")
	errMissingField     = errors.New("missing field")
	errInvalidFieldType = errors.New("invalid type")
	errTrailingData     = errors.New("trailing data after JSON value")
)
