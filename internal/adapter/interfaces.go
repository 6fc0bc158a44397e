// Package adapter provides the client-side transport used to query a running
// ks-server.
//
// The central abstraction is [ServerAdapter]. Its HTTP implementation sends
// lookup requests with resty and maps the bodiless status codes of the
// server back to a [models.Outcome].
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] instead of inspecting
// status codes (e.g. [ErrBadRequest] for 400, [ErrInternalServerError] for
// 500).
package adapter

import (
	"context"

	"github.com/MKhiriev/ks-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter asks a remote ks-server about projects.
type ServerAdapter interface {
	// CheckProject sends POST / with the project name and returns the
	// server's verdict. A 500 response (unreadable or invalid server
	// configuration) is returned as [ErrInternalServerError], a rejected
	// request as [ErrBadRequest].
	CheckProject(ctx context.Context, name string) (models.Outcome, error)
}
