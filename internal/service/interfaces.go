package service

import (
	"context"

	"github.com/MKhiriev/ks-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// ConfigResolver turns the external configuration source into a fresh
// [models.Configuration] snapshot on every call. It never caches.
type ConfigResolver interface {
	// Resolve reads and parses the configuration source. On failure the
	// returned error is a *[ConfigError] of kind [ReadError] or [ParseError].
	Resolve(ctx context.Context) (*models.Configuration, error)
}

// ProjectService answers whether a project is known and enabled.
type ProjectService interface {
	// CheckProject resolves the current configuration and classifies name
	// against its project mapping. If resolution fails no lookup is
	// attempted and the resolution error is returned.
	CheckProject(ctx context.Context, name string) (models.Outcome, error)
}
