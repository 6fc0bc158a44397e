package service

import (
	"fmt"

	"github.com/MKhiriev/ks-server/internal/logger"
	"github.com/MKhiriev/ks-server/internal/store"
)

type Services struct {
	ConfigResolver ConfigResolver
	ProjectService ProjectService
}

func NewServices(storages *store.Storages, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating new services...")

	resolver, err := NewConfigResolver(storages.ConfigSource, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating config resolver: %w", err)
	}

	return &Services{
		ConfigResolver: resolver,
		ProjectService: NewProjectService(resolver, logger),
	}, nil
}
