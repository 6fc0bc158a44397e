package store

import (
	"fmt"

	"github.com/MKhiriev/ks-server/internal/config"
	"github.com/MKhiriev/ks-server/internal/logger"
)

// Storages groups the data sources used by the service layer.
type Storages struct {
	ConfigSource ConfigSource
}

// NewStorages builds all storages from the projects section of the process
// configuration.
func NewStorages(cfg config.Projects, logger *logger.Logger) (*Storages, error) {
	source, err := NewFileConfigSource(cfg.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("error creating config source: %w", err)
	}

	logger.Info().Str("location", source.Location()).Msg("config source created")

	return &Storages{
		ConfigSource: source,
	}, nil
}
