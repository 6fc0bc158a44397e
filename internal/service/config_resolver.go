package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/ks-server/internal/logger"
	"github.com/MKhiriev/ks-server/internal/metrics"
	"github.com/MKhiriev/ks-server/internal/store"
	"github.com/MKhiriev/ks-server/models"
	"gopkg.in/yaml.v3"
)

// configFile mirrors the YAML schema. Pointer fields tell a missing key apart
// from a zero value.
type configFile struct {
	Server *struct {
		Host *string `yaml:"host"`
		Port *uint16 `yaml:"port"`
	} `yaml:"server"`
	Projects map[string]*bool `yaml:"projects"`
}

type configResolver struct {
	source store.ConfigSource

	logger *logger.Logger
}

func NewConfigResolver(source store.ConfigSource, logger *logger.Logger) (ConfigResolver, error) {
	if source == nil {
		return nil, ErrNilConfigSource
	}

	return &configResolver{
		source: source,
		logger: logger,
	}, nil
}

func (r *configResolver) Resolve(ctx context.Context) (*models.Configuration, error) {
	start := time.Now()
	defer func() {
		metrics.ConfigResolutionDuration.Observe(time.Since(start).Seconds())
	}()

	raw, err := r.source.Read(ctx)
	if err != nil {
		metrics.ConfigResolutions.WithLabelValues(metrics.ResolutionReadError).Inc()
		r.logger.Debug().Err(err).Str("location", r.source.Location()).Msg("config read failed")
		return nil, newReadError(err)
	}

	cfg, err := parseConfiguration(raw)
	if err != nil {
		metrics.ConfigResolutions.WithLabelValues(metrics.ResolutionParseError).Inc()
		r.logger.Debug().Err(err).Str("location", r.source.Location()).Msg("config parse failed")
		return nil, newParseError(err)
	}

	metrics.ConfigResolutions.WithLabelValues(metrics.ResolutionOK).Inc()
	return cfg, nil
}

func parseConfiguration(raw []byte) (*models.Configuration, error) {
	var file configFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}

	switch {
	case file.Server == nil:
		return nil, errors.New("missing field `server`")
	case file.Server.Host == nil:
		return nil, errors.New("server: missing field `host`")
	case file.Server.Port == nil:
		return nil, errors.New("server: missing field `port`")
	case file.Projects == nil:
		return nil, errors.New("missing field `projects`")
	}

	projects := make(map[string]bool, len(file.Projects))
	for name, enabled := range file.Projects {
		if enabled == nil {
			return nil, fmt.Errorf("projects: %q has no enabled flag", name)
		}
		projects[name] = *enabled
	}

	return &models.Configuration{
		Server: models.ServerConfig{
			Host: *file.Server.Host,
			Port: *file.Server.Port,
		},
		Projects: projects,
	}, nil
}
