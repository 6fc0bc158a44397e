package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ks-server/internal/logger"
	"github.com/MKhiriev/ks-server/models"
)

type projectService struct {
	resolver ConfigResolver

	logger *logger.Logger
}

func NewProjectService(resolver ConfigResolver, logger *logger.Logger) ProjectService {
	return &projectService{
		resolver: resolver,
		logger:   logger,
	}
}

func (s *projectService) CheckProject(ctx context.Context, name string) (models.Outcome, error) {
	cfg, err := s.resolver.Resolve(ctx)
	if err != nil {
		return models.OutcomeUnknown, fmt.Errorf("error resolving projects config: %w", err)
	}

	outcome := Classify(cfg.Projects, name)
	s.logger.Debug().Str("project", name).Stringer("outcome", outcome).Msg("project classified")

	return outcome, nil
}

// Classify returns the outcome of name against the project mapping:
// absent is Unknown, true is Enabled, false is Disabled.
func Classify(projects map[string]bool, name string) models.Outcome {
	enabled, ok := projects[name]
	switch {
	case !ok:
		return models.OutcomeUnknown
	case enabled:
		return models.OutcomeEnabled
	default:
		return models.OutcomeDisabled
	}
}
