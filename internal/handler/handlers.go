package handler

import (
	"github.com/MKhiriev/ks-server/internal/handler/http"
	"github.com/MKhiriev/ks-server/internal/logger"
	"github.com/MKhiriev/ks-server/internal/service"
	"github.com/MKhiriev/ks-server/internal/validators"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil || services.ProjectService == nil {
		return nil, errNoServicesProvided
	}

	return &Handlers{
		HTTP: http.NewHandler(services, validators.NewLookupRequestValidator(), logger),
	}, nil
}
