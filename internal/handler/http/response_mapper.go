package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/ks-server/internal/service"
	"github.com/MKhiriev/ks-server/internal/validators"
	"github.com/MKhiriev/ks-server/models"
)

var errorStatusMap = map[error]int{
	ErrUnsupportedContentType:      http.StatusBadRequest,
	ErrInvalidJSON:                 http.StatusBadRequest,
	validators.ErrEmptyProjectName: http.StatusBadRequest,
	validators.ErrUnsupportedType:  http.StatusBadRequest,

	service.ErrConfigRead:  http.StatusInternalServerError,
	service.ErrConfigParse: http.StatusInternalServerError,
}

var outcomeStatusMap = map[models.Outcome]int{
	models.OutcomeEnabled:  http.StatusNoContent,
	models.OutcomeDisabled: http.StatusPaymentRequired,
	models.OutcomeUnknown:  http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// responseFor maps the result of a lookup to its response. A resolution
// error wins over the outcome.
func responseFor(outcome models.Outcome, err error) models.ResponseDescriptor {
	if err != nil {
		return models.ResponseDescriptor{StatusCode: statusFromError(err)}
	}

	status, ok := outcomeStatusMap[outcome]
	if !ok {
		status = http.StatusInternalServerError
	}

	return models.ResponseDescriptor{StatusCode: status}
}
