package adapter

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/ks-server/models"
	"github.com/go-resty/resty/v2"
)

var outcomeByStatus = map[int]models.Outcome{
	http.StatusNoContent:       models.OutcomeEnabled,
	http.StatusPaymentRequired: models.OutcomeDisabled,
	http.StatusNotFound:        models.OutcomeUnknown,
}

// mapOutcome translates a lookup response into an outcome. Statuses that
// carry no outcome are turned into errors by mapHTTPError.
func mapOutcome(resp *resty.Response) (models.Outcome, error) {
	if outcome, ok := outcomeByStatus[resp.StatusCode()]; ok {
		return outcome, nil
	}
	return models.OutcomeUnknown, mapHTTPError(resp)
}

func mapHTTPError(resp *resty.Response) error {
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, resp.StatusCode(), http.StatusText(resp.StatusCode()))
	}
}
