package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ks-server/models"
)

const (
	FieldName = "name"
)

type LookupRequestValidator struct {
}

func NewLookupRequestValidator() Validator {
	return &LookupRequestValidator{}
}

// Validate checks a [models.LookupRequest] (value or pointer). With no fields
// given every field is validated.
func (v *LookupRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LookupRequest:
		return v.validateLookupRequest(ctx, value, fields...)
	case *models.LookupRequest:
		if value == nil {
			return fmt.Errorf("%w: nil *models.LookupRequest", ErrUnsupportedType)
		}
		return v.validateLookupRequest(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *LookupRequestValidator) validateLookupRequest(_ context.Context, req models.LookupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if req.Name == "" {
				return ErrEmptyProjectName
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
