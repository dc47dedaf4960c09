package validators

import (
	"context"

	"github.com/MKhiriev/go-posts/models"
)

// FieldUsername targets the username of a demo payload.
const FieldUsername = "username"

// DemoValidator checks the bodies of the /tests demonstration endpoints.
type DemoValidator struct{}

func NewDemoValidator() Validator {
	return &DemoValidator{}
}

func (v *DemoValidator) Validate(_ context.Context, obj any, fields ...string) error {
	var payload models.UsernameRequest
	switch value := obj.(type) {
	case models.UsernameRequest:
		payload = value
	case *models.UsernameRequest:
		if value != nil {
			payload = *value
		}
	default:
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		fields = []string{FieldUsername}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if payload.Username == nil {
				return ErrMissingUsername
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
