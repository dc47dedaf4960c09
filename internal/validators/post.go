package validators

import (
	"context"

	"github.com/MKhiriev/go-posts/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldTitle targets the title of a create request.
	FieldTitle = "title"

	// FieldBody targets the body of a create request.
	FieldBody = "body"
)

// PostValidator checks decoded create-post requests.
type PostValidator struct{}

func NewPostValidator() Validator {
	return &PostValidator{}
}

// Validate accepts models.CreatePostRequest (value or pointer). Title and
// body must be present; empty strings are allowed.
func (v *PostValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreatePostRequest:
		return v.validateCreatePostRequest(ctx, value, fields...)
	case *models.CreatePostRequest:
		if value == nil {
			return ErrMissingTitle
		}
		return v.validateCreatePostRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *PostValidator) validateCreatePostRequest(_ context.Context, request models.CreatePostRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldBody}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if request.Title == nil {
				return ErrMissingTitle
			}
		case FieldBody:
			if request.Body == nil {
				return ErrMissingBody
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
