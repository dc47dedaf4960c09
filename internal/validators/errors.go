package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingTitle    = errors.New("title is required")
	ErrMissingBody     = errors.New("body is required")
	ErrMissingUsername = errors.New("username is required")
)
