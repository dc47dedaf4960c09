// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks decoded request payloads before they reach the
// service layer.
//
// Two validators exist: the post validator for create requests and the demo
// validator for the username payloads of the /tests endpoints. Handlers call
// Validate with the decoded value and, optionally, the names of the fields
// to check; an unknown field name is an error.
package validators

import "context"

// Validator checks a single decoded payload.
type Validator interface {
	// Validate returns nil when value passes. fields narrows the check to
	// the named fields; with none given every field is checked.
	Validate(ctx context.Context, value any, fields ...string) error
}
