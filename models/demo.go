// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PathParams are the segments of GET /tests/path/{object}/{method}/{id}.
type PathParams struct {
	Object string
	Method string
	ID     int32
}

// UsernamePayload is the fixed object returned by the JSON response demo.
type UsernamePayload struct {
	Username string `json:"username"`
}

// UsernameRequest is the body accepted by the JSON and form demo endpoints.
// A nil Username means the field was absent; an empty one is valid.
type UsernameRequest struct {
	Username *string `json:"username"`
}
