// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Post is a persisted article record.
// ID is assigned by storage and never changes after creation.
type Post struct {
	// ID is the storage-generated primary key.
	ID int64 `json:"id"`

	// Title is the headline of the post.
	Title string `json:"title"`

	// Body is the post text.
	Body string `json:"body"`

	// Published reports whether the post is visible in the public list.
	// New posts start unpublished.
	Published bool `json:"published"`
}

// NewPost is the creation payload for a post.
//
// Only Title and Body travel over the wire. ID is filled by storage from the
// inserted row and is never serialized, so the create response keeps the
// {"title","body"} shape.
type NewPost struct {
	ID    int64  `json:"-"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// CreatePostRequest is the decoded body of a create request.
// Pointer fields let validation tell a missing field from an empty one.
type CreatePostRequest struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

// ToNewPost converts a validated request into a [NewPost].
// Nil fields become empty strings.
func (r CreatePostRequest) ToNewPost() NewPost {
	var p NewPost
	if r.Title != nil {
		p.Title = *r.Title
	}
	if r.Body != nil {
		p.Body = *r.Body
	}
	return p
}
