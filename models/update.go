package models

import "github.com/google/uuid"

// PostUpdate describes a partial update of a post. Nil pointer fields are
// left untouched by the store; the updated timestamp is always refreshed.
type PostUpdate struct {
	// ID identifies the post to update.
	ID uuid.UUID

	// Title, when non-nil, replaces the post title.
	Title *string

	// Content, when non-nil, replaces the post body.
	Content *string
}
