package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a reply left on a post. Deleting the parent post or the
// author's account removes the comment through schema-level cascades.
type Comment struct {
	ID             uuid.UUID `json:"id"`
	Content        string    `json:"content"`
	PostID         uuid.UUID `json:"post_id"`
	AuthorID       uuid.UUID `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}
