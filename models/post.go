package models

import (
	"time"

	"github.com/google/uuid"
)

// Post is a blog entry authored by a registered user.
//
// AuthorUsername is a write-time copy of the author's username. It is kept
// so that post listings do not need a join against the users table; the
// trade-off is that a later username change does not rewrite history.
type Post struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	AuthorID       uuid.UUID `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}
